package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signToken mimics the API: HS256, subject set to the account email.
func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("server-side-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestParseClaims(t *testing.T) {
	token := signToken(t, Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ana@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ParseClaims(token)
	if err != nil {
		t.Fatalf("ParseClaims: %v", err)
	}
	if claims.Subject != "ana@example.com" {
		t.Errorf("expected subject 'ana@example.com', got %q", claims.Subject)
	}
	if claims.UserID != 3 {
		t.Errorf("expected user_id 3, got %d", claims.UserID)
	}
}

func TestParseClaimsInvalid(t *testing.T) {
	_, err := ParseClaims("not-a-token")
	if err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestUserFromToken(t *testing.T) {
	tests := []struct {
		name     string
		claims   Claims
		expected string
		wantErr  bool
	}{
		{
			name:     "subject",
			claims:   Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "ana@example.com"}},
			expected: "ana@example.com",
		},
		{
			name: "email claim wins",
			claims: Claims{
				Email:            "bo@example.com",
				RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
			},
			expected: "bo@example.com",
		},
		{
			name:    "no subject",
			claims:  Claims{UserID: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		user, err := UserFromToken(signToken(t, tt.claims))
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil && user.Email != tt.expected {
			t.Errorf("%s: expected email %q, got %q", tt.name, tt.expected, user.Email)
		}
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()

	past := &Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}}
	if !Expired(past, now) {
		t.Error("expected token with past exp to be expired")
	}

	future := &Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}}
	if Expired(future, now) {
		t.Error("expected token with future exp not to be expired")
	}

	if Expired(&Claims{}, now) {
		t.Error("expected token without exp not to be expired")
	}
	if Expired(nil, now) {
		t.Error("expected nil claims not to be expired")
	}
}

func TestParseClaimsIgnoresSignatureButNotExpiry(t *testing.T) {
	// An expired token still decodes; callers decide with Expired.
	token := signToken(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "ana@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}})

	claims, err := ParseClaims(token)
	if err != nil {
		t.Fatalf("ParseClaims: %v", err)
	}
	if !Expired(claims, time.Now()) {
		t.Error("expected decoded token to report expired")
	}
}
