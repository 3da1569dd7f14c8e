package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/erazemk/freshkeeper/internal/model"
)

// Claims represents the claims the API puts in its access tokens. The
// subject is the account email; user_id and email are optional extras.
type Claims struct {
	UserID int64  `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims decodes an access token without verifying its signature.
// The API remains the authority on whether the token is valid.
func ParseClaims(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	return claims, nil
}

// UserFromToken builds the session user from a token's claims.
func UserFromToken(tokenStr string) (*model.User, error) {
	claims, err := ParseClaims(tokenStr)
	if err != nil {
		return nil, err
	}

	email := claims.Email
	if email == "" {
		email = claims.Subject
	}
	if email == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return &model.User{ID: claims.UserID, Email: email}, nil
}

// Expired reports whether the token's exp claim is before now. Tokens
// without exp do not expire on the client side.
func Expired(claims *Claims, now time.Time) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Before(now)
}
