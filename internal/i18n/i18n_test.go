package i18n

import "testing"

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestDetect(t *testing.T) {
	tests := []struct {
		env      map[string]string
		expected string
	}{
		{map[string]string{}, "fr"},
		{map[string]string{"LANG": "en_US.UTF-8"}, "en"},
		{map[string]string{"LANG": "es_ES.UTF-8@euro"}, "es"},
		{map[string]string{"LANG": "C"}, "fr"},
		{map[string]string{"LANG": "de_DE.UTF-8"}, "fr"},
		{map[string]string{"LANG": "en_GB.UTF-8", "LC_ALL": "es_MX"}, "es"},
		{map[string]string{"LANG": "en_GB.UTF-8", "FRESHKEEPER_LANG": "fr"}, "fr"},
		// An unmatched override does not hide a usable LANG.
		{map[string]string{"FRESHKEEPER_LANG": "xx", "LANG": "en"}, "en"},
	}

	for _, tt := range tests {
		if got := Detect(envMap(tt.env)); got != tt.expected {
			t.Errorf("Detect(%v) = %q, want %q", tt.env, got, tt.expected)
		}
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 3 || langs[0] != Fallback {
		t.Errorf("unexpected languages %v", langs)
	}
}

func TestTranslate(t *testing.T) {
	tr, err := New("en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Lang() != "en" {
		t.Errorf("expected lang 'en', got %q", tr.Lang())
	}
	if got := tr.T("home.title"); got != "Dashboard" {
		t.Errorf("expected 'Dashboard', got %q", got)
	}
	if got := tr.T("products.daysLeft", 3); got != "Days left: 3" {
		t.Errorf("expected formatted message, got %q", got)
	}
	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Errorf("expected key echoed back, got %q", got)
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	tr, err := New("de")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Lang() != Fallback {
		t.Errorf("expected fallback language, got %q", tr.Lang())
	}
	if got := tr.T("auth.logout"); got != "Se déconnecter" {
		t.Errorf("expected French message, got %q", got)
	}
}

func TestLocalesHaveSameKeys(t *testing.T) {
	tr, err := New(Fallback)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	base := tr.messages[Fallback]
	for _, code := range Languages() {
		msgs := tr.messages[code]
		for key := range base {
			if _, ok := msgs[key]; !ok {
				t.Errorf("locale %s is missing %q", code, key)
			}
		}
		for key := range msgs {
			if _, ok := base[key]; !ok {
				t.Errorf("locale %s has extra key %q", code, key)
			}
		}
	}
}
