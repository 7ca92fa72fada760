package shared

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	valid := []string{"jane_doe", "jane.doe", "j", "user123", "A.B_C"}
	for _, u := range valid {
		if err := ValidateUsername(u); err != nil {
			t.Errorf("expected %q to be valid, got %v", u, err)
		}
	}
	invalid := []string{"", "jane doe", "jane-doe", "@jane", strings.Repeat("a", 31)}
	for _, u := range invalid {
		if err := ValidateUsername(u); err == nil {
			t.Errorf("expected %q to be invalid", u)
		}
	}
}

func TestSanitizeUsername(t *testing.T) {
	cases := map[string]string{
		"@jane.doe":   "jane.doe",
		"jane.doe/":   "jane.doe",
		" jane.doe ":  "jane.doe",
		"@jane.doe/ ": "jane.doe",
		"jane.doe":    "jane.doe",
	}
	for in, want := range cases {
		if got := SanitizeUsername(in); got != want {
			t.Errorf("SanitizeUsername(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestDbFileName(t *testing.T) {
	a := DbFileName("user.name")
	b := DbFileName("user_name")
	if a == b {
		t.Errorf("distinct owners map to the same db file: %q", a)
	}
	if !strings.HasPrefix(a, "user_name-") || !strings.HasSuffix(a, ".db") {
		t.Errorf("unexpected db file name: %q", a)
	}
	if a != DbFileName("user.name") {
		t.Error("db file name is not stable for the same owner")
	}
}
