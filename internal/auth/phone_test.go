package auth

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(11) 98888-7777", "11988887777"},
		{"+55 11 98888 7777", "5511988887777"},
		{"11988887777", "11988887777"},
		{"abc", ""},
	}
	for _, tc := range tests {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Fatalf("NormalizePhone(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"(11) 98888-7777", true},
		{"1133334444", true},
		{"988887777", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := ValidPhone(tc.in); got != tc.want {
			t.Fatalf("ValidPhone(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"11988887777", "(11) 98888-7777"},
		{"1133334444", "(11) 3333-4444"},
		{"123", "123"},
	}
	for _, tc := range tests {
		if got := FormatPhone(tc.in); got != tc.want {
			t.Fatalf("FormatPhone(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestVocabularyPassthrough(t *testing.T) {
	if got := maritalStatusLabel("uniao_estavel"); got != "uniao_estavel" {
		t.Fatalf("unknown code must pass through, got %q", got)
	}
	if got := referralSourceLabel(""); got != "" {
		t.Fatalf("empty code must stay empty, got %q", got)
	}
	if got := displayDate("sem-data"); got != "sem-data" {
		t.Fatalf("non-date must pass through, got %q", got)
	}
}
