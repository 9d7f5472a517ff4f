package auth

import "strings"

// NormalizePhone strips everything but digits; phones are stored and
// looked up digits-only.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone accepts Brazilian landline (10 digits) and mobile (11 digits)
// numbers.
func ValidPhone(phone string) bool {
	n := len(NormalizePhone(phone))
	return n == 10 || n == 11
}

// FormatPhone renders a normalized phone for display.
func FormatPhone(phone string) string {
	clean := NormalizePhone(phone)
	switch len(clean) {
	case 11:
		return "(" + clean[:2] + ") " + clean[2:7] + "-" + clean[7:]
	case 10:
		return "(" + clean[:2] + ") " + clean[2:6] + "-" + clean[6:]
	default:
		return phone
	}
}
