package auth

import "strings"

// The staff dashboard stores preference fields in its own human-readable
// vocabulary; registration translates the app's internal codes into it.

var maritalStatusLabels = map[string]string{
	"solteiro":   "Solteiro(a)",
	"casado":     "Casado(a)",
	"divorciado": "Divorciado(a)",
	"viuvo":      "Viúvo(a)",
}

var referralSourceLabels = map[string]string{
	"indicacao":     "Indicação",
	"redes_sociais": "Instagram",
	"google":        "Google",
	"passando":      "Passando na Rua",
	"outro":         "Outro",
}

func maritalStatusLabel(code string) string {
	if code == "" {
		return ""
	}
	if label, ok := maritalStatusLabels[strings.ToLower(code)]; ok {
		return label
	}
	return code
}

func referralSourceLabel(code string) string {
	if code == "" {
		return ""
	}
	if label, ok := referralSourceLabels[strings.ToLower(code)]; ok {
		return label
	}
	return code
}

// yesNoLabel maps an optional boolean answer to the dashboard's
// "Sim"/"Não" vocabulary; unanswered stays empty.
func yesNoLabel(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "Sim"
	}
	return "Não"
}

// displayDate converts YYYY-MM-DD into the DD/MM/YYYY format the
// dashboard displays.
func displayDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) == 3 && len(parts[0]) == 4 {
		return parts[2] + "/" + parts[1] + "/" + parts[0]
	}
	return date
}
