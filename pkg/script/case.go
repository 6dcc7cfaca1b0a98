package script

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToUpper applies full Unicode upper-case mapping, including
// multi-rune expansions (ß → SS, ᾳ → ΑΙ).
// language.Und keeps Greek accents; stripping is a separate stage.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ToLower applies full Unicode lower-case mapping, including final sigma.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToCase renders s in the given case mode. Mixed is the identity.
func ToCase(s string, mode CaseMode) string {
	if s == "" {
		return s
	}
	switch mode {
	case CaseUpper:
		return ToUpper(s)
	case CaseLower:
		return ToLower(s)
	default:
		return s
	}
}
