package script

import (
	"strings"
	"unicode"
)

// UpperRatio is the share of letters that must be upper case for text to
// pass as an upper-case script.
const UpperRatio = 0.8

// IsAuthentic reports whether text looks like it follows cfg's script
// rules. The check is heuristic: it looks at letter case for upper-case
// scripts and at the absence of U for V-for-U scripts.
func IsAuthentic(text string, cfg *LanguageConfig) bool {
	if text == "" || cfg == nil {
		return true
	}
	if cfg.Script.Case == CaseUpper {
		var letters, upper int
		for _, r := range text {
			if !unicode.IsLetter(r) {
				continue
			}
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
		if letters > 0 && float64(upper)/float64(letters) < UpperRatio {
			return false
		}
	}
	if cfg.Script.CharVForU && strings.ContainsAny(text, "Uu") {
		return false
	}
	return true
}
