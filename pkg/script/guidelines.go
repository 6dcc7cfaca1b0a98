package script

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// detailedNotesLen is the note length above which notes are used as the
// guidelines verbatim.
const detailedNotesLen = 200

// ScriptGuidelines describes how text in cfg's language should be written,
// for editors and content tooling.
func ScriptGuidelines(cfg *LanguageConfig) string {
	if cfg == nil {
		return ""
	}
	rules := cfg.Script
	if utf8.RuneCountInString(rules.Notes) > detailedNotesLen {
		return fmt.Sprintf("**%s (%s) Authentic Script Guidelines:**\n\n%s", cfg.Name, cfg.Code, rules.Notes)
	}

	lines := []string{"Use script form: " + cfg.NativeName}
	switch rules.Case {
	case CaseUpper:
		lines = append(lines, "Use UPPERCASE letters only")
	case CaseLower:
		lines = append(lines, "Use lowercase letters")
	}
	if rules.HasAccents {
		lines = append(lines, "Include all diacritical marks")
	} else {
		lines = append(lines, "Omit accents and diacritical marks")
	}
	if rules.CharVForU {
		lines = append(lines, "Use V instead of U (e.g., AVGVSTVS not AUGUSTUS)")
	}
	if rules.Notes != "" {
		lines = append(lines, "Note: "+rules.Notes)
	}
	return strings.Join(lines, ". ") + "."
}
