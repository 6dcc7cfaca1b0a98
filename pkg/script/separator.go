// CLAUDE:SUMMARY Word separation: scriptio continua, interpuncts, and per-script separators (Ethiopic, Ugaritic, Gothic, Tibetan tsheg, Ogham brackets).
package script

import (
	"regexp"
	"strings"
)

// Separator characters known to ApplyWordSeparator.
const (
	Interpunct        = "\u00B7"
	EthiopicWordspace = "\u1361"
	UgariticDivider   = "\U0001039F"
	TibetanTsheg      = "\u0F0B"
	OghamSpaceMark    = "\u1680"
	OghamFeatherMark  = "\u169B"
	OghamReversedMark = "\u169C"
)

var horizontalSpace = regexp.MustCompile(`[ \t]+`)

// ApplyScriptioContinua removes every run of spaces and tabs.
// Line breaks are kept.
func ApplyScriptioContinua(text string) string {
	if text == "" {
		return text
	}
	return horizontalSpace.ReplaceAllString(text, "")
}

// ApplyInterpunct trims the text and writes each run of spaces as a
// single middle dot.
func ApplyInterpunct(text string) string {
	return collapseSpaces(text, Interpunct)
}

// ApplyWordSeparator writes word breaks with sep. Tibetan and Ogham have
// their own rules; every other separator replaces space runs after a trim.
func ApplyWordSeparator(text, sep string) string {
	if text == "" || sep == "" {
		return text
	}
	switch sep {
	case TibetanTsheg:
		return ApplyTibetanTsheg(text)
	case OghamSpaceMark:
		return ApplyOghamMarks(text)
	}
	return collapseSpaces(text, sep)
}

// ApplyEthiopicWordspace separates Ge'ez words with the Ethiopic wordspace.
func ApplyEthiopicWordspace(text string) string {
	return collapseSpaces(text, EthiopicWordspace)
}

// ApplyUgariticDivider separates Ugaritic words with the cuneiform divider.
func ApplyUgariticDivider(text string) string {
	return collapseSpaces(text, UgariticDivider)
}

// ApplyGothicInterpunct separates Gothic words with a middle dot.
func ApplyGothicInterpunct(text string) string {
	return collapseSpaces(text, Interpunct)
}

// ApplyTibetanTsheg writes space runs as tsheg. Text that already carries
// a tsheg is returned unchanged.
func ApplyTibetanTsheg(text string) string {
	if text == "" || strings.Contains(text, TibetanTsheg) {
		return text
	}
	return spaceRun.ReplaceAllString(text, TibetanTsheg)
}

// ApplyOghamMarks writes space runs as the Ogham space mark and brackets
// the text with the feather marks, adding each only when absent.
func ApplyOghamMarks(text string) string {
	s := collapseSpaces(text, OghamSpaceMark)
	if s == "" {
		return s
	}
	if !strings.HasPrefix(s, OghamFeatherMark) {
		s = OghamFeatherMark + s
	}
	if !strings.HasSuffix(s, OghamReversedMark) {
		s += OghamReversedMark
	}
	return s
}

func collapseSpaces(text, sep string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return s
	}
	return spaceRun.ReplaceAllString(s, sep)
}
