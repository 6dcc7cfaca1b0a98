// CLAUDE:SUMMARY Diacritic strippers: generic nonspacing-mark removal with Greek monotonic exceptions, and range-based Hebrew/Syriac/Arabic pointing removal.
package script

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
)

// Stripper removes diacritics from a string. Every Stripper is idempotent.
type Stripper func(string) string

// greekMonotonic maps precomposed monotonic capitals to their bare letters
// before decomposition.
var greekMonotonic = strings.NewReplacer(
	"\u0386", "\u0391", // Ά
	"\u0388", "\u0395", // Έ
	"\u0389", "\u0397", // Ή
	"\u038A", "\u0399", // Ί
	"\u038C", "\u039F", // Ό
	"\u038E", "\u03A5", // Ύ
	"\u038F", "\u03A9", // Ώ
	"\u03AA", "\u0399", // Ϊ
	"\u03AB", "\u03A5", // Ϋ
)

var (
	nonspacingMarks = runes.In(unicode.Mn)

	hebrewPoints  = runes.In(span(0x0591, 0x05C7)) // niqqud and te'amim
	syriacPoints  = runes.In(span(0x0730, 0x074A))
	arabicHarakat = runes.In(span(0x064B, 0x065F))
)

// StripDiacritics removes every nonspacing mark (accents, breathings,
// iota subscripts, diaereses) and returns the recomposed text.
func StripDiacritics(s string) string {
	if s == "" {
		return s
	}
	return removeRunes(greekMonotonic.Replace(s), nonspacingMarks)
}

// StripHebrewPoints removes Masoretic vowel points and cantillation marks,
// leaving the consonantal text.
func StripHebrewPoints(s string) string {
	return removeRunes(s, hebrewPoints)
}

// StripSyriacPoints removes Eastern and Western Syriac vowel pointing.
func StripSyriacPoints(s string) string {
	return removeRunes(s, syriacPoints)
}

// StripArabicHarakat reduces Arabic to its rasm by removing harakat,
// tanwin, shadda and sukun. Consonantal dots are kept.
func StripArabicHarakat(s string) string {
	return removeRunes(s, arabicHarakat)
}
