// CLAUDE:SUMMARY Nomina sacra: whole-token (UAX #29) abbreviation of Koine sacred names with a combining overline on every letter.
package script

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// KoineCode is the language code nomina sacra apply to.
const KoineCode = "grc-koi"

// Overline is the combining mark drawn over each abbreviated letter.
const Overline = "\u035E"

type nomenSacrum struct {
	word   string
	abbrev string
}

// nominaSacra is ordered by descending word length, ties kept in
// declaration order.
var nominaSacra = buildNominaSacra([][2]string{
	{"ΘΕΟΣ", "ΘΣ"},
	{"ΘΕΟΥ", "ΘΥ"},
	{"ΘΕΩΝ", "ΘΝ"},
	{"ΚΥΡΙΟΣ", "ΚΣ"},
	{"ΚΥΡΙΟΥ", "ΚΥ"},
	{"ΚΥΡΙΩΝ", "ΚΝ"},
	{"ΙΗΣΟΥΣ", "ΙΣ"},
	{"ΙΗΣΟΥ", "ΙΥ"},
	{"ΧΡΙΣΤΟΣ", "ΧΣ"},
	{"ΧΡΙΣΤΟΥ", "ΧΥ"},
	{"ΠΝΕΥΜΑ", "ΠΝΑ"},
	{"ΠΝΕΥΜΑΤΟΣ", "ΠΝΣ"},
	{"ΥΙΟΣ", "ΥΣ"},
	{"ΥΙΟΥ", "ΥΥ"},
	{"ΠΑΤΗΡ", "ΠΗΡ"},
	{"ΠΑΤΡΟΣ", "ΠΡΣ"},
	{"ΜΗΤΗΡ", "ΜΗΡ"},
	{"ΜΗΤΡΟΣ", "ΜΡΣ"},
	{"ΑΝΘΡΩΠΟΣ", "ΑΝΟΣ"},
	{"ΑΝΘΡΩΠΟΥ", "ΑΝΟΥ"},
	{"ΟΥΡΑΝΟΣ", "ΟΥΝΣ"},
	{"ΟΥΡΑΝΟΥ", "ΟΥΝΥ"},
	{"ΙΣΡΑΗΛ", "ΙΗΛ"},
	{"ΔΑΥΙΔ", "ΔΑΔ"},
	{"ΙΕΡΟΥΣΑΛΗΜ", "ΙΛΗΜ"},
	{"ΣΤΑΥΡΟΣ", "ΣΤΣ"},
})

var nominaSacraIndex = indexNominaSacra(nominaSacra)

func indexNominaSacra(table []nomenSacrum) map[string]string {
	idx := make(map[string]string, len(table))
	for _, ns := range table {
		if _, dup := idx[ns.word]; !dup {
			idx[ns.word] = ns.abbrev
		}
	}
	return idx
}

func buildNominaSacra(pairs [][2]string) []nomenSacrum {
	out := make([]nomenSacrum, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, nomenSacrum{word: p[0], abbrev: overlined(p[1])})
	}
	slices.SortStableFunc(out, func(a, b nomenSacrum) int {
		return cmp.Compare(utf8.RuneCountInString(b.word), utf8.RuneCountInString(a.word))
	})
	return out
}

// overlined places an Overline after every rune of s.
func overlined(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(r)
		b.WriteString(Overline)
	}
	return b.String()
}

// ApplyNominaSacra abbreviates sacred names in upper-case Koine text.
// Any other language code returns text unchanged.
func ApplyNominaSacra(text, code string) string {
	if code != KoineCode {
		return text
	}
	return abbreviateNominaSacra(text)
}

// abbreviateNominaSacra walks the UAX #29 word tokens of text and swaps
// every token that is exactly a sacred name. Combining marks stay attached
// to their word, so an accented name is left alone.
func abbreviateNominaSacra(text string) string {
	if text == "" {
		return text
	}
	var b strings.Builder
	changed := false
	tokens := words.FromString(text)
	for tokens.Next() {
		tok := tokens.Value()
		if abbrev, ok := nominaSacraIndex[tok]; ok {
			if !changed {
				b.Grow(len(text))
				b.WriteString(text[:tokens.Start()])
				changed = true
			}
			b.WriteString(abbrev)
			continue
		}
		if changed {
			b.WriteString(tok)
		}
	}
	if !changed {
		return text
	}
	return b.String()
}
