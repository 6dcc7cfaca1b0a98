package script

import (
	"regexp"
	"strings"
)

// modernPunctuation is applied in order: deletions and single-space
// replacements for marks that ancient manuscripts did not use.
var modernPunctuation = strings.NewReplacer(
	"?", "",
	"!", "",
	",", " ",
	";", " ",
	":", " ",
	".", " ",
	`"`, "",
	"'", "",
	"—", " ", // em dash
	"–", " ", // en dash
	"(", "",
	")", "",
	"[", "",
	"]", "",
)

var spaceRun = regexp.MustCompile(` +`)

// RemoveModernPunctuation deletes or blanks modern punctuation, collapses
// space runs and trims the result. The Greek ano teleia (U+0387) and
// question mark (U+037E) are left alone.
func RemoveModernPunctuation(text string) string {
	if text == "" {
		return text
	}
	s := modernPunctuation.Replace(text)
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
