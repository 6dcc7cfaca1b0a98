package script

import "strings"

// NormalizeChars applies each rule in list order as a literal replacement.
// Later rules see the output of earlier ones.
func NormalizeChars(s string, rules []CharRule) string {
	for _, r := range rules {
		if r.From == "" {
			continue
		}
		s = strings.ReplaceAll(s, r.From, r.To)
	}
	return s
}

// LatinRules is the classical Latin letter inventory mapping:
// no J, U or W, and ligatures written out.
var LatinRules = []CharRule{
	{From: "J", To: "I"},
	{From: "j", To: "i"},
	{From: "U", To: "V"},
	{From: "u", To: "v"},
	{From: "W", To: "VV"},
	{From: "w", To: "vv"},
	{From: "Æ", To: "AE"},
	{From: "æ", To: "ae"},
	{From: "Œ", To: "OE"},
	{From: "œ", To: "oe"},
}

// NormalizeLatin writes s in the classical Latin letter inventory.
func NormalizeLatin(s string) string {
	return NormalizeChars(s, LatinRules)
}

var vForU = strings.NewReplacer("U", "V", "u", "v")

// legacyVForU is the pre-table V-for-U substitution.
func legacyVForU(s string) string {
	return vForU.Replace(s)
}
