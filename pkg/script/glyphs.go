// CLAUDE:SUMMARY Greek special glyphs: iota subscript to adscript expansion and lunate sigma normalization.
package script

import "strings"

// iotaAdscript expands every vowel carrying an iota subscript (ypogegrammeni)
// or prosgegrammeni into the vowel followed by a full iota. Breathings and
// accents on the vowel are dropped with the subscript. Keys are single
// precomposed runes, so the table is order-independent.
var iotaAdscript = strings.NewReplacer(
	// U+1F80–U+1FA7, U+1FB2–4/7, U+1FC2–4/7, U+1FF2–4/7
	"ᾀ", "αι", "ᾁ", "αι", "ᾂ", "αι", "ᾃ", "αι",
	"ᾄ", "αι", "ᾅ", "αι", "ᾆ", "αι", "ᾇ", "αι",
	"ᾐ", "ηι", "ᾑ", "ηι", "ᾒ", "ηι", "ᾓ", "ηι",
	"ᾔ", "ηι", "ᾕ", "ηι", "ᾖ", "ηι", "ᾗ", "ηι",
	"ᾠ", "ωι", "ᾡ", "ωι", "ᾢ", "ωι", "ᾣ", "ωι",
	"ᾤ", "ωι", "ᾥ", "ωι", "ᾦ", "ωι", "ᾧ", "ωι",
	"ᾲ", "αι", "ᾳ", "αι", "ᾴ", "αι", "ᾷ", "αι",
	"ῂ", "ηι", "ῃ", "ηι", "ῄ", "ηι", "ῇ", "ηι",
	"ῲ", "ωι", "ῳ", "ωι", "ῴ", "ωι", "ῷ", "ωι",
	// U+1F88–U+1FAF, U+1FBC, U+1FCC, U+1FFC
	"ᾈ", "ΑΙ", "ᾉ", "ΑΙ", "ᾊ", "ΑΙ", "ᾋ", "ΑΙ",
	"ᾌ", "ΑΙ", "ᾍ", "ΑΙ", "ᾎ", "ΑΙ", "ᾏ", "ΑΙ",
	"ᾘ", "ΗΙ", "ᾙ", "ΗΙ", "ᾚ", "ΗΙ", "ᾛ", "ΗΙ",
	"ᾜ", "ΗΙ", "ᾝ", "ΗΙ", "ᾞ", "ΗΙ", "ᾟ", "ΗΙ",
	"ᾨ", "ΩΙ", "ᾩ", "ΩΙ", "ᾪ", "ΩΙ", "ᾫ", "ΩΙ",
	"ᾬ", "ΩΙ", "ᾭ", "ΩΙ", "ᾮ", "ΩΙ", "ᾯ", "ΩΙ",
	"ᾼ", "ΑΙ", "ῌ", "ΗΙ", "ῼ", "ΩΙ",
)

var lunateSigma = strings.NewReplacer(
	"\u03F9", "Σ", // capital lunate sigma
	"\u03F2", "σ", // lunate sigma
	"\u03FD", "Σ", // capital reversed lunate sigma
	"\u037C", "σ", // small dotted lunate sigma
	"\u037D", "σ", // small reversed dotted lunate sigma
)

// ConvertIotaSubscript writes iota subscripts as adscripts:
// ᾳ → αι, ῷ → ωι, ᾼ → ΑΙ.
func ConvertIotaSubscript(s string) string {
	return iotaAdscript.Replace(s)
}

// ConvertLunateSigma encodes every lunate sigma form as the regular sigma.
// It is a standalone stage; Render never applies it.
func ConvertLunateSigma(s string) string {
	return lunateSigma.Replace(s)
}
