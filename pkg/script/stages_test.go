package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripDiacritics(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"χαῖρε", "χαιρε"},
		{"ὦ φίλε", "ω φιλε"},
		{"ΆΈΏ", "ΑΕΩ"},
		{"ΪΫ", "ΙΥ"},
		{"ᾳ", "α"},
		{"café", "cafe"},
		{"ΑΒΓ", "ΑΒΓ"},
		{"", ""},
	}
	for _, tt := range tests {
		got := StripDiacritics(tt.in)
		assert.Equal(t, tt.want, got, "StripDiacritics(%q)", tt.in)
		assert.Equal(t, got, StripDiacritics(got), "not idempotent on %q", tt.in)
	}
}

func TestScriptStrippers(t *testing.T) {
	// shalom with qamats, shin dot and holam
	hebrew := "שָׁלוֹם"
	assert.Equal(t, "שלום", StripHebrewPoints(hebrew))

	// kataba with fatha on every letter
	arabic := "كَتَبَ"
	assert.Equal(t, "كتب", StripArabicHarakat(arabic))

	syriac := "ܐܰܒܳ"
	assert.Equal(t, "ܐܒ", StripSyriacPoints(syriac))

	// marks outside the script's range survive
	assert.Equal(t, "café", StripHebrewPoints("café"))
	assert.Equal(t, "café", StripArabicHarakat("café"))

	for _, s := range []Stripper{StripHebrewPoints, StripSyriacPoints, StripArabicHarakat} {
		once := s(hebrew + arabic + syriac)
		assert.Equal(t, once, s(once))
	}
}

func TestCase(t *testing.T) {
	assert.Equal(t, "STRASSE", ToUpper("straße"))
	assert.Equal(t, "ΜΗΝΙΝ ΑΕΙΔΕ", ToUpper("μηνιν αειδε"))
	assert.Equal(t, "арма", ToLower("АРМА"))
	assert.Equal(t, "MiXeD", ToCase("MiXeD", CaseMixed))
	assert.Equal(t, "", ToCase("", CaseUpper))

	for _, s := range []string{"straße", "Ἀχιλλεύς", "Արամ", "ქართული"} {
		up := ToUpper(s)
		assert.Equal(t, up, ToUpper(up))
		low := ToLower(s)
		assert.Equal(t, low, ToLower(low))
	}
}

func TestNormalizeChars(t *testing.T) {
	assert.Equal(t, "IVLIVS", NormalizeLatin("JULIUS"))
	assert.Equal(t, "VVILLELMVS", NormalizeLatin("WILLELMUS"))
	assert.Equal(t, "AEQVVS", NormalizeLatin("ÆQUUS"))

	// order matters: the second rule sees the first rule's output
	rules := []CharRule{{From: "a", To: "b"}, {From: "b", To: "c"}}
	assert.Equal(t, "cc", NormalizeChars("ab", rules))
	reversed := []CharRule{{From: "b", To: "c"}, {From: "a", To: "b"}}
	assert.Equal(t, "bc", NormalizeChars("ab", reversed))

	assert.Equal(t, "x", NormalizeChars("x", []CharRule{{From: "", To: "y"}}))
}

func TestConvertIotaSubscript(t *testing.T) {
	assert.Equal(t, "αι", ConvertIotaSubscript("ᾳ"))
	assert.Equal(t, "ΑΙ", ConvertIotaSubscript("ᾼ"))
	assert.Equal(t, "ηι ωι", ConvertIotaSubscript("ῃ ῷ"))
	assert.Equal(t, "ΤΩΙ ΛΟΓΩΙ", ToUpper(StripDiacritics(ConvertIotaSubscript("τῷ λόγῳ"))))

	// vowels without a subscript are left alone
	assert.Equal(t, "ᾶ ῆ ῶ ᾱ", ConvertIotaSubscript("ᾶ ῆ ῶ ᾱ"))

	for r := rune(0x1F80); r <= 0x1FAF; r++ {
		out := ConvertIotaSubscript(string(r))
		require.Len(t, []rune(out), 2, "U+%04X", r)
	}
	for _, r := range []rune{0x1FBC, 0x1FCC, 0x1FFC} {
		assert.True(t, strings.HasSuffix(ConvertIotaSubscript(string(r)), "Ι"), "U+%04X", r)
	}
}

func TestConvertLunateSigma(t *testing.T) {
	assert.Equal(t, "ΚΥΡΙΟΣ", ConvertLunateSigma("ΚΥΡΙΟϹ"))
	assert.Equal(t, "σοφία", ConvertLunateSigma("ϲοφία"))
	assert.Equal(t, "ΣΣσσσ", ConvertLunateSigma("ϹϽϲͼͽ"))
}

func TestApplyNominaSacra(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ΘΕΟΣ", "Θ͞Σ͞"},
		{"ΚΥΡΙΟΣ ΙΗΣΟΥΣ ΧΡΙΣΤΟΣ", "Κ͞Σ͞ Ι͞Σ͞ Χ͞Σ͞"},
		{"ΠΝΕΥΜΑΤΟΣ ΠΝΕΥΜΑ", "Π͞Ν͞Σ͞ Π͞Ν͞Α͞"},
		{"ΙΕΡΟΥΣΑΛΗΜ", "Ι͞Λ͞Η͞Μ͞"},
		{"ΘΕΟΣ, ΘΕΟΥ.", "Θ͞Σ͞, Θ͞Υ͞."},
		{"ΑΘΕΟΣ", "ΑΘΕΟΣ"},
		{"ΘΕΟΣΤΙΣ", "ΘΕΟΣΤΙΣ"},
		{"ΘΕΟΣ́", "ΘΕΟΣ́"},
		{"θεος", "θεος"},
		{"ΘΕΟΣ\nΥΙΟΣ\tΣΤΑΥΡΟΣ", "Θ͞Σ͞\nΥ͞Σ͞\tΣ͞Τ͞Σ͞"},
		{"(ΔΑΥΙΔ)", "(Δ͞Α͞Δ͞)"},
		{"ΘΕΟΣ\u00B7ΚΑΙ", "ΘΕΟΣ\u00B7ΚΑΙ"},
		{"ΘΕΟΣ\u0387 ΚΥΡΙΟΥ", "Θ͞Σ͞\u0387 Κ͞Υ͞"},
		{"ΘΕΟΣ1", "ΘΕΟΣ1"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ApplyNominaSacra(tt.in, KoineCode), "ApplyNominaSacra(%q)", tt.in)
	}
	assert.Equal(t, "ΘΕΟΣ", ApplyNominaSacra("ΘΕΟΣ", "grc"))
}

func TestNominaSacraOrder(t *testing.T) {
	require.Len(t, nominaSacra, 26)
	for i := 1; i < len(nominaSacra); i++ {
		prev := len([]rune(nominaSacra[i-1].word))
		cur := len([]rune(nominaSacra[i].word))
		assert.GreaterOrEqual(t, prev, cur, "entry %d (%s)", i, nominaSacra[i].word)
	}
	assert.Equal(t, "ΙΕΡΟΥΣΑΛΗΜ", nominaSacra[0].word)
	for _, ns := range nominaSacra {
		runes := []rune(ns.abbrev)
		for i := 1; i < len(runes); i += 2 {
			assert.Equal(t, '͞', runes[i], "%s", ns.word)
		}
	}
}

func TestRemoveModernPunctuation(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ΧΑΙΡΕ, Ω ΦΙΛΕ!", "ΧΑΙΡΕ Ω ΦΙΛΕ"},
		{"SALVE, AMICE.", "SALVE AMICE"},
		{`"QVID?" (DIXIT) [SIC]`, "QVID DIXIT SIC"},
		{"A—B–C", "A B C"},
		{"ΤΙ ΕΣΤΙ;", "ΤΙ ΕΣΤΙ"},
		{"ΕΝ ΑΡΧΗ· ΗΝ", "ΕΝ ΑΡΧΗ· ΗΝ"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RemoveModernPunctuation(tt.in), "RemoveModernPunctuation(%q)", tt.in)
	}
}

func TestWordSeparation(t *testing.T) {
	assert.Equal(t, "ΜΗΝΙΝΑΕΙΔΕΘΕΑ", ApplyScriptioContinua("ΜΗΝΙΝ ΑΕΙΔΕ ΘΕΑ"))
	assert.Equal(t, "AB\nCD\r\nE", ApplyScriptioContinua("A  B\nC\tD\r\nE"))

	got := ApplyInterpunct("  ARMA VIRVMQVE   CANO ")
	assert.Equal(t, "ARMA·VIRVMQVE·CANO", got)
	assert.NotContains(t, got, " ")
	assert.False(t, strings.HasPrefix(got, Interpunct) || strings.HasSuffix(got, Interpunct))

	assert.Equal(t, "ሰላም፡ለከ", ApplyWordSeparator(" ሰላም  ለከ", EthiopicWordspace))
	assert.Equal(t, "ሰላም፡ለከ", ApplyEthiopicWordspace("ሰላም ለከ"))
	assert.Equal(t, "𐎀𐎟𐎁", ApplyUgariticDivider("𐎀 𐎁"))
	assert.Equal(t, "𐌰·𐌱", ApplyGothicInterpunct("𐌰 𐌱"))
	assert.Equal(t, "a b", ApplyWordSeparator("a b", ""))
}

func TestTibetanTsheg(t *testing.T) {
	assert.Equal(t, "ཀ་ཁ་ག", ApplyTibetanTsheg("ཀ ཁ  ག"))
	assert.Equal(t, "ཀ་ཁ ག", ApplyTibetanTsheg("ཀ་ཁ ག"))
	assert.Equal(t, "ཀ་ཁ", ApplyWordSeparator("ཀ ཁ", TibetanTsheg))
}

func TestOghamMarks(t *testing.T) {
	want := "᚛MAQI CORBI᚜"
	assert.Equal(t, want, ApplyOghamMarks("MAQI CORBI"))
	assert.Equal(t, want, ApplyWordSeparator(" MAQI  CORBI ", OghamSpaceMark))
	assert.Equal(t, want, ApplyOghamMarks(want))
	assert.Equal(t, "", ApplyOghamMarks("   "))
}

func TestDecomposeRecompose(t *testing.T) {
	composed := "\u1F00" // alpha with psili
	decomposed := Decompose(composed)
	assert.Equal(t, "\u03B1\u0313", decomposed)
	assert.Equal(t, composed, Recompose(decomposed))
	assert.Equal(t, "", Decompose(""))
}
