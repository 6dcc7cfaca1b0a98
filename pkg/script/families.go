// CLAUDE:SUMMARY Script-family descriptors: one data row per family selects the diacritic stripper and the Greek-only stages.
package script

// Family describes the script-level behaviour shared by a group of
// languages.
type Family struct {
	Name string
	// Strip removes diacritics when the language has no accents.
	Strip Stripper
	// IotaAdscript enables iota subscript expansion.
	IotaAdscript bool
	// NominaSacra enables sacred-name abbreviation.
	NominaSacra bool
}

// Family names accepted in a language configuration.
const (
	FamilyGreek      = "greek"
	FamilyGreekKoine = "greek-koine"
	FamilyHebrew     = "hebrew"
	FamilySyriac     = "syriac"
	FamilyArabic     = "arabic"
	FamilyLatin      = "latin"
	FamilyGeneric    = "generic"
)

var families = map[string]*Family{
	FamilyGreek:      {Name: FamilyGreek, Strip: StripDiacritics, IotaAdscript: true},
	FamilyGreekKoine: {Name: FamilyGreekKoine, Strip: StripDiacritics, IotaAdscript: true, NominaSacra: true},
	FamilyHebrew:     {Name: FamilyHebrew, Strip: StripHebrewPoints},
	FamilySyriac:     {Name: FamilySyriac, Strip: StripSyriacPoints},
	FamilyArabic:     {Name: FamilyArabic, Strip: StripArabicHarakat},
	FamilyLatin:      {Name: FamilyLatin, Strip: StripDiacritics},
	FamilyGeneric:    {Name: FamilyGeneric, Strip: StripDiacritics},
}

// familyByCode assigns language codes to families. Codes not listed are
// generic.
var familyByCode = map[string]string{
	"grc":       FamilyGreek,
	"grc-cls":   FamilyGreek,
	"grc-koi":   FamilyGreekKoine,
	"hbo":       FamilyHebrew,
	"hbo-paleo": FamilyHebrew,
	"syc":       FamilySyriac,
	"ara":       FamilyArabic,
	"lat":       FamilyLatin,
}

// LookupFamily returns the family with the given name.
func LookupFamily(name string) (*Family, bool) {
	f, ok := families[name]
	return f, ok
}

// FamilyFor returns the family of a language code.
func FamilyFor(code string) *Family {
	if name, ok := familyByCode[code]; ok {
		return families[name]
	}
	return families[FamilyGeneric]
}

// FamilyOf returns the family of cfg. An explicit Family field wins over
// the code table.
func FamilyOf(cfg *LanguageConfig) *Family {
	if cfg == nil {
		return families[FamilyGeneric]
	}
	if cfg.Family != "" {
		if f, ok := families[cfg.Family]; ok {
			return f
		}
	}
	return FamilyFor(cfg.Code)
}

// StripperFor returns the diacritic stripper of a family name, falling
// back to the generic one.
func StripperFor(family string) Stripper {
	if f, ok := families[family]; ok {
		return f.Strip
	}
	return StripDiacritics
}
