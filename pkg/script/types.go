// CLAUDE:SUMMARY Language configuration, script rules and per-request display preferences consumed by the rendering stages.
package script

import "strings"

// CaseMode is the letter case a script is rendered in.
type CaseMode string

const (
	CaseUpper CaseMode = "upper"
	CaseLower CaseMode = "lower"
	CaseMixed CaseMode = "mixed"
)

// Valid reports whether m is one of the known case modes.
func (m CaseMode) Valid() bool {
	switch m {
	case CaseUpper, CaseLower, CaseMixed:
		return true
	}
	return false
}

// CharRule is one literal substitution. Rules are applied in list order.
type CharRule struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Substitution selects which character-substitution path a config uses.
// The table path and the legacy V-for-U path never both run.
type Substitution int

const (
	substitutionUnresolved Substitution = iota
	SubstituteNone
	SubstituteTable
	SubstituteLegacyVForU
)

func (s Substitution) String() string {
	switch s {
	case SubstituteNone:
		return "none"
	case SubstituteTable:
		return "table"
	case SubstituteLegacyVForU:
		return "legacy-v-for-u"
	}
	return "unresolved"
}

// ScriptRules describes how a language is written in authentic mode.
type ScriptRules struct {
	Case                    CaseMode   `json:"case"`
	HasAccents              bool       `json:"has_accents"`
	NormalizeChars          []CharRule `json:"normalize_chars,omitempty"`
	CharVForU               bool       `json:"char_v_for_u"`
	ScriptioContinuaDefault bool       `json:"scriptio_continua_default"`
	WordSeparator           string     `json:"word_separator,omitempty"`
	PunctuationMarks        []string   `json:"punctuation_marks,omitempty"`
	NumeralSystem           string     `json:"numeral_system,omitempty"`
	Notes                   string     `json:"notes,omitempty"`
}

// Substitution resolves the substitution path from the rules.
// A non-empty NormalizeChars list always wins over the legacy flag.
func (r ScriptRules) Substitution() Substitution {
	switch {
	case len(r.NormalizeChars) > 0:
		return SubstituteTable
	case r.CharVForU:
		return SubstituteLegacyVForU
	default:
		return SubstituteNone
	}
}

// LanguageConfig is the immutable per-language configuration.
// Values handed out by a Provider are shared and must not be modified.
type LanguageConfig struct {
	Code         string      `json:"code"`
	Name         string      `json:"name"`
	NativeName   string      `json:"native_name"`
	AlphabetName string      `json:"alphabet_name,omitempty"`
	Family       string      `json:"family,omitempty"`
	Direction    string      `json:"direction,omitempty"`
	FullCourse   bool        `json:"full_course"`
	DisplayOrder int         `json:"display_order"`
	Script       ScriptRules `json:"script"`

	// Substitution is filled in by Resolve.
	Substitution Substitution `json:"-"`
}

// Resolve fixes the substitution path once, at config load time.
func (c *LanguageConfig) Resolve() *LanguageConfig {
	c.Substitution = c.Script.Substitution()
	return c
}

func (c *LanguageConfig) substitution() Substitution {
	if c.Substitution == substitutionUnresolved {
		return c.Script.Substitution()
	}
	return c.Substitution
}

// DefaultLanguageConfig is the permissive configuration used for codes
// the registry does not know: mixed case, accents kept, no separator.
func DefaultLanguageConfig(code string) *LanguageConfig {
	cfg := &LanguageConfig{
		Code:         code,
		Name:         strings.ToUpper(code),
		NativeName:   strings.ToUpper(code),
		FullCourse:   true,
		DisplayOrder: 9999,
		Script: ScriptRules{
			Case:       CaseMixed,
			HasAccents: true,
		},
	}
	return cfg.Resolve()
}

// Provider resolves a language code to its configuration.
// Lookup never returns nil; unknown codes get a default configuration.
type Provider interface {
	Lookup(code string) *LanguageConfig
}

// ScriptPreferences are the per-request display toggles.
type ScriptPreferences struct {
	UseScriptioContinua     bool `json:"use_scriptio_continua"`
	UseInterpuncts          bool `json:"use_interpuncts"`
	UseIotaAdscript         bool `json:"use_iota_adscript"`
	UseNominaSacra          bool `json:"use_nomina_sacra"`
	RemoveModernPunctuation bool `json:"remove_modern_punctuation"`
}

// DefaultPreferences returns the documented defaults: iota adscript on,
// everything else off.
func DefaultPreferences() ScriptPreferences {
	return ScriptPreferences{UseIotaAdscript: true}
}

// separates reports whether a preference-level word separator is requested.
func (p ScriptPreferences) separates() bool {
	return p.UseScriptioContinua || p.UseInterpuncts
}

// RenderOptions carries the two calling conventions of Render: standalone
// flags, or a whole preferences object that replaces them.
type RenderOptions struct {
	AuthenticMode bool
	Flags         ScriptPreferences
	// Preferences, when non-nil, replaces Flags entirely. Fields are not merged.
	Preferences *ScriptPreferences
}

// DefaultRenderOptions returns options with the default flags and
// authentic mode off.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Flags: DefaultPreferences()}
}

// Effective returns the preferences that apply to a render call.
func (o RenderOptions) Effective() ScriptPreferences {
	if o.Preferences != nil {
		return *o.Preferences
	}
	return o.Flags
}
