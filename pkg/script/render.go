// CLAUDE:SUMMARY Orchestrator: resolves the language config and runs the rendering stages in their fixed order.
package script

// Renderer renders text in the authentic form of a language. It holds no
// mutable state and is safe for concurrent use.
type Renderer struct {
	provider Provider
}

// NewRenderer returns a renderer resolving languages through p. A nil
// provider gives every code the default configuration.
func NewRenderer(p Provider) *Renderer {
	return &Renderer{provider: p}
}

// Config returns the configuration used for code.
func (r *Renderer) Config(code string) *LanguageConfig {
	if r.provider == nil {
		return DefaultLanguageConfig(code)
	}
	if cfg := r.provider.Lookup(code); cfg != nil {
		return cfg
	}
	return DefaultLanguageConfig(code)
}

// Render applies authentic-mode rules and display preferences to text.
func (r *Renderer) Render(text, code string, opts RenderOptions) string {
	if text == "" {
		return text
	}
	return RenderWithConfig(text, r.Config(code), opts)
}

// Validate reports whether text looks authentic for code.
func (r *Renderer) Validate(text, code string) bool {
	return IsAuthentic(text, r.Config(code))
}

// Alphabet returns the letter inventory of code.
func (r *Renderer) Alphabet(code string) []string {
	return AlphabetFor(code, r.provider)
}

// Guidelines returns the writing guidelines of code.
func (r *Renderer) Guidelines(code string) string {
	return ScriptGuidelines(r.Config(code))
}

// RenderWithConfig runs the pipeline against an explicit configuration.
//
// Stages, in order:
//  1. authentic mode: character table, diacritics, case,
//     legacy V-for-U, then the configured word separation unless a
//     preference-level separator is requested
//  2. iota adscript (Greek families)
//  3. modern punctuation removal
//  4. nomina sacra (Koine)
//  5. scriptio continua, else interpuncts
func RenderWithConfig(text string, cfg *LanguageConfig, opts RenderOptions) string {
	if text == "" {
		return text
	}
	if cfg == nil {
		cfg = DefaultLanguageConfig("")
	}
	prefs := opts.Effective()
	fam := FamilyOf(cfg)

	s := text
	if opts.AuthenticMode {
		s = authentic(s, cfg, fam, !prefs.separates())
	}
	if prefs.UseIotaAdscript && fam.IotaAdscript {
		s = ConvertIotaSubscript(s)
	}
	if prefs.RemoveModernPunctuation {
		s = RemoveModernPunctuation(s)
	}
	if prefs.UseNominaSacra && fam.NominaSacra {
		s = abbreviateNominaSacra(s)
	}
	switch {
	case prefs.UseScriptioContinua:
		s = ApplyScriptioContinua(s)
	case prefs.UseInterpuncts:
		s = ApplyInterpunct(s)
	}
	return s
}

// AuthenticTransform applies only the authentic-mode stage of cfg,
// including its configured word separation.
func AuthenticTransform(text string, cfg *LanguageConfig) string {
	if text == "" {
		return text
	}
	if cfg == nil {
		cfg = DefaultLanguageConfig("")
	}
	return authentic(text, cfg, FamilyOf(cfg), true)
}

func authentic(s string, cfg *LanguageConfig, fam *Family, separate bool) string {
	rules := cfg.Script
	sub := cfg.substitution()

	if sub == SubstituteTable {
		s = NormalizeChars(s, rules.NormalizeChars)
	}
	if !rules.HasAccents {
		s = fam.Strip(s)
	}
	s = ToCase(s, rules.Case)
	if sub == SubstituteLegacyVForU {
		s = legacyVForU(s)
	}
	if !separate {
		return s
	}
	switch {
	case rules.WordSeparator != "":
		s = ApplyWordSeparator(s, rules.WordSeparator)
	case rules.ScriptioContinuaDefault:
		s = ApplyScriptioContinua(s)
	}
	return s
}
