// CLAUDE:SUMMARY Languages YAML schema: one entry per language code with its script rules, converted to script.LanguageConfig at load.
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/scriptorium/pkg/script"
)

// Manifest is the content of a languages YAML file.
type Manifest struct {
	Languages []LanguageSpec `yaml:"languages"`
}

// LanguageSpec describes one language as written in YAML.
type LanguageSpec struct {
	Code         string     `yaml:"code"`
	Name         string     `yaml:"name"`
	NativeName   string     `yaml:"native_name"`
	AlphabetName string     `yaml:"alphabet_name"`
	Family       string     `yaml:"family"`
	Direction    string     `yaml:"direction"`
	FullCourse   *bool      `yaml:"full_course"`
	DisplayOrder int        `yaml:"display_order"`
	Script       ScriptSpec `yaml:"script"`
}

// ScriptSpec is the YAML form of script.ScriptRules.
type ScriptSpec struct {
	Case                    string     `yaml:"case"`
	HasAccents              *bool      `yaml:"has_accents"`
	CharVForU               bool       `yaml:"char_v_for_u"`
	ScriptioContinuaDefault bool       `yaml:"scriptio_continua_default"`
	WordSeparator           string     `yaml:"word_separator"`
	NormalizeChars          []CharSpec `yaml:"normalize_chars"`
	PunctuationMarks        []string   `yaml:"punctuation_marks"`
	NumeralSystem           string     `yaml:"numeral_system"`
	Notes                   string     `yaml:"notes"`
}

// CharSpec is one ordered character substitution.
type CharSpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// LoadManifest reads and parses a languages YAML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest parses YAML data and validates every entry.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	for i, l := range m.Languages {
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("language #%d: %w", i, err)
		}
	}
	return &m, nil
}

func (l LanguageSpec) validate() error {
	if l.Code == "" {
		return fmt.Errorf("missing code")
	}
	if l.Script.Case != "" && !script.CaseMode(l.Script.Case).Valid() {
		return fmt.Errorf("%s: invalid case %q", l.Code, l.Script.Case)
	}
	if l.Family != "" {
		if _, ok := script.LookupFamily(l.Family); !ok {
			return fmt.Errorf("%s: unknown family %q", l.Code, l.Family)
		}
	}
	for _, c := range l.Script.NormalizeChars {
		if c.From == "" {
			return fmt.Errorf("%s: normalize_chars entry with empty from", l.Code)
		}
	}
	return nil
}

// Config converts the spec into a resolved language configuration.
// Omitted fields take the same defaults as unknown languages.
func (l LanguageSpec) Config() *script.LanguageConfig {
	def := script.DefaultLanguageConfig(l.Code)
	cfg := &script.LanguageConfig{
		Code:         l.Code,
		Name:         l.Name,
		NativeName:   l.NativeName,
		AlphabetName: l.AlphabetName,
		Family:       l.Family,
		Direction:    l.Direction,
		FullCourse:   def.FullCourse,
		DisplayOrder: l.DisplayOrder,
		Script: script.ScriptRules{
			Case:                    script.CaseMode(l.Script.Case),
			HasAccents:              def.Script.HasAccents,
			CharVForU:               l.Script.CharVForU,
			ScriptioContinuaDefault: l.Script.ScriptioContinuaDefault,
			WordSeparator:           l.Script.WordSeparator,
			PunctuationMarks:        l.Script.PunctuationMarks,
			NumeralSystem:           l.Script.NumeralSystem,
			Notes:                   l.Script.Notes,
		},
	}
	if cfg.Name == "" {
		cfg.Name = def.Name
	}
	if cfg.NativeName == "" {
		cfg.NativeName = def.NativeName
	}
	if cfg.Direction == "" {
		cfg.Direction = "ltr"
	}
	if l.FullCourse != nil {
		cfg.FullCourse = *l.FullCourse
	}
	if cfg.DisplayOrder == 0 {
		cfg.DisplayOrder = def.DisplayOrder
	}
	if cfg.Script.Case == "" {
		cfg.Script.Case = def.Script.Case
	}
	if l.Script.HasAccents != nil {
		cfg.Script.HasAccents = *l.Script.HasAccents
	}
	for _, c := range l.Script.NormalizeChars {
		cfg.Script.NormalizeChars = append(cfg.Script.NormalizeChars, script.CharRule{From: c.From, To: c.To})
	}
	return cfg.Resolve()
}
