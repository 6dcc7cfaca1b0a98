package registry

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hazyhaar/scriptorium/pkg/script"
)

//go:embed languages.yaml
var builtinLanguages []byte

// Registry holds every loaded language configuration and serves lookups.
// It implements script.Provider.
type Registry struct {
	mu    sync.RWMutex
	langs map[string]*script.LanguageConfig
	dir   string
}

var _ script.Provider = (*Registry)(nil)

// NewRegistry creates an empty registry. Override files are read from dir
// on Load; an empty dir means built-in languages only.
func NewRegistry(dir string) *Registry {
	return &Registry{
		langs: make(map[string]*script.LanguageConfig),
		dir:   dir,
	}
}

// Load parses the built-in languages, then every *.yaml file of the
// override directory in name order. Later entries replace earlier ones
// with the same code. The registry is swapped only when everything parsed.
func (r *Registry) Load() error {
	builtin, err := ParseManifest(builtinLanguages)
	if err != nil {
		return fmt.Errorf("builtin languages: %w", err)
	}
	newLangs := make(map[string]*script.LanguageConfig, len(builtin.Languages))
	add(newLangs, builtin)

	if r.dir != "" {
		paths, err := overrideFiles(r.dir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			m, err := LoadManifest(p)
			if err != nil {
				return err
			}
			add(newLangs, m)
		}
	}

	r.mu.Lock()
	r.langs = newLangs
	r.mu.Unlock()
	return nil
}

// Reload reloads all languages (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

func add(dst map[string]*script.LanguageConfig, m *Manifest) {
	for _, l := range m.Languages {
		dst[l.Code] = l.Config()
	}
}

func overrideFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read languages dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// Lookup returns the configuration of code, or the default configuration
// for codes the registry does not know. It never returns nil.
func (r *Registry) Lookup(code string) *script.LanguageConfig {
	if cfg, ok := r.Get(code); ok {
		return cfg
	}
	return script.DefaultLanguageConfig(code)
}

// Get returns the configuration of a known code.
func (r *Registry) Get(code string) (*script.LanguageConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.langs[code]
	return cfg, ok
}

// Info is the public summary of a loaded language.
type Info struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	NativeName   string          `json:"native_name"`
	AlphabetName string          `json:"alphabet_name,omitempty"`
	Family       string          `json:"family"`
	Direction    string          `json:"direction"`
	FullCourse   bool            `json:"full_course"`
	DisplayOrder int             `json:"display_order"`
	Case         script.CaseMode `json:"case"`
	HasAccents   bool            `json:"has_accents"`
}

// List returns every loaded language, sorted by display order then code.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.langs))
	for _, c := range r.langs {
		infos = append(infos, Info{
			Code:         c.Code,
			Name:         c.Name,
			NativeName:   c.NativeName,
			AlphabetName: c.AlphabetName,
			Family:       script.FamilyOf(c).Name,
			Direction:    c.Direction,
			FullCourse:   c.FullCourse,
			DisplayOrder: c.DisplayOrder,
			Case:         c.Script.Case,
			HasAccents:   c.Script.HasAccents,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].DisplayOrder != infos[j].DisplayOrder {
			return infos[i].DisplayOrder < infos[j].DisplayOrder
		}
		return infos[i].Code < infos[j].Code
	})
	return infos
}

// Count returns the number of loaded languages.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.langs)
}
