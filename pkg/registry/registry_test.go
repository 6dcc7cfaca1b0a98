package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hazyhaar/scriptorium/pkg/script"
)

func loadRegistry(t *testing.T, dir string) *Registry {
	t.Helper()
	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return reg
}

func TestRegistryBuiltin(t *testing.T) {
	reg := loadRegistry(t, "")

	if reg.Count() != 47 {
		t.Errorf("Count = %d, want 47", reg.Count())
	}

	lat, ok := reg.Get("lat")
	if !ok {
		t.Fatal("lat not loaded")
	}
	if lat.Script.Case != script.CaseUpper {
		t.Errorf("lat case = %q, want upper", lat.Script.Case)
	}
	if lat.Substitution != script.SubstituteTable {
		t.Errorf("lat substitution = %v, want table", lat.Substitution)
	}
	if len(lat.Script.NormalizeChars) != 10 || lat.Script.NormalizeChars[0].From != "J" {
		t.Errorf("lat normalize_chars = %v", lat.Script.NormalizeChars)
	}

	grc := reg.Lookup("grc")
	if grc.Script.HasAccents || grc.Script.ScriptioContinuaDefault || grc.Script.WordSeparator != "" {
		t.Errorf("grc rules = %+v", grc.Script)
	}

	sga := reg.Lookup("sga")
	if sga.Script.WordSeparator != script.OghamSpaceMark {
		t.Errorf("sga separator = %q, want ogham space mark", sga.Script.WordSeparator)
	}
	if bod := reg.Lookup("bod"); bod.Script.WordSeparator != script.TibetanTsheg {
		t.Errorf("bod separator = %q", bod.Script.WordSeparator)
	}
	if ett := reg.Lookup("ett"); ett.FullCourse {
		t.Error("ett should be a partial course")
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	reg := loadRegistry(t, "")

	cfg := reg.Lookup("xyz")
	if cfg == nil {
		t.Fatal("Lookup returned nil")
	}
	if cfg.NativeName != "XYZ" {
		t.Errorf("NativeName = %q, want XYZ", cfg.NativeName)
	}
	if cfg.Script.Case != script.CaseMixed || !cfg.Script.HasAccents {
		t.Errorf("default rules = %+v", cfg.Script)
	}
	if _, ok := reg.Get("xyz"); ok {
		t.Error("Get(xyz) should report unknown")
	}
}

func TestRegistryList(t *testing.T) {
	reg := loadRegistry(t, "")

	infos := reg.List()
	if len(infos) != reg.Count() {
		t.Fatalf("List = %d entries, want %d", len(infos), reg.Count())
	}
	if infos[0].Code != "lat" {
		t.Errorf("first = %q, want lat", infos[0].Code)
	}
	for i := 1; i < len(infos); i++ {
		a, b := infos[i-1], infos[i]
		if a.DisplayOrder > b.DisplayOrder || (a.DisplayOrder == b.DisplayOrder && a.Code > b.Code) {
			t.Errorf("unsorted at %d: %s(%d) before %s(%d)", i, a.Code, a.DisplayOrder, b.Code, b.DisplayOrder)
		}
	}

	families := map[string]string{}
	for _, info := range infos {
		families[info.Code] = info.Family
	}
	if families["grc-koi"] != script.FamilyGreekKoine {
		t.Errorf("grc-koi family = %q", families["grc-koi"])
	}
	if families["hbo"] != script.FamilyHebrew {
		t.Errorf("hbo family = %q", families["hbo"])
	}
}

func TestRegistryOverride(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "10-local.yaml"), []byte(`languages:
  - code: lat
    name: Latin (lower)
    native_name: lingva latina
    display_order: 1
    script:
      case: lower
      has_accents: false
      char_v_for_u: true
  - code: xpr
    name: Parthian
    native_name: Parthian
    family: hebrew
    script:
      case: mixed
`), 0o644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644)

	reg := loadRegistry(t, dir)

	if reg.Count() != 48 {
		t.Errorf("Count = %d, want 48", reg.Count())
	}
	lat := reg.Lookup("lat")
	if lat.Script.Case != script.CaseLower {
		t.Errorf("lat case = %q, want lower", lat.Script.Case)
	}
	if lat.Substitution != script.SubstituteLegacyVForU {
		t.Errorf("lat substitution = %v, want legacy", lat.Substitution)
	}
	xpr := reg.Lookup("xpr")
	if xpr.FullCourse != true || xpr.DisplayOrder != 9999 {
		t.Errorf("xpr defaults: full=%v order=%d", xpr.FullCourse, xpr.DisplayOrder)
	}
	if !xpr.Script.HasAccents {
		t.Error("xpr should keep accents by default")
	}
	if script.FamilyOf(xpr).Name != script.FamilyHebrew {
		t.Errorf("xpr family = %q", script.FamilyOf(xpr).Name)
	}
}

func TestRegistryReload(t *testing.T) {
	dir := t.TempDir()
	reg := loadRegistry(t, dir)
	if _, ok := reg.Get("xpr"); ok {
		t.Fatal("xpr loaded before file exists")
	}

	os.WriteFile(filepath.Join(dir, "xpr.yml"), []byte("languages:\n  - code: xpr\n    name: Parthian\n"), 0o644)
	if err := reg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if _, ok := reg.Get("xpr"); !ok {
		t.Error("xpr missing after reload")
	}
}

func TestRegistryMissingDir(t *testing.T) {
	reg := loadRegistry(t, filepath.Join(t.TempDir(), "absent"))
	if reg.Count() != 47 {
		t.Errorf("Count = %d, want 47", reg.Count())
	}
}

func TestRegistryInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing code", "languages:\n  - name: x\n", "missing code"},
		{"bad case", "languages:\n  - code: x\n    script:\n      case: title\n", "invalid case"},
		{"bad family", "languages:\n  - code: x\n    family: runic\n", "unknown family"},
		{"empty from", "languages:\n  - code: x\n    script:\n      normalize_chars:\n        - {from: \"\", to: a}\n", "empty from"},
		{"syntax", "languages: [", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(tt.yaml), 0o644)

			reg := NewRegistry(dir)
			err := reg.Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
			if reg.Count() != 0 {
				t.Errorf("failed load swapped in %d languages", reg.Count())
			}
		})
	}
}

func TestRegistryRender(t *testing.T) {
	reg := loadRegistry(t, "")
	r := script.NewRenderer(reg)

	got := r.Render("Arma virumque cano", "lat", script.RenderOptions{AuthenticMode: true})
	if got != "ARMAVIRVMQVECANO" {
		t.Errorf("lat authentic = %q", got)
	}
	got = r.Render("χαῖρε, ὦ φίλε", "grc", script.RenderOptions{
		AuthenticMode: true,
		Flags:         script.ScriptPreferences{RemoveModernPunctuation: true},
	})
	if got != "ΧΑΙΡΕ Ω ΦΙΛΕ" {
		t.Errorf("grc authentic = %q", got)
	}
	got = r.Render("ཀ ཁ", "bod", script.RenderOptions{AuthenticMode: true})
	if got != "ཀ་ཁ" {
		t.Errorf("bod authentic = %q", got)
	}
	if a := r.Alphabet("sga"); len(a) != 23 {
		t.Errorf("sga alphabet = %d letters", len(a))
	}
}
