package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/hazyhaar/scriptorium/pkg/registry"
	"github.com/hazyhaar/scriptorium/pkg/script"
)

func loadRegistry(g *Globals) (*registry.Registry, error) {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return nil, err
	}
	reg := registry.NewRegistry(cfg.LanguagesDir)
	if err := reg.Load(); err != nil {
		return nil, fmt.Errorf("load languages: %w", err)
	}
	return reg, nil
}

// textArg joins the positional words, or reads stdin when there are none.
func textArg(words []string, stdin io.Reader) (string, error) {
	if len(words) > 0 {
		return strings.Join(words, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

type renderCmd struct {
	Language string   `arg:"" help:"Language code (e.g. lat, grc-koi)."`
	Text     []string `arg:"" optional:"" help:"Text to render; read from stdin when omitted."`

	Authentic         bool `short:"a" help:"Apply the language's authentic script rules."`
	ScriptioContinua  bool `help:"Remove all word spaces."`
	Interpuncts       bool `help:"Separate words with a middle dot."`
	NoIotaAdscript    bool `help:"Keep iota subscripts as written."`
	NominaSacra       bool `help:"Abbreviate sacred names (Koine Greek)."`
	RemovePunctuation bool `help:"Drop modern punctuation."`
}

func (c *renderCmd) options() script.RenderOptions {
	return script.RenderOptions{
		AuthenticMode: c.Authentic,
		Flags: script.ScriptPreferences{
			UseScriptioContinua:     c.ScriptioContinua,
			UseInterpuncts:          c.Interpuncts,
			UseIotaAdscript:         !c.NoIotaAdscript,
			UseNominaSacra:          c.NominaSacra,
			RemoveModernPunctuation: c.RemovePunctuation,
		},
	}
}

func (c *renderCmd) Run(g *Globals, out io.Writer) error {
	reg, err := loadRegistry(g)
	if err != nil {
		return err
	}
	return c.run(reg, os.Stdin, out)
}

func (c *renderCmd) run(p script.Provider, stdin io.Reader, out io.Writer) error {
	text, err := textArg(c.Text, stdin)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, script.NewRenderer(p).Render(text, c.Language, c.options()))
	return err
}

type alphabetCmd struct {
	Language string `arg:"" help:"Language code."`
	Plain    bool   `help:"Print letters on one line instead of a table."`
}

func (c *alphabetCmd) Run(g *Globals, out io.Writer) error {
	reg, err := loadRegistry(g)
	if err != nil {
		return err
	}
	return c.run(reg, out)
}

func (c *alphabetCmd) run(p script.Provider, out io.Writer) error {
	letters := script.AlphabetFor(c.Language, p)
	if c.Plain {
		_, err := fmt.Fprintln(out, strings.Join(letters, " "))
		return err
	}
	if !script.HasCuratedAlphabet(c.Language) {
		pterm.Warning.Println("no curated alphabet for " + c.Language + ", using fallback")
	}
	data := pterm.TableData{{"#", "Letter", "Code point"}}
	for i, l := range letters {
		r := []rune(l)[0]
		data = append(data, []string{strconv.Itoa(i + 1), l, fmt.Sprintf("U+%04X", r)})
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

type validateCmd struct {
	Language string   `arg:"" help:"Language code."`
	Text     []string `arg:"" optional:"" help:"Text to check; read from stdin when omitted."`
}

func (c *validateCmd) Run(g *Globals, out io.Writer) error {
	reg, err := loadRegistry(g)
	if err != nil {
		return err
	}
	ok, err := c.run(reg, os.Stdin)
	if err != nil {
		return err
	}
	if !ok {
		pterm.Error.Println("text does not follow the " + c.Language + " script rules")
		return fmt.Errorf("not authentic")
	}
	pterm.Success.Println("text follows the " + c.Language + " script rules")
	return nil
}

func (c *validateCmd) run(p script.Provider, stdin io.Reader) (bool, error) {
	text, err := textArg(c.Text, stdin)
	if err != nil {
		return false, err
	}
	return script.NewRenderer(p).Validate(text, c.Language), nil
}

type languagesCmd struct {
	Guidelines string `help:"Print the writing guidelines for one language instead of the list." placeholder:"CODE"`
}

func (c *languagesCmd) Run(g *Globals, out io.Writer) error {
	reg, err := loadRegistry(g)
	if err != nil {
		return err
	}
	return c.run(reg, out)
}

func (c *languagesCmd) run(reg *registry.Registry, out io.Writer) error {
	if c.Guidelines != "" {
		cfg, ok := reg.Get(c.Guidelines)
		if !ok {
			return fmt.Errorf("unknown language %q", c.Guidelines)
		}
		_, err := fmt.Fprintln(out, script.ScriptGuidelines(cfg))
		return err
	}

	data := pterm.TableData{{"Code", "Name", "Native", "Family", "Case", "Accents"}}
	for _, l := range reg.List() {
		data = append(data, []string{l.Code, l.Name, l.NativeName, l.Family, string(l.Case), strconv.FormatBool(l.HasAccents)})
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}
