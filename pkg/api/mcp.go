package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/scriptorium/pkg/kit"
	"github.com/hazyhaar/scriptorium/pkg/prefs"
	"github.com/hazyhaar/scriptorium/pkg/registry"
	"github.com/hazyhaar/scriptorium/pkg/script"
)

// RegisterMCPTools registers the scriptorium MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, reg *registry.Registry, store *prefs.Store, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	svc := newService(reg, store)
	wrap := func(name string, ep kit.Endpoint) kit.Endpoint {
		return kit.Chain(kit.RequestID(), kit.Logging(logger, name))(ep)
	}

	kit.RegisterMCPTool(srv, renderTool(), wrap("render", svc.renderEndpoint()), decodeRender)
	kit.RegisterMCPTool(srv, batchTool(), wrap("render_batch", svc.batchEndpoint()), decodeBatch)
	kit.RegisterMCPTool(srv, alphabetTool(), wrap("alphabet", svc.alphabetEndpoint()), decodeAlphabet)
	kit.RegisterMCPTool(srv, validateTool(), wrap("validate", svc.validateEndpoint()), decodeValidate)
	kit.RegisterMCPTool(srv, listLanguagesTool(), wrap("list_languages", svc.listLanguagesEndpoint()),
		func(mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
			return &kit.MCPDecodeResult{Request: nil}, nil
		})
}

// preference flag arguments shared by the render tools
var flagArgs = []struct {
	name, desc string
}{
	{"scriptio_continua", "Remove all word spaces"},
	{"interpuncts", "Replace word spaces with interpuncts (·)"},
	{"iota_adscript", "Write Greek iota subscripts as adscripts (default true)"},
	{"nomina_sacra", "Abbreviate sacred names (Koine Greek only)"},
	{"remove_punctuation", "Remove modern punctuation"},
}

func renderOptions() []mcp.ToolOption {
	opts := []mcp.ToolOption{
		mcp.WithString("language", mcp.Required(), mcp.Description("Language code (e.g. grc, lat, grc-koi, hbo)")),
		mcp.WithBoolean("authentic_mode", mcp.Description("Apply the language's authentic script rules (case, accents, substitutions)")),
		mcp.WithString("user_id", mcp.Description("Use this user's stored preferences when no flag is given")),
	}
	for _, f := range flagArgs {
		opts = append(opts, mcp.WithBoolean(f.name, mcp.Description(f.desc)))
	}
	return opts
}

func renderTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Render text in the authentic script conventions of a historical language."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to render")),
	}, renderOptions()...)
	return mcp.NewTool("render_text", opts...)
}

func batchTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Render up to 100 texts in the same language with the same options."),
		mcp.WithArray("texts", mcp.Required(), mcp.Description("Texts to render"),
			mcp.Items(map[string]any{"type": "string"})),
	}, renderOptions()...)
	return mcp.NewTool("render_batch", opts...)
}

func alphabetTool() mcp.Tool {
	return mcp.NewTool("get_alphabet",
		mcp.WithDescription("Return the ordered letter inventory of a language's authentic script."),
		mcp.WithString("language", mcp.Required(), mcp.Description("Language code")),
	)
}

func validateTool() mcp.Tool {
	return mcp.NewTool("validate_text",
		mcp.WithDescription("Heuristically check whether text follows a language's authentic script rules (letter case, V for U)."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to check")),
		mcp.WithString("language", mcp.Required(), mcp.Description("Language code")),
	)
}

func listLanguagesTool() mcp.Tool {
	return mcp.NewTool("list_languages",
		mcp.WithDescription("List all configured languages with their script family, case and accent policy."),
	)
}

// decodeFlags reads the preference flags. It returns nil when no flag is
// present so that stored preferences can apply.
func decodeFlags(args map[string]any) *script.ScriptPreferences {
	p := script.DefaultPreferences()
	found := false
	set := func(name string, dst *bool) {
		if v, ok := args[name].(bool); ok {
			*dst = v
			found = true
		}
	}
	set("scriptio_continua", &p.UseScriptioContinua)
	set("interpuncts", &p.UseInterpuncts)
	set("iota_adscript", &p.UseIotaAdscript)
	set("nomina_sacra", &p.UseNominaSacra)
	set("remove_punctuation", &p.RemoveModernPunctuation)
	if !found {
		return nil
	}
	return &p
}

func decodeAuthentic(args map[string]any) *bool {
	if v, ok := args["authentic_mode"].(bool); ok {
		return &v
	}
	return nil
}

func enrich(lang, user string) func(context.Context) context.Context {
	return func(ctx context.Context) context.Context {
		ctx = kit.WithLanguage(ctx, lang)
		if user != "" {
			ctx = kit.WithUserID(ctx, user)
		}
		return ctx
	}
}

func decodeRender(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	args := req.GetArguments()
	text, _ := args["text"].(string)
	lang, _ := args["language"].(string)
	user, _ := args["user_id"].(string)
	if lang == "" {
		return nil, fmt.Errorf("language is required")
	}
	return &kit.MCPDecodeResult{
		Request: &renderReq{
			Text:          text,
			Language:      lang,
			AuthenticMode: decodeAuthentic(args),
			Flags:         decodeFlags(args),
			UserID:        user,
		},
		EnrichCtx: enrich(lang, user),
	}, nil
}

func decodeBatch(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	args := req.GetArguments()
	lang, _ := args["language"].(string)
	user, _ := args["user_id"].(string)
	if lang == "" {
		return nil, fmt.Errorf("language is required")
	}
	raw, ok := args["texts"].([]any)
	if !ok {
		return nil, fmt.Errorf("texts must be an array of strings")
	}
	texts := make([]string, 0, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("texts[%d] is not a string", i)
		}
		texts = append(texts, s)
	}
	return &kit.MCPDecodeResult{
		Request: &batchReq{
			Texts:         texts,
			Language:      lang,
			AuthenticMode: decodeAuthentic(args),
			Flags:         decodeFlags(args),
			UserID:        user,
		},
		EnrichCtx: enrich(lang, user),
	}, nil
}

func decodeAlphabet(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	lang, _ := req.GetArguments()["language"].(string)
	return &kit.MCPDecodeResult{Request: &alphabetReq{Language: lang}, EnrichCtx: enrich(lang, "")}, nil
}

func decodeValidate(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	args := req.GetArguments()
	text, _ := args["text"].(string)
	lang, _ := args["language"].(string)
	return &kit.MCPDecodeResult{Request: &validateReq{Text: text, Language: lang}, EnrichCtx: enrich(lang, "")}, nil
}
