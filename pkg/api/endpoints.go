package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/hazyhaar/scriptorium/pkg/kit"
	"github.com/hazyhaar/scriptorium/pkg/prefs"
	"github.com/hazyhaar/scriptorium/pkg/registry"
	"github.com/hazyhaar/scriptorium/pkg/script"
)

// Shared request/response types used by both HTTP and MCP transports.

const maxBatch = 100

var (
	errBadRequest = errors.New("bad request")
	errNotFound   = errors.New("not found")
)

type renderReq struct {
	Text          string                    `json:"text"`
	Language      string                    `json:"language"`
	AuthenticMode *bool                     `json:"authentic_mode,omitempty"`
	Preferences   *script.ScriptPreferences `json:"preferences,omitempty"`
	Flags         *script.ScriptPreferences `json:"flags,omitempty"`
	UserID        string                    `json:"user_id,omitempty"`
}

type renderResponse struct {
	Text     string `json:"text"`
	Rendered string `json:"rendered"`
	Language string `json:"language"`
}

type batchReq struct {
	Texts         []string                  `json:"texts"`
	Language      string                    `json:"language"`
	AuthenticMode *bool                     `json:"authentic_mode,omitempty"`
	Preferences   *script.ScriptPreferences `json:"preferences,omitempty"`
	Flags         *script.ScriptPreferences `json:"flags,omitempty"`
	UserID        string                    `json:"user_id,omitempty"`
}

type batchResponse struct {
	Language string           `json:"language"`
	Results  []renderResponse `json:"results"`
}

type alphabetReq struct {
	Language string
}

type alphabetResponse struct {
	Language string   `json:"language"`
	Letters  []string `json:"letters"`
	Curated  bool     `json:"curated"`
}

type validateReq struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type validateResponse struct {
	Language  string `json:"language"`
	Authentic bool   `json:"authentic"`
}

type languagesResponse struct {
	Count     int             `json:"count"`
	Languages []registry.Info `json:"languages"`
}

type languageReq struct {
	Language string
}

type languageResponse struct {
	Config     *script.LanguageConfig `json:"config"`
	Family     string                 `json:"family"`
	Guidelines string                 `json:"guidelines"`
}

type prefsReq struct {
	UserID string
	Update *prefs.Update
}

// service holds the collaborators the endpoints are built on.
type service struct {
	reg      *registry.Registry
	renderer *script.Renderer
	store    *prefs.Store // nil disables stored preferences
}

func newService(reg *registry.Registry, store *prefs.Store) *service {
	return &service{reg: reg, renderer: script.NewRenderer(reg), store: store}
}

// options resolves the render options of a request. Stored preferences
// apply only when the request names a user and carries neither
// preferences nor flags; an explicit authentic_mode always wins.
func (s *service) options(ctx context.Context, lang, user string, authentic *bool, p, flags *script.ScriptPreferences) (script.RenderOptions, error) {
	opts := script.DefaultRenderOptions()
	if user != "" && p == nil && flags == nil {
		if s.store == nil {
			return opts, fmt.Errorf("%w: stored preferences are not enabled", errBadRequest)
		}
		up, err := s.store.Get(ctx, user)
		if err != nil {
			return opts, err
		}
		opts = up.RenderOptions(lang)
	}
	if flags != nil {
		opts.Flags = *flags
	}
	if p != nil {
		opts.Preferences = p
	}
	if authentic != nil {
		opts.AuthenticMode = *authentic
	}
	return opts, nil
}

func (s *service) renderEndpoint() kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*renderReq)
		if req.Language == "" {
			return nil, fmt.Errorf("%w: missing language", errBadRequest)
		}
		opts, err := s.options(ctx, req.Language, req.UserID, req.AuthenticMode, req.Preferences, req.Flags)
		if err != nil {
			return nil, err
		}
		return &renderResponse{
			Text:     req.Text,
			Rendered: s.renderer.Render(req.Text, req.Language, opts),
			Language: req.Language,
		}, nil
	}
}

func (s *service) batchEndpoint() kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*batchReq)
		if req.Language == "" {
			return nil, fmt.Errorf("%w: missing language", errBadRequest)
		}
		if len(req.Texts) == 0 {
			return nil, fmt.Errorf("%w: texts array is empty", errBadRequest)
		}
		if len(req.Texts) > maxBatch {
			return nil, fmt.Errorf("%w: too many texts (max %d, got %d)", errBadRequest, maxBatch, len(req.Texts))
		}
		opts, err := s.options(ctx, req.Language, req.UserID, req.AuthenticMode, req.Preferences, req.Flags)
		if err != nil {
			return nil, err
		}
		results := make([]renderResponse, len(req.Texts))
		for i, text := range req.Texts {
			results[i] = renderResponse{
				Text:     text,
				Rendered: s.renderer.Render(text, req.Language, opts),
				Language: req.Language,
			}
		}
		return &batchResponse{Language: req.Language, Results: results}, nil
	}
}

func (s *service) alphabetEndpoint() kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*alphabetReq)
		if req.Language == "" {
			return nil, fmt.Errorf("%w: missing language", errBadRequest)
		}
		return &alphabetResponse{
			Language: req.Language,
			Letters:  s.renderer.Alphabet(req.Language),
			Curated:  script.HasCuratedAlphabet(req.Language),
		}, nil
	}
}

func (s *service) validateEndpoint() kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*validateReq)
		if req.Language == "" {
			return nil, fmt.Errorf("%w: missing language", errBadRequest)
		}
		return &validateResponse{
			Language:  req.Language,
			Authentic: s.renderer.Validate(req.Text, req.Language),
		}, nil
	}
}

func (s *service) listLanguagesEndpoint() kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		langs := s.reg.List()
		return &languagesResponse{Count: len(langs), Languages: langs}, nil
	}
}

func (s *service) languageEndpoint() kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*languageReq)
		cfg, ok := s.reg.Get(req.Language)
		if !ok {
			return nil, fmt.Errorf("%w: unknown language %q", errNotFound, req.Language)
		}
		return &languageResponse{
			Config:     cfg,
			Family:     script.FamilyOf(cfg).Name,
			Guidelines: script.ScriptGuidelines(cfg),
		}, nil
	}
}

func (s *service) getPrefsEndpoint() kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*prefsReq)
		if s.store == nil {
			return nil, fmt.Errorf("%w: stored preferences are not enabled", errNotFound)
		}
		return s.store.Get(ctx, req.UserID)
	}
}

func (s *service) updatePrefsEndpoint() kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*prefsReq)
		if s.store == nil {
			return nil, fmt.Errorf("%w: stored preferences are not enabled", errNotFound)
		}
		if req.Update == nil {
			return nil, fmt.Errorf("%w: missing update", errBadRequest)
		}
		return s.store.Update(ctx, req.UserID, *req.Update)
	}
}

func (s *service) resetPrefsEndpoint() kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*prefsReq)
		if s.store == nil {
			return nil, fmt.Errorf("%w: stored preferences are not enabled", errNotFound)
		}
		return s.store.Reset(ctx, req.UserID)
	}
}
