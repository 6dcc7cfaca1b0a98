// CLAUDE:SUMMARY HTTP routes for rendering, alphabets, validation, languages and per-user preferences, dispatching to the shared kit.Endpoints.
package api

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/hazyhaar/scriptorium/pkg/kit"
	"github.com/hazyhaar/scriptorium/pkg/prefs"
	"github.com/hazyhaar/scriptorium/pkg/registry"
)

const maxBody = 256 * 1024

// Config wires the router to its collaborators.
type Config struct {
	Registry *registry.Registry
	Prefs    *prefs.Store // optional
	Logger   *slog.Logger
	// MCP is mounted at /mcp when set.
	MCP http.Handler
}

// NewRouter returns an http.Handler with all scriptorium API routes.
func NewRouter(cfg Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	svc := newService(cfg.Registry, cfg.Prefs)
	wrap := func(name string, ep kit.Endpoint) kit.Endpoint {
		return kit.Chain(kit.RequestID(), kit.Logging(cfg.Logger, name))(ep)
	}
	h := &handler{
		render:      wrap("render", svc.renderEndpoint()),
		batch:       wrap("render_batch", svc.batchEndpoint()),
		alphabet:    wrap("alphabet", svc.alphabetEndpoint()),
		validate:    wrap("validate", svc.validateEndpoint()),
		languages:   wrap("list_languages", svc.listLanguagesEndpoint()),
		language:    wrap("get_language", svc.languageEndpoint()),
		getPrefs:    wrap("get_preferences", svc.getPrefsEndpoint()),
		updatePrefs: wrap("update_preferences", svc.updatePrefsEndpoint()),
		resetPrefs:  wrap("reset_preferences", svc.resetPrefsEndpoint()),
		reg:         cfg.Registry,
		store:       cfg.Prefs,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/render", h.handleRender)
	mux.HandleFunc("GET /v1/render/batch", methodNotAllowed) // prevent GET on batch
	mux.HandleFunc("POST /v1/render/batch", h.handleBatch)
	mux.HandleFunc("GET /v1/alphabet/{code}", h.handleAlphabet)
	mux.HandleFunc("POST /v1/validate", h.handleValidate)
	mux.HandleFunc("GET /v1/languages", h.handleLanguages)
	mux.HandleFunc("GET /v1/languages/{code}", h.handleLanguage)
	mux.HandleFunc("GET /v1/users/{user}/script-preferences", h.handleGetPrefs)
	mux.HandleFunc("PUT /v1/users/{user}/script-preferences", h.handleUpdatePrefs)
	mux.HandleFunc("POST /v1/users/{user}/script-preferences/reset", h.handleResetPrefs)
	mux.HandleFunc("GET /v1/health", h.handleHealth)
	if cfg.MCP != nil {
		mux.Handle("/mcp", cfg.MCP)
	}

	return cors(mux)
}

type handler struct {
	render      kit.Endpoint
	batch       kit.Endpoint
	alphabet    kit.Endpoint
	validate    kit.Endpoint
	languages   kit.Endpoint
	language    kit.Endpoint
	getPrefs    kit.Endpoint
	updatePrefs kit.Endpoint
	resetPrefs  kit.Endpoint
	reg         *registry.Registry
	store       *prefs.Store
}

// requestContext carries the caller's request ID (or a fresh one) and
// echoes it back in the response.
func requestContext(w http.ResponseWriter, r *http.Request) context.Context {
	id := r.Header.Get("X-Request-ID")
	if id == "" {
		id = kit.NewRequestID()
	}
	w.Header().Set("X-Request-ID", id)
	return kit.WithTransport(kit.WithRequestID(r.Context(), id), "http")
}

// --- render ---

func (h *handler) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderReq
	if !decodeBody(w, r, &req) {
		return
	}
	ctx := kit.WithLanguage(requestContext(w, r), req.Language)
	if req.UserID != "" {
		ctx = kit.WithUserID(ctx, req.UserID)
	}
	resp, err := h.render(ctx, &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	rendered := resp.(*renderResponse).Rendered
	w.Header().Set("ETag", etag([]byte(rendered)))
	writeJSON(w, http.StatusOK, resp)
}

// --- render batch ---

func (h *handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchReq
	if !decodeBody(w, r, &req) {
		return
	}
	ctx := kit.WithLanguage(requestContext(w, r), req.Language)
	if req.UserID != "" {
		ctx = kit.WithUserID(ctx, req.UserID)
	}
	resp, err := h.batch(ctx, &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- alphabet ---

func (h *handler) handleAlphabet(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	ctx := kit.WithLanguage(requestContext(w, r), code)
	resp, err := h.alphabet(ctx, &alphabetReq{Language: code})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeCacheable(w, r, resp)
}

// --- validate ---

func (h *handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if !decodeBody(w, r, &req) {
		return
	}
	ctx := kit.WithLanguage(requestContext(w, r), req.Language)
	resp, err := h.validate(ctx, &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- languages ---

func (h *handler) handleLanguages(w http.ResponseWriter, r *http.Request) {
	resp, err := h.languages(requestContext(w, r), nil)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeCacheable(w, r, resp)
}

func (h *handler) handleLanguage(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	ctx := kit.WithLanguage(requestContext(w, r), code)
	resp, err := h.language(ctx, &languageReq{Language: code})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeCacheable(w, r, resp)
}

// --- preferences ---

func (h *handler) handleGetPrefs(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user")
	ctx := kit.WithUserID(requestContext(w, r), user)
	resp, err := h.getPrefs(ctx, &prefsReq{UserID: user})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleUpdatePrefs(w http.ResponseWriter, r *http.Request) {
	var u prefs.Update
	if !decodeBody(w, r, &u) {
		return
	}
	user := r.PathValue("user")
	ctx := kit.WithUserID(requestContext(w, r), user)
	resp, err := h.updatePrefs(ctx, &prefsReq{UserID: user, Update: &u})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleResetPrefs(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user")
	ctx := kit.WithUserID(requestContext(w, r), user)
	resp, err := h.resetPrefs(ctx, &prefsReq{UserID: user})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status      string `json:"status"`
	Languages   int    `json:"languages"`
	Preferences bool   `json:"preferences"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Languages:   h.reg.Count(),
		Preferences: h.store != nil,
	})
}

// --- helpers ---

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// etag is a strong validator derived from the BLAKE3 digest of data.
func etag(data []byte) string {
	sum := blake3.Sum256(data)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func etagMatch(header, tag string) bool {
	for _, t := range strings.Split(header, ",") {
		t = strings.TrimSpace(t)
		if t == "*" || strings.TrimPrefix(t, "W/") == tag {
			return true
		}
	}
	return false
}

// writeCacheable writes v with an ETag and answers 304 when the client
// already holds the same representation.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	tag := etag(data)
	w.Header().Set("ETag", tag)
	if inm := r.Header.Get("If-None-Match"); inm != "" && etagMatch(inm, tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(append(data, '\n'))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeErr maps endpoint errors to HTTP status codes.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, prefs.ErrInvalidUser):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, If-None-Match, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "ETag, X-Request-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
