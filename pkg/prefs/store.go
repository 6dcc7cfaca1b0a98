// CLAUDE:SUMMARY SQLite store of per-user script preferences: authentic-mode toggle plus one display mode per language, with partial updates and reset.
package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/scriptorium/pkg/script"
)

// ErrInvalidUser is returned for empty or malformed user IDs.
var ErrInvalidUser = errors.New("invalid user id")

const maxUserIDLen = 128

// UserPreferences are the stored script preferences of one user.
type UserPreferences struct {
	AuthenticMode bool                                `json:"authentic_mode"`
	Modes         map[string]script.ScriptPreferences `json:"modes"`
	UpdatedAt     int64                               `json:"updated_at,omitempty"`
}

// Defaults returns the preferences of a user who never saved any.
func Defaults() *UserPreferences {
	return &UserPreferences{Modes: map[string]script.ScriptPreferences{}}
}

// ModeFor returns the display mode stored for a language, or the default
// mode when none is stored.
func (p *UserPreferences) ModeFor(code string) script.ScriptPreferences {
	if m, ok := p.Modes[code]; ok {
		return m
	}
	return script.DefaultPreferences()
}

// RenderOptions returns the render options these preferences select for
// a language.
func (p *UserPreferences) RenderOptions(code string) script.RenderOptions {
	mode := p.ModeFor(code)
	return script.RenderOptions{AuthenticMode: p.AuthenticMode, Preferences: &mode}
}

// Update is a partial update. Nil fields are left untouched; each language
// present in Modes has its whole mode replaced.
type Update struct {
	AuthenticMode *bool                               `json:"authentic_mode,omitempty"`
	Modes         map[string]script.ScriptPreferences `json:"modes,omitempty"`
}

// Store manages the script_preferences SQLite table.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the
// script_preferences table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}
	// read-modify-write updates run on a single connection
	db.SetMaxOpenConns(1)

	const ddl = `CREATE TABLE IF NOT EXISTS script_preferences (
		user_id        TEXT PRIMARY KEY,
		authentic_mode INTEGER NOT NULL DEFAULT 0,
		modes          TEXT NOT NULL DEFAULT '{}',
		updated_at     INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create script_preferences table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ValidUserID reports whether id can be used as a user key.
func ValidUserID(id string) bool {
	if id == "" || len(id) > maxUserIDLen || strings.TrimSpace(id) != id {
		return false
	}
	return strings.IndexFunc(id, unicode.IsControl) < 0
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Get returns the preferences of userID, or the defaults when none are stored.
func (s *Store) Get(ctx context.Context, userID string) (*UserPreferences, error) {
	if !ValidUserID(userID) {
		return nil, ErrInvalidUser
	}
	return get(ctx, s.db, userID)
}

func get(ctx context.Context, q querier, userID string) (*UserPreferences, error) {
	var (
		authentic bool
		modes     string
		updated   int64
	)
	err := q.QueryRowContext(ctx,
		`SELECT authentic_mode, modes, updated_at FROM script_preferences WHERE user_id = ?`, userID,
	).Scan(&authentic, &modes, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences for %s: %w", userID, err)
	}

	p := Defaults()
	p.AuthenticMode = authentic
	p.UpdatedAt = updated
	if err := json.Unmarshal([]byte(modes), &p.Modes); err != nil {
		return nil, fmt.Errorf("decode modes for %s: %w", userID, err)
	}
	if p.Modes == nil {
		p.Modes = map[string]script.ScriptPreferences{}
	}
	return p, nil
}

// Update applies u to the stored preferences of userID and returns the
// complete result.
func (s *Store) Update(ctx context.Context, userID string, u Update) (*UserPreferences, error) {
	if !ValidUserID(userID) {
		return nil, ErrInvalidUser
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update for %s: %w", userID, err)
	}
	defer tx.Rollback()

	p, err := get(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if u.AuthenticMode != nil {
		p.AuthenticMode = *u.AuthenticMode
	}
	for code, mode := range u.Modes {
		p.Modes[code] = mode
	}
	p.UpdatedAt = time.Now().Unix()

	modes, err := json.Marshal(p.Modes)
	if err != nil {
		return nil, fmt.Errorf("encode modes for %s: %w", userID, err)
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO script_preferences (user_id, authentic_mode, modes, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			authentic_mode = excluded.authentic_mode,
			modes = excluded.modes,
			updated_at = excluded.updated_at`,
		userID, p.AuthenticMode, string(modes), p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("save preferences for %s: %w", userID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit preferences for %s: %w", userID, err)
	}
	return p, nil
}

// Reset deletes the stored preferences of userID and returns the defaults.
func (s *Store) Reset(ctx context.Context, userID string) (*UserPreferences, error) {
	if !ValidUserID(userID) {
		return nil, ErrInvalidUser
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM script_preferences WHERE user_id = ?`, userID); err != nil {
		return nil, fmt.Errorf("reset preferences for %s: %w", userID, err)
	}
	return Defaults(), nil
}

// Count returns the number of users with stored preferences.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM script_preferences`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count preferences: %w", err)
	}
	return n, nil
}
