package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type tlsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

type config struct {
	Addr         string    `yaml:"addr"`
	LanguagesDir string    `yaml:"languages_dir"`
	PrefsDB      string    `yaml:"prefs_db"` // empty disables stored preferences
	LogLevel     string    `yaml:"log_level"`
	TLS          tlsConfig `yaml:"tls"`
	HTTP3        bool      `yaml:"http3"`
	MCPQUIC      bool      `yaml:"mcp_quic"` // MCP over raw QUIC streams, TLS only
}

func defaultConfig() config {
	return config{
		Addr:         ":8430",
		LanguagesDir: "languages",
		PrefsDB:      "scriptorium.db",
		LogLevel:     "info",
		HTTP3:        true,
		MCPQUIC:      true,
	}
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("log_level %q: %w", s, err)
	}
	return lvl, nil
}

func newLogger(cfg config) *slog.Logger {
	lvl, _ := parseLevel(cfg.LogLevel)
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
