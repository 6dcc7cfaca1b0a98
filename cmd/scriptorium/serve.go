package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/scriptorium/pkg/api"
	"github.com/hazyhaar/scriptorium/pkg/chassis"
	"github.com/hazyhaar/scriptorium/pkg/prefs"
	"github.com/hazyhaar/scriptorium/pkg/registry"
)

type serveCmd struct {
	Addr string `help:"Listen address, overrides the config file."`
}

func (c *serveCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}
	logger := newLogger(cfg)

	reg := registry.NewRegistry(cfg.LanguagesDir)
	if err := reg.Load(); err != nil {
		return fmt.Errorf("load languages: %w", err)
	}
	logger.Info("languages loaded", "count", reg.Count(), "dir", cfg.LanguagesDir)

	var store *prefs.Store
	if cfg.PrefsDB != "" {
		store, err = prefs.Open(cfg.PrefsDB)
		if err != nil {
			return err
		}
		defer store.Close()
		logger.Info("preferences store opened", "path", cfg.PrefsDB)
	}

	mcpSrv := server.NewMCPServer("scriptorium", version, server.WithToolCapabilities(false))
	api.RegisterMCPTools(mcpSrv, reg, store, logger)

	router := api.NewRouter(api.Config{
		Registry: reg,
		Prefs:    store,
		Logger:   logger,
		MCP:      server.NewStreamableHTTPServer(mcpSrv),
	})

	chCfg := chassis.Config{
		Addr:     cfg.Addr,
		CertFile: cfg.TLS.CertFile,
		KeyFile:  cfg.TLS.KeyFile,
		Plain:    !cfg.TLS.Enabled,
		HTTP3:    cfg.HTTP3,
		Handler:  router,
		Logger:   logger,
	}
	if cfg.MCPQUIC {
		chCfg.MCP = mcpSrv
	}
	srv, err := chassis.New(chCfg)
	if err != nil {
		return err
	}

	// SIGHUP: hot reload language tables.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	defer signal.Stop(sighup)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading languages")
			if err := reg.Reload(); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				logger.Info("languages reloaded", "count", reg.Count())
			}
		}
	}()

	if err := srv.Start(ctx); err != nil {
		return err
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
