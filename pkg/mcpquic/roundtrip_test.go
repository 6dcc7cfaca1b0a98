package mcpquic_test

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/quic-go/quic-go"

	"github.com/hazyhaar/scriptorium/pkg/api"
	"github.com/hazyhaar/scriptorium/pkg/chassis"
	"github.com/hazyhaar/scriptorium/pkg/mcpquic"
	"github.com/hazyhaar/scriptorium/pkg/registry"
)

func TestRoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	reg := registry.NewRegistry("")
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	mcpSrv := server.NewMCPServer("scriptorium-test", "0.0.0", server.WithToolCapabilities(false))
	api.RegisterMCPTools(mcpSrv, reg, nil, logger)

	cert, err := chassis.SelfSignedCert()
	if err != nil {
		t.Fatalf("cert: %v", err)
	}
	tlsCfg := &tls.Config{
		MinVersion:   tls.VersionTLS13,
		Certificates: []tls.Certificate{cert},
		NextProtos:   []string{mcpquic.ALPN},
	}
	ln, err := quic.ListenAddr("127.0.0.1:0", tlsCfg, mcpquic.QUICConfig())
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	h := mcpquic.NewHandler(mcpSrv, logger)
	go func() {
		for {
			conn, err := ln.Accept(ctx)
			if err != nil {
				return
			}
			go h.ServeConn(ctx, conn)
		}
	}()

	c, err := mcpquic.Dial(ctx, ln.Addr().String(), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()

	tools, err := c.ListTools(ctx)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	if len(tools.Tools) != 5 {
		t.Errorf("tools = %d, want 5", len(tools.Tools))
	}

	var out struct {
		Rendered string `json:"rendered"`
	}
	err = c.CallTool(ctx, "render_text", map[string]any{
		"text":           "Arma virumque cano",
		"language":       "lat",
		"authentic_mode": true,
	}, &out)
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if out.Rendered != "ARMAVIRVMQVECANO" {
		t.Errorf("rendered = %q", out.Rendered)
	}

	if err := c.CallTool(ctx, "render_text", map[string]any{"text": "x"}, nil); err == nil {
		t.Error("missing language should surface as an error")
	}
}
