// Package chassis serves the scriptorium HTTP handler over two transports
// sharing one port:
//   - TCP -> HTTP/1.1 + HTTP/2 (TLS)
//   - UDP -> QUIC with ALPN demux:
//     "h3"                 -> HTTP/3 (same handler as TCP)
//     "scriptorium-mcp-v1" -> MCP JSON-RPC over a QUIC stream
//
// TLS responses advertise HTTP/3 through Alt-Svc. With TLS disabled the
// chassis falls back to plain HTTP/1.1 on TCP only, for local use behind
// a reverse proxy.
//
// In development mode a self-signed ECDSA P-256 cert is generated automatically.
package chassis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/http3"

	"github.com/hazyhaar/scriptorium/pkg/mcpquic"
)

const (
	idleTimeout  = mcpquic.IdleTimeout
	readTimeout  = 30 * time.Second
	writeTimeout = 60 * time.Second
)

// Server is the dual-transport chassis.
type Server struct {
	addr      string
	logger    *slog.Logger
	tlsCfg    *tls.Config // nil in plain mode
	useH3     bool
	handler   http.Handler
	mcp       *mcpquic.Handler // nil when MCP over QUIC is off
	h3Server  *http3.Server
	tcpServer *http.Server
	quicLn    *quic.Listener
	mu        sync.Mutex
}

// Config holds configuration for the chassis server.
type Config struct {
	Addr     string       // listen address, TCP and UDP share the port
	TLS      *tls.Config  // nil = load CertFile/KeyFile or auto-generate
	CertFile string       // production cert path
	KeyFile  string       // production key path
	Plain    bool         // serve plain HTTP/1.1, no TLS and no HTTP/3
	HTTP3    bool         // also listen for HTTP/3 on UDP (TLS only)
	Handler  http.Handler // API router
	// MCP, when set, is also served over raw QUIC streams (TLS only).
	MCP *server.MCPServer
	Logger   *slog.Logger
}

func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Handler == nil {
		return nil, errors.New("chassis: nil handler")
	}

	s := &Server{
		addr:    cfg.Addr,
		logger:  cfg.Logger,
		handler: cfg.Handler,
		useH3:   cfg.HTTP3 && !cfg.Plain,
	}
	if cfg.Plain {
		return s, nil
	}
	if cfg.MCP != nil {
		s.mcp = mcpquic.NewHandler(cfg.MCP, cfg.Logger)
	}

	tlsCfg := cfg.TLS
	if tlsCfg == nil {
		var err error
		if tlsCfg, err = TLSConfig(cfg.CertFile, cfg.KeyFile); err != nil {
			return nil, fmt.Errorf("chassis TLS: %w", err)
		}
		if cfg.CertFile != "" && cfg.KeyFile != "" {
			cfg.Logger.Info("TLS: certificate loaded", "cert", cfg.CertFile)
		} else {
			cfg.Logger.Info("TLS: self-signed certificate generated")
		}
	}
	s.tlsCfg = tlsCfg
	return s, nil
}

// securityHeaders wraps an http.Handler and adds standard security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

// altSvcMiddleware advertises HTTP/3 on the same port.
func altSvcMiddleware(addr string, next http.Handler) http.Handler {
	_, port, _ := net.SplitHostPort(addr)
	if port == "" {
		port = "8443"
	}
	altSvc := fmt.Sprintf(`h3=":%s"; ma=86400`, port)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Alt-Svc", altSvc)
		next.ServeHTTP(w, r)
	})
}

// Start launches the listeners and blocks until ctx is cancelled or a
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()

	handler := securityHeaders(s.handler)
	if s.useH3 {
		handler = altSvcMiddleware(s.addr, handler)
	}

	s.tcpServer = &http.Server{
		Addr:              s.addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	var tcpTLS *tls.Config
	if s.tlsCfg != nil {
		tcpTLS = s.tlsCfg.Clone()
		tcpTLS.NextProtos = []string{"h2", "http/1.1"}
		s.tcpServer.TLSConfig = tcpTLS
	}

	var ln *quic.Listener
	if protos := s.quicProtos(); len(protos) > 0 {
		quicTLS := s.tlsCfg.Clone()
		quicTLS.NextProtos = protos
		var err error
		ln, err = quic.ListenAddr(s.addr, quicTLS, mcpquic.QUICConfig())
		if err != nil {
			s.mu.Unlock()
			return fmt.Errorf("QUIC listen: %w", err)
		}
		s.quicLn = ln
		if s.useH3 {
			s.h3Server = &http3.Server{Handler: handler, IdleTimeout: idleTimeout}
		}
	}

	s.mu.Unlock()

	s.logger.Info("chassis started", "addr", s.addr, "tls", s.tlsCfg != nil, "http3", s.useH3, "mcp_quic", s.mcp != nil)

	errCh := make(chan error, 2)
	go func() {
		var tcpLn net.Listener
		var err error
		if tcpTLS != nil {
			tcpLn, err = tls.Listen("tcp", s.addr, tcpTLS)
		} else {
			tcpLn, err = net.Listen("tcp", s.addr)
		}
		if err != nil {
			errCh <- fmt.Errorf("TCP listen: %w", err)
			return
		}
		s.logger.Info("TCP listener ready", "addr", tcpLn.Addr().String())
		if err := s.tcpServer.Serve(tcpLn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("TCP: %w", err)
		}
	}()

	if ln != nil {
		go s.acceptQUIC(ctx, ln, errCh)
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// quicProtos lists the ALPN protocols the UDP listener accepts.
func (s *Server) quicProtos() []string {
	var protos []string
	if s.useH3 {
		protos = append(protos, http3.NextProtoH3)
	}
	if s.mcp != nil {
		protos = append(protos, mcpquic.ALPN)
	}
	return protos
}

// acceptQUIC demuxes QUIC connections by negotiated ALPN.
func (s *Server) acceptQUIC(ctx context.Context, ln *quic.Listener, errCh chan<- error) {
	for {
		conn, err := ln.Accept(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, quic.ErrServerClosed) {
				return
			}
			errCh <- fmt.Errorf("QUIC accept: %w", err)
			return
		}

		switch alpn := conn.ConnectionState().TLS.NegotiatedProtocol; {
		case alpn == http3.NextProtoH3 && s.h3Server != nil:
			go func() {
				if err := s.h3Server.ServeQUICConn(conn); err != nil {
					s.logger.Debug("HTTP/3 conn done", "remote", conn.RemoteAddr(), "error", err)
				}
			}()
		case alpn == mcpquic.ALPN && s.mcp != nil:
			go s.mcp.ServeConn(ctx, conn)
		default:
			s.logger.Warn("unknown ALPN, closing", "alpn", alpn, "remote", conn.RemoteAddr())
			conn.CloseWithError(quic.ApplicationErrorCode(0x11), "unsupported ALPN: "+alpn)
		}
	}
}

// Stop gracefully shuts down both TCP and QUIC listeners.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("chassis stopping")

	var firstErr error
	if s.tcpServer != nil {
		if err := s.tcpServer.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s.h3Server != nil {
		if err := s.h3Server.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s.quicLn != nil {
		if err := s.quicLn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	s.logger.Info("chassis stopped")
	return firstErr
}
