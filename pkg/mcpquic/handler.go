package mcpquic

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/quic-go/quic-go"

	"github.com/hazyhaar/scriptorium/pkg/kit"
)

// Handler serves MCP sessions on QUIC connections it does not own.
// The chassis hands it every connection that negotiated ALPN.
type Handler struct {
	mcp    *server.MCPServer
	logger *slog.Logger
}

func NewHandler(srv *server.MCPServer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{mcp: srv, logger: logger}
}

// ServeConn runs one MCP session on the first stream of conn and returns
// when the stream ends or ctx is cancelled.
func (h *Handler) ServeConn(ctx context.Context, conn *quic.Conn) {
	remote := conn.RemoteAddr().String()

	stream, err := conn.AcceptStream(ctx)
	if err != nil {
		h.logger.Warn("mcpquic: accept stream", "remote", remote, "error", err)
		conn.CloseWithError(connProtocolError, "no stream")
		return
	}
	if err := readPreamble(stream); err != nil {
		h.logger.Warn("mcpquic: rejected stream", "remote", remote, "error", err)
		stream.CancelRead(streamProtocolError)
		stream.CancelWrite(streamProtocolError)
		conn.CloseWithError(connProtocolError, "bad preamble")
		return
	}

	sess := newSession("quic-"+uuid.NewString()[:8], stream)
	if err := h.mcp.RegisterSession(ctx, sess); err != nil {
		h.logger.Error("mcpquic: register session", "session", sess.id, "error", err)
		stream.Close()
		return
	}
	defer h.mcp.UnregisterSession(ctx, sess.id)
	h.logger.Info("mcpquic: session started", "session", sess.id, "remote", remote)

	ctx, cancel := context.WithCancel(kit.WithTransport(ctx, "mcp_quic"))
	defer cancel()
	ctx = h.mcp.WithContext(ctx, sess)
	go sess.forwardNotifications(ctx)

	sc := bufio.NewScanner(stream)
	sc.Buffer(make([]byte, 0, 64*1024), MaxMessageSize)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		resp := h.mcp.HandleMessage(ctx, json.RawMessage(line))
		if resp == nil {
			continue
		}
		if err := sess.send(resp); err != nil {
			h.logger.Warn("mcpquic: write", "session", sess.id, "error", err)
			break
		}
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) && ctx.Err() == nil {
		h.logger.Warn("mcpquic: read", "session", sess.id, "error", err)
	}
	stream.Close()
	h.logger.Info("mcpquic: session ended", "session", sess.id)
}

// session implements server.ClientSession for one QUIC stream.
type session struct {
	id          string
	notify      chan mcp.JSONRPCNotification
	initialized atomic.Bool

	mu sync.Mutex // serializes writes
	w  io.Writer
}

func newSession(id string, w io.Writer) *session {
	return &session{id: id, notify: make(chan mcp.JSONRPCNotification, 64), w: w}
}

func (s *session) SessionID() string                                   { return s.id }
func (s *session) NotificationChannel() chan<- mcp.JSONRPCNotification { return s.notify }
func (s *session) Initialize()                                         { s.initialized.Store(true) }
func (s *session) Initialized() bool                                   { return s.initialized.Load() }

func (s *session) send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.w.Write(append(data, '\n'))
	return err
}

func (s *session) forwardNotifications(ctx context.Context) {
	for {
		select {
		case n := <-s.notify:
			if err := s.send(n); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
