// Package mcpquic carries MCP JSON-RPC over a single bidirectional QUIC
// stream. Connections negotiate the ALPN protocol and then open with a
// four-byte preamble before newline-delimited JSON messages flow.
package mcpquic

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/quic-go/quic-go"
)

const (
	// ALPN is negotiated during the TLS handshake.
	ALPN = "scriptorium-mcp-v1"
	// Preamble is written by the client as the first bytes of the stream.
	Preamble = "SMC1"
	// MaxMessageSize bounds one JSON-RPC line.
	MaxMessageSize = 4 * 1024 * 1024

	IdleTimeout = 5 * time.Minute
	KeepAlive   = 30 * time.Second
)

const (
	streamProtocolError quic.StreamErrorCode      = 0x02
	connNoError         quic.ApplicationErrorCode = 0x00
	connUnsupportedALPN quic.ApplicationErrorCode = 0x01
	connProtocolError   quic.ApplicationErrorCode = 0x03
)

var (
	ErrBadPreamble     = errors.New("mcpquic: bad stream preamble")
	ErrUnsupportedALPN = errors.New("mcpquic: " + ALPN + " not negotiated")
	ErrNotConnected    = errors.New("mcpquic: client not connected")
)

// QUICConfig is the transport configuration shared by client and server.
func QUICConfig() *quic.Config {
	return &quic.Config{
		MaxStreamReceiveWindow:     10 * 1024 * 1024,
		MaxConnectionReceiveWindow: 50 * 1024 * 1024,
		MaxIdleTimeout:             IdleTimeout,
		KeepAlivePeriod:            KeepAlive,
	}
}

func readPreamble(r io.Reader) error {
	buf := make([]byte, len(Preamble))
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("read preamble: %w", err)
	}
	if !bytes.Equal(buf, []byte(Preamble)) {
		return fmt.Errorf("%w: got %q", ErrBadPreamble, buf)
	}
	return nil
}

func writePreamble(w io.Writer) error {
	if _, err := io.WriteString(w, Preamble); err != nil {
		return fmt.Errorf("write preamble: %w", err)
	}
	return nil
}
