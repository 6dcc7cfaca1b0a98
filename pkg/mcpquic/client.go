package mcpquic

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quic-go/quic-go"
)

// Client is an MCP client speaking to a scriptorium server over QUIC.
type Client struct {
	conn   *quic.Conn
	stream *quic.Stream
	mcp    *client.Client
}

// ClientTLSConfig returns a client config negotiating ALPN. insecure skips
// certificate verification for self-signed development servers.
func ClientTLSConfig(insecure bool) *tls.Config {
	return &tls.Config{
		MinVersion:         tls.VersionTLS13,
		NextProtos:         []string{ALPN},
		InsecureSkipVerify: insecure,
	}
}

// Dial connects to addr, opens the session stream and performs the MCP
// initialize handshake.
func Dial(ctx context.Context, addr string, tlsCfg *tls.Config) (*Client, error) {
	if tlsCfg == nil {
		tlsCfg = ClientTLSConfig(true)
	}
	conn, err := quic.DialAddr(ctx, addr, tlsCfg, QUICConfig())
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if p := conn.ConnectionState().TLS.NegotiatedProtocol; p != ALPN {
		conn.CloseWithError(connUnsupportedALPN, "unsupported ALPN")
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedALPN, p)
	}

	stream, err := conn.OpenStreamSync(ctx)
	if err != nil {
		conn.CloseWithError(connProtocolError, "open stream")
		return nil, fmt.Errorf("open stream: %w", err)
	}
	c := &Client{conn: conn, stream: stream}
	if err := writePreamble(stream); err != nil {
		c.closeTransport()
		return nil, err
	}

	mc := client.NewClient(transport.NewIO(stream, streamCloser{stream}, io.NopCloser(eofReader{})))
	if err := mc.Start(ctx); err != nil {
		c.closeTransport()
		return nil, fmt.Errorf("mcp start: %w", err)
	}

	var init mcp.InitializeRequest
	init.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	init.Params.ClientInfo = mcp.Implementation{Name: "scriptorium-quic-client", Version: "0.1.0"}
	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if _, err := mc.Initialize(initCtx, init); err != nil {
		c.closeTransport()
		return nil, fmt.Errorf("mcp initialize: %w", err)
	}
	c.mcp = mc
	return c, nil
}

func (c *Client) ListTools(ctx context.Context) (*mcp.ListToolsResult, error) {
	if c.mcp == nil {
		return nil, ErrNotConnected
	}
	return c.mcp.ListTools(ctx, mcp.ListToolsRequest{})
}

// CallTool invokes a tool and decodes its JSON text result into out.
// Tool errors are returned as Go errors.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any, out any) error {
	if c.mcp == nil {
		return ErrNotConnected
	}
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := c.mcp.CallTool(ctx, req)
	if err != nil {
		return err
	}
	var text string
	if len(res.Content) > 0 {
		if tc, ok := mcp.AsTextContent(res.Content[0]); ok {
			text = tc.Text
		}
	}
	if res.IsError {
		return fmt.Errorf("%s: %s", name, text)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal([]byte(text), out)
}

func (c *Client) Close() error {
	if c.mcp != nil {
		c.mcp.Close()
	}
	return c.closeTransport()
}

func (c *Client) closeTransport() error {
	if c.stream != nil {
		c.stream.Close()
	}
	return c.conn.CloseWithError(connNoError, "client closing")
}

type streamCloser struct{ s *quic.Stream }

func (w streamCloser) Write(p []byte) (int, error) { return w.s.Write(p) }
func (w streamCloser) Close() error                { return w.s.Close() }

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
