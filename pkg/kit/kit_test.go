package kit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestChainOrder(t *testing.T) {
	var calls []string
	mw := func(name string) Middleware {
		return func(next Endpoint) Endpoint {
			return func(ctx context.Context, req any) (any, error) {
				calls = append(calls, name)
				return next(ctx, req)
			}
		}
	}
	ep := Chain(mw("a"), mw("b"), mw("c"))(func(context.Context, any) (any, error) {
		calls = append(calls, "endpoint")
		return nil, nil
	})
	ep(context.Background(), nil)

	if got := strings.Join(calls, ","); got != "a,b,c,endpoint" {
		t.Errorf("call order = %s", got)
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	ep := RequestID()(func(ctx context.Context, _ any) (any, error) {
		seen = GetRequestID(ctx)
		return nil, nil
	})

	ep(context.Background(), nil)
	if len(seen) != 36 {
		t.Errorf("generated request id = %q", seen)
	}

	ep(WithRequestID(context.Background(), "req-1"), nil)
	if seen != "req-1" {
		t.Errorf("existing request id replaced: %q", seen)
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ok := Chain(RequestID(), Logging(logger, "render"))(func(context.Context, any) (any, error) {
		return "ok", nil
	})
	ctx := WithLanguage(WithTransport(context.Background(), "mcp"), "lat")
	if resp, err := ok(ctx, nil); err != nil || resp != "ok" {
		t.Fatalf("resp=%v err=%v", resp, err)
	}
	out := buf.String()
	for _, want := range []string{"endpoint=render", "transport=mcp", "language=lat", "request_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}

	buf.Reset()
	fail := Logging(logger, "validate")(func(context.Context, any) (any, error) {
		return nil, errors.New("boom")
	})
	fail(context.Background(), nil)
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("failure log = %q", buf.String())
	}
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	if GetTransport(ctx) != "http" {
		t.Errorf("default transport = %q", GetTransport(ctx))
	}
	if GetUserID(WithUserID(ctx, "u1")) != "u1" {
		t.Error("user id not stored")
	}
}
