package mcpquic

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPreamble(t *testing.T) {
	var buf bytes.Buffer
	if err := writePreamble(&buf); err != nil {
		t.Fatalf("writePreamble: %v", err)
	}
	if err := readPreamble(&buf); err != nil {
		t.Fatalf("readPreamble: %v", err)
	}

	err := readPreamble(strings.NewReader("GET / HTTP/1.1"))
	if !errors.Is(err, ErrBadPreamble) {
		t.Errorf("err = %v, want ErrBadPreamble", err)
	}
	if err := readPreamble(strings.NewReader("SM")); err == nil {
		t.Error("short preamble should fail")
	}
}

func TestSessionSend(t *testing.T) {
	var buf bytes.Buffer
	s := newSession("quic-test", &buf)
	if err := s.send(map[string]int{"id": 1}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if buf.String() != "{\"id\":1}\n" {
		t.Errorf("wire = %q", buf.String())
	}
	if s.Initialized() {
		t.Error("new session should not be initialized")
	}
	s.Initialize()
	if !s.Initialized() {
		t.Error("Initialize did not stick")
	}
}
