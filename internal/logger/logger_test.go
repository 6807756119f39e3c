package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithoutPathIsSilent(t *testing.T) {
	l, c, err := New("debug", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()
	l.Info().Msg("dropped")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wikitui.log")
	l, c, err := New("bogus", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info().Str("k", "v").Msg("hello")
	l.Debug().Msg("below info")
	c.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "k=v") {
		t.Fatalf("log line missing: %q", out)
	}
	if strings.Contains(out, "below info") {
		t.Fatalf("invalid level should default to info: %q", out)
	}
}
