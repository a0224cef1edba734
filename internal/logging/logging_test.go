package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("json at warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, "warn", "json")
		l.Info("hidden")
		l.Warn("shown", "order", 2)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %q", buf.String())
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
			t.Fatal(err)
		}
		if rec["msg"] != "shown" || rec["order"] != float64(2) {
			t.Errorf("unexpected record %v", rec)
		}
	})

	t.Run("text defaults to info", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, "", "")
		l.Debug("hidden")
		l.Info("shown")
		if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "msg=shown") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}

func TestSetupFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)
	p := filepath.Join(t.TempDir(), "rgnmap.log")
	l, closer, err := Setup(p, "debug", "text")
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("toggled", "order", 3)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "msg=toggled order=3") {
		t.Errorf("unexpected log file %q", b)
	}
}
