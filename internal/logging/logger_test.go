package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	cases := []struct {
		verbose, watch bool
		want           zapcore.Level
	}{
		{false, false, zapcore.WarnLevel},
		{false, true, zapcore.InfoLevel},
		{true, false, zapcore.DebugLevel},
		{true, true, zapcore.DebugLevel},
	}
	for _, c := range cases {
		if got := Level(c.verbose, c.watch); got != c.want {
			t.Errorf("Level(%v,%v) = %v, want %v", c.verbose, c.watch, got, c.want)
		}
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var b bytes.Buffer
	log := New(&b, zapcore.WarnLevel)
	log.Info("generated", zap.Int("records", 2))
	log.Warn("regeneration failed", zap.String("input", "systems.csv"))
	_ = log.Sync()

	out := b.String()
	if strings.Contains(out, "generated") {
		t.Fatalf("info line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, `"input": "systems.csv"`) {
		t.Fatalf("warn line missing: %q", out)
	}
}
