package log

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{" Warn ", LevelWarn, true},
		{"error", LevelError, true},
		{"none", LevelNone, true},
		{"loud", LevelInfo, false},
	}
	for _, tc := range tests {
		got, ok := LevelFromString(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("LevelFromString(%q) = %v,%v, want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLoggerFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)
	l.now = func() time.Time { return time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC) }

	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("shown %d", 3)
	l.Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info filtered, got %q", out)
	}
	want := "12:30:00.000 WARN: shown 3\n12:30:00.000 ERROR: shown 4\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}

	buf.Reset()
	l.SetLevel(LevelNone)
	l.Errorf("dropped")
	if buf.Len() != 0 || l.Level() != LevelNone {
		t.Errorf("LevelNone should drop everything, got %q", buf.String())
	}
}
