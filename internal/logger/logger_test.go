package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   zapcore.Level
		wantOK bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"info", zapcore.InfoLevel, true},
		{"warn", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"verbose", zapcore.WarnLevel, false},
		{"", zapcore.WarnLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		l, err := New("debug", pretty)
		if err != nil {
			t.Fatalf("New(debug, %v): %v", pretty, err)
		}
		l.Debug("bookmark loaded", String("alias", "proj"), Int("count", 1))
		l.Warn("lookup failed", Error(errors.New("boom")))
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Warn("ignored", Strings("argv", []string{"open", "-a"}))
	if err := l.Sync(); err != nil {
		t.Errorf("Sync() = %v, want nil", err)
	}
}
