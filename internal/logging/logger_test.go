package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("method", "simpson"), "method", "simpson"},
		{"Int", Int("chunk", 3), "chunk", 3},
		{"Uint64", Uint64("units", 1_000_000), "units", uint64(1_000_000)},
		{"Float64", Float64("estimate", 3.14159), "estimate", 3.14159},
		{"Duration", Duration("elapsed", time.Second), "elapsed", time.Second},
		{"Err nil", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}

	testErr := errors.New("worker fault")
	if f := Err(testErr); f.Value != testErr {
		t.Errorf("Err().Value = %v, want %v", f.Value, testErr)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "dispatcher")

	logger.Info("pool started", Int("pool_size", 4))
	output := buf.String()

	for _, want := range []string{"dispatcher", "pool started", `"pool_size":4`} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestNewConsoleLoggerAndNop(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleLogger(&buf, true).Warn("projection unavailable", String("run_id", "r1"))
	if out := buf.String(); !strings.Contains(out, "projection unavailable") || !strings.Contains(out, "run_id=r1") {
		t.Errorf("unexpected console output: %q", out)
	}
	// Must not panic.
	NewNopLogger().Error("ignored", errors.New("x"), String("k", "v"))
}

func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fields   []Field
		contains []string
	}{
		{"with error", errors.New("chunk panicked"), nil, []string{"run aborted", "chunk panicked", "error"}},
		{"with nil error", nil, nil, []string{"run aborted", "error"}},
		{"with fields", errors.New("boom"), []Field{Int("chunk", 2), Uint64("start", 500)}, []string{"boom", `"chunk":2`, `"start":500`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Error("run aborted", tt.err, tt.fields...)
			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestZerologAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf)).WithLevel(zerolog.WarnLevel)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warn")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("entries below warn should be filtered, got: %s", output)
	}
	if !strings.Contains(output, "visible warn") {
		t.Errorf("warn entry missing, got: %s", output)
	}
}

func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("projected %d units", 250)
	logger.Println("pool", "joined")

	output := buf.String()
	if !strings.Contains(output, "projected 250 units") {
		t.Errorf("Printf should format message, got: %s", output)
	}
	if !strings.Contains(output, "pool joined") {
		t.Errorf("Println should join arguments, got: %s", output)
	}
}

func TestApplyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "s", Value: "hello"}, "hello"},
		{"int", Field{Key: "n", Value: 42}, "42"},
		{"int64", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"bool", Field{Key: "flag", Value: true}, "true"},
		{"error", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"struct", Field{Key: "data", Value: struct{ X int }{X: 7}}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("entry", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("expected %q in output: %s", tt.contains, buf.String())
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":  zerolog.DebugLevel,
		"INFO":   zerolog.InfoLevel,
		" warn ": zerolog.WarnLevel,
		"error":  zerolog.ErrorLevel,
		"bogus":  zerolog.InfoLevel,
		"":       zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
}
