package shared

import (
	"bytes"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	t.Run("returns unique non-empty ids", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			id := GenerateID()
			if id == "" {
				t.Fatal("expected non-empty id")
			}
			if seen[id] {
				t.Fatalf("duplicate id %s", id)
			}
			seen[id] = true
		}
	})
}

func TestTimestamp(t *testing.T) {
	t.Run("is RFC3339 UTC", func(t *testing.T) {
		ts := Timestamp()

		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			t.Fatalf("expected RFC3339 timestamp, got %q: %v", ts, err)
		}
		if parsed.Location() != time.UTC {
			t.Errorf("expected UTC timestamp, got %v", parsed.Location())
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("writes to the given writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)

		logger.Info("hello")

		if buf.Len() == 0 {
			t.Error("expected log output")
		}
	})

	t.Run("nil writer defaults to stderr", func(t *testing.T) {
		if logger := NewLogger(nil); logger == nil {
			t.Error("expected logger instance")
		}
	})
}
