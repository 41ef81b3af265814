package envutil

import (
	"testing"
	"time"
)

func TestString(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	if got := String("TEST_STR", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
	if got := String("TEST_STR_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := Int("TEST_INT", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	t.Setenv("TEST_INT_BAD", "not-a-number")
	if got := Int("TEST_INT_BAD", 7); got != 7 {
		t.Fatalf("expected fallback on bad input, got %d", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	if !Bool("TEST_BOOL", false) {
		t.Fatalf("expected true")
	}
	t.Setenv("TEST_BOOL_BAD", "maybe")
	if !Bool("TEST_BOOL_BAD", true) {
		t.Fatalf("expected fallback on bad input")
	}
}

func TestDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	if got := Duration("TEST_DUR", time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}
	if got := Duration("TEST_DUR_MISSING", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback, got %v", got)
	}
}
