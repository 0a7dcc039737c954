package config

import (
	"testing"
	"time"
)

func TestGetFallsBackOnBlank(t *testing.T) {
	t.Setenv("BEDS_TEST_KEY", "   ")
	if got := Get("BEDS_TEST_KEY", "x"); got != "x" {
		t.Fatalf("Get = %q, want x", got)
	}

	t.Setenv("BEDS_TEST_KEY", " value ")
	if got := Get("BEDS_TEST_KEY", "x"); got != "value" {
		t.Fatalf("Get = %q, want value", got)
	}
}

func TestIntAndDuration(t *testing.T) {
	t.Setenv("BEDS_TEST_INT", "12")
	t.Setenv("BEDS_TEST_BAD", "twelve")
	t.Setenv("BEDS_TEST_TTL", "90s")

	if got := Int("BEDS_TEST_INT", 3); got != 12 {
		t.Fatalf("Int = %d, want 12", got)
	}
	if got := Int("BEDS_TEST_BAD", 3); got != 3 {
		t.Fatalf("Int = %d, want fallback 3", got)
	}
	if got := Duration("BEDS_TEST_TTL", time.Minute); got != 90*time.Second {
		t.Fatalf("Duration = %s, want 90s", got)
	}
	if got := Duration("BEDS_TEST_MISSING", time.Minute); got != time.Minute {
		t.Fatalf("Duration = %s, want 1m", got)
	}
}
