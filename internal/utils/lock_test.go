package utils

import (
	"path/filepath"
	"testing"
)

func TestOutputLockExcludesSecondHolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	first, err := NewOutputLock(dir)
	if err != nil {
		t.Fatalf("new lock: %v", err)
	}
	if err := first.Lock(); err != nil {
		t.Fatalf("lock: %v", err)
	}
	if filepath.Base(first.Path()) != ".lookalike.lock" {
		t.Fatalf("expected lock file .lookalike.lock, got %s", first.Path())
	}

	second, err := NewOutputLock(dir)
	if err != nil {
		t.Fatalf("new lock: %v", err)
	}
	ok, err := second.TryLock()
	if err != nil {
		t.Fatalf("try lock: %v", err)
	}
	if ok {
		t.Fatalf("expected second lock attempt to fail while the first is held")
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	ok, err = second.TryLock()
	if err != nil || !ok {
		t.Fatalf("expected lock to be free after unlock, ok=%v err=%v", ok, err)
	}
	_ = second.Unlock()
}

func TestParseLogLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "warn", "warning", "error", "fatal"} {
		if _, err := ParseLogLevel(lvl); err != nil {
			t.Fatalf("expected %q to parse, got %v", lvl, err)
		}
	}
	if _, err := ParseLogLevel("trace"); err == nil {
		t.Fatalf("expected trace to be rejected")
	}
}
