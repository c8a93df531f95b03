package utils

import "testing"

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 5); got != "hello..." {
		t.Errorf("got %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("anything", 0); got != "anything" {
		t.Errorf("maxLen 0 should be a no-op, got %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("hello", 3); got != "hel" {
		t.Errorf("got %q", got)
	}
	if got := TruncateRunes("hello", 10); got != "hello" {
		t.Errorf("got %q", got)
	}
	if got := TruncateRunes("hello", 0); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestTruncateRunes_multibyte(t *testing.T) {
	// Cut counts runes, not bytes, and never splits a rune.
	if got := TruncateRunes("héllo", 2); got != "hé" {
		t.Errorf("got %q", got)
	}
	if got := TruncateRunes("日本語テキスト", 3); got != "日本語" {
		t.Errorf("got %q", got)
	}
}
