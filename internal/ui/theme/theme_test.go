package theme

import (
	"bytes"
	"testing"
)

func TestStylesArePlainForNonTerminalWriters(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(&buf)

	for name, got := range map[string]string{
		"title":   s.Title.Render("=== TimeTamer ==="),
		"error":   s.Error.Render("Error: invalid menu choice: 7"),
		"section": s.Section.Render("--- History ---"),
		"muted":   s.Muted.Render("Choose an activity:"),
	} {
		if bytes.ContainsRune([]byte(got), '\x1b') {
			t.Fatalf("%s: expected no escape sequences, got %q", name, got)
		}
	}
	if got := s.Result.Render("You rested. +30 Energy."); got != "You rested. +30 Energy." {
		t.Fatalf("expected text unchanged, got %q", got)
	}
}
