package ui

import "testing"

func TestPrintMarkdownPlain(t *testing.T) {
	DisableColor()

	if err := PrintMarkdown("# dragonfly\n\nSome *styled* text.\n"); err != nil {
		t.Fatalf("render failed: %v", err)
	}
}
