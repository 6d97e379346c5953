// ABOUTME: Tests for markdown rendering.
// ABOUTME: Verifies common constructs and GFM extensions produce HTML.
package markdown

import (
	"strings"
	"testing"
)

func TestRenderBasicConstructs(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"heading", "# Title", "<h1>Title</h1>"},
		{"paragraph", "plain text", "<p>plain text</p>"},
		{"emphasis", "*hello*", "<em>hello</em>"},
		{"link", "[site](https://example.com)", `<a href="https://example.com">site</a>`},
		{"code block", "```\nx := 1\n```", "<pre><code>x := 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.source)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Render(%q) = %q, want it to contain %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestRenderGFMStrikethrough(t *testing.T) {
	got, err := Render("~~gone~~")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(got, "<del>gone</del>") {
		t.Errorf("expected strikethrough, got %q", got)
	}
}

func TestRenderGFMTable(t *testing.T) {
	got, err := Render("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(got, "<table>") {
		t.Errorf("expected table markup, got %q", got)
	}
}

func TestRenderHardWraps(t *testing.T) {
	got, err := Render("line one\nline two")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(got, "<br") {
		t.Errorf("expected hard line break, got %q", got)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	got, err := Render("")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
