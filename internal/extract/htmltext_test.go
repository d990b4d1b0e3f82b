package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVisibleText_SkipsScriptsAndStyles(t *testing.T) {
	doc := `<html><head><style>p { color: red; }</style>
<script>var x = "We expect nothing";</script></head>
<body><p>We expect revenue growth next year.</p></body></html>`

	text, err := VisibleText(doc)
	if err != nil {
		t.Fatalf("VisibleText failed: %v", err)
	}

	if !strings.Contains(text, "We expect revenue growth next year.") {
		t.Errorf("Visible text missing body content: %q", text)
	}
	if strings.Contains(text, "color: red") || strings.Contains(text, "We expect nothing") {
		t.Errorf("Script or style content leaked: %q", text)
	}
}

func TestVisibleText_BlockElementsBreakParagraphs(t *testing.T) {
	doc := `<body><h2>Liquidity and Capital Resources</h2>
<p>We plan to invest in capacity.</p>
<p>We expect demand to grow.</p></body>`

	text, err := VisibleText(doc)
	if err != nil {
		t.Fatalf("VisibleText failed: %v", err)
	}

	// Each block element must be followed by a blank line so the heading and
	// both sentences segment separately
	parts := strings.Split(text, "\n\n")
	var nonEmpty []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(p))
		}
	}
	if len(nonEmpty) < 3 {
		t.Fatalf("Expected at least 3 paragraphs, got %d: %q", len(nonEmpty), text)
	}
	if nonEmpty[0] != "Liquidity and Capital Resources" {
		t.Errorf("First paragraph should be the heading, got %q", nonEmpty[0])
	}
}

func TestVisibleText_MalformedHTML(t *testing.T) {
	// The parser is lenient; truncated markup still yields its text
	text, err := VisibleText("<p>We expect growth")
	if err != nil {
		t.Fatalf("VisibleText failed on malformed input: %v", err)
	}
	if !strings.Contains(text, "We expect growth") {
		t.Errorf("Expected text recovered from malformed HTML, got %q", text)
	}
}

func TestLoadSection_PlainTextPassthrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "item7.txt")
	content := "We expect revenue growth next year."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := LoadSection(path)
	if err != nil {
		t.Fatalf("LoadSection failed: %v", err)
	}
	if text != content {
		t.Errorf("Plain text should pass through unchanged, got %q", text)
	}
}

func TestLoadSection_HTMLIsReduced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "item7.html")
	if err := os.WriteFile(path, []byte("<p>We <b>plan</b> to expand.</p><script>x()</script>"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := LoadSection(path)
	if err != nil {
		t.Fatalf("LoadSection failed: %v", err)
	}
	if !strings.Contains(text, "plan") || strings.Contains(text, "x()") {
		t.Errorf("HTML not reduced to visible text: %q", text)
	}
	if strings.Contains(text, "<p>") {
		t.Errorf("Markup leaked into extracted text: %q", text)
	}
}

func TestLoadSection_MissingFile(t *testing.T) {
	if _, err := LoadSection(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}
