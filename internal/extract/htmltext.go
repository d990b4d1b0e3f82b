// Package extract reduces already-downloaded filing documents to plain text.
// The detection engine itself never parses markup; this package is the loader
// in front of it.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// block elements that end a paragraph; a blank line is inserted after them so
// the segmenter sees headings and list items as separate segments even when
// they lack terminal punctuation
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "section": true, "article": true,
}

// VisibleText parses HTML and returns its visible text, skipping scripts,
// styles and embedded frames
func VisibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && blockElements[n.Data] {
			buf.WriteString("\n\n")
		}
	}

	walk(doc)
	return buf.String(), nil
}

// LoadSection reads a section file from disk. Files with an .htm or .html
// extension are reduced to visible text; everything else is treated as
// already-extracted plain text.
func LoadSection(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read section file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".htm", ".html":
		return VisibleText(string(data))
	default:
		return string(data), nil
	}
}
