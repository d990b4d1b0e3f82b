package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/finlens/flsscan/internal/model"
)

// Renderer writes reports as JSON and Markdown artifacts
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder
	result := report.Result

	fmt.Fprintf(&b, "# FLS Report: %s\n\n", result.SectionName)
	fmt.Fprintf(&b, "- Source: `%s`\n", report.Source)
	fmt.Fprintf(&b, "- Analyzed: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- Section kind: %s\n\n", result.SectionKind)

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| FLS candidates | %d |\n", result.TotalFound)
	fmt.Fprintf(&b, "| Average confidence | %.3f |\n", result.AverageConfidence)
	fmt.Fprintf(&b, "| Segments scanned | %d |\n", result.Metadata.TotalSegments)
	fmt.Fprintf(&b, "| FLS density | %.3f |\n\n", result.Metadata.FLSDensity)

	if len(result.CategoryHistogram) > 0 {
		fmt.Fprintf(&b, "## Topical Categories\n\n")
		fmt.Fprintf(&b, "| Category | Count |\n|---|---|\n")
		for _, cat := range sortedCategories(result.CategoryHistogram) {
			fmt.Fprintf(&b, "| %s | %d |\n", cat, result.CategoryHistogram[cat])
		}
		b.WriteString("\n")
	}

	if len(result.Candidates) > 0 {
		fmt.Fprintf(&b, "## Candidates\n\n")
		for _, c := range result.Candidates {
			fmt.Fprintf(&b, "**[%d]** %s\n\n", c.Segment.Index, c.Segment.Text)
			fmt.Fprintf(&b, "- Category: %s | Score: %.3f | Confidence: %.3f", c.Category, c.Score, c.Confidence)
			if c.IsHistorical {
				b.WriteString(" | historical framing")
			}
			b.WriteString("\n- Signals: ")
			b.WriteString(formatMatches(c.Matches))
			b.WriteString("\n\n")
		}
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by flsscan. Rule-based detection; no statement in this report was produced or scored by an LLM.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderLLMMarkdown writes the standalone LLM summary document
func (r *Renderer) RenderLLMMarkdown(markdown, path string) error {
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("write LLM markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a one-screen summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	result := report.Result
	fmt.Printf("\n%s\n", result.SectionName)
	fmt.Printf("  FLS candidates:     %d\n", result.TotalFound)
	fmt.Printf("  Average confidence: %.3f\n", result.AverageConfidence)
	fmt.Printf("  Segments scanned:   %d\n", result.Metadata.TotalSegments)
	for _, cat := range sortedCategories(result.CategoryHistogram) {
		fmt.Printf("    %-18s %d\n", cat, result.CategoryHistogram[cat])
	}
}

// sortedCategories orders histogram keys by count descending, then name, so
// rendering is deterministic
func sortedCategories(histogram map[model.TopicalCategory]int) []model.TopicalCategory {
	cats := make([]model.TopicalCategory, 0, len(histogram))
	for cat := range histogram {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		if histogram[cats[i]] != histogram[cats[j]] {
			return histogram[cats[i]] > histogram[cats[j]]
		}
		return cats[i] < cats[j]
	})
	return cats
}

func formatMatches(matches []model.SignalMatch) string {
	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = fmt.Sprintf("%s (%s)", m.Phrase, m.Category)
	}
	return strings.Join(parts, ", ")
}
