// Package llm generates an optional narrative summary of a finished report.
// Summaries are produced strictly after scoring and never feed back into the
// engine; disabling the provider changes nothing about detection results.
package llm

import (
	"context"
	"fmt"

	"github.com/finlens/flsscan/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a summary of the analysis report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for summarization
type SummarizeRequest struct {
	// Report is the completed FLS report to summarize
	Report model.Report

	// Prompt is an optional custom prompt (if empty, the default is built)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the summary output
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	Provider  string // "openai" or "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string // custom endpoint, covers OpenAI-compatible local servers
	Timeout   int    // seconds
	MaxTokens int
}

// BuildPrompt constructs the default summarization prompt. The model is
// restricted to the sentences the engine actually surfaced so it cannot
// invent forward-looking statements the filing does not contain.
func BuildPrompt(report model.Report) string {
	result := report.Result

	prompt := fmt.Sprintf(`You are summarizing the output of a rule-based forward-looking-statement (FLS) scan of a 10-K section. The scan is deterministic and keyword-driven; your job is narration, not re-scoring.

RULES:
1. Only discuss the sentences listed below. Do not infer or invent statements.
2. Do not change, second-guess, or re-estimate any score or count.
3. Describe themes by topical category and note historical-framed sentences.

Scan summary:
- Section: %s
- FLS candidates kept: %d
- Average confidence: %.3f

Candidates:
`, result.SectionName, result.TotalFound, result.AverageConfidence)

	limit := 15
	for i, c := range result.Candidates {
		if i >= limit {
			prompt += fmt.Sprintf("... and %d more candidates\n", len(result.Candidates)-limit)
			break
		}
		prompt += fmt.Sprintf("- [%s, confidence %.3f] %s\n", c.Category, c.Confidence, c.Segment.Text)
	}

	prompt += "\nProvide a 3-5 sentence summary of the forward-looking themes in this section."
	return prompt
}
