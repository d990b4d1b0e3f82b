package llm

import (
	"context"
	"fmt"

	"github.com/finlens/flsscan/internal/model"
	"github.com/finlens/flsscan/internal/worker"
)

// Summarizer wraps a provider with rate limiting for batch runs
type Summarizer struct {
	provider Provider
	limiter  *worker.Limiter
	config   Config
}

// NewSummarizer creates a summarizer from configuration. Returns an error if
// the provider is unknown; a disabled provider yields a summarizer whose
// IsEnabled reports false.
func NewSummarizer(config Config, ratePerSecond float64) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Summarizer{
		provider: provider,
		limiter:  worker.NewLimiter(ratePerSecond, 1),
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary produces an LLM summary for a completed report. The report
// is read-only input; scores and counts are never modified.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.Report) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	return &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}, nil
}

// RenderSeparateMarkdown renders the LLM summary as a standalone Markdown
// document, clearly labeled so it is never mistaken for engine output
func RenderSeparateMarkdown(summary *model.LLMSummary) string {
	return fmt.Sprintf(`# LLM Summary (non-authoritative)

> Generated by %s/%s after scoring completed. This narrative does not affect
> any score, count, or classification in the report.

%s
`, summary.Provider, summary.Model, summary.SummaryMD)
}
