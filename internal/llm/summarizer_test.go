package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/finlens/flsscan/internal/model"
	"github.com/finlens/flsscan/internal/worker"
)

// fast limiter so tests never block on throttling
func nopLimiter(t *testing.T) *worker.Limiter {
	t.Helper()
	return worker.NewLimiter(1000, 1)
}

type fakeProvider struct {
	lastReq SummarizeRequest
	fail    bool
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	p.lastReq = req
	if p.fail {
		return nil, errors.New("provider unavailable")
	}
	return &SummarizeResponse{Summary: "Themes: growth.", Model: "fake-1"}, nil
}

func sampleReport() model.Report {
	return model.Report{
		Source: "item7.txt",
		Result: &model.AnalysisResult{
			SectionName:       "Item 7",
			SectionKind:       model.SectionMDA,
			TotalFound:        1,
			AverageConfidence: 0.85,
			Candidates: []model.FLSCandidate{
				{
					Segment:    model.Segment{Text: "We expect growth.", Index: 0},
					Score:      0.85,
					Confidence: 0.85,
					Category:   model.TopicRevenueGuidance,
				},
			},
		},
	}
}

func TestNewProvider(t *testing.T) {
	if p, err := NewProvider(Config{Provider: ""}); err != nil || p != nil {
		t.Errorf("Empty provider: expected (nil, nil), got (%v, %v)", p, err)
	}
	if _, err := NewProvider(Config{Provider: "mystery"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
	if _, err := NewProvider(Config{Provider: "openai", APIKey: "sk-test"}); err != nil {
		t.Errorf("OpenAI provider failed to construct: %v", err)
	}
}

func TestSummarizer_DisabledIsNilSafe(t *testing.T) {
	var s *Summarizer
	if s.IsEnabled() {
		t.Error("Nil summarizer should report disabled")
	}

	s, err := NewSummarizer(Config{Provider: ""}, 1)
	if err != nil {
		t.Fatalf("NewSummarizer failed: %v", err)
	}
	if s.IsEnabled() {
		t.Error("Summarizer without provider should report disabled")
	}
	summary, err := s.GenerateSummary(context.Background(), sampleReport())
	if err != nil || summary != nil {
		t.Errorf("Disabled summarizer: expected (nil, nil), got (%v, %v)", summary, err)
	}
}

func TestSummarizer_GenerateSummary(t *testing.T) {
	fake := &fakeProvider{}
	s := &Summarizer{provider: fake, limiter: nopLimiter(t), config: Config{Model: "fake-1", MaxTokens: 200}}

	summary, err := s.GenerateSummary(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("GenerateSummary failed: %v", err)
	}
	if !summary.Enabled || summary.Provider != "fake" || summary.Model != "fake-1" {
		t.Errorf("Summary metadata mismatch: %+v", summary)
	}
	if summary.SummaryMD != "Themes: growth." {
		t.Errorf("SummaryMD = %q", summary.SummaryMD)
	}
	if fake.lastReq.MaxTokens != 200 {
		t.Errorf("MaxTokens not forwarded: %d", fake.lastReq.MaxTokens)
	}
}

func TestSummarizer_ProviderFailure(t *testing.T) {
	s := &Summarizer{provider: &fakeProvider{fail: true}, limiter: nopLimiter(t)}
	if _, err := s.GenerateSummary(context.Background(), sampleReport()); err == nil {
		t.Error("Expected provider error to surface")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleReport())

	for _, want := range []string{
		"Section: Item 7",
		"FLS candidates kept: 1",
		"Average confidence: 0.850",
		"[revenue_guidance, confidence 0.850] We expect growth.",
		"Do not change, second-guess, or re-estimate",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_TruncatesCandidateList(t *testing.T) {
	report := sampleReport()
	for i := 1; i < 20; i++ {
		report.Result.Candidates = append(report.Result.Candidates, model.FLSCandidate{
			Segment:    model.Segment{Text: "We plan more.", Index: i},
			Confidence: 0.5,
			Category:   model.TopicStrategic,
		})
	}

	prompt := BuildPrompt(report)
	if !strings.Contains(prompt, "... and 5 more candidates") {
		t.Error("Expected candidate list truncation note")
	}
}

func TestRenderSeparateMarkdown(t *testing.T) {
	md := RenderSeparateMarkdown(&model.LLMSummary{
		Enabled:   true,
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		SummaryMD: "Growth themes dominate.",
	})

	if !strings.Contains(md, "non-authoritative") {
		t.Error("Summary document missing the non-authoritative label")
	}
	if !strings.Contains(md, "openai/gpt-4o-mini") {
		t.Error("Summary document missing provider attribution")
	}
	if !strings.Contains(md, "Growth themes dominate.") {
		t.Error("Summary body missing")
	}
}
