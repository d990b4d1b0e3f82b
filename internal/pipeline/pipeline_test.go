package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/finlens/flsscan/internal/model"
)

func testConfig(dir string) *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Dir = filepath.Join(dir, "cache")
	return cfg
}

func TestNewPipeline_Defaults(t *testing.T) {
	cfg := testConfig(t.TempDir())

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	if p.summarizer.IsEnabled() {
		t.Error("Summarizer should be disabled without a provider")
	}
	if p.cache == nil {
		t.Error("Cache should be enabled by default")
	}
}

func TestNewPipeline_UnknownProvider(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.LLM.Provider = "mystery"

	if _, err := NewPipeline(cfg); err == nil {
		t.Error("Expected error for unknown LLM provider")
	}
}

func TestNewPipeline_BadLexiconFile(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Lexicon.ExtraPhrasesFile = filepath.Join(t.TempDir(), "absent.yaml")

	if _, err := NewPipeline(cfg); err == nil {
		t.Error("Expected error for missing lexicon file")
	}
}

func TestAnalyzeText(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Cache.Enabled = false

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	report, err := p.AnalyzeText(context.Background(), "We expect revenue growth next year.", "Item 7", "inline")
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if report.Source != "inline" {
		t.Errorf("Source = %q, want inline", report.Source)
	}
	if report.AnalyzedAt.IsZero() {
		t.Error("AnalyzedAt not set")
	}
	if report.Result.TotalFound != 1 {
		t.Errorf("Expected 1 candidate, got %d", report.Result.TotalFound)
	}
	if report.LLM != nil {
		t.Error("LLM summary should be absent when disabled")
	}
}

func TestAnalyzeText_CacheRoundTrip(t *testing.T) {
	cfg := testConfig(t.TempDir())

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	text := "We plan to expand capacity and expect demand to grow next year."
	first, err := p.AnalyzeText(context.Background(), text, "Item 7", "a.txt")
	if err != nil {
		t.Fatalf("First AnalyzeText failed: %v", err)
	}
	second, err := p.AnalyzeText(context.Background(), text, "Item 7", "a.txt")
	if err != nil {
		t.Fatalf("Second AnalyzeText failed: %v", err)
	}

	if !reflect.DeepEqual(first.Result, second.Result) {
		t.Error("Cached result differs from computed result")
	}
}

func TestAnalyzeText_InvalidOptions(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Analysis.SectionKind = "item_5"

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	if _, err := p.AnalyzeText(context.Background(), "We expect growth.", "Item 7", "x"); err == nil {
		t.Error("Expected error for unknown section kind")
	}
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "item7.txt")
	if err := os.WriteFile(path, []byte("We expect revenue growth next year."), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(t.TempDir())
	cfg.Cache.Enabled = false
	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	report, err := p.AnalyzeFile(context.Background(), path, "")
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}
	// Section name defaults to the file basename without extension
	if report.Result.SectionName != "item7" {
		t.Errorf("SectionName = %q, want item7", report.Result.SectionName)
	}
	if report.Source != path {
		t.Errorf("Source = %q, want %q", report.Source, path)
	}
}

func TestOptions_ParsesSectionKindAliases(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Analysis.SectionKind = "item 1a"

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	opts, err := p.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	if opts.SectionKind != model.SectionRiskFactors {
		t.Errorf("SectionKind = %s, want risk_factors", opts.SectionKind)
	}
}
