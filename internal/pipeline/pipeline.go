// Package pipeline orchestrates a complete section analysis: load the file,
// consult the result cache, run the engine, and render the report.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/finlens/flsscan/internal/cache"
	"github.com/finlens/flsscan/internal/engine"
	"github.com/finlens/flsscan/internal/extract"
	"github.com/finlens/flsscan/internal/lexicon"
	"github.com/finlens/flsscan/internal/llm"
	"github.com/finlens/flsscan/internal/model"
)

// Pipeline orchestrates the analysis of section files
type Pipeline struct {
	engine     *engine.Engine
	cache      cache.Cache
	renderer   *Renderer
	summarizer *llm.Summarizer // nil when disabled
	config     *model.Config
}

// NewPipeline creates a pipeline from configuration
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	lex, err := lexicon.Load(cfg.Lexicon.ExtraPhrasesFile)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}

	p := &Pipeline{
		engine:   engine.New(lex),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		config:   cfg,
	}

	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if base, err := os.UserCacheDir(); err == nil {
				dir = filepath.Join(base, "flsscan")
			}
		}
		if dir != "" {
			p.cache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		}
	}

	if cfg.LLM.Provider != "" {
		summarizer, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM), cfg.LLM.RatePerSecond)
		if err != nil {
			return nil, fmt.Errorf("initialize LLM provider: %w", err)
		}
		p.summarizer = summarizer
	}

	return p, nil
}

// Options returns the engine options derived from configuration
func (p *Pipeline) Options() (engine.Options, error) {
	kind, err := model.ParseSectionKind(p.config.Analysis.SectionKind)
	if err != nil {
		return engine.Options{}, err
	}
	return engine.Options{
		MinConfidence: p.config.Analysis.MinConfidence,
		MaxSegments:   p.config.Analysis.MaxSegments,
		SectionKind:   kind,
		Workers:       p.config.Analysis.Workers,
	}, nil
}

// AnalyzeFile loads a section file (plain text, or HTML reduced to visible
// text) and analyzes it
func (p *Pipeline) AnalyzeFile(ctx context.Context, path, sectionName string) (*model.Report, error) {
	text, err := extract.LoadSection(path)
	if err != nil {
		return nil, fmt.Errorf("load section: %w", err)
	}

	if sectionName == "" {
		sectionName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return p.AnalyzeText(ctx, text, sectionName, path)
}

// AnalyzeText analyzes already-extracted plain text and builds the report
func (p *Pipeline) AnalyzeText(ctx context.Context, text, sectionName, source string) (*model.Report, error) {
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}

	result, err := p.analyzeCached(text, sectionName, opts)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		Source:     source,
		AnalyzedAt: time.Now().UTC(),
		Result:     result,
	}

	// LLM summary runs after scoring and never affects it
	if p.summarizer.IsEnabled() {
		summary, err := p.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	return report, nil
}

// analyzeCached runs the engine behind the result cache. Invalid parameters
// surface immediately; cache failures silently fall through to recomputation.
func (p *Pipeline) analyzeCached(text, sectionName string, opts engine.Options) (*model.AnalysisResult, error) {
	if p.cache == nil {
		return p.engine.Analyze(text, sectionName, opts)
	}

	key := cache.ResultKey(text, sectionName, string(opts.SectionKind), opts.MinConfidence, opts.MaxSegments)
	if data, found := p.cache.Get(key); found {
		var cached model.AnalysisResult
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	result, err := p.engine.Analyze(text, sectionName, opts)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		_ = p.cache.Set(key, data, 0)
	}
	return result, nil
}

// RenderReport writes the report to the requested outputs and prints a
// summary to stdout
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if report.LLM != nil && report.LLM.Enabled && mdPath != "" {
		llmPath := strings.TrimSuffix(mdPath, ".md") + ".llm.md"
		if err := p.renderer.RenderLLMMarkdown(llm.RenderSeparateMarkdown(report.LLM), llmPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write LLM summary: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote LLM Summary: %s\n", llmPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
