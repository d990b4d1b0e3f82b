package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/finlens/flsscan/internal/model"
	"github.com/finlens/flsscan/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON       string
	outMD         string
	sectionName   string
	sectionKind   string
	minConfidence float64
	maxSegments   int
	workers       int
	lexiconFile   string
	noCache       bool
	noFooter      bool
	llmEnabled    bool
	llmModel      string
	llmBaseURL    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <section-file>",
	Short: "Analyze one 10-K section file for forward-looking statements",
	Long: `Analyze scans a single extracted section file (plain text, or HTML
which is reduced to visible text first) and reports every sentence that
projects, anticipates, or discusses future events.

Example:
  flsscan analyze item7.txt --section-kind mda --md report.md
  flsscan analyze item1a.html --section-kind risk_factors --min-confidence 0.6
  flsscan analyze item7.txt --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	analyzeCmd.Flags().StringVar(&sectionName, "section-name", "", "section label for the report (default: file name)")
	analyzeCmd.Flags().StringVar(&sectionKind, "section-kind", "mda", "topical rule set: mda or risk_factors")
	analyzeCmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.5, "discard candidates below this confidence [0,1]")
	analyzeCmd.Flags().IntVar(&maxSegments, "max-segments", 50, "cap on returned candidates")
	analyzeCmd.Flags().IntVar(&workers, "workers", 4, "per-segment classification workers")
	analyzeCmd.Flags().StringVar(&lexiconFile, "lexicon", "", "YAML file with extra signal phrases")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM summary after scoring (never affects scores)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	analyzeCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "OpenAI-compatible endpoint override")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s (section kind: %s)\n", path, cfg.Analysis.SectionKind)
	}

	report, err := p.AnalyzeFile(context.Background(), path, sectionName)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Scanned %d segments\n", report.Result.Metadata.TotalSegments)
		fmt.Fprintf(os.Stderr, "✓ Found %d FLS candidates\n", report.Result.TotalFound)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

// buildConfig merges defaults, viper-loaded config, and analyze/batch flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	cfg.Analysis.MinConfidence = minConfidence
	cfg.Analysis.MaxSegments = maxSegments
	cfg.Analysis.SectionKind = sectionKind
	cfg.Analysis.Workers = workers
	cfg.Lexicon.ExtraPhrasesFile = lexiconFile
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.BaseURL = llmBaseURL
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" && llmBaseURL == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}
