package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/finlens/flsscan/internal/pipeline"
	"github.com/finlens/flsscan/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Analyze multiple section files from a manifest in parallel",
	Long: `Batch analyzes many extracted section files concurrently:
- Read file paths from the manifest (one per line, # for comments)
- Analyze files in parallel with a configurable worker count
- Write a JSON and Markdown report per file into the output directory

Example:
  flsscan batch sections.txt
  flsscan batch sections.txt --concurrency 8 --output-dir ./fls-reports
  flsscan batch sections.txt --section-kind risk_factors`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent files")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./fls-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch")

	batchCmd.Flags().StringVar(&sectionKind, "section-kind", "mda", "topical rule set: mda or risk_factors")
	batchCmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.5, "discard candidates below this confidence [0,1]")
	batchCmd.Flags().IntVar(&maxSegments, "max-segments", 50, "cap on returned candidates per section")
	batchCmd.Flags().IntVar(&workers, "workers", 4, "per-segment classification workers within each file")
	batchCmd.Flags().StringVar(&lexiconFile, "lexicon", "", "YAML file with extra signal phrases")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate LLM summaries after scoring (rate limited)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	batchCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "OpenAI-compatible endpoint override")
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest := args[0]

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	processor := worker.NewBatchProcessor(p, concurrency)
	results, err := processor.ProcessManifest(ctx, manifest)
	if err != nil {
		return err
	}

	succeeded, failed := 0, 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Err)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(result.Path), filepath.Ext(result.Path))
		jsonPath := filepath.Join(outputDir, base+".json")
		mdPath := filepath.Join(outputDir, base+".md")

		if err := p.RenderReport(result.Report, jsonPath, mdPath, verbose); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: render: %v\n", result.Path, err)
			continue
		}
		succeeded++
	}

	fmt.Printf("\nBatch complete: %d succeeded, %d failed (reports in %s)\n", succeeded, failed, outputDir)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
