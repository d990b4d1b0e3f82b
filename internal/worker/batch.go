package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/finlens/flsscan/internal/model"
)

// Analyzer analyzes one section file into a report
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path, sectionName string) (*model.Report, error)
}

// FileJob analyzes a single section file
type FileJob struct {
	Path     string
	Analyzer Analyzer
	ctx      context.Context
}

// Execute runs the analysis
func (j *FileJob) Execute(ctx context.Context) Result {
	runCtx := j.ctx
	if runCtx == nil {
		runCtx = ctx
	}
	report, err := j.Analyzer.AnalyzeFile(runCtx, j.Path, "")
	return &FileResult{Path: j.Path, Report: report, Err: err}
}

// FileResult is the outcome of one file analysis
type FileResult struct {
	Path   string
	Report *model.Report
	Err    error
}

// GetError returns the analysis error, if any
func (r *FileResult) GetError() error {
	return r.Err
}

// BatchProcessor analyzes many section files concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessFiles analyzes the given files concurrently
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	jobs := make([]Job, len(paths))
	for i, path := range paths {
		jobs[i] = &FileJob{Path: path, Analyzer: b.analyzer, ctx: ctx}
	}

	pool := NewPool(b.concurrency)
	results := pool.Run(jobs)

	fileResults := make([]*FileResult, len(results))
	for i, result := range results {
		fileResults[i] = result.(*FileResult)
	}
	return fileResults
}

// ProcessManifest reads file paths from a manifest and analyzes them
func (b *BatchProcessor) ProcessManifest(ctx context.Context, manifestPath string) ([]*FileResult, error) {
	paths, err := ReadManifest(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return b.ProcessFiles(ctx, paths), nil
}

// ReadManifest reads section-file paths from a file, one per line. Blank
// lines and #-comments are skipped; duplicates are analyzed once.
func ReadManifest(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}
	return paths, nil
}
