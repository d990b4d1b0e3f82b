// Package engine runs the full FLS detection pipeline: segmentation, signal
// detection, historical filtering, scoring, topical classification, and
// aggregation. A single call processes one text block end-to-end with no I/O
// and no state shared across calls; identical input always produces an
// identical AnalysisResult.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/finlens/flsscan/internal/classify"
	"github.com/finlens/flsscan/internal/detect"
	"github.com/finlens/flsscan/internal/lexicon"
	"github.com/finlens/flsscan/internal/model"
	"github.com/finlens/flsscan/internal/score"
	"github.com/finlens/flsscan/internal/segment"
	"github.com/finlens/flsscan/internal/worker"
)

// ErrInvalidParameter marks the one class of caller error that is surfaced
// instead of tolerated: out-of-range thresholds and a zero segment cap.
// Malformed or empty text is never an error; it yields an empty result.
var ErrInvalidParameter = errors.New("invalid parameter")

// Options tunes a single Analyze call
type Options struct {
	MinConfidence float64           // discard candidates below this confidence, in [0,1]
	MaxSegments   int               // cap on returned candidates, must be > 0
	SectionKind   model.SectionKind // selects the topical rule set
	Workers       int               // per-segment fan-out; <=1 runs serially
}

// DefaultOptions returns the documented defaults
func DefaultOptions() Options {
	return Options{
		MinConfidence: 0.5,
		MaxSegments:   50,
		SectionKind:   model.SectionMDA,
		Workers:       4,
	}
}

func (o Options) validate() error {
	if o.MinConfidence < 0 || o.MinConfidence > 1 {
		return fmt.Errorf("%w: min_confidence %v outside [0,1]", ErrInvalidParameter, o.MinConfidence)
	}
	if o.MaxSegments <= 0 {
		return fmt.Errorf("%w: max_segments must be positive, got %d", ErrInvalidParameter, o.MaxSegments)
	}
	switch o.SectionKind {
	case model.SectionMDA, model.SectionRiskFactors:
	default:
		return fmt.Errorf("%w: unknown section kind %q", ErrInvalidParameter, o.SectionKind)
	}
	return nil
}

// Engine bundles the pipeline stages around a shared immutable lexicon
type Engine struct {
	detector    *detect.Detector
	scorer      *score.Scorer
	categorizer *classify.Categorizer
}

// New creates an engine. A nil lexicon selects the built-in tables.
func New(lex *lexicon.Lexicon) *Engine {
	return &Engine{
		detector:    detect.NewDetector(lex),
		scorer:      score.NewScorer(),
		categorizer: classify.NewCategorizer(),
	}
}

// DetectSignalWords reports which signal phrases of each category occur in
// the text block, without segmentation
func (e *Engine) DetectSignalWords(text string) map[model.SignalCategory][]string {
	return e.detector.DetectText(text)
}

// CalculateScore returns a single aggregate FLS score in [0,1] for a text
// block, based on signal-phrase density per hundred words
func (e *Engine) CalculateScore(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	total := 0
	for _, phrases := range e.detector.DetectText(text) {
		total += len(phrases)
	}
	return score.Density(total, len(strings.Fields(text)))
}

// Analyze runs the full pipeline over one section's text and returns the
// aggregated result. Empty or signal-free text yields a result with
// TotalFound == 0, never an error.
func (e *Engine) Analyze(text, sectionName string, opts Options) (*model.AnalysisResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	segments := segment.Split(text)
	candidates := e.classifyAll(segments, opts)

	result := Aggregate(sectionName, opts.SectionKind, candidates, opts.MinConfidence, opts.MaxSegments)
	result.Metadata = model.ResultMetadata{
		TextLength:    len(text),
		TotalSegments: len(segments),
	}
	if len(segments) > 0 {
		result.Metadata.FLSDensity = round3(float64(result.TotalFound) / float64(len(segments)))
	}
	return result, nil
}

// classifyAll runs stages 4.2-4.5 over every segment. Segments are
// independent, so large documents fan out across the worker pool; results are
// re-ordered by segment index before aggregation to keep output
// deterministic.
func (e *Engine) classifyAll(segments []model.Segment, opts Options) []model.FLSCandidate {
	if len(segments) == 0 {
		return nil
	}

	if opts.Workers <= 1 || len(segments) < 2*opts.Workers {
		var out []model.FLSCandidate
		for _, seg := range segments {
			if cand := e.classifySegment(seg, opts.SectionKind); cand != nil {
				out = append(out, *cand)
			}
		}
		return out
	}

	jobs := make([]worker.Job, len(segments))
	for i, seg := range segments {
		jobs[i] = &segmentJob{engine: e, seg: seg, kind: opts.SectionKind}
	}

	pool := worker.NewPool(opts.Workers)
	results := pool.Run(jobs)

	var out []model.FLSCandidate
	for _, r := range results {
		sr := r.(*segmentResult)
		if sr.candidate != nil {
			out = append(out, *sr.candidate)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Segment.Index < out[j].Segment.Index
	})
	return out
}

// classifySegment classifies one segment. Segments with no signal matches
// are never promoted to candidates.
func (e *Engine) classifySegment(seg model.Segment, kind model.SectionKind) *model.FLSCandidate {
	matches := e.detector.Detect(seg)
	if len(matches) == 0 {
		return nil
	}

	historical := detect.IsHistorical(seg)
	scoreVal, confidence := e.scorer.Score(seg, matches, historical)

	return &model.FLSCandidate{
		Segment:      seg,
		Matches:      matches,
		Score:        scoreVal,
		Confidence:   confidence,
		Category:     e.categorizer.Categorize(seg, kind),
		IsHistorical: historical,
	}
}

type segmentJob struct {
	engine *Engine
	seg    model.Segment
	kind   model.SectionKind
}

func (j *segmentJob) Execute(ctx context.Context) worker.Result {
	return &segmentResult{candidate: j.engine.classifySegment(j.seg, j.kind)}
}

type segmentResult struct {
	candidate *model.FLSCandidate
}

func (r *segmentResult) GetError() error { return nil }

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
