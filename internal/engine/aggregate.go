package engine

import (
	"sort"

	"github.com/finlens/flsscan/internal/model"
)

// Aggregate reduces per-segment candidates into a section-level result.
// Candidates below minConfidence are dropped; when more than maxSegments
// survive, the highest-confidence ones are kept (ties broken by original
// document order). The returned candidate list is always in document order so
// consumers can reconstruct a linear reading of the source text.
func Aggregate(sectionName string, kind model.SectionKind, candidates []model.FLSCandidate, minConfidence float64, maxSegments int) *model.AnalysisResult {
	kept := make([]model.FLSCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Confidence >= minConfidence {
			kept = append(kept, c)
		}
	}

	if len(kept) > maxSegments {
		// Stable sort keeps earlier segments ahead on equal confidence
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].Confidence > kept[j].Confidence
		})
		kept = kept[:maxSegments]
		sort.Slice(kept, func(i, j int) bool {
			return kept[i].Segment.Index < kept[j].Segment.Index
		})
	}

	histogram := make(map[model.TopicalCategory]int)
	sum := 0.0
	for _, c := range kept {
		histogram[c.Category]++
		sum += c.Confidence
	}

	avg := 0.0
	if len(kept) > 0 {
		avg = round3(sum / float64(len(kept)))
	}

	return &model.AnalysisResult{
		SectionName:       sectionName,
		SectionKind:       kind,
		Candidates:        kept,
		TotalFound:        len(kept),
		AverageConfidence: avg,
		CategoryHistogram: histogram,
	}
}
