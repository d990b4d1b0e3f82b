// Package score turns a segment's signal-match pattern into an FLS score and
// a confidence value. All formulas are fixed constants so scoring is fully
// reproducible.
package score

import (
	"math"

	"github.com/finlens/flsscan/internal/detect"
	"github.com/finlens/flsscan/internal/model"
)

// Scoring constants.
//
//	score      = min(1, base + categoryStep*(categories-1) + matchStep*(matches-1))
//	confidence = score * damping
//
// A single match scores exactly base; matches spanning several categories
// saturate toward 1.0. Damping applies only when the segment reads as
// historical and carries no dominant forward cue.
const (
	baseScore    = 0.50
	categoryStep = 0.25
	matchStep    = 0.10

	// DampingFactor multiplies confidence for historical-framed segments
	DampingFactor = 0.4
)

// Scorer computes score and confidence for classified segments
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score returns (score, confidence) for a segment given its matches and
// historical flag. Zero matches always yields (0, 0). Values are rounded to
// three decimals so results are stable across platforms.
func (s *Scorer) Score(seg model.Segment, matches []model.SignalMatch, isHistorical bool) (float64, float64) {
	if len(matches) == 0 {
		return 0, 0
	}

	categories := make(map[model.SignalCategory]bool)
	for _, m := range matches {
		categories[m.Category] = true
	}

	score := baseScore +
		categoryStep*float64(len(categories)-1) +
		matchStep*float64(len(matches)-1)
	if score > 1 {
		score = 1
	}

	damping := 1.0
	if isHistorical && !detect.ForwardDominant(seg, matches) {
		damping = DampingFactor
	}

	return round3(score), round3(score * damping)
}

// Density converts a whole-block signal count into a [0,1] score: five or
// more signal phrases per hundred words saturates at 1.0
func Density(totalSignals, wordCount int) float64 {
	if totalSignals == 0 || wordCount == 0 {
		return 0
	}
	perHundred := float64(totalSignals) / float64(wordCount) * 100
	return round3(math.Min(perHundred/5.0, 1.0))
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
