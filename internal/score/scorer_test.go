package score

import (
	"testing"

	"github.com/finlens/flsscan/internal/model"
)

func seg(text string) model.Segment {
	return model.Segment{Text: text, Start: 0, End: len(text), Index: 0}
}

func match(cat model.SignalCategory, phrase string) model.SignalMatch {
	return model.SignalMatch{Category: cat, Phrase: phrase}
}

func TestScore_ZeroMatches(t *testing.T) {
	s := NewScorer()

	scoreVal, confidence := s.Score(seg("Revenue increased 12%."), nil, true)
	if scoreVal != 0 || confidence != 0 {
		t.Errorf("Expected (0, 0) for zero matches, got (%v, %v)", scoreVal, confidence)
	}
}

func TestScore_SingleMatch(t *testing.T) {
	s := NewScorer()

	scoreVal, confidence := s.Score(
		seg("The company plans to expand."),
		[]model.SignalMatch{match(model.SignalPlanning, "plans")},
		false,
	)

	if scoreVal != 0.5 {
		t.Errorf("Expected score 0.5 for a single match, got %v", scoreVal)
	}
	if confidence != scoreVal {
		t.Errorf("Expected undamped confidence == score, got %v vs %v", confidence, scoreVal)
	}
}

func TestScore_MultipleCategoriesIncrease(t *testing.T) {
	s := NewScorer()

	one, _ := s.Score(seg("We may expand."),
		[]model.SignalMatch{match(model.SignalPossibility, "may")}, false)

	two, _ := s.Score(seg("We may expand and will invest."),
		[]model.SignalMatch{
			match(model.SignalPossibility, "may"),
			match(model.SignalLikelihood, "will"),
		}, false)

	three, _ := s.Score(seg("We may expand, will invest, and expect growth going forward."),
		[]model.SignalMatch{
			match(model.SignalPossibility, "may"),
			match(model.SignalLikelihood, "will"),
			match(model.SignalExpectation, "expect"),
			match(model.SignalFuturePeriod, "going forward"),
		}, false)

	if !(one < two && two < three) {
		t.Errorf("Expected monotonically increasing scores, got %v, %v, %v", one, two, three)
	}
	if three != 1.0 {
		t.Errorf("Expected four matches over four categories to saturate at 1.0, got %v", three)
	}
}

func TestScore_SaturatesAtOne(t *testing.T) {
	s := NewScorer()

	var matches []model.SignalMatch
	for i := 0; i < 10; i++ {
		matches = append(matches, match(model.SignalLikelihood, "will"))
	}
	matches = append(matches,
		match(model.SignalPossibility, "may"),
		match(model.SignalExpectation, "expect"),
		match(model.SignalPlanning, "plan"),
	)

	scoreVal, _ := s.Score(seg("dense forward text"), matches, false)
	if scoreVal != 1.0 {
		t.Errorf("Expected saturation at 1.0, got %v", scoreVal)
	}
}

func TestScore_HistoricalDampensWeakSignals(t *testing.T) {
	s := NewScorer()

	// "could" alone cannot override the historical framing
	scoreVal, confidence := s.Score(
		seg("Results were strong and margins could vary."),
		[]model.SignalMatch{match(model.SignalPossibility, "could")},
		true,
	)

	if scoreVal != 0.5 {
		t.Errorf("Expected score 0.5, got %v", scoreVal)
	}
	if confidence != 0.2 {
		t.Errorf("Expected confidence 0.5*%v = 0.2, got %v", DampingFactor, confidence)
	}
}

func TestScore_ForwardCueDisablesDamping(t *testing.T) {
	s := NewScorer()

	// Historical cue ("reported") coexists with a forward modal ("expect")
	// and a future period: the forward signal dominates, no dampening
	scoreVal, confidence := s.Score(
		seg("We reported strong growth and expect this trend to continue into next year."),
		[]model.SignalMatch{
			match(model.SignalExpectation, "expect"),
			match(model.SignalExpectation, "continue"),
			match(model.SignalFuturePeriod, "next year"),
		},
		true,
	)

	if confidence != scoreVal {
		t.Errorf("Expected no dampening, got confidence %v for score %v", confidence, scoreVal)
	}
	if scoreVal != 0.95 {
		t.Errorf("Expected score 0.95 (two categories, three matches), got %v", scoreVal)
	}
}

func TestDensity(t *testing.T) {
	cases := []struct {
		signals int
		words   int
		want    float64
	}{
		{0, 100, 0},
		{1, 0, 0},
		{1, 100, 0.2},
		{5, 100, 1.0},
		{20, 100, 1.0}, // capped
	}

	for _, tc := range cases {
		if got := Density(tc.signals, tc.words); got != tc.want {
			t.Errorf("Density(%d, %d) = %v, want %v", tc.signals, tc.words, got, tc.want)
		}
	}
}
