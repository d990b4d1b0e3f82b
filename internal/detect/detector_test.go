package detect

import (
	"testing"

	"github.com/finlens/flsscan/internal/model"
)

func seg(text string) model.Segment {
	return model.Segment{Text: text, Start: 0, End: len(text), Index: 0}
}

func TestDetector_BasicDetection(t *testing.T) {
	d := NewDetector(nil)

	matches := d.Detect(seg("We expect revenue to grow and plan to expand operations."))

	byCategory := make(map[model.SignalCategory][]string)
	for _, m := range matches {
		byCategory[m.Category] = append(byCategory[m.Category], m.Phrase)
	}

	if len(byCategory[model.SignalExpectation]) != 1 || byCategory[model.SignalExpectation][0] != "expect" {
		t.Errorf("Expected one 'expect' match, got %v", byCategory[model.SignalExpectation])
	}
	if len(byCategory[model.SignalPlanning]) != 1 || byCategory[model.SignalPlanning][0] != "plan" {
		t.Errorf("Expected one 'plan' match, got %v", byCategory[model.SignalPlanning])
	}
}

func TestDetector_NoPartialWordMatches(t *testing.T) {
	d := NewDetector(nil)

	// "mayor" must not match "may", "dismayed" must not match "may",
	// "willing" must not match "will"
	matches := d.Detect(seg("The mayor was dismayed but willing."))
	if len(matches) != 0 {
		t.Errorf("Expected no matches, got %v", matches)
	}
}

func TestDetector_OverlappingCategoriesAllRecorded(t *testing.T) {
	d := NewDetector(nil)

	matches := d.Detect(seg("Costs could rise and margins may fall."))

	phrases := make(map[string]bool)
	for _, m := range matches {
		if m.Category != model.SignalPossibility {
			t.Errorf("Unexpected category %s for %q", m.Category, m.Phrase)
		}
		phrases[m.Phrase] = true
	}
	if !phrases["could"] || !phrases["may"] {
		t.Errorf("Expected both 'could' and 'may', got %v", phrases)
	}
}

func TestDetector_MatchPositions(t *testing.T) {
	d := NewDetector(nil)

	text := "We expect growth."
	matches := d.Detect(seg(text))
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].Position != 3 {
		t.Errorf("Expected position 3, got %d", matches[0].Position)
	}
	if text[matches[0].Position:matches[0].Position+len("expect")] != "expect" {
		t.Error("Position does not point at the matched phrase")
	}
}

func TestDetector_EveryOccurrenceCounted(t *testing.T) {
	d := NewDetector(nil)

	matches := d.Detect(seg("We will invest and will expand and will grow."))

	count := 0
	for _, m := range matches {
		if m.Phrase == "will" {
			count++
		}
	}
	if count != 3 {
		t.Errorf("Expected 3 'will' occurrences, got %d", count)
	}
}

func TestDetectText_WholeBlock(t *testing.T) {
	d := NewDetector(nil)

	found := d.DetectText("We expect revenue to grow and plan to expand operations.")

	if len(found[model.SignalExpectation]) == 0 {
		t.Error("Expected expectations category in results")
	}
	if len(found[model.SignalPlanning]) == 0 {
		t.Error("Expected planning category in results")
	}
	if _, ok := found[model.SignalFuturePeriod]; ok {
		t.Error("Did not expect future_periods category")
	}
}

func TestDetectText_PhraseListedOncePerCategory(t *testing.T) {
	d := NewDetector(nil)

	found := d.DetectText("We may or may not proceed, and it may take time.")

	count := 0
	for _, phrase := range found[model.SignalPossibility] {
		if phrase == "may" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected 'may' listed once, got %d", count)
	}
}
