// Package detect finds signal-phrase occurrences in segments and flags
// retrospective framing. All matchers are compiled once at construction and
// are safe for concurrent use.
package detect

import (
	"github.com/finlens/flsscan/internal/lexicon"
	"github.com/finlens/flsscan/internal/model"
)

// Detector performs lexicon phrase search against segments
type Detector struct {
	lex *lexicon.Lexicon
}

// NewDetector creates a detector backed by the given lexicon
func NewDetector(lex *lexicon.Lexicon) *Detector {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Detector{lex: lex}
}

// Detect returns one SignalMatch per phrase occurrence in the segment, in
// deterministic order (category declaration order, then phrase order, then
// position). Overlapping phrases from different categories are all recorded;
// nothing suppresses a match across categories.
func (d *Detector) Detect(seg model.Segment) []model.SignalMatch {
	var matches []model.SignalMatch
	for i := range d.lex.Entries() {
		p := &d.lex.Entries()[i]
		for _, pos := range p.FindAll(seg.Text) {
			matches = append(matches, model.SignalMatch{
				Category: p.Category,
				Phrase:   p.Text,
				Position: pos,
			})
		}
	}
	return matches
}

// DetectText reports which phrases of each category occur anywhere in a text
// block, for callers that do not need segmentation. Each phrase is listed at
// most once per category; categories with no hits are omitted.
func (d *Detector) DetectText(text string) map[model.SignalCategory][]string {
	found := make(map[model.SignalCategory][]string)
	for i := range d.lex.Entries() {
		p := &d.lex.Entries()[i]
		if len(p.FindAll(text)) > 0 {
			found[p.Category] = append(found[p.Category], p.Text)
		}
	}
	return found
}

// Lexicon returns the lexicon backing this detector
func (d *Detector) Lexicon() *lexicon.Lexicon {
	return d.lex
}
