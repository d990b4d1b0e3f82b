package model

// SignalCategory classifies the kind of forward-looking signal phrase
type SignalCategory string

const (
	SignalPlanning     SignalCategory = "planning"       // intend, plan, seek, aim
	SignalExpectation  SignalCategory = "expectations"   // expect, believe, guidance, outlook
	SignalPossibility  SignalCategory = "possibility"    // could, may, might, potential
	SignalProjection   SignalCategory = "projections"    // estimate, project, prospect
	SignalLikelihood   SignalCategory = "likelihood"     // should, will, would, likely
	SignalFuturePeriod SignalCategory = "future_periods" // next year, going forward, near term
)

// SignalCategories lists all signal categories in a fixed order
func SignalCategories() []SignalCategory {
	return []SignalCategory{
		SignalPlanning,
		SignalExpectation,
		SignalPossibility,
		SignalProjection,
		SignalLikelihood,
		SignalFuturePeriod,
	}
}

// Segment represents one sentence-like unit of the input text.
// Start and End are byte offsets into the original input (not the segment's
// own string) so callers can highlight the span in the source document.
type Segment struct {
	Text  string `json:"text"`
	Start int    `json:"start_offset"`
	End   int    `json:"end_offset"`
	Index int    `json:"index"` // 0-based position in document order
}

// SignalMatch records one occurrence of a lexicon phrase inside a segment
type SignalMatch struct {
	Category SignalCategory `json:"category"`
	Phrase   string         `json:"phrase"`
	Position int            `json:"position"` // byte offset within the segment text
}
