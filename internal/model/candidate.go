package model

import (
	"fmt"
	"strings"
)

// SectionKind selects which topical rule set applies to a 10-K section
type SectionKind string

const (
	SectionMDA         SectionKind = "mda"          // Item 7 - Management's Discussion & Analysis
	SectionRiskFactors SectionKind = "risk_factors" // Item 1A - Risk Factors
)

// ParseSectionKind maps user-facing spellings onto a SectionKind
func ParseSectionKind(s string) (SectionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mda", "md&a", "7", "item7", "item 7":
		return SectionMDA, nil
	case "risk_factors", "risk-factors", "risk", "1a", "item1a", "item 1a":
		return SectionRiskFactors, nil
	default:
		return "", fmt.Errorf("unknown section kind %q (expected mda or risk_factors)", s)
	}
}

// TopicalCategory is the subject-matter bucket assigned to an FLS candidate.
// It is distinct from the SignalCategory that triggered detection: the signal
// category says why a sentence looks forward-looking, the topical category
// says what it is about.
type TopicalCategory string

// MD&A topical categories
const (
	TopicRevenueGuidance TopicalCategory = "revenue_guidance"
	TopicStrategic       TopicalCategory = "strategic"
	TopicMarketOutlook   TopicalCategory = "market_outlook"
	TopicOperational     TopicalCategory = "operational"
	TopicCapital         TopicalCategory = "capital"
	TopicRiskMitigation  TopicalCategory = "risk_mitigation"
	TopicOther           TopicalCategory = "other"
)

// Risk Factors topical categories (Strategic, Operational and Other are shared)
const (
	TopicMarket     TopicalCategory = "market"
	TopicFinancial  TopicalCategory = "financial"
	TopicRegulatory TopicalCategory = "regulatory"
	TopicExternal   TopicalCategory = "external"
)

// FLSCandidate is a fully classified segment. Score and Confidence are both
// zero whenever Matches is empty; candidates are never mutated after creation.
type FLSCandidate struct {
	Segment      Segment         `json:"segment"`
	Matches      []SignalMatch   `json:"matches"`
	Score        float64         `json:"score"`
	Confidence   float64         `json:"confidence"`
	Category     TopicalCategory `json:"category"`
	IsHistorical bool            `json:"is_historical"`
}
