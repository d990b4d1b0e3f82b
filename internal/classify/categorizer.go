// Package classify assigns a topical category to FLS candidates using fixed
// keyword rules. Classification is deterministic: rules are evaluated in
// declaration order and the first category with a matching term wins,
// regardless of how many terms other categories would match.
package classify

import (
	"strings"

	"github.com/finlens/flsscan/internal/model"
)

type rule struct {
	category model.TopicalCategory
	terms    []string
}

// MD&A rule set, in priority order. Terms are matched as lowercase substrings
// so that stems cover inflections ("invest" covers "investments").
var mdaRules = []rule{
	{model.TopicRevenueGuidance, []string{"revenue", "earnings", "sales", "profitability", "margin", "guidance"}},
	{model.TopicStrategic, []string{"expand", "acquisition", "growth", "strategy", "initiative", "launch"}},
	{model.TopicMarketOutlook, []string{"market", "demand", "competition", "industry", "sector"}},
	{model.TopicCapital, []string{"invest", "dividend", "buyback", "capital", "spending", "capex"}},
	{model.TopicRiskMitigation, []string{"mitigate", "manage risk", "hedge", "diversify"}},
	{model.TopicOperational, []string{"operation", "efficiency", "productivity", "manufacturing", "supply chain"}},
}

// Risk Factors rule set, in priority order
var riskRules = []rule{
	{model.TopicMarket, []string{"competition", "market share", "demand", "pricing"}},
	{model.TopicRegulatory, []string{"regulat", "compliance", "legal", "litigation", "law"}},
	{model.TopicFinancial, []string{"interest rate", "credit", "liquidity", "debt", "financial"}},
	{model.TopicExternal, []string{"geopolitical", "economic", "pandemic", "climate", "political"}},
	{model.TopicStrategic, []string{"strategy", "execution", "innovation", "technology"}},
	{model.TopicOperational, []string{"operation", "supply chain", "manufacturing", "disruption"}},
}

// Categorizer classifies segments into topical categories
type Categorizer struct{}

// NewCategorizer creates a new categorizer
func NewCategorizer() *Categorizer {
	return &Categorizer{}
}

// Categorize returns the topical category of a segment under the rule set
// selected by kind. Segments matching no rule are classified as Other.
func (c *Categorizer) Categorize(seg model.Segment, kind model.SectionKind) model.TopicalCategory {
	rules := mdaRules
	if kind == model.SectionRiskFactors {
		rules = riskRules
	}

	text := strings.ToLower(seg.Text)
	for _, r := range rules {
		for _, term := range r.terms {
			if strings.Contains(text, term) {
				return r.category
			}
		}
	}
	return model.TopicOther
}

// Categories returns the categories of a section kind in priority order,
// ending with Other
func Categories(kind model.SectionKind) []model.TopicalCategory {
	rules := mdaRules
	if kind == model.SectionRiskFactors {
		rules = riskRules
	}
	out := make([]model.TopicalCategory, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, model.TopicOther)
}
