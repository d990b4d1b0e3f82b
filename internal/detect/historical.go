package detect

import (
	"regexp"

	"github.com/finlens/flsscan/internal/model"
)

// Retrospective cues: past-tense verbs, historical time references, and
// financial-statement verbs. A hit marks the segment as historical; whether
// that dampens the confidence is decided by ForwardDominant below.
var historicalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(was|were|had|did|increased|decreased|grew|declined|reported)\b`),
	regexp.MustCompile(`(?i)\b(last year|prior year|previous quarter|in 20\d{2}|as of|ended)\b`),
	regexp.MustCompile(`(?i)\b(recorded|recognized|incurred|realized)\b`),
}

// Strong forward modals that override historical framing
var forwardModalPattern = regexp.MustCompile(
	`(?i)\b(will|shall|expect(s|ed|ing)?|plan(s|ned|ning)?|intend(s|ed|ing)?)\b`)

// IsHistorical reports whether the segment's grammatical framing looks
// retrospective rather than prospective
func IsHistorical(seg model.Segment) bool {
	for _, re := range historicalPatterns {
		if re.MatchString(seg.Text) {
			return true
		}
	}
	return false
}

// ForwardDominant reports whether a segment carries a forward cue strong
// enough to override historical framing: an explicit forward modal or any
// future-period signal match. When a sentence mixes both framings ("We
// reported strong Q3 results and expect this trend to continue"), the forward
// signal dominates and no confidence dampening applies.
func ForwardDominant(seg model.Segment, matches []model.SignalMatch) bool {
	if forwardModalPattern.MatchString(seg.Text) {
		return true
	}
	for _, m := range matches {
		if m.Category == model.SignalFuturePeriod {
			return true
		}
	}
	return false
}
