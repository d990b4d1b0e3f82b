// Package lexicon holds the signal-phrase tables that drive FLS detection.
// The built-in tables are loaded once per Lexicon and never mutated at
// runtime, so a single Lexicon is safe for concurrent use by many workers.
package lexicon

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/finlens/flsscan/internal/model"
	"gopkg.in/yaml.v3"
)

// builtinPhrases maps each signal category to its signal words/phrases.
// Inflected forms are listed explicitly rather than stemmed so that matching
// stays a plain word-boundary search with no linguistic machinery.
var builtinPhrases = map[model.SignalCategory][]string{
	model.SignalPlanning: {
		"anticipate", "anticipates", "anticipated", "anticipating",
		"intend", "intends", "intended", "intending",
		"plan", "plans", "planned", "planning",
		"seek", "seeks", "seeking",
		"aim", "aims", "aiming",
	},
	model.SignalExpectation: {
		"expect", "expects", "expected", "expecting",
		"believe", "believes", "believed", "believing",
		"continue", "continues", "continuing",
		"guidance", "outlook", "forecast", "forecasts", "forecasting",
	},
	model.SignalPossibility: {
		"could", "may", "might", "possibly", "potential", "potentially",
	},
	model.SignalProjection: {
		"estimate", "estimates", "estimated", "estimating",
		"project", "projects", "projected", "projecting",
		"prospect", "prospects",
	},
	model.SignalLikelihood: {
		"should", "will", "would", "shall", "likely",
	},
	model.SignalFuturePeriod: {
		"next quarter", "next year", "next fiscal year",
		"going forward", "in the future", "future period", "upcoming",
		"near term", "long term", "over time",
	},
}

// Phrase is one signal phrase with its matcher compiled at load time
type Phrase struct {
	Category model.SignalCategory
	Text     string
	re       *regexp.Regexp
}

// FindAll returns the start offsets of every occurrence of the phrase in
// text. Matching is case-insensitive and word-boundary delimited; multi-word
// phrases must appear as a contiguous token sequence.
func (p *Phrase) FindAll(text string) []int {
	locs := p.re.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}
	positions := make([]int, len(locs))
	for i, loc := range locs {
		positions[i] = loc[0]
	}
	return positions
}

// Lexicon is the immutable set of signal phrases grouped by category
type Lexicon struct {
	byCategory map[model.SignalCategory][]string
	entries    []Phrase
}

// New builds a lexicon from the built-in tables
func New() *Lexicon {
	lex, _ := build(nil)
	return lex
}

// Load builds a lexicon from the built-in tables merged with extra phrases
// from a YAML file (category name -> list of phrases)
func Load(extraFile string) (*Lexicon, error) {
	if extraFile == "" {
		return New(), nil
	}

	data, err := os.ReadFile(extraFile)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}

	var extra map[string][]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parse lexicon file: %w", err)
	}

	return build(extra)
}

var (
	defaultLex  *Lexicon
	defaultOnce sync.Once
)

// Default returns the shared built-in lexicon
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex = New()
	})
	return defaultLex
}

func build(extra map[string][]string) (*Lexicon, error) {
	known := make(map[model.SignalCategory]bool)
	for _, cat := range model.SignalCategories() {
		known[cat] = true
	}

	byCategory := make(map[model.SignalCategory][]string, len(builtinPhrases))
	for cat, phrases := range builtinPhrases {
		byCategory[cat] = append([]string(nil), phrases...)
	}

	for name, phrases := range extra {
		cat := model.SignalCategory(strings.ToLower(strings.TrimSpace(name)))
		if !known[cat] {
			return nil, fmt.Errorf("unknown signal category %q in lexicon file", name)
		}
		byCategory[cat] = append(byCategory[cat], phrases...)
	}

	lex := &Lexicon{byCategory: make(map[model.SignalCategory][]string)}

	// Iterate categories in fixed order so entry order (and therefore match
	// reporting order) is deterministic regardless of map iteration.
	for _, cat := range model.SignalCategories() {
		seen := make(map[string]bool)
		for _, raw := range byCategory[cat] {
			phrase := Normalize(raw)
			if phrase == "" || seen[phrase] {
				continue
			}
			seen[phrase] = true
			lex.byCategory[cat] = append(lex.byCategory[cat], phrase)
			lex.entries = append(lex.entries, Phrase{
				Category: cat,
				Text:     phrase,
				re:       compilePhrase(phrase),
			})
		}
	}

	return lex, nil
}

// compilePhrase builds the word-boundary matcher for a normalized phrase.
// The space between words of a multi-word phrase matches any whitespace run,
// since filings wrap sentences across lines.
func compilePhrase(phrase string) *regexp.Regexp {
	words := strings.Fields(phrase)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(quoted, `\s+`) + `\b`)
}

// Normalize lowercases a phrase and collapses internal whitespace
func Normalize(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// Entries returns all phrases in deterministic order
func (l *Lexicon) Entries() []Phrase {
	return l.entries
}

// Phrases returns the phrases of one category
func (l *Lexicon) Phrases(cat model.SignalCategory) []string {
	return l.byCategory[cat]
}

// Size returns the total number of phrases across all categories
func (l *Lexicon) Size() int {
	return len(l.entries)
}
