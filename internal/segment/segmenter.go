// Package segment splits extracted filing text into sentence-like units.
// Splitting is a pure function of the input: identical text always yields
// identical boundaries, and every segment is a verbatim span of the input
// addressed by byte offsets.
package segment

import (
	"unicode"
	"unicode/utf8"

	"github.com/finlens/flsscan/internal/model"
)

// abbreviations that commonly precede a period mid-sentence in SEC filings
var abbreviations = map[string]bool{
	"inc":    true,
	"corp":   true,
	"co":     true,
	"ltd":    true,
	"llc":    true,
	"jr":     true,
	"sr":     true,
	"dr":     true,
	"mr":     true,
	"mrs":    true,
	"ms":     true,
	"st":     true,
	"no":     true,
	"vs":     true,
	"etc":    true,
	"approx": true,
	"dept":   true,
	"est":    true,
}

// Split divides text into ordered segments. Boundaries are sentence
// terminators (. ? !) followed by whitespace and a capital letter or end of
// text, plus blank-line paragraph breaks (filings often drop terminal
// punctuation at section headings). Periods inside decimal numbers and after
// common abbreviations or single capital letters do not split. Whitespace-only
// spans are dropped, so empty input yields an empty (nil) slice.
func Split(text string) []model.Segment {
	var segs []model.Segment
	n := len(text)
	start := 0
	i := 0

	for i < n {
		c := text[i]
		switch {
		case c == '\n':
			// A newline run containing a second newline is a paragraph break
			j := i + 1
			blank := false
			for j < n && isSpace(text[j]) {
				if text[j] == '\n' {
					blank = true
				}
				j++
			}
			if blank {
				segs = emit(segs, text, start, i)
				start = j
				i = j
				continue
			}
			i++

		case c == '.' || c == '!' || c == '?':
			if c == '.' && (insideDecimal(text, i) || afterAbbreviation(text, i)) {
				i++
				continue
			}

			// Consume the terminator run plus any closing quote or paren
			end := i + 1
			for end < n && closesSentence(text[end]) {
				end++
			}

			j := end
			for j < n && isSpace(text[j]) {
				j++
			}

			if j >= n {
				segs = emit(segs, text, start, end)
				start = end
				i = n
				continue
			}

			if j > end {
				r, _ := utf8.DecodeRuneInString(text[j:])
				if unicode.IsUpper(r) {
					segs = emit(segs, text, start, end)
					start = j
					i = j
					continue
				}
			}
			i = end

		default:
			i++
		}
	}

	return emit(segs, text, start, n)
}

// emit appends the trimmed span [start,end) as a segment, dropping
// whitespace-only spans silently
func emit(segs []model.Segment, text string, start, end int) []model.Segment {
	for start < end && isSpace(text[start]) {
		start++
	}
	for end > start && isSpace(text[end-1]) {
		end--
	}
	if start >= end {
		return segs
	}
	return append(segs, model.Segment{
		Text:  text[start:end],
		Start: start,
		End:   end,
		Index: len(segs),
	})
}

// insideDecimal reports whether the period at i sits between two digits
func insideDecimal(text string, i int) bool {
	return i > 0 && i+1 < len(text) && isDigit(text[i-1]) && isDigit(text[i+1])
}

// afterAbbreviation reports whether the word ending at the period at i is a
// single capital letter (U.S., J. Smith) or a known abbreviation (Inc., No.)
func afterAbbreviation(text string, i int) bool {
	j := i
	for j > 0 && isLetter(text[j-1]) {
		j--
	}
	word := text[j:i]
	if word == "" {
		return false
	}
	if len(word) == 1 && word[0] >= 'A' && word[0] <= 'Z' {
		return true
	}
	return abbreviations[lower(word)]
}

func closesSentence(c byte) bool {
	return c == '.' || c == '!' || c == '?' || c == '"' || c == '\'' || c == ')'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
