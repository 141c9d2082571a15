// Package nlp turns an English sentence describing an event into a message
// and the occurrences of that event.
package nlp

import (
	"time"

	"github.com/copiousfreetime/nickel/internal/occurrence"
)

// Phrase is a temporal phrase recognised in the input.
type Phrase struct {
	Text    string
	Matcher string
}

type Result struct {
	Message     string
	Occurrences []occurrence.Occurrence
	Phrases     []Phrase
}

// Parse extracts the event message and its occurrences from text, resolving
// relative phrases against ref. It never fails: text with nothing temporal in
// it yields no occurrences and the trimmed text as the message.
func Parse(text string, ref time.Time) Result {
	tokens := Normalize(text)
	reference := NewReference(ref)
	matches := runMatchers(tokens, reference)

	phrases := make([]Phrase, len(matches))
	for n, m := range matches {
		start, end := tokens[m.Span.Start].Start, tokens[m.Span.End-1].End
		phrases[n] = Phrase{Text: text[start:end], Matcher: m.Matcher}
	}
	return Result{
		Message:     extractMessage(text, tokens, matches),
		Occurrences: resolve(matches, reference),
		Phrases:     phrases,
	}
}
