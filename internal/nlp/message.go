package nlp

import "strings"

// connectives are the filler words left behind when a temporal phrase is cut
// out of a sentence.
var connectives = map[string]bool{
	"and": true, "also": true, "then": true, ",": true, "on": true, "the": true,
	"at": true, "from": true, "for": true, "in": true, "of": true, "is": true,
	"are": true, "every": true, "each": true, "starting": true, "starts": true,
	"beginning": true, "@": true, "&": true, "-": true,
}

var closingPunct = map[string]bool{".": true, "?": true, "!": true, ";": true}

// run is a stretch of kept tokens between removed phrases.
type run struct {
	tokens   []int
	gapLeft  bool
	gapRight bool
}

// extractMessage removes the tokens of every accepted match from text, then
// tidies the connectives the removal left dangling.
func extractMessage(text string, tokens []Token, matches []Match) string {
	if len(matches) == 0 {
		return strings.TrimSpace(text)
	}
	removed := make([]bool, len(tokens))
	for _, m := range matches {
		for i := m.Span.Start; i < m.Span.End; i++ {
			removed[i] = true
		}
	}

	var runs []run
	for i := 0; i < len(tokens); {
		if removed[i] {
			i++
			continue
		}
		r := run{gapLeft: i > 0}
		for i < len(tokens) && !removed[i] {
			r.tokens = append(r.tokens, i)
			i++
		}
		r.gapRight = i < len(tokens)
		runs = append(runs, r)
	}

	var kept []int
	for _, r := range runs {
		kept = append(kept, tidy(tokens, r)...)
	}

	var b strings.Builder
	for n, i := range kept {
		if n > 0 {
			prev := kept[n-1]
			adjacent := prev == i-1 && touching(tokens[prev], tokens[i])
			attach := prev != i-1 && tokens[i].Kind == Punct && closingPunct[tokens[i].Text]
			if !adjacent && !attach {
				b.WriteByte(' ')
			}
		}
		b.WriteString(text[tokens[i].Start:tokens[i].End])
	}
	return strings.TrimSpace(b.String())
}

// tidy drops a run made only of connectives when it borders a removed phrase,
// strips trailing connectives before a removed phrase and a leading comma
// after one.
func tidy(tokens []Token, r run) []int {
	idx := r.tokens
	allConnectives := true
	for _, i := range idx {
		if !connectives[tokens[i].Text] {
			allConnectives = false
			break
		}
	}
	if allConnectives && (r.gapLeft || r.gapRight) {
		return nil
	}
	if r.gapRight {
		for len(idx) > 0 && connectives[tokens[idx[len(idx)-1]].Text] {
			idx = idx[:len(idx)-1]
		}
	}
	if r.gapLeft {
		for len(idx) > 0 && tokens[idx[0]].Text == "," {
			idx = idx[1:]
		}
	}
	return idx
}
