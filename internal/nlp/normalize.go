package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a token.
type TokenKind int

const (
	Word TokenKind = iota
	Number
	Punct
)

// Token is one unit of the normalized input. Start and End are byte offsets
// into the original text.
type Token struct {
	Text    string // lowercased
	Kind    TokenKind
	Value   int  // numeric value for Number tokens
	Digits  int  // digits written for numeric tokens, 0 when spelled out
	Ordinal bool // written as an ordinal: 28th, first, twentyeigth
	Start   int
	End     int
}

// Normalize lowercases and tokenizes text, folding ordinal suffixes, spelled
// out numbers and "a.m."/"p.m." into single tokens.
func Normalize(text string) []Token {
	return fold(split(text))
}

// split breaks text into letter runs, digit runs and single punctuation
// characters.
func split(text string) []Token {
	var tokens []Token
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case unicode.IsLetter(r):
			j := scan(text, i, unicode.IsLetter)
			tokens = append(tokens, Token{Text: strings.ToLower(text[i:j]), Kind: Word, Start: i, End: j})
			i = j
		case unicode.IsDigit(r):
			j := scan(text, i, unicode.IsDigit)
			tokens = append(tokens, Token{Text: text[i:j], Kind: Number, Value: atoi(text[i:j]), Digits: j - i, Start: i, End: j})
			i = j
		default:
			tokens = append(tokens, Token{Text: text[i : i+size], Kind: Punct, Start: i, End: i + size})
			i += size
		}
	}
	return tokens
}

func scan(text string, i int, class func(rune) bool) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !class(r) {
			break
		}
		i += size
	}
	return i
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
		if n > 1_000_000 {
			return n
		}
	}
	return n
}

func fold(raw []Token) []Token {
	out := make([]Token, 0, len(raw))
	for i := 0; i < len(raw); {
		if tok, n, ok := foldMeridiem(raw, i); ok {
			out = append(out, tok)
			i += n
			continue
		}
		if tok, n, ok := foldOrdinalSuffix(raw, i); ok {
			out = append(out, tok)
			i += n
			continue
		}
		if tok, n, ok := foldNumberWords(raw, i); ok {
			out = append(out, tok)
			i += n
			continue
		}
		out = append(out, raw[i])
		i++
	}
	return out
}

func touching(a, b Token) bool {
	return a.End == b.Start
}

// foldMeridiem turns "a . m ." into "am".
func foldMeridiem(raw []Token, i int) (Token, int, bool) {
	if i+2 >= len(raw) {
		return Token{}, 0, false
	}
	first, dot, m := raw[i], raw[i+1], raw[i+2]
	if (first.Text != "a" && first.Text != "p") || dot.Text != "." || m.Text != "m" ||
		!touching(first, dot) || !touching(dot, m) {
		return Token{}, 0, false
	}
	tok := Token{Text: first.Text + "m", Kind: Word, Start: first.Start, End: m.End}
	n := 3
	if i+3 < len(raw) && raw[i+3].Text == "." && touching(m, raw[i+3]) {
		tok.End = raw[i+3].End
		n = 4
	}
	return tok, n, true
}

var ordinalSuffixes = map[string]bool{"st": true, "nd": true, "rd": true, "th": true}

// foldOrdinalSuffix turns "28 th" into an ordinal 28.
func foldOrdinalSuffix(raw []Token, i int) (Token, int, bool) {
	if i+1 >= len(raw) || raw[i].Kind != Number || !ordinalSuffixes[raw[i+1].Text] || !touching(raw[i], raw[i+1]) {
		return Token{}, 0, false
	}
	tok := raw[i]
	tok.Text += raw[i+1].Text
	tok.End = raw[i+1].End
	tok.Ordinal = true
	return tok, 2, true
}

var (
	units = map[string]int{
		"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
		"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
		"thirteen": 13, "fourteen": 14, "fifteen": 15, "sixteen": 16,
		"seventeen": 17, "eighteen": 18, "nineteen": 19,
	}
	tens = map[string]int{
		"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
		"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	}
	ordinalUnits = map[string]int{
		"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5, "sixth": 6,
		"seventh": 7, "eighth": 8, "eigth": 8, "ninth": 9, "nineth": 9, "tenth": 10,
		"eleventh": 11, "twelfth": 12, "twelth": 12, "thirteenth": 13,
		"fourteenth": 14, "fifteenth": 15, "sixteenth": 16, "seventeenth": 17,
		"eighteenth": 18, "nineteenth": 19,
	}
	ordinalTens = map[string]int{
		"twentieth": 20, "thirtieth": 30, "fortieth": 40, "fiftieth": 50,
		"sixtieth": 60, "seventieth": 70, "eightieth": 80, "ninetieth": 90,
	}
)

// spelledNumber parses a single word such as "eight", "twentyeigth" or
// "thirtieth".
func spelledNumber(word string) (value int, ordinal bool, ok bool) {
	if v, ok := units[word]; ok {
		return v, false, true
	}
	if v, ok := ordinalUnits[word]; ok {
		return v, true, true
	}
	if v, ok := ordinalTens[word]; ok {
		return v, true, true
	}
	for prefix, t := range tens {
		if word == prefix {
			return t, false, true
		}
		rest, found := strings.CutPrefix(word, prefix)
		if !found {
			continue
		}
		if v, ok := units[rest]; ok && v > 0 && v < 10 {
			return t + v, false, true
		}
		if v, ok := ordinalUnits[rest]; ok && v < 10 {
			return t + v, true, true
		}
	}
	return 0, false, false
}

// foldNumberWords folds "twenty eight", "twenty-eighth" and single word forms
// into one Number token.
func foldNumberWords(raw []Token, i int) (Token, int, bool) {
	if raw[i].Kind != Word {
		return Token{}, 0, false
	}
	value, ordinal, ok := spelledNumber(raw[i].Text)
	if !ok {
		return Token{}, 0, false
	}
	tok := Token{Text: raw[i].Text, Kind: Number, Value: value, Ordinal: ordinal, Start: raw[i].Start, End: raw[i].End}
	n := 1
	if _, isTens := tens[raw[i].Text]; isTens {
		j := i + 1
		if j < len(raw) && raw[j].Text == "-" && touching(raw[i], raw[j]) {
			j++
		}
		if j < len(raw) && raw[j].Kind == Word {
			if v, ord, ok := spelledNumber(raw[j].Text); ok && v > 0 && v < 10 {
				tok.Text = raw[i].Text + " " + raw[j].Text
				tok.Value += v
				tok.Ordinal = ord
				tok.End = raw[j].End
				n = j - i + 1
			}
		}
	}
	return tok, n, true
}
