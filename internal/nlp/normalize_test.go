package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestNormalizeSplits(t *testing.T) {
	tokens := Normalize("Lunch @ 12:30, Oct 5th!")
	assert.Equal(t, []string{"lunch", "@", "12", ":", "30", ",", "oct", "5th", "!"}, texts(tokens))

	assert.Equal(t, Word, tokens[0].Kind)
	assert.Equal(t, Punct, tokens[1].Kind)
	assert.Equal(t, Number, tokens[2].Kind)
	assert.Equal(t, 12, tokens[2].Value)
	assert.Equal(t, 2, tokens[2].Digits)
	assert.True(t, tokens[7].Ordinal)
	assert.Equal(t, 5, tokens[7].Value)
}

func TestNormalizeKeepsOffsets(t *testing.T) {
	text := "Meet  Bob at 5PM"
	for _, tok := range Normalize(text) {
		assert.Equal(t, tok.Text, lower(text[tok.Start:tok.End]))
	}
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

func TestNormalizeNumbers(t *testing.T) {
	tests := []struct {
		input   string
		value   int
		ordinal bool
	}{
		{"five", 5, false},
		{"twelve", 12, false},
		{"twenty", 20, false},
		{"twenty eight", 28, false},
		{"twenty-eight", 28, false},
		{"twentyeight", 28, false},
		{"first", 1, true},
		{"second", 2, true},
		{"twelth", 12, true},
		{"nineth", 9, true},
		{"twentieth", 20, true},
		{"twenty eighth", 28, true},
		{"twenty-first", 21, true},
		{"twentyeigth", 28, true},
		{"thirtyfirst", 31, true},
		{"28th", 28, true},
		{"2nd", 2, true},
		{"31", 31, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Normalize(tt.input)
			require.Len(t, tokens, 1)
			assert.Equal(t, Number, tokens[0].Kind)
			assert.Equal(t, tt.value, tokens[0].Value)
			assert.Equal(t, tt.ordinal, tokens[0].Ordinal)
		})
	}
}

func TestNormalizeSpelledNumbersHaveNoDigits(t *testing.T) {
	tokens := Normalize("the twentyeigth")
	require.Len(t, tokens, 2)
	assert.Equal(t, 0, tokens[1].Digits)
}

func TestNormalizeMeridiem(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"5 a.m.", []string{"5", "am"}},
		{"5 p.m", []string{"5", "pm"}},
		{"5pm", []string{"5", "pm"}},
		{"a. m.", []string{"a", ".", "m", "."}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, texts(Normalize(tt.input)))
		})
	}
}

func TestNormalizeOrdinalSuffixMustTouch(t *testing.T) {
	tokens := Normalize("5 th")
	assert.Equal(t, []string{"5", "th"}, texts(tokens))
	assert.False(t, tokens[0].Ordinal)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, Normalize(""))
	assert.Empty(t, Normalize("   \t\n"))
}
