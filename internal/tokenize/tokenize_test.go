package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/textsim/internal/unicode"
)

func tokenStrings(tokens []unicode.Text) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.UTF8()
	}
	return out
}

func TestNoneMode(t *testing.T) {
	tokens := Tokens(unicode.NewText("hello world"), None, 2)
	assert.Equal(t, []string{"hello world"}, tokenStrings(tokens))
}

func TestCharacterMode(t *testing.T) {
	tokens := Tokens(unicode.NewText("abc"), Character, 2)
	assert.Equal(t, []string{"a", "b", "c"}, tokenStrings(tokens))

	tokens = Tokens(unicode.NewText("héδ"), Character, 2)
	assert.Equal(t, []string{"h", "é", "δ"}, tokenStrings(tokens))

	assert.Empty(t, Tokens(unicode.NewText(""), Character, 2))
}

func TestWordMode(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"hello world", []string{"hello", "world"}},
		{"one,two;three", []string{"one", "two", "three"}},
		{"snake_case stays whole", []string{"snake_case", "stays", "whole"}},
		{"digits123 mix", []string{"digits123", "mix"}},
		{"  leading and trailing  ", []string{"leading", "and", "trailing"}},
		{"", nil},
		{"---", nil},
	}

	for _, tt := range tests {
		tokens := Tokens(unicode.NewText(tt.input), Word, 2)
		assert.Equal(t, tt.want, tokenStrings(tokens), "input %q", tt.input)
	}
}

func TestWordModeNonASCIIBoundaries(t *testing.T) {
	// Multi-byte characters are not word bytes, so they split runs.
	tokens := Tokens(unicode.NewText("héllo"), Word, 2)
	assert.Equal(t, []string{"h", "llo"}, tokenStrings(tokens))
}

func TestNGramMode(t *testing.T) {
	tokens := Tokens(unicode.NewText("hello"), NGram, 2)
	assert.Equal(t, []string{"he", "el", "ll", "lo"}, tokenStrings(tokens))

	tokens = Tokens(unicode.NewText("abcd"), NGram, 3)
	assert.Equal(t, []string{"abc", "bcd"}, tokenStrings(tokens))
}

func TestNGramShorterThanN(t *testing.T) {
	tokens := Tokens(unicode.NewText("ab"), NGram, 5)
	require.Len(t, tokens, 1)
	assert.Equal(t, "ab", tokens[0].UTF8())
}

func TestNGramCodePointWindows(t *testing.T) {
	// Windows move by code points, not bytes.
	tokens := Tokens(unicode.NewText("αβγ"), NGram, 2)
	assert.Equal(t, []string{"αβ", "βγ"}, tokenStrings(tokens))
}

func TestNGramEmpty(t *testing.T) {
	assert.Empty(t, Tokens(unicode.NewText(""), NGram, 2))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "character", Character.String())
	assert.Equal(t, "word", Word.String())
	assert.Equal(t, "ngram", NGram.String())
}
