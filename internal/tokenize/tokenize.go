// Package tokenize turns a Text into the token stream the set and vector
// kernels consume. Four modes: the whole text, one token per code point,
// word-character runs, or a sliding code-point n-gram window.
package tokenize

import (
	"github.com/standardbeagle/textsim/internal/unicode"
)

// Mode selects how input text is split before counting.
type Mode uint8

const (
	None Mode = iota
	Character
	Word
	NGram
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Character:
		return "character"
	case Word:
		return "word"
	case NGram:
		return "ngram"
	}
	return "unknown"
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

// Tokens splits text per mode. For NGram, n must be positive; config
// validation rejects zero before any kernel reaches this point.
func Tokens(text unicode.Text, mode Mode, n int) []unicode.Text {
	switch mode {
	case Character:
		runes := text.Runes()
		tokens := make([]unicode.Text, 0, len(runes))
		for _, r := range runes {
			tokens = append(tokens, unicode.FromRunes([]rune{r}))
		}
		return tokens

	case Word:
		return wordTokens(text)

	case NGram:
		return ngramTokens(text, n)

	default:
		return []unicode.Text{text}
	}
}

// wordTokens scans the UTF-8 bytes for maximal [A-Za-z0-9_]+ runs. The scan
// is byte-driven: multi-byte sequences can never contain word bytes, so run
// boundaries fall on character boundaries for well-formed input.
func wordTokens(text unicode.Text) []unicode.Text {
	s := text.UTF8()
	var tokens []unicode.Text
	start := -1
	for i := 0; i <= len(s); i++ {
		inWord := i < len(s) && isWordByte(s[i])
		if inWord && start < 0 {
			start = i
		} else if !inWord && start >= 0 {
			tokens = append(tokens, unicode.NewText(s[start:i]))
			start = -1
		}
	}
	return tokens
}

// ngramTokens yields the len−n+1 windows of n code points, or the whole
// text when it is non-empty and shorter than n. Empty text yields no
// tokens.
func ngramTokens(text unicode.Text, n int) []unicode.Text {
	if text.IsEmpty() || n <= 0 {
		return nil
	}
	runes := text.Runes()
	if len(runes) < n {
		return []unicode.Text{text}
	}
	tokens := make([]unicode.Text, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		tokens = append(tokens, unicode.FromRunes(runes[i:i+n]))
	}
	return tokens
}
