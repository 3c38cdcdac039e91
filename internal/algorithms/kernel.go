// Package algorithms implements the thirteen similarity kernels behind the
// engine: the edit family (Levenshtein, Damerau-Levenshtein/OSA, Hamming),
// the alignment family (Jaro, Jaro-Winkler), and the set/vector family over
// token multisets (Jaccard, Sørensen-Dice, Overlap, Tversky, Cosine,
// Euclidean, Manhattan, Chebyshev).
//
// Kernels are pure functions of (text, text, config). They never panic;
// precondition violations come back as typed errors. Similarity is always a
// value in [0, 1]. Distances are non-negative integers: exact edit counts
// for the edit family, and real distances quantized by ×1000 for the
// normalized families, so one transport type carries both.
package algorithms

import (
	"math"

	"github.com/standardbeagle/textsim/internal/config"
	"github.com/standardbeagle/textsim/internal/tokenize"
	"github.com/standardbeagle/textsim/internal/unicode"
)

// SimilarityFunc computes a normalized similarity in [0, 1].
type SimilarityFunc func(s1, s2 unicode.Text, cfg config.Config) (float64, error)

// DistanceFunc computes a non-negative integer distance.
type DistanceFunc func(s1, s2 unicode.Text, cfg config.Config) (uint32, error)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// quantize converts a real distance to the integer transport form.
func quantize(d float64) uint32 {
	if d < 0 {
		return 0
	}
	return uint32(math.Round(d * 1000))
}

// editSimilarity normalizes an edit distance against the longer input.
func editSimilarity(distance uint32, maxLen int) float64 {
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(distance)/float64(maxLen)
}

// caseAdjusted lowercases the text when the configuration compares
// case-insensitively, so downstream token keys already collapse case.
func caseAdjusted(t unicode.Text, cfg config.Config) unicode.Text {
	if cfg.CaseSensitiveCompare() || t.IsEmpty() {
		return t
	}
	return t.ToLower()
}

// tokenKeys tokenizes the case-adjusted text and returns each token's UTF-8
// form, the key type the counters run on.
func tokenKeys(t unicode.Text, cfg config.Config) []string {
	tokens := tokenize.Tokens(caseAdjusted(t, cfg), cfg.Preprocessing, cfg.NGramSize)
	keys := make([]string, len(tokens))
	for i, tok := range tokens {
		keys[i] = tok.UTF8()
	}
	return keys
}

// similarityToDistance is the shared ×1000 conversion for the normalized
// kernels.
func similarityToDistance(sim SimilarityFunc) DistanceFunc {
	return func(s1, s2 unicode.Text, cfg config.Config) (uint32, error) {
		v, err := sim(s1, s2, cfg)
		if err != nil {
			return 0, err
		}
		return quantize(1 - v), nil
	}
}
