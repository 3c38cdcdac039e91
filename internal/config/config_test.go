package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/textsim/internal/tokenize"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		want Algorithm
	}{
		{"levenshtein", Levenshtein},
		{"LEVENSHTEIN", Levenshtein},
		{"damerau-levenshtein", DamerauLevenshtein},
		{"damerauLevenshtein", DamerauLevenshtein},
		{"hamming", Hamming},
		{"jaro", Jaro},
		{"jaro-winkler", JaroWinkler},
		{"jaroWinkler", JaroWinkler},
		{"jaccard", Jaccard},
		{"sorensen-dice", SorensenDice},
		{"sorensenDice", SorensenDice},
		{"dice", SorensenDice},
		{"tversky", Tversky},
		{"cosine", Cosine},
		{"euclidean", Euclidean},
		{"manhattan", Manhattan},
		{"chebyshev", Chebyshev},
		{" overlap ", Overlap},
	}

	for _, tt := range tests {
		got, ok := ParseAlgorithm(tt.name)
		require.True(t, ok, "%q must parse", tt.name)
		assert.Equal(t, tt.want, got, "%q", tt.name)
	}

	_, ok := ParseAlgorithm("soundex")
	assert.False(t, ok)
}

func TestAlgorithmNameRoundTrip(t *testing.T) {
	for tag := Algorithm(0); int(tag) < AlgorithmCount; tag++ {
		parsed, ok := ParseAlgorithm(tag.String())
		require.True(t, ok, "canonical name %q must parse", tag.String())
		assert.Equal(t, tag, parsed)
	}

	assert.Equal(t, "unknown", Algorithm(99).String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, Levenshtein, cfg.Algorithm)
	assert.Equal(t, tokenize.Character, cfg.Preprocessing)
	assert.Equal(t, CaseSensitive, cfg.CaseSensitivity)
	assert.Equal(t, DefaultNGramSize, cfg.NGramSize)
	assert.Nil(t, cfg.Threshold)
	assert.Equal(t, DefaultMaxStringLength, cfg.EffectiveMaxStringLength())
}

func TestCloneDetaches(t *testing.T) {
	cfg := Default()
	cfg.Threshold = floatPtr(0.5)

	clone := cfg.Clone()
	*clone.Threshold = 0.9

	assert.Equal(t, 0.5, *cfg.Threshold, "clone must not share pointers")
}

func TestMergeLayering(t *testing.T) {
	base := Default()

	insensitive := CaseInsensitive
	ngram := tokenize.NGram
	perAlg := &Overlay{Preprocessing: &ngram, NGramSize: intPtr(3)}
	call := &Overlay{CaseSensitivity: &insensitive, Threshold: floatPtr(0.8)}

	merged := Merge(base, perAlg, call)
	assert.Equal(t, tokenize.NGram, merged.Preprocessing)
	assert.Equal(t, 3, merged.NGramSize)
	assert.Equal(t, CaseInsensitive, merged.CaseSensitivity)
	require.NotNil(t, merged.Threshold)
	assert.Equal(t, 0.8, *merged.Threshold)

	// Base stays untouched.
	assert.Equal(t, tokenize.Character, base.Preprocessing)
	assert.Nil(t, base.Threshold)
}

func TestMergeExplicitDefaultWins(t *testing.T) {
	// A per-call field set to a default value still overrides the layer
	// below; absence, not value, decides the fallback.
	base := Default()
	base.CaseSensitivity = CaseInsensitive
	base.Preprocessing = tokenize.Word

	sensitive := CaseSensitive
	character := tokenize.Character
	call := &Overlay{CaseSensitivity: &sensitive, Preprocessing: &character}

	merged := Merge(base, call)
	assert.Equal(t, CaseSensitive, merged.CaseSensitivity)
	assert.Equal(t, tokenize.Character, merged.Preprocessing)
}

func TestMergeNilOverlay(t *testing.T) {
	base := Default()
	merged := Merge(base, nil, nil)
	assert.Equal(t, base.Algorithm, merged.Algorithm)
	assert.Equal(t, base.NGramSize, merged.NGramSize)
}

func TestMergeLaterLayerWins(t *testing.T) {
	first := &Overlay{Threshold: floatPtr(0.3)}
	second := &Overlay{Threshold: floatPtr(0.9)}

	merged := Merge(Default(), first, second)
	require.NotNil(t, merged.Threshold)
	assert.Equal(t, 0.9, *merged.Threshold)
}

func TestEffectiveAccessors(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.7, cfg.ThresholdOr(0.7))
	assert.Equal(t, DefaultPrefixWeight, cfg.EffectivePrefixWeight())
	assert.Equal(t, DefaultPrefixLength, cfg.EffectivePrefixLength())

	cfg.Threshold = floatPtr(0.4)
	cfg.PrefixWeight = floatPtr(0.9) // clamps to 0.25
	cfg.PrefixLength = intPtr(2)

	assert.Equal(t, 0.4, cfg.ThresholdOr(0.7))
	assert.Equal(t, 0.25, cfg.EffectivePrefixWeight())
	assert.Equal(t, 2, cfg.EffectivePrefixLength())

	cfg.PrefixWeight = floatPtr(-1)
	assert.Equal(t, 0.0, cfg.EffectivePrefixWeight())
}
