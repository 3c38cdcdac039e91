package algorithms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/textsim/internal/tokenize"
)

func TestCosineWordOrderInvariant(t *testing.T) {
	cfg := modeConfig(tokenize.Word, 2)

	sim, err := CosineSimilarity(text("hello world"), text("world hello"), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1.0, sim, "identical frequency maps short-circuit to exactly 1")
}

func TestCosineWordVectors(t *testing.T) {
	cfg := modeConfig(tokenize.Word, 2)

	// "a b" vs "a c": dot 1, norms √2 each.
	sim, err := CosineSimilarity(text("a b"), text("a c"), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sim, 1e-9)
}

func TestCosineCharacterASCII(t *testing.T) {
	cfg := modeConfig(tokenize.Character, 2)

	// Byte-frequency vectors: dot 2 over norms √3·√3.
	sim, err := CosineSimilarity(text("abc"), text("abd"), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, sim, 1e-9)

	// Frequency path counts repeats: "aab" = (2,1), "ab" = (1,1).
	sim, err = CosineSimilarity(text("aab"), text("ab"), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 3.0/math.Sqrt(10), sim, 1e-9)
}

func TestCosineCharacterASCIIFoldsCase(t *testing.T) {
	cfg := insensitive(modeConfig(tokenize.Character, 2))

	sim, err := CosineSimilarity(text("ABC"), text("abc"), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineCharacterPresenceSets(t *testing.T) {
	cfg := modeConfig(tokenize.Character, 2)

	// Non-ASCII input switches to distinct-code-point presence vectors:
	// |A∩B| / √(|A|·|B|). Repeats stop mattering.
	sim, err := CosineSimilarity(text("αβγ"), text("αβδ"), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, sim, 1e-9)

	sim, err = CosineSimilarity(text("ααβ"), text("αβ"), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9, "presence vectors ignore multiplicity")
}

func TestCosineEmptyRules(t *testing.T) {
	for _, mode := range []tokenize.Mode{tokenize.Character, tokenize.Word, tokenize.NGram} {
		cfg := modeConfig(mode, 2)

		sim, err := CosineSimilarity(text(""), text(""), cfg)
		require.NoError(t, err)
		assert.Equal(t, 1.0, sim, "mode %v", mode)

		sim, err = CosineSimilarity(text("abc"), text(""), cfg)
		require.NoError(t, err)
		assert.Zero(t, sim, "mode %v", mode)
	}
}

func TestEuclideanDistance(t *testing.T) {
	cfg := modeConfig(tokenize.Character, 2)

	// "abc" vs "abd": two unmatched terms → √2, quantized ×1000.
	d, err := EuclideanDistance(text("abc"), text("abd"), cfg)
	require.NoError(t, err)
	assert.Equal(t, uint32(1414), d)

	d, err = EuclideanDistance(text("same"), text("same"), cfg)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestEuclideanSimilarity(t *testing.T) {
	cfg := modeConfig(tokenize.Character, 2)

	sim, err := EuclideanSimilarity(text("abc"), text("abd"), cfg)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-1.414), sim, 1e-9, "similarity decays from the quantized distance")
}

func TestManhattanDistance(t *testing.T) {
	cfg := modeConfig(tokenize.Character, 2)

	d, err := ManhattanDistance(text("abc"), text("abd"), cfg)
	require.NoError(t, err)
	assert.Equal(t, uint32(2000), d)

	sim, err := ManhattanSimilarity(text("abc"), text("abd"), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, sim, 1e-9)
}

func TestChebyshevDistance(t *testing.T) {
	cfg := modeConfig(tokenize.Character, 2)

	d, err := ChebyshevDistance(text("abc"), text("abd"), cfg)
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), d)

	// "aaab" vs "b": the a-term difference dominates.
	d, err = ChebyshevDistance(text("aaab"), text("b"), cfg)
	require.NoError(t, err)
	assert.Equal(t, uint32(3000), d)

	sim, err := ChebyshevSimilarity(text("abc"), text("abd"), cfg)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-1), sim, 1e-9)
}

func TestLpWordMode(t *testing.T) {
	cfg := modeConfig(tokenize.Word, 2)

	// "red red blue" vs "red blue blue": per-term differences 1 and 1.
	d, err := ManhattanDistance(text("red red blue"), text("red blue blue"), cfg)
	require.NoError(t, err)
	assert.Equal(t, uint32(2000), d)

	d, err = EuclideanDistance(text("red red blue"), text("red blue blue"), cfg)
	require.NoError(t, err)
	assert.Equal(t, uint32(1414), d)
}

func TestLpNGramMode(t *testing.T) {
	cfg := modeConfig(tokenize.NGram, 2)

	// hello vs hallo bigrams differ in 4 terms (he, el, ha, al).
	d, err := ManhattanDistance(text("hello"), text("hallo"), cfg)
	require.NoError(t, err)
	assert.Equal(t, uint32(4000), d)
}
