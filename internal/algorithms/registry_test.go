package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/textsim/internal/config"
	simerrors "github.com/standardbeagle/textsim/internal/errors"
	"github.com/standardbeagle/textsim/internal/unicode"
)

func TestRegistryResolvesAllBuiltins(t *testing.T) {
	r := NewRegistry()

	tags := r.Supported()
	require.Len(t, tags, config.AlgorithmCount)

	for i, tag := range tags {
		assert.Equal(t, config.Algorithm(i), tag, "tags list in boundary order")
		k, err := r.Resolve(tag)
		require.NoError(t, err)
		assert.NotNil(t, k.Similarity)
		assert.NotNil(t, k.Distance)
	}
}

func TestRegistryUnknownTag(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve(config.Algorithm(200))
	require.Error(t, err)
	assert.True(t, simerrors.IsCode(err, simerrors.CodeInvalidConfiguration))
	assert.False(t, r.Supports(config.Algorithm(200)))
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := NewRegistry()

	called := false
	r.Register(Kernel{
		Algorithm: config.Levenshtein,
		Similarity: func(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
			called = true
			return 0.5, nil
		},
		Distance: LevenshteinDistance,
	})

	k, err := r.Resolve(config.Levenshtein)
	require.NoError(t, err)
	v, err := k.Similarity(text("a"), text("b"), config.Default())
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 0.5, v)
}

func TestSymmetryMetadata(t *testing.T) {
	r := NewRegistry()

	for _, tag := range r.Supported() {
		k, err := r.Resolve(tag)
		require.NoError(t, err)
		if tag == config.Tversky {
			assert.False(t, k.Symmetric, "tversky weighting is directional")
		} else {
			assert.True(t, k.Symmetric, "%v", tag)
		}
	}
}

func TestNormalizedDistanceQuantization(t *testing.T) {
	r := NewRegistry()

	k, err := r.Resolve(config.Jaro)
	require.NoError(t, err)

	sim, err := k.Similarity(text("martha"), text("marhta"), config.Default())
	require.NoError(t, err)
	d, err := k.Distance(text("martha"), text("marhta"), config.Default())
	require.NoError(t, err)

	assert.Equal(t, uint32(56), d, "distance is (1−sim)×1000 rounded")
	assert.InDelta(t, float64(d)/1000, 1-sim, 0.0005)
}
