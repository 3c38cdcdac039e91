package textsim

import (
	"testing"

	"github.com/hbollon/go-edlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xrash/smetrics"
)

// Reference checks against independent implementations keep the kernels
// honest on well-behaved ASCII input. Tolerances absorb edlib's float32
// arithmetic.

var crosscheckPairs = [][2]string{
	{"kitten", "sitting"},
	{"hello", "hallo"},
	{"martha", "marhta"},
	{"dixon", "dicksonx"},
	{"getUserName", "getUserNme"},
	{"XMLHttpRequest", "XmlHttpReqest"},
	{"identical", "identical"},
}

func TestLevenshteinMatchesEdlib(t *testing.T) {
	e := newTestEngine(t)

	for _, p := range crosscheckPairs {
		want := edlib.LevenshteinDistance(p[0], p[1])
		got, err := e.Distance(p[0], p[1], Levenshtein, nil)
		require.NoError(t, err)
		assert.Equal(t, uint32(want), got, "%q vs %q", p[0], p[1])
	}
}

func TestLevenshteinSimilarityMatchesEdlib(t *testing.T) {
	e := newTestEngine(t)

	for _, p := range crosscheckPairs {
		want, err := edlib.StringsSimilarity(p[0], p[1], edlib.Levenshtein)
		require.NoError(t, err)

		got, gotErr := e.Similarity(p[0], p[1], Levenshtein, nil)
		require.NoError(t, gotErr)
		assert.InDelta(t, float64(want), got, 0.001, "%q vs %q", p[0], p[1])
	}
}

func TestLevenshteinMatchesWagnerFischer(t *testing.T) {
	e := newTestEngine(t)

	for _, p := range crosscheckPairs {
		want := smetrics.WagnerFischer(p[0], p[1], 1, 1, 1)
		got, err := e.Distance(p[0], p[1], Levenshtein, nil)
		require.NoError(t, err)
		assert.Equal(t, uint32(want), got, "%q vs %q", p[0], p[1])
	}
}

func TestJaroWinklerMatchesSmetrics(t *testing.T) {
	e := newTestEngine(t)

	for _, p := range crosscheckPairs {
		want := smetrics.JaroWinkler(p[0], p[1], 0.7, 4)
		got, err := e.Similarity(p[0], p[1], JaroWinkler, nil)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 0.001, "%q vs %q", p[0], p[1])
	}
}

func BenchmarkSimilarityLevenshtein(b *testing.B) {
	e := New()
	defer e.Close()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = e.Similarity("AbstractFactoryPatternBuilder", "AbstactFactryPaternBuilder", Levenshtein, nil)
	}
}

func BenchmarkSimilarityLevenshteinUncached(b *testing.B) {
	e := New()
	defer e.Close()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.ClearCaches()
		_, _ = e.Similarity("AbstractFactoryPatternBuilder", "AbstactFactryPaternBuilder", Levenshtein, nil)
	}
}

func BenchmarkSimilarityJaroWinkler(b *testing.B) {
	e := New()
	defer e.Close()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.ClearCaches()
		_, _ = e.Similarity("XMLHttpRequest", "XmlHttpReqest", JaroWinkler, nil)
	}
}

func BenchmarkEdlibJaroWinklerReference(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = edlib.StringsSimilarity("XMLHttpRequest", "XmlHttpReqest", edlib.JaroWinkler)
	}
}

func BenchmarkCosineNGram(b *testing.B) {
	e := New()
	defer e.Close()

	ngram := PreprocessingNGram
	call := &Overlay{Preprocessing: &ngram}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.ClearCaches()
		_, _ = e.Similarity("the quick brown fox", "the quick brown dog", Cosine, call)
	}
}
