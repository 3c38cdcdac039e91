package algorithms

import (
	"math"

	"github.com/standardbeagle/textsim/internal/config"
	"github.com/standardbeagle/textsim/internal/multiset"
	"github.com/standardbeagle/textsim/internal/tokenize"
	"github.com/standardbeagle/textsim/internal/unicode"
)

// CosineSimilarity has two regimes. Character preprocessing uses the
// optimized paths: a 256-bin byte-frequency vector when both inputs are
// ASCII, otherwise a distinct-code-point presence set where the score is
// |A∩B| / √(|A|·|B|). Word and NGram preprocessing use token-frequency
// vectors with an identical-map short circuit.
func CosineSimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	if cfg.Preprocessing == tokenize.Character {
		if v, ok := emptyBagAnswer(s1.IsEmpty(), s2.IsEmpty()); ok {
			return v, nil
		}
		a1, a2 := caseAdjusted(s1, cfg), caseAdjusted(s2, cfg)
		if unicode.IsASCII(a1.UTF8()) && unicode.IsASCII(a2.UTF8()) {
			return cosineASCII(a1.UTF8(), a2.UTF8(), !cfg.CaseSensitiveCompare()), nil
		}
		return cosinePresence(a1.Runes(), a2.Runes()), nil
	}

	v1 := multiset.VectorFromSlice(tokenKeys(s1, cfg))
	v2 := multiset.VectorFromSlice(tokenKeys(s2, cfg))
	return cosineVectors(v1, v2), nil
}

func cosineVectors(v1, v2 multiset.FrequencyVector[string]) float64 {
	if v, ok := emptyBagAnswer(v1.IsEmpty(), v2.IsEmpty()); ok {
		return v
	}

	// Identical frequency maps short-circuit to exactly 1, sidestepping
	// floating-point error on the norm product.
	if v1.Equal(v2.Counter) {
		return 1
	}

	mag1, mag2 := v1.Magnitude(), v2.Magnitude()
	if mag1 == 0 || mag2 == 0 {
		return 0
	}
	return clamp01(v1.Dot(v2) / (mag1 * mag2))
}

// cosineASCII computes cosine over 256-entry byte-frequency vectors. Under
// case-insensitive comparison the uppercase bins fold into the lowercase
// bins before the product.
func cosineASCII(s1, s2 string, foldCase bool) float64 {
	var freq1, freq2 [256]uint32
	for i := 0; i < len(s1); i++ {
		freq1[s1[i]]++
	}
	for i := 0; i < len(s2); i++ {
		freq2[s2[i]]++
	}

	if foldCase {
		for c := 'A'; c <= 'Z'; c++ {
			freq1[c+0x20] += freq1[c]
			freq1[c] = 0
			freq2[c+0x20] += freq2[c]
			freq2[c] = 0
		}
	}

	var dot, mag1sq, mag2sq float64
	for i := 0; i < 256; i++ {
		f1, f2 := float64(freq1[i]), float64(freq2[i])
		dot += f1 * f2
		mag1sq += f1 * f1
		mag2sq += f2 * f2
	}

	denominator := math.Sqrt(mag1sq * mag2sq)
	if denominator == 0 {
		return 0
	}
	return clamp01(dot / denominator)
}

// cosinePresence scores binary presence vectors of distinct code points.
func cosinePresence(r1, r2 []rune) float64 {
	set1 := make(map[rune]struct{}, len(r1))
	for _, r := range r1 {
		set1[r] = struct{}{}
	}
	set2 := make(map[rune]struct{}, len(r2))
	for _, r := range r2 {
		set2[r] = struct{}{}
	}

	small, large := set1, set2
	if len(large) < len(small) {
		small, large = large, small
	}
	intersection := 0
	for r := range small {
		if _, ok := large[r]; ok {
			intersection++
		}
	}

	denominator := math.Sqrt(float64(len(set1)) * float64(len(set2)))
	if denominator == 0 {
		return 0
	}
	return float64(intersection) / denominator
}

// lpDistance walks the union of keys with missing terms as zero and folds
// per-term differences through accumulate.
func lpDistance(s1, s2 unicode.Text, cfg config.Config, accumulate func(acc, diff float64) float64, finish func(acc float64) float64) float64 {
	v1 := multiset.VectorFromSlice(tokenKeys(s1, cfg))
	v2 := multiset.VectorFromSlice(tokenKeys(s2, cfg))

	var acc float64
	for _, key := range v1.UnionKeys(v2.Counter) {
		diff := math.Abs(float64(v1.Get(key)) - float64(v2.Get(key)))
		acc = accumulate(acc, diff)
	}
	return finish(acc)
}

// EuclideanDistance is the L2 distance over token frequencies, ×1000.
func EuclideanDistance(s1, s2 unicode.Text, cfg config.Config) (uint32, error) {
	d := lpDistance(s1, s2, cfg,
		func(acc, diff float64) float64 { return acc + diff*diff },
		math.Sqrt)
	return quantize(d), nil
}

// EuclideanSimilarity decays exponentially with the quantized distance.
func EuclideanSimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	d, err := EuclideanDistance(s1, s2, cfg)
	if err != nil {
		return 0, err
	}
	return math.Exp(-float64(d) / 1000), nil
}

// ManhattanDistance is the L1 distance over token frequencies, ×1000.
func ManhattanDistance(s1, s2 unicode.Text, cfg config.Config) (uint32, error) {
	d := lpDistance(s1, s2, cfg,
		func(acc, diff float64) float64 { return acc + diff },
		func(acc float64) float64 { return acc })
	return quantize(d), nil
}

// ManhattanSimilarity is 1 / (1 + d) on the quantized distance.
func ManhattanSimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	d, err := ManhattanDistance(s1, s2, cfg)
	if err != nil {
		return 0, err
	}
	return 1 / (1 + float64(d)/1000), nil
}

// ChebyshevDistance is the L∞ distance over token frequencies, ×1000.
func ChebyshevDistance(s1, s2 unicode.Text, cfg config.Config) (uint32, error) {
	d := lpDistance(s1, s2, cfg,
		math.Max,
		func(acc float64) float64 { return acc })
	return quantize(d), nil
}

// ChebyshevSimilarity decays exponentially with the quantized distance.
func ChebyshevSimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	d, err := ChebyshevDistance(s1, s2, cfg)
	if err != nil {
		return 0, err
	}
	return math.Exp(-float64(d) / 1000), nil
}
