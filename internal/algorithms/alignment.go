package algorithms

import (
	"github.com/standardbeagle/textsim/internal/config"
	"github.com/standardbeagle/textsim/internal/unicode"
)

// jaroCore computes the Jaro similarity over code points: greedy matching
// inside the window max(m1,m2)/2 − 1, then pairwise transposition counting
// halved by integer division.
func jaroCore(r1, r2 []rune, caseSensitive bool) float64 {
	m1, m2 := len(r1), len(r2)
	if m1 == 0 && m2 == 0 {
		return 1
	}
	if m1 == 0 || m2 == 0 {
		return 0
	}

	window := max(m1, m2)/2 - 1
	if window < 0 {
		window = 0
	}

	matched1 := make([]bool, m1)
	matched2 := make([]bool, m2)
	matches := 0

	for i := 0; i < m1; i++ {
		lo := max(0, i-window)
		hi := min(m2-1, i+window)
		for j := lo; j <= hi; j++ {
			if matched2[j] || !unicode.RunesEqual(r1[i], r2[j], caseSensitive) {
				continue
			}
			matched1[i] = true
			matched2[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	transpositions := 0
	k := 0
	for i := 0; i < m1; i++ {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if !unicode.RunesEqual(r1[i], r2[k], caseSensitive) {
			transpositions++
		}
		k++
	}
	transpositions /= 2

	m := float64(matches)
	sim := (m/float64(m1) + m/float64(m2) + (m-float64(transpositions))/m) / 3
	return clamp01(sim)
}

// JaroSimilarity is the plain Jaro score.
func JaroSimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	return jaroCore(s1.Runes(), s2.Runes(), cfg.CaseSensitiveCompare()), nil
}

// JaroWinklerSimilarity boosts Jaro by the common-prefix bonus once the
// base score clears the activation floor (config threshold, default 0.7).
func JaroWinklerSimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	caseSensitive := cfg.CaseSensitiveCompare()
	r1, r2 := s1.Runes(), s2.Runes()

	jaro := jaroCore(r1, r2, caseSensitive)
	if jaro < cfg.ThresholdOr(config.DefaultJaroThreshold) {
		return jaro, nil
	}

	maxPrefix := min(len(r1), len(r2), cfg.EffectivePrefixLength())
	prefix := 0
	for prefix < maxPrefix && unicode.RunesEqual(r1[prefix], r2[prefix], caseSensitive) {
		prefix++
	}

	weight := cfg.EffectivePrefixWeight()
	return clamp01(jaro + float64(prefix)*weight*(1-jaro)), nil
}
