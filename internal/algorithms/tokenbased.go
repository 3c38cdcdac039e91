package algorithms

import (
	"github.com/standardbeagle/textsim/internal/config"
	simerrors "github.com/standardbeagle/textsim/internal/errors"
	"github.com/standardbeagle/textsim/internal/multiset"
	"github.com/standardbeagle/textsim/internal/tokenize"
	"github.com/standardbeagle/textsim/internal/unicode"
)

// tokenCounters tokenizes both inputs and builds their multisets.
func tokenCounters(s1, s2 unicode.Text, cfg config.Config) (*multiset.Counter[string], *multiset.Counter[string]) {
	return multiset.FromSlice(tokenKeys(s1, cfg)), multiset.FromSlice(tokenKeys(s2, cfg))
}

// emptyBagAnswer resolves the shared edge cases: both token bags empty
// means identical (1), exactly one empty means disjoint (0).
func emptyBagAnswer(e1, e2 bool) (float64, bool) {
	if e1 && e2 {
		return 1, true
	}
	if e1 || e2 {
		return 0, true
	}
	return 0, false
}

// JaccardSimilarity uses set semantics under Word preprocessing and
// multiset (Ruzicka) semantics under Character and NGram, matching the
// historical behavior: repeated words deduplicate, repeated n-grams count.
func JaccardSimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	if cfg.Preprocessing == tokenize.Word {
		return jaccardSets(tokenKeys(s1, cfg), tokenKeys(s2, cfg)), nil
	}

	c1, c2 := tokenCounters(s1, s2, cfg)
	if v, ok := emptyBagAnswer(c1.IsEmpty(), c2.IsEmpty()); ok {
		return v, nil
	}

	interCount := c1.Intersect(c2).TotalCount()
	unionCount := c1.Union(c2).TotalCount()
	if unionCount == 0 {
		return 0, nil
	}
	return float64(interCount) / float64(unionCount), nil
}

func jaccardSets(keys1, keys2 []string) float64 {
	set1 := make(map[string]struct{}, len(keys1))
	for _, k := range keys1 {
		set1[k] = struct{}{}
	}
	set2 := make(map[string]struct{}, len(keys2))
	for _, k := range keys2 {
		set2[k] = struct{}{}
	}

	if v, ok := emptyBagAnswer(len(set1) == 0, len(set2) == 0); ok {
		return v
	}

	small, large := set1, set2
	if len(large) < len(small) {
		small, large = large, small
	}
	intersection := 0
	for k := range small {
		if _, ok := large[k]; ok {
			intersection++
		}
	}

	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// DiceSimilarity is 2·|A∩B| / (|A|+|B|) over token multisets.
func DiceSimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	c1, c2 := tokenCounters(s1, s2, cfg)
	if v, ok := emptyBagAnswer(c1.IsEmpty(), c2.IsEmpty()); ok {
		return v, nil
	}

	interCount := c1.Intersect(c2).TotalCount()
	total := c1.TotalCount() + c2.TotalCount()
	if total == 0 {
		return 0, nil
	}
	return 2 * float64(interCount) / float64(total), nil
}

// OverlapSimilarity is |A∩B| / min(|A|, |B|) over token multisets.
func OverlapSimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	c1, c2 := tokenCounters(s1, s2, cfg)
	if v, ok := emptyBagAnswer(c1.IsEmpty(), c2.IsEmpty()); ok {
		return v, nil
	}

	interCount := c1.Intersect(c2).TotalCount()
	minTotal := min(c1.TotalCount(), c2.TotalCount())
	if minTotal == 0 {
		return 0, nil
	}
	return float64(interCount) / float64(minTotal), nil
}

// TverskySimilarity is c / (c + α·|A−B| + β·|B−A|). Alpha and beta are
// required by validation; the check here is the kernel's own guard for
// direct invocation.
func TverskySimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	if cfg.Alpha == nil || cfg.Beta == nil {
		return 0, simerrors.NewInvalidConfiguration("tversky requires alpha and beta parameters")
	}
	alpha, beta := *cfg.Alpha, *cfg.Beta

	c1, c2 := tokenCounters(s1, s2, cfg)
	if v, ok := emptyBagAnswer(c1.IsEmpty(), c2.IsEmpty()); ok {
		return v, nil
	}

	interCount := float64(c1.Intersect(c2).TotalCount())
	onlyA := float64(c1.TotalCount()) - interCount
	onlyB := float64(c2.TotalCount()) - interCount

	denominator := interCount + alpha*onlyA + beta*onlyB
	if denominator == 0 {
		return 0, nil
	}
	return interCount / denominator, nil
}
