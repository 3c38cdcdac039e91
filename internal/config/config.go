// Package config holds the typed configuration every similarity call runs
// under: the algorithm selection, tokenization mode, case handling, and the
// optional per-algorithm parameters. Optional fields are pointers so a
// value explicitly set by the caller is distinguishable from one that was
// never provided — an explicitly set field always wins a merge, even when
// it equals a default.
package config

import (
	"strings"

	"github.com/standardbeagle/textsim/internal/tokenize"
)

// Algorithm identifies one of the thirteen kernels. The numeric values are
// part of the host boundary contract and must not be reordered.
type Algorithm uint8

const (
	Levenshtein Algorithm = iota
	DamerauLevenshtein
	Hamming
	Jaro
	JaroWinkler
	Jaccard
	SorensenDice
	Overlap
	Tversky
	Cosine
	Euclidean
	Manhattan
	Chebyshev

	algorithmCount
)

// AlgorithmCount is the number of supported algorithms.
const AlgorithmCount = int(algorithmCount)

// Valid reports whether a names a supported kernel.
func (a Algorithm) Valid() bool { return a < algorithmCount }

// String returns the canonical hyphenated name.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return algorithmNames[a]
}

var algorithmNames = [algorithmCount]string{
	Levenshtein:        "levenshtein",
	DamerauLevenshtein: "damerau-levenshtein",
	Hamming:            "hamming",
	Jaro:               "jaro",
	JaroWinkler:        "jaro-winkler",
	Jaccard:            "jaccard",
	SorensenDice:       "sorensen-dice",
	Overlap:            "overlap",
	Tversky:            "tversky",
	Cosine:             "cosine",
	Euclidean:          "euclidean",
	Manhattan:          "manhattan",
	Chebyshev:          "chebyshev",
}

// algorithmAliases accepts the camel-cased and shorthand spellings the host
// boundary has always taken alongside the canonical names.
var algorithmAliases = map[string]Algorithm{
	"dameraulevenshtein": DamerauLevenshtein,
	"jarowinkler":        JaroWinkler,
	"sorensendice":       SorensenDice,
	"dice":               SorensenDice,
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == lower {
			return Algorithm(a), true
		}
	}
	if a, ok := algorithmAliases[lower]; ok {
		return a, true
	}
	return 0, false
}

// CaseSensitivity selects how code points compare.
type CaseSensitivity uint8

const (
	CaseSensitive CaseSensitivity = iota
	CaseInsensitive
)

// String returns the canonical mode name.
func (c CaseSensitivity) String() string {
	if c == CaseInsensitive {
		return "insensitive"
	}
	return "sensitive"
}

// Defaults applied when an optional field is absent.
const (
	DefaultNGramSize       = 2
	DefaultJaroThreshold   = 0.7
	DefaultPrefixWeight    = 0.1
	DefaultPrefixLength    = 4
	DefaultMaxStringLength = 100000 // bytes of UTF-8 per input string
)

// Config is a fully resolved configuration for one call. Required fields
// hold concrete values; optional parameters stay nil until some layer sets
// them.
type Config struct {
	Algorithm       Algorithm
	Preprocessing   tokenize.Mode
	CaseSensitivity CaseSensitivity
	NGramSize       int

	Threshold       *float64 // edit-kernel band / Jaro-Winkler floor
	Alpha           *float64 // Tversky
	Beta            *float64 // Tversky
	PrefixWeight    *float64 // Jaro-Winkler
	PrefixLength    *int     // Jaro-Winkler
	MaxStringLength *int     // bytes
}

// Default returns the engine defaults: Levenshtein over characters,
// case-sensitive, bigram size.
func Default() Config {
	return Config{
		Algorithm:       Levenshtein,
		Preprocessing:   tokenize.Character,
		CaseSensitivity: CaseSensitive,
		NGramSize:       DefaultNGramSize,
	}
}

// Clone deep-copies the configuration so an in-flight call cannot observe
// later reconfiguration.
func (c Config) Clone() Config {
	out := c
	out.Threshold = clonePtr(c.Threshold)
	out.Alpha = clonePtr(c.Alpha)
	out.Beta = clonePtr(c.Beta)
	out.PrefixWeight = clonePtr(c.PrefixWeight)
	out.PrefixLength = clonePtr(c.PrefixLength)
	out.MaxStringLength = clonePtr(c.MaxStringLength)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CaseSensitiveCompare reports whether code points compare exactly.
func (c Config) CaseSensitiveCompare() bool {
	return c.CaseSensitivity == CaseSensitive
}

// ThresholdOr returns the configured threshold or def when absent.
func (c Config) ThresholdOr(def float64) float64 {
	if c.Threshold != nil {
		return *c.Threshold
	}
	return def
}

// EffectivePrefixWeight is the Jaro-Winkler prefix weight clamped to
// [0, 0.25].
func (c Config) EffectivePrefixWeight() float64 {
	w := DefaultPrefixWeight
	if c.PrefixWeight != nil {
		w = *c.PrefixWeight
	}
	if w < 0 {
		return 0
	}
	if w > 0.25 {
		return 0.25
	}
	return w
}

// EffectivePrefixLength is the Jaro-Winkler prefix cap, default 4.
func (c Config) EffectivePrefixLength() int {
	if c.PrefixLength != nil {
		return *c.PrefixLength
	}
	return DefaultPrefixLength
}

// EffectiveMaxStringLength is the per-string input byte limit.
func (c Config) EffectiveMaxStringLength() int {
	if c.MaxStringLength != nil {
		return *c.MaxStringLength
	}
	return DefaultMaxStringLength
}

// Overlay is a partial configuration; nil fields leave the layer below
// untouched. Required fields are pointers here so "explicitly set to the
// default" survives the merge.
type Overlay struct {
	Algorithm       *Algorithm
	Preprocessing   *tokenize.Mode
	CaseSensitivity *CaseSensitivity
	NGramSize       *int
	Threshold       *float64
	Alpha           *float64
	Beta            *float64
	PrefixWeight    *float64
	PrefixLength    *int
	MaxStringLength *int
}

// Merge layers overlays over base, later layers winning. The result is a
// detached copy; neither base nor the overlays are modified.
func Merge(base Config, layers ...*Overlay) Config {
	merged := base.Clone()
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if layer.Algorithm != nil {
			merged.Algorithm = *layer.Algorithm
		}
		if layer.Preprocessing != nil {
			merged.Preprocessing = *layer.Preprocessing
		}
		if layer.CaseSensitivity != nil {
			merged.CaseSensitivity = *layer.CaseSensitivity
		}
		if layer.NGramSize != nil {
			merged.NGramSize = *layer.NGramSize
		}
		if layer.Threshold != nil {
			merged.Threshold = clonePtr(layer.Threshold)
		}
		if layer.Alpha != nil {
			merged.Alpha = clonePtr(layer.Alpha)
		}
		if layer.Beta != nil {
			merged.Beta = clonePtr(layer.Beta)
		}
		if layer.PrefixWeight != nil {
			merged.PrefixWeight = clonePtr(layer.PrefixWeight)
		}
		if layer.PrefixLength != nil {
			merged.PrefixLength = clonePtr(layer.PrefixLength)
		}
		if layer.MaxStringLength != nil {
			merged.MaxStringLength = clonePtr(layer.MaxStringLength)
		}
	}
	return merged
}
