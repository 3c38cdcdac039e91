// Package textsim computes string similarity and distance over Unicode
// text under a uniform configuration model. Thirteen algorithms in three
// families share one engine: edit-based (Levenshtein, Damerau-Levenshtein/
// OSA, Hamming), alignment-based (Jaro, Jaro-Winkler), and set/vector-based
// over token multisets (Jaccard, Sørensen-Dice, Overlap, Tversky, Cosine,
// Euclidean, Manhattan, Chebyshev).
//
// The engine accepts raw strings, an algorithm tag, and an optional
// per-call configuration overlay, and returns either a similarity in
// [0, 1] or a non-negative integer distance. Vector-family distances are
// real values quantized by ×1000 so a single integer type carries every
// distance. Results for a given configuration snapshot are deterministic;
// similarity results are cached, distances are recomputed on every call.
//
//	engine := textsim.New()
//	defer engine.Close()
//	sim, err := engine.Similarity("kitten", "sitting", textsim.Levenshtein, nil)
package textsim

import (
	"github.com/standardbeagle/textsim/internal/config"
	simerrors "github.com/standardbeagle/textsim/internal/errors"
	"github.com/standardbeagle/textsim/internal/tokenize"
)

// Algorithm identifies one of the supported kernels. The numeric tags are
// stable across the host boundary.
type Algorithm = config.Algorithm

// Supported algorithm tags, in boundary order 0..12.
const (
	Levenshtein        = config.Levenshtein
	DamerauLevenshtein = config.DamerauLevenshtein
	Hamming            = config.Hamming
	Jaro               = config.Jaro
	JaroWinkler        = config.JaroWinkler
	Jaccard            = config.Jaccard
	SorensenDice       = config.SorensenDice
	Overlap            = config.Overlap
	Tversky            = config.Tversky
	Cosine             = config.Cosine
	Euclidean          = config.Euclidean
	Manhattan          = config.Manhattan
	Chebyshev          = config.Chebyshev
)

// Preprocessing selects the tokenization mode for the set and vector
// families.
type Preprocessing = tokenize.Mode

// Preprocessing modes.
const (
	PreprocessingNone      = tokenize.None
	PreprocessingCharacter = tokenize.Character
	PreprocessingWord      = tokenize.Word
	PreprocessingNGram     = tokenize.NGram
)

// CaseSensitivity selects how code points compare.
type CaseSensitivity = config.CaseSensitivity

// Case modes.
const (
	CaseSensitive   = config.CaseSensitive
	CaseInsensitive = config.CaseInsensitive
)

// Config is a fully resolved configuration; Overlay is a partial one whose
// nil fields defer to the layer below.
type (
	Config  = config.Config
	Overlay = config.Overlay
)

// DefaultConfig returns the engine defaults: Levenshtein over characters,
// case-sensitive, bigrams.
func DefaultConfig() Config { return config.Default() }

// LoadConfigFile reads a configuration overlay from a TOML file.
func LoadConfigFile(path string) (*Overlay, error) { return config.LoadFile(path) }

// ErrorCode classifies engine failures.
type ErrorCode = simerrors.Code

// Error codes.
const (
	ErrInvalidInput         = simerrors.CodeInvalidInput
	ErrInvalidConfiguration = simerrors.CodeInvalidConfiguration
	ErrComputationOverflow  = simerrors.CodeComputationOverflow
	ErrThreadingError       = simerrors.CodeThreadingError
	ErrUnknown              = simerrors.CodeUnknown
)

// CodeOf extracts the ErrorCode from an engine error.
func CodeOf(err error) ErrorCode { return simerrors.CodeOf(err) }

// ParseAlgorithm resolves a case-insensitive algorithm name. Hyphenated
// and camel-cased spellings are accepted, plus the alias "dice" for
// Sørensen-Dice.
func ParseAlgorithm(name string) (Algorithm, bool) { return config.ParseAlgorithm(name) }

// AlgorithmName returns the canonical hyphenated name for a tag.
func AlgorithmName(a Algorithm) string { return a.String() }

// AlgorithmInfo pairs a tag with its canonical name for introspection.
type AlgorithmInfo struct {
	Type Algorithm `json:"type"`
	Name string    `json:"name"`
}
