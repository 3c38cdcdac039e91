package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	simerrors "github.com/standardbeagle/textsim/internal/errors"
	"github.com/standardbeagle/textsim/internal/tokenize"
)

// fileConfig is the TOML shape for process-level engine defaults:
//
//	algorithm = "jaro-winkler"
//	preprocessing = "ngram"
//	case-sensitivity = "insensitive"
//	ngram-size = 3
//	[parameters]
//	threshold = 0.75
//	prefix-weight = 0.1
type fileConfig struct {
	Algorithm       string         `toml:"algorithm"`
	Preprocessing   string         `toml:"preprocessing"`
	CaseSensitivity string         `toml:"case-sensitivity"`
	NGramSize       *int           `toml:"ngram-size"`
	Parameters      fileParameters `toml:"parameters"`
}

type fileParameters struct {
	Threshold       *float64 `toml:"threshold"`
	Alpha           *float64 `toml:"alpha"`
	Beta            *float64 `toml:"beta"`
	PrefixWeight    *float64 `toml:"prefix-weight"`
	PrefixLength    *int     `toml:"prefix-length"`
	MaxStringLength *int     `toml:"max-string-length"`
}

// LoadFile reads an Overlay from a TOML file. Absent keys stay nil so the
// overlay only overrides what the file names.
func LoadFile(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, simerrors.NewInvalidConfigurationf("read config file %s: %v", path, err)
	}
	return parseFile(data)
}

func parseFile(data []byte) (*Overlay, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, simerrors.NewInvalidConfiguration(fmt.Sprintf("parse config file: %v", err))
	}

	overlay := &Overlay{
		NGramSize:       fc.NGramSize,
		Threshold:       fc.Parameters.Threshold,
		Alpha:           fc.Parameters.Alpha,
		Beta:            fc.Parameters.Beta,
		PrefixWeight:    fc.Parameters.PrefixWeight,
		PrefixLength:    fc.Parameters.PrefixLength,
		MaxStringLength: fc.Parameters.MaxStringLength,
	}

	if fc.Algorithm != "" {
		alg, ok := ParseAlgorithm(fc.Algorithm)
		if !ok {
			return nil, simerrors.NewInvalidConfigurationf("unknown algorithm %q", fc.Algorithm)
		}
		overlay.Algorithm = &alg
	}

	if fc.Preprocessing != "" {
		mode, ok := parsePreprocessing(fc.Preprocessing)
		if !ok {
			return nil, simerrors.NewInvalidConfigurationf("unknown preprocessing mode %q", fc.Preprocessing)
		}
		overlay.Preprocessing = &mode
	}

	if fc.CaseSensitivity != "" {
		cs, ok := parseCaseSensitivity(fc.CaseSensitivity)
		if !ok {
			return nil, simerrors.NewInvalidConfigurationf("unknown case sensitivity %q", fc.CaseSensitivity)
		}
		overlay.CaseSensitivity = &cs
	}

	return overlay, nil
}

func parsePreprocessing(name string) (tokenize.Mode, bool) {
	switch name {
	case "none":
		return tokenize.None, true
	case "character":
		return tokenize.Character, true
	case "word":
		return tokenize.Word, true
	case "ngram":
		return tokenize.NGram, true
	}
	return 0, false
}

func parseCaseSensitivity(name string) (CaseSensitivity, bool) {
	switch name {
	case "sensitive":
		return CaseSensitive, true
	case "insensitive":
		return CaseInsensitive, true
	}
	return 0, false
}
