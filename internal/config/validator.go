package config

import (
	simerrors "github.com/standardbeagle/textsim/internal/errors"
)

// Validator checks a merged configuration before dispatch.
type Validator struct{}

// NewValidator creates a configuration validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the merged configuration against the per-algorithm rules.
// Failures are InvalidConfiguration errors.
func (v *Validator) Validate(cfg Config) error {
	if !cfg.Algorithm.Valid() {
		return simerrors.NewInvalidConfigurationf("unsupported algorithm tag %d", cfg.Algorithm)
	}

	if cfg.NGramSize <= 0 {
		return simerrors.NewInvalidConfigurationf("ngram size must be positive, got %d", cfg.NGramSize)
	}

	if cfg.Threshold != nil && *cfg.Threshold < 0 {
		return simerrors.NewInvalidConfigurationf("threshold must be non-negative, got %v", *cfg.Threshold)
	}

	if cfg.MaxStringLength != nil && *cfg.MaxStringLength < 0 {
		return simerrors.NewInvalidConfigurationf("max string length must be non-negative, got %d", *cfg.MaxStringLength)
	}

	if err := v.validateTversky(cfg); err != nil {
		return err
	}

	return v.validateJaroWinkler(cfg)
}

func (v *Validator) validateTversky(cfg Config) error {
	if cfg.Algorithm != Tversky {
		return nil
	}

	if cfg.Alpha == nil || cfg.Beta == nil {
		return simerrors.NewInvalidConfiguration("tversky requires alpha and beta parameters")
	}

	if *cfg.Alpha < 0 {
		return simerrors.NewInvalidConfigurationf("tversky alpha must be non-negative, got %v", *cfg.Alpha)
	}

	if *cfg.Beta < 0 {
		return simerrors.NewInvalidConfigurationf("tversky beta must be non-negative, got %v", *cfg.Beta)
	}

	return nil
}

func (v *Validator) validateJaroWinkler(cfg Config) error {
	if cfg.Algorithm != JaroWinkler {
		return nil
	}

	if cfg.PrefixWeight != nil && (*cfg.PrefixWeight < 0 || *cfg.PrefixWeight > 0.25) {
		return simerrors.NewInvalidConfigurationf("prefix weight must be in [0, 0.25], got %v", *cfg.PrefixWeight)
	}

	if cfg.PrefixLength != nil && (*cfg.PrefixLength < 0 || *cfg.PrefixLength > 4) {
		return simerrors.NewInvalidConfigurationf("prefix length must be in [0, 4], got %d", *cfg.PrefixLength)
	}

	return nil
}
