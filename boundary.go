package textsim

import (
	"math"

	"github.com/standardbeagle/textsim/internal/config"
	simerrors "github.com/standardbeagle/textsim/internal/errors"
	"github.com/standardbeagle/textsim/internal/tokenize"
)

// The host boundary mirrors the engine's value contract for callers that
// marshal across a runtime boundary: plain records instead of Go errors,
// integer tags instead of typed enums, and loosely-typed config maps with
// unknown keys ignored.

// BoundaryError is the error record carried by an unsuccessful result.
type BoundaryError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// SimilarityResult is the boundary record for a similarity call.
type SimilarityResult struct {
	Success bool           `json:"success"`
	Value   *float64       `json:"value,omitempty"`
	Error   *BoundaryError `json:"error,omitempty"`
}

// DistanceResult is the boundary record for a distance call. For the
// vector family the value is the real distance ×1000 rounded; divide by
// 1000 for real units.
type DistanceResult struct {
	Success bool           `json:"success"`
	Value   *uint32        `json:"value,omitempty"`
	Error   *BoundaryError `json:"error,omitempty"`
}

func boundaryError(err error) *BoundaryError {
	return &BoundaryError{Message: err.Error(), Code: simerrors.CodeOf(err).String()}
}

func similarityResult(v float64, err error) SimilarityResult {
	if err != nil {
		return SimilarityResult{Error: boundaryError(err)}
	}
	return SimilarityResult{Success: true, Value: &v}
}

func distanceResult(v uint32, err error) DistanceResult {
	if err != nil {
		return DistanceResult{Error: boundaryError(err)}
	}
	return DistanceResult{Success: true, Value: &v}
}

// resolveBoundaryAlgorithm checks the integer tag range; out-of-range tags
// answer with InvalidConfiguration rather than a host-level rejection.
func resolveBoundaryAlgorithm(tag int) (Algorithm, error) {
	if tag < 0 || tag >= config.AlgorithmCount {
		return 0, simerrors.NewInvalidConfigurationf("algorithm tag %d out of range 0..%d", tag, config.AlgorithmCount-1)
	}
	return Algorithm(tag), nil
}

// CalculateSimilarity is the boundary form of Engine.Similarity taking an
// integer algorithm tag and an optional config map.
func (e *Engine) CalculateSimilarity(s1, s2 string, algorithmTag int, configMap map[string]any) SimilarityResult {
	alg, err := resolveBoundaryAlgorithm(algorithmTag)
	if err != nil {
		return SimilarityResult{Error: boundaryError(err)}
	}
	overlay, err := ConfigFromMap(configMap)
	if err != nil {
		return SimilarityResult{Error: boundaryError(err)}
	}
	return similarityResult(e.Similarity(s1, s2, alg, overlay))
}

// CalculateDistance is the boundary form of Engine.Distance.
func (e *Engine) CalculateDistance(s1, s2 string, algorithmTag int, configMap map[string]any) DistanceResult {
	alg, err := resolveBoundaryAlgorithm(algorithmTag)
	if err != nil {
		return DistanceResult{Error: boundaryError(err)}
	}
	overlay, err := ConfigFromMap(configMap)
	if err != nil {
		return DistanceResult{Error: boundaryError(err)}
	}
	return distanceResult(e.Distance(s1, s2, alg, overlay))
}

// CalculateSimilarityBatch runs the boundary batch: a same-length,
// positionally aligned result array.
func (e *Engine) CalculateSimilarityBatch(pairs [][2]string, algorithmTag int, configMap map[string]any) []SimilarityResult {
	out := make([]SimilarityResult, len(pairs))

	alg, err := resolveBoundaryAlgorithm(algorithmTag)
	if err != nil {
		for i := range out {
			out[i] = SimilarityResult{Error: boundaryError(err)}
		}
		return out
	}
	overlay, err := ConfigFromMap(configMap)
	if err != nil {
		for i := range out {
			out[i] = SimilarityResult{Error: boundaryError(err)}
		}
		return out
	}

	batch := make([]Pair, len(pairs))
	for i, p := range pairs {
		batch[i] = Pair{S1: p[0], S2: p[1]}
	}
	for i, outcome := range e.SimilarityBatch(batch, alg, overlay) {
		out[i] = similarityResult(outcome.Value, outcome.Err)
	}
	return out
}

// GlobalConfigSnapshot returns the global configuration as a boundary map.
// Required fields are always present; optional fields appear only when
// set.
func (e *Engine) GlobalConfigSnapshot() map[string]any {
	cfg := e.GlobalConfig()

	snapshot := map[string]any{
		"algorithm":       int(cfg.Algorithm),
		"preprocessing":   int(cfg.Preprocessing),
		"caseSensitivity": int(cfg.CaseSensitivity),
		"ngramSize":       cfg.NGramSize,
	}
	if cfg.Threshold != nil {
		snapshot["threshold"] = *cfg.Threshold
	}
	if cfg.Alpha != nil {
		snapshot["alpha"] = *cfg.Alpha
	}
	if cfg.Beta != nil {
		snapshot["beta"] = *cfg.Beta
	}
	if cfg.PrefixWeight != nil {
		snapshot["prefixWeight"] = *cfg.PrefixWeight
	}
	if cfg.PrefixLength != nil {
		snapshot["prefixLength"] = *cfg.PrefixLength
	}
	if cfg.MaxStringLength != nil {
		snapshot["maxStringLength"] = *cfg.MaxStringLength
	}
	return snapshot
}

// ConfigFromMap builds an overlay from the boundary's loosely-typed config
// mapping. Unknown keys are ignored; recognized keys with the wrong type
// are InvalidConfiguration errors. A nil map yields a nil overlay.
func ConfigFromMap(m map[string]any) (*Overlay, error) {
	if m == nil {
		return nil, nil
	}

	overlay := &Overlay{}

	if raw, ok := m["algorithm"]; ok {
		switch v := raw.(type) {
		case string:
			alg, ok := ParseAlgorithm(v)
			if !ok {
				return nil, simerrors.NewInvalidConfigurationf("unknown algorithm %q", v)
			}
			overlay.Algorithm = &alg
		default:
			tag, ok := asInt(raw)
			if !ok {
				return nil, simerrors.NewInvalidConfiguration("algorithm must be an integer tag or name")
			}
			alg, err := resolveBoundaryAlgorithm(tag)
			if err != nil {
				return nil, err
			}
			overlay.Algorithm = &alg
		}
	}

	if raw, ok := m["preprocessing"]; ok {
		v, ok := asInt(raw)
		if !ok || v < int(tokenize.None) || v > int(tokenize.NGram) {
			return nil, simerrors.NewInvalidConfigurationf("preprocessing mode %v out of range 0..3", raw)
		}
		mode := tokenize.Mode(v)
		overlay.Preprocessing = &mode
	}

	if raw, ok := m["caseSensitivity"]; ok {
		v, ok := asInt(raw)
		if !ok || v < 0 || v > 1 {
			return nil, simerrors.NewInvalidConfigurationf("case sensitivity %v out of range 0..1", raw)
		}
		cs := CaseSensitivity(v)
		overlay.CaseSensitivity = &cs
	}

	if raw, ok := m["ngramSize"]; ok {
		v, ok := asInt(raw)
		if !ok {
			return nil, simerrors.NewInvalidConfiguration("ngramSize must be an integer")
		}
		overlay.NGramSize = &v
	}

	for key, dst := range map[string]**float64{
		"threshold":    &overlay.Threshold,
		"alpha":        &overlay.Alpha,
		"beta":         &overlay.Beta,
		"prefixWeight": &overlay.PrefixWeight,
	} {
		raw, ok := m[key]
		if !ok {
			continue
		}
		v, ok := asFloat(raw)
		if !ok {
			return nil, simerrors.NewInvalidConfigurationf("%s must be a number", key)
		}
		*dst = &v
	}

	for key, dst := range map[string]**int{
		"prefixLength":    &overlay.PrefixLength,
		"maxStringLength": &overlay.MaxStringLength,
	} {
		raw, ok := m[key]
		if !ok {
			continue
		}
		v, ok := asInt(raw)
		if !ok {
			return nil, simerrors.NewInvalidConfigurationf("%s must be an integer", key)
		}
		*dst = &v
	}

	return overlay, nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint32:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
