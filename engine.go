package textsim

import (
	"encoding/binary"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/standardbeagle/textsim/internal/algorithms"
	"github.com/standardbeagle/textsim/internal/cache"
	"github.com/standardbeagle/textsim/internal/config"
	"github.com/standardbeagle/textsim/internal/debug"
	simerrors "github.com/standardbeagle/textsim/internal/errors"
	"github.com/standardbeagle/textsim/internal/executor"
	"github.com/standardbeagle/textsim/internal/unicode"
)

// Engine is the entry point for all similarity and distance computation.
// It owns the kernel registry, the result cache, the configuration layers,
// and the worker pool behind the async entry points. Safe for concurrent
// use.
type Engine struct {
	registry  *algorithms.Registry
	cache     *cache.Cache
	pool      *executor.Pool
	validator *config.Validator

	configMu     sync.RWMutex
	global       config.Config
	perAlgorithm map[config.Algorithm]*config.Overlay

	totalOps  atomic.Int64
	cacheHits atomic.Int64
	closed    atomic.Bool
}

// Option configures a new Engine.
type Option func(*engineOptions)

type engineOptions struct {
	workers    int
	maxEntries int
	ttl        time.Duration
	global     *config.Config
}

// WithWorkers sets the async worker pool size. Values below one select the
// logical core count.
func WithWorkers(n int) Option {
	return func(o *engineOptions) { o.workers = n }
}

// WithCacheBounds overrides the result cache's entry cap and TTL.
func WithCacheBounds(maxEntries int, ttl time.Duration) Option {
	return func(o *engineOptions) { o.maxEntries = maxEntries; o.ttl = ttl }
}

// WithGlobalConfig sets the initial global configuration.
func WithGlobalConfig(cfg Config) Option {
	return func(o *engineOptions) { c := cfg.Clone(); o.global = &c }
}

// New creates an engine with the default registry, cache bounds, and a
// worker pool sized to the machine.
func New(opts ...Option) *Engine {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	global := config.Default()
	if o.global != nil {
		global = *o.global
	}

	return &Engine{
		registry:     algorithms.NewRegistry(),
		cache:        cache.New(o.maxEntries, o.ttl),
		pool:         executor.NewPool(o.workers),
		validator:    config.NewValidator(),
		global:       global,
		perAlgorithm: make(map[config.Algorithm]*config.Overlay),
	}
}

// Close shuts down the worker pool and releases the caches. The engine
// must not be used afterwards except that pending async completions are
// still delivered.
func (e *Engine) Close() {
	if e.closed.Swap(true) {
		return
	}
	e.pool.Shutdown()
	e.cache.Clear()
	debug.Logf("engine: closed after %d operations", e.totalOps.Load())
}

// Similarity computes the normalized similarity in [0, 1] for one pair
// under the merged configuration. The call overlay may be nil.
func (e *Engine) Similarity(s1, s2 string, alg Algorithm, call *Overlay) (float64, error) {
	e.totalOps.Add(1)

	cfg, err := e.resolveConfig(alg, call)
	if err != nil {
		return 0, err
	}
	if err := checkInputLength(s1, s2, cfg); err != nil {
		return 0, err
	}

	fingerprint := cacheFingerprint(s1, s2, cfg)
	if v, ok := e.cache.Get(fingerprint); ok {
		e.cacheHits.Add(1)
		return v, nil
	}

	t1, t2 := unicode.NewText(s1), unicode.NewText(s2)
	if v, ok := quickSimilarity(t1, t2, cfg); ok {
		e.cache.Put(fingerprint, v)
		return v, nil
	}

	kernel, err := e.registry.Resolve(cfg.Algorithm)
	if err != nil {
		return 0, err
	}

	v, err := runSimilarityKernel(kernel, t1, t2, cfg)
	if err != nil {
		return 0, err
	}

	e.cache.Put(fingerprint, v)
	return v, nil
}

// Distance computes the non-negative integer distance for one pair. Edit
// kernels return exact edit counts; normalized kernels return the real
// distance ×1000 rounded.
func (e *Engine) Distance(s1, s2 string, alg Algorithm, call *Overlay) (uint32, error) {
	e.totalOps.Add(1)

	cfg, err := e.resolveConfig(alg, call)
	if err != nil {
		return 0, err
	}
	if err := checkInputLength(s1, s2, cfg); err != nil {
		return 0, err
	}

	t1, t2 := unicode.NewText(s1), unicode.NewText(s2)
	if v, ok := quickDistance(t1, t2, cfg); ok {
		return v, nil
	}

	kernel, err := e.registry.Resolve(cfg.Algorithm)
	if err != nil {
		return 0, err
	}

	return runDistanceKernel(kernel, t1, t2, cfg)
}

// runSimilarityKernel invokes the kernel with panic recovery; an escaping
// panic surfaces as an Unknown error with the original message.
func runSimilarityKernel(k algorithms.Kernel, t1, t2 unicode.Text, cfg config.Config) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = 0, simerrors.NewUnknown(fmt.Sprintf("kernel panic: %v", r), nil)
		}
	}()
	return k.Similarity(t1, t2, cfg)
}

func runDistanceKernel(k algorithms.Kernel, t1, t2 unicode.Text, cfg config.Config) (v uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = 0, simerrors.NewUnknown(fmt.Sprintf("kernel panic: %v", r), nil)
		}
	}()
	return k.Distance(t1, t2, cfg)
}

// quickSimilarity answers the degenerate cases before any kernel runs:
// empty against empty is identity, one empty is zero, and exact or
// case-folded equality is identity.
func quickSimilarity(t1, t2 unicode.Text, cfg config.Config) (float64, bool) {
	if t1.IsEmpty() && t2.IsEmpty() {
		return 1, true
	}
	if t1.IsEmpty() || t2.IsEmpty() {
		return 0, true
	}
	if t1.Equal(t2) {
		return 1, true
	}
	if !cfg.CaseSensitiveCompare() && t1.EqualFold(t2) {
		return 1, true
	}
	return 0, false
}

// quickDistance mirrors quickSimilarity for the distance direction: empty
// inputs answer with the other side's code-point length.
func quickDistance(t1, t2 unicode.Text, cfg config.Config) (uint32, bool) {
	if t1.IsEmpty() && t2.IsEmpty() {
		return 0, true
	}
	if t1.IsEmpty() {
		return uint32(t2.Len()), true
	}
	if t2.IsEmpty() {
		return uint32(t1.Len()), true
	}
	if t1.Equal(t2) {
		return 0, true
	}
	if !cfg.CaseSensitiveCompare() && t1.EqualFold(t2) {
		return 0, true
	}
	return 0, false
}

// resolveConfig merges global, per-algorithm, and per-call layers, forces
// the algorithm parameter, and validates the result. The returned value is
// detached from the engine's shared state.
func (e *Engine) resolveConfig(alg Algorithm, call *Overlay) (config.Config, error) {
	e.configMu.RLock()
	global := e.global.Clone()
	perAlg := e.perAlgorithm[alg]
	e.configMu.RUnlock()

	merged := config.Merge(global, perAlg, call)
	merged.Algorithm = alg

	if err := e.validator.Validate(merged); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func checkInputLength(s1, s2 string, cfg config.Config) error {
	limit := cfg.EffectiveMaxStringLength()
	if len(s1) > limit {
		return simerrors.NewInvalidInputf("first input exceeds maximum length of %d bytes", limit)
	}
	if len(s2) > limit {
		return simerrors.NewInvalidInputf("second input exceeds maximum length of %d bytes", limit)
	}
	return nil
}

// cacheFingerprint lays out the cache-relevant configuration and both
// inputs as bytes: algorithm, preprocessing, case mode, n-gram size, then
// s1 prefixed by its byte length, then s2.
func cacheFingerprint(s1, s2 string, cfg config.Config) []byte {
	fp := make([]byte, 0, 3+4+4+len(s1)+len(s2))
	fp = append(fp, byte(cfg.Algorithm), byte(cfg.Preprocessing), byte(cfg.CaseSensitivity))
	fp = binary.LittleEndian.AppendUint32(fp, uint32(cfg.NGramSize))
	fp = binary.LittleEndian.AppendUint32(fp, uint32(len(s1)))
	fp = append(fp, s1...)
	fp = append(fp, s2...)
	return fp
}

// SetGlobalConfig replaces the global configuration and invalidates the
// result cache.
func (e *Engine) SetGlobalConfig(cfg Config) {
	e.configMu.Lock()
	e.global = cfg.Clone()
	e.configMu.Unlock()

	e.cache.Clear()
}

// GlobalConfig returns a copy of the current global configuration.
func (e *Engine) GlobalConfig() Config {
	e.configMu.RLock()
	defer e.configMu.RUnlock()
	return e.global.Clone()
}

// SetAlgorithmConfig installs a per-algorithm overlay layered between the
// global and per-call configurations. A nil overlay removes the layer.
// The result cache is invalidated either way.
func (e *Engine) SetAlgorithmConfig(alg Algorithm, overlay *Overlay) {
	e.configMu.Lock()
	if overlay == nil {
		delete(e.perAlgorithm, alg)
	} else {
		e.perAlgorithm[alg] = overlay
	}
	e.configMu.Unlock()

	e.cache.Clear()
}

// AlgorithmConfigFor returns the configuration an algorithm would run
// under with no per-call overlay.
func (e *Engine) AlgorithmConfigFor(alg Algorithm) Config {
	e.configMu.RLock()
	global := e.global.Clone()
	perAlg := e.perAlgorithm[alg]
	e.configMu.RUnlock()

	merged := config.Merge(global, perAlg)
	merged.Algorithm = alg
	return merged
}

// ResetConfigDefaults restores the default global configuration and drops
// every per-algorithm overlay.
func (e *Engine) ResetConfigDefaults() {
	e.configMu.Lock()
	e.global = config.Default()
	e.perAlgorithm = make(map[config.Algorithm]*config.Overlay)
	e.configMu.Unlock()

	e.cache.Clear()
}

// SupportedAlgorithms lists every registered algorithm in tag order.
func (e *Engine) SupportedAlgorithms() []AlgorithmInfo {
	tags := e.registry.Supported()
	out := make([]AlgorithmInfo, len(tags))
	for i, tag := range tags {
		out[i] = AlgorithmInfo{Type: tag, Name: tag.String()}
	}
	return out
}

// SupportsAlgorithm reports whether the tag resolves to a kernel.
func (e *Engine) SupportsAlgorithm(alg Algorithm) bool {
	return e.registry.Supports(alg)
}

// Symmetric reports whether the algorithm guarantees sim(a,b) == sim(b,a).
func (e *Engine) Symmetric(alg Algorithm) bool {
	k, err := e.registry.Resolve(alg)
	return err == nil && k.Symmetric
}

// MemoryUsage estimates the result cache's resident bytes.
func (e *Engine) MemoryUsage() int {
	return e.cache.MemoryUsage()
}

// ClearCaches drops every cached result.
func (e *Engine) ClearCaches() {
	e.cache.Clear()
}

// Stats is a snapshot of the engine's operation counters.
type Stats struct {
	TotalOperations int64
	CacheHits       int64
	CacheEntries    int
}

// EngineStats returns the current counters.
func (e *Engine) EngineStats() Stats {
	return Stats{
		TotalOperations: e.totalOps.Load(),
		CacheHits:       e.cacheHits.Load(),
		CacheEntries:    e.cache.Len(),
	}
}
