package algorithms

import (
	"sync"

	"github.com/standardbeagle/textsim/internal/config"
	simerrors "github.com/standardbeagle/textsim/internal/errors"
)

// Kernel bundles both directions of one algorithm plus its metadata.
type Kernel struct {
	Algorithm  config.Algorithm
	Similarity SimilarityFunc
	Distance   DistanceFunc

	// Symmetric reports sim(a,b)==sim(b,a) for all inputs. Tversky is only
	// symmetric when alpha equals beta, so it registers as asymmetric.
	Symmetric bool

	// Metric reports whether the distance satisfies the triangle
	// inequality.
	Metric bool
}

// Registry resolves algorithm tags to kernels. Registration is rare and
// resolution is hot, hence the reader/writer lock.
type Registry struct {
	mu      sync.RWMutex
	kernels map[config.Algorithm]Kernel
}

// NewRegistry returns a registry preloaded with the thirteen built-in
// kernels.
func NewRegistry() *Registry {
	r := &Registry{kernels: make(map[config.Algorithm]Kernel, config.AlgorithmCount)}
	for _, k := range builtinKernels() {
		r.kernels[k.Algorithm] = k
	}
	return r
}

// Register installs or replaces a kernel.
func (r *Registry) Register(k Kernel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kernels[k.Algorithm] = k
}

// Resolve returns the kernel for an algorithm tag.
func (r *Registry) Resolve(a config.Algorithm) (Kernel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kernels[a]
	if !ok {
		return Kernel{}, simerrors.NewInvalidConfigurationf("unsupported algorithm tag %d", a)
	}
	return k, nil
}

// Supports reports whether the tag resolves.
func (r *Registry) Supports(a config.Algorithm) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.kernels[a]
	return ok
}

// Supported lists the registered algorithm tags in tag order.
func (r *Registry) Supported() []config.Algorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]config.Algorithm, 0, len(r.kernels))
	for a := config.Algorithm(0); int(a) < config.AlgorithmCount; a++ {
		if _, ok := r.kernels[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

func builtinKernels() []Kernel {
	return []Kernel{
		{
			Algorithm:  config.Levenshtein,
			Similarity: LevenshteinSimilarity,
			Distance:   LevenshteinDistance,
			Symmetric:  true,
			Metric:     true,
		},
		{
			Algorithm:  config.DamerauLevenshtein,
			Similarity: OSASimilarity,
			Distance:   OSADistance,
			Symmetric:  true,
			// OSA violates the triangle inequality on overlapping edits.
			Metric: false,
		},
		{
			Algorithm:  config.Hamming,
			Similarity: HammingSimilarity,
			Distance:   HammingDistance,
			Symmetric:  true,
			Metric:     true,
		},
		{
			Algorithm:  config.Jaro,
			Similarity: JaroSimilarity,
			Distance:   similarityToDistance(JaroSimilarity),
			Symmetric:  true,
			Metric:     false,
		},
		{
			Algorithm:  config.JaroWinkler,
			Similarity: JaroWinklerSimilarity,
			Distance:   similarityToDistance(JaroWinklerSimilarity),
			Symmetric:  true,
			Metric:     false,
		},
		{
			Algorithm:  config.Jaccard,
			Similarity: JaccardSimilarity,
			Distance:   similarityToDistance(JaccardSimilarity),
			Symmetric:  true,
			Metric:     true,
		},
		{
			Algorithm:  config.SorensenDice,
			Similarity: DiceSimilarity,
			Distance:   similarityToDistance(DiceSimilarity),
			Symmetric:  true,
			Metric:     false,
		},
		{
			Algorithm:  config.Overlap,
			Similarity: OverlapSimilarity,
			Distance:   similarityToDistance(OverlapSimilarity),
			Symmetric:  true,
			Metric:     false,
		},
		{
			Algorithm:  config.Tversky,
			Similarity: TverskySimilarity,
			Distance:   similarityToDistance(TverskySimilarity),
			Symmetric:  false,
			Metric:     false,
		},
		{
			Algorithm:  config.Cosine,
			Similarity: CosineSimilarity,
			Distance:   similarityToDistance(CosineSimilarity),
			Symmetric:  true,
			Metric:     false,
		},
		{
			Algorithm:  config.Euclidean,
			Similarity: EuclideanSimilarity,
			Distance:   EuclideanDistance,
			Symmetric:  true,
			Metric:     true,
		},
		{
			Algorithm:  config.Manhattan,
			Similarity: ManhattanSimilarity,
			Distance:   ManhattanDistance,
			Symmetric:  true,
			Metric:     true,
		},
		{
			Algorithm:  config.Chebyshev,
			Similarity: ChebyshevSimilarity,
			Distance:   ChebyshevDistance,
			Symmetric:  true,
			Metric:     true,
		},
	}
}
