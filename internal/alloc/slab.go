// Package alloc amortizes the transient slices the edit kernels burn
// through: DP rows sized by the shorter input and the banded rows sized by
// the threshold. Slices are pooled in capacity tiers over sync.Pool so a
// hot engine stops hitting the allocator for typical string lengths.
package alloc

import (
	"sync"
	"sync/atomic"
)

// tierCapacities covers the common row sizes; anything larger is allocated
// directly and discarded on Put.
var tierCapacities = []int{16, 32, 64, 128, 256, 512, 1024, 4096}

// Slab is a tiered slice pool for a single element type.
type Slab[T any] struct {
	tiers []*tier[T]

	hits   atomic.Int64
	misses atomic.Int64
}

type tier[T any] struct {
	capacity int
	pool     sync.Pool
}

// NewSlab returns a slab with the default capacity tiers.
func NewSlab[T any]() *Slab[T] {
	s := &Slab[T]{tiers: make([]*tier[T], len(tierCapacities))}
	for i, c := range tierCapacities {
		capacity := c
		s.tiers[i] = &tier[T]{
			capacity: capacity,
			pool: sync.Pool{
				New: func() any {
					return make([]T, 0, capacity)
				},
			},
		}
	}
	return s
}

// Get returns a zero-length slice with at least the requested capacity.
func (s *Slab[T]) Get(capacity int) []T {
	if capacity <= 0 {
		return nil
	}
	for _, t := range s.tiers {
		if t.capacity >= capacity {
			s.hits.Add(1)
			return t.pool.Get().([]T)[:0]
		}
	}
	s.misses.Add(1)
	return make([]T, 0, capacity)
}

// GetZeroed returns a length-n slice with every element set to the zero
// value, reusing pooled backing storage where possible.
func (s *Slab[T]) GetZeroed(n int) []T {
	buf := s.Get(n)
	if cap(buf) < n {
		return make([]T, n)
	}
	buf = buf[:n]
	var zero T
	for i := range buf {
		buf[i] = zero
	}
	return buf
}

// Put returns a slice to its tier. Slices above the largest tier are
// dropped for the GC.
func (s *Slab[T]) Put(buf []T) {
	c := cap(buf)
	if c == 0 || c > s.tiers[len(s.tiers)-1].capacity {
		return
	}
	for i := len(s.tiers) - 1; i >= 0; i-- {
		if s.tiers[i].capacity <= c {
			s.tiers[i].pool.Put(buf[:0]) //nolint:staticcheck // slice header reuse is intended
			return
		}
	}
}

// Stats reports pool hit/miss counts since creation.
func (s *Slab[T]) Stats() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}
