// Package multiset implements the token counters behind the set and vector
// kernels: a generic Counter with multiset operations and a FrequencyVector
// layering magnitude and dot product on top of it.
package multiset

import "math"

// Counter maps keys to strictly positive counts. The zero value is not
// usable; construct with New.
type Counter[T comparable] struct {
	counts map[T]uint32
	total  uint64
}

// New returns an empty Counter.
func New[T comparable]() *Counter[T] {
	return &Counter[T]{counts: make(map[T]uint32)}
}

// FromSlice counts every element of items.
func FromSlice[T comparable](items []T) *Counter[T] {
	c := New[T]()
	for _, it := range items {
		c.Increment(it)
	}
	return c
}

// Increment adds one occurrence of key.
func (c *Counter[T]) Increment(key T) {
	c.counts[key]++
	c.total++
}

// Add records n occurrences of key. Non-positive n is ignored so counts
// stay strictly positive.
func (c *Counter[T]) Add(key T, n uint32) {
	if n == 0 {
		return
	}
	c.counts[key] += n
	c.total += uint64(n)
}

// Get returns the count for key, zero when absent.
func (c *Counter[T]) Get(key T) uint32 { return c.counts[key] }

// Len is the number of distinct keys.
func (c *Counter[T]) Len() int { return len(c.counts) }

// IsEmpty reports whether no keys are present.
func (c *Counter[T]) IsEmpty() bool { return len(c.counts) == 0 }

// TotalCount is the sum of all counts.
func (c *Counter[T]) TotalCount() uint64 { return c.total }

// Keys returns the distinct keys in unspecified order.
func (c *Counter[T]) Keys() []T {
	keys := make([]T, 0, len(c.counts))
	for k := range c.counts {
		keys = append(keys, k)
	}
	return keys
}

// Intersect returns the pointwise minimum of both counters; keys whose
// minimum is zero are dropped.
func (c *Counter[T]) Intersect(o *Counter[T]) *Counter[T] {
	small, large := c, o
	if large.Len() < small.Len() {
		small, large = large, small
	}
	out := New[T]()
	for k, n := range small.counts {
		if m := large.counts[k]; m > 0 {
			out.Add(k, min(n, m))
		}
	}
	return out
}

// Union returns the pointwise maximum of both counters.
func (c *Counter[T]) Union(o *Counter[T]) *Counter[T] {
	out := New[T]()
	for k, n := range c.counts {
		out.Add(k, max(n, o.counts[k]))
	}
	for k, n := range o.counts {
		if _, seen := c.counts[k]; !seen {
			out.Add(k, n)
		}
	}
	return out
}

// Sum returns the pointwise addition of both counters.
func (c *Counter[T]) Sum(o *Counter[T]) *Counter[T] {
	out := New[T]()
	for k, n := range c.counts {
		out.Add(k, n)
	}
	for k, n := range o.counts {
		out.Add(k, n)
	}
	return out
}

// UnionKeys returns every key present in either counter.
func (c *Counter[T]) UnionKeys(o *Counter[T]) []T {
	keys := make([]T, 0, len(c.counts)+len(o.counts))
	for k := range c.counts {
		keys = append(keys, k)
	}
	for k := range o.counts {
		if _, seen := c.counts[k]; !seen {
			keys = append(keys, k)
		}
	}
	return keys
}

// Equal reports whether both counters hold identical key/count pairs.
func (c *Counter[T]) Equal(o *Counter[T]) bool {
	if len(c.counts) != len(o.counts) {
		return false
	}
	for k, n := range c.counts {
		if o.counts[k] != n {
			return false
		}
	}
	return true
}

// FrequencyVector treats a Counter as a term-frequency vector.
type FrequencyVector[T comparable] struct {
	*Counter[T]
}

// NewVector returns an empty frequency vector.
func NewVector[T comparable]() FrequencyVector[T] {
	return FrequencyVector[T]{New[T]()}
}

// VectorFromSlice counts every element of items into a vector.
func VectorFromSlice[T comparable](items []T) FrequencyVector[T] {
	return FrequencyVector[T]{FromSlice(items)}
}

// Magnitude is the Euclidean norm of the vector.
func (v FrequencyVector[T]) Magnitude() float64 {
	var sum float64
	for _, n := range v.counts {
		f := float64(n)
		sum += f * f
	}
	return math.Sqrt(sum)
}

// Dot is the inner product with another vector.
func (v FrequencyVector[T]) Dot(o FrequencyVector[T]) float64 {
	small, large := v.Counter, o.Counter
	if large.Len() < small.Len() {
		small, large = large, small
	}
	var sum float64
	for k, n := range small.counts {
		sum += float64(n) * float64(large.counts[k])
	}
	return sum
}
