// File: pool/slicepool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync"

// SlicePool recycles fixed-length slices. Unlike the buffers it serves,
// the pool itself is safe for concurrent use; it wraps sync.Pool.
type SlicePool[T any] struct {
	pool   *sync.Pool
	length int
}

// NewSlicePool creates a pool handing out slices of exactly length elements.
// length must be positive.
func NewSlicePool[T any](length int) *SlicePool[T] {
	if length < 1 {
		panic("slice pool length must be positive")
	}
	return &SlicePool[T]{
		pool:   &sync.Pool{New: func() any { return make([]T, length) }},
		length: length,
	}
}

// Get returns a slice of the pool's fixed length. Contents are unspecified;
// callers overwrite the slice before reading it.
func (p *SlicePool[T]) Get() []T {
	return p.pool.Get().([]T)
}

// Put returns a slice to the pool. Slices of the wrong length are dropped.
func (p *SlicePool[T]) Put(s []T) {
	if len(s) != p.length {
		return
	}
	p.pool.Put(s) //nolint:staticcheck
}

// Length returns the fixed slice length served by the pool.
func (p *SlicePool[T]) Length() int { return p.length }
