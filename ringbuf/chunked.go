// File: ringbuf/chunked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ChunkedRingBuffer exposes ring storage as fixed-size, atomically-readable
// chunks. Partial-chunk reads are rejected; writes keep the underlying
// overwrite-on-overflow policy. Implements api.ChunkRing.

package ringbuf

import (
	"github.com/momentics/ringstream/api"
)

// Ensure compile-time interface compliance.
var _ api.ChunkRing[any] = (*ChunkedRingBuffer[any])(nil)

// ChunkedRingBuffer wraps a RingBuffer with whole-chunk read gating.
type ChunkedRingBuffer[T any] struct {
	ring      RingBuffer[T] // sole owner of the storage
	chunkSize int
}

// NewChunked allocates a chunked ring buffer of capacity elements, read in
// units of exactly chunkSize elements.
func NewChunked[T any](capacity, chunkSize int) (*ChunkedRingBuffer[T], error) {
	if capacity <= 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "chunked ring capacity must exceed 1").
			WithContext("capacity", capacity)
	}
	if chunkSize <= 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "chunk size must exceed 1").
			WithContext("chunkSize", chunkSize)
	}
	if chunkSize > capacity {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "chunk size exceeds capacity").
			WithContext("chunkSize", chunkSize).
			WithContext("capacity", capacity)
	}
	return &ChunkedRingBuffer[T]{
		ring:      RingBuffer[T]{buf: make([]T, capacity)},
		chunkSize: chunkSize,
	}, nil
}

// Write delegates to the underlying ring: overwrite-on-overflow, false only
// when data exceeds total capacity.
func (c *ChunkedRingBuffer[T]) Write(data []T) bool {
	return c.ring.Write(data)
}

// ChunkSize returns the fixed unit size.
func (c *ChunkedRingBuffer[T]) ChunkSize() int { return c.chunkSize }

// ChunksAvailable returns the number of whole chunks currently readable,
// counted from the read cursor forward. Partial remainders are not counted.
func (c *ChunkedRingBuffer[T]) ChunksAvailable() int {
	return c.ring.Available() / c.chunkSize
}

// CanReadChunk reports whether at least one whole chunk is buffered.
func (c *ChunkedRingBuffer[T]) CanReadChunk() bool {
	return c.ChunksAvailable() > 0
}

// ReadChunk consumes and returns exactly one chunk.
func (c *ChunkedRingBuffer[T]) ReadChunk() ([]T, error) {
	if !c.CanReadChunk() {
		return nil, c.noChunkErr()
	}
	return c.ring.ReadN(c.chunkSize)
}

// ReadChunkInto consumes one chunk into dst. dst length must equal ChunkSize
// regardless of buffer state; ok is false, with no mutation, when no whole
// chunk is buffered.
func (c *ChunkedRingBuffer[T]) ReadChunkInto(dst []T) (bool, error) {
	if err := c.checkDst(dst); err != nil {
		return false, err
	}
	if !c.CanReadChunk() {
		return false, nil
	}
	return c.ring.ReadInto(dst), nil
}

// PeekChunk returns exactly one chunk without consuming it.
func (c *ChunkedRingBuffer[T]) PeekChunk() ([]T, error) {
	if !c.CanReadChunk() {
		return nil, c.noChunkErr()
	}
	return c.ring.PeekN(c.chunkSize)
}

// PeekChunkInto copies one chunk into dst without consuming it. Same
// contracts as ReadChunkInto.
func (c *ChunkedRingBuffer[T]) PeekChunkInto(dst []T) (bool, error) {
	if err := c.checkDst(dst); err != nil {
		return false, err
	}
	if !c.CanReadChunk() {
		return false, nil
	}
	return c.ring.PeekInto(dst), nil
}

// Available returns the number of readable elements, chunked or not.
func (c *ChunkedRingBuffer[T]) Available() int { return c.ring.Available() }

// Free returns how many elements fit before unread data is overwritten.
func (c *ChunkedRingBuffer[T]) Free() int { return c.ring.Free() }

// Cap returns fixed buffer capacity.
func (c *ChunkedRingBuffer[T]) Cap() int { return c.ring.Cap() }

func (c *ChunkedRingBuffer[T]) checkDst(dst []T) error {
	if len(dst) != c.chunkSize {
		return api.NewError(api.ErrCodeInvalidArgument, "destination length must equal chunk size").
			WithContext("length", len(dst)).
			WithContext("chunkSize", c.chunkSize)
	}
	return nil
}

func (c *ChunkedRingBuffer[T]) noChunkErr() error {
	return api.NewError(api.ErrCodeInvalidOperation, "no whole chunk buffered").
		WithContext("available", c.ring.Available()).
		WithContext("chunkSize", c.chunkSize)
}
