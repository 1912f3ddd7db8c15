// Package api
// Author: momentics@gmail.com
//
// Ring buffer contracts for single-owner streaming data.

package api

// Ring is a fixed-capacity ring buffer contract.
//
// Implementations are single-owner: one producer/consumer pair coordinated
// externally. No method blocks or spawns work; every operation either fully
// completes its copy or leaves the buffer untouched.
type Ring[T any] interface {
	// Write copies data at the write cursor, overwriting the oldest unread
	// elements on overflow. Returns false only when len(data) exceeds Cap.
	Write(data []T) bool

	// Read consumes and returns everything currently available.
	Read() []T
	// ReadN consumes and returns exactly n elements in write order.
	ReadN(n int) ([]T, error)
	// ReadInto fills dst fully and consumes the copied elements; returns
	// false without mutation when fewer than len(dst) are available.
	ReadInto(dst []T) bool

	// Peek variants mirror the Read variants without advancing the read
	// cursor; repeated peeks return identical data.
	Peek() []T
	PeekN(n int) ([]T, error)
	PeekInto(dst []T) bool

	// Skip advances the read cursor by at most n elements.
	Skip(n int)

	// Available returns the number of readable elements.
	Available() int
	// Free returns how many elements fit before unread data is overwritten.
	Free() int
	// Cap returns fixed buffer capacity.
	Cap() int
}

// ChunkRing exposes ring storage as fixed-size, atomically-readable units.
// Partial-chunk reads are rejected; a chunk is consumed whole or not at all.
type ChunkRing[T any] interface {
	// Write delegates to the underlying ring, same overwrite policy.
	Write(data []T) bool

	// ChunkSize returns the fixed unit size.
	ChunkSize() int
	// ChunksAvailable returns the number of whole chunks currently readable.
	ChunksAvailable() int
	// CanReadChunk reports whether at least one whole chunk is buffered.
	CanReadChunk() bool

	// ReadChunk consumes and returns exactly one chunk.
	ReadChunk() ([]T, error)
	// ReadChunkInto consumes one chunk into dst, whose length must equal
	// ChunkSize. ok is false when no whole chunk is buffered.
	ReadChunkInto(dst []T) (ok bool, err error)

	// Peek variants mirror the chunk reads without consuming.
	PeekChunk() ([]T, error)
	PeekChunkInto(dst []T) (ok bool, err error)

	// Available returns the number of readable elements, chunked or not.
	Available() int
	// Free returns how many elements fit before unread data is overwritten.
	Free() int
	// Cap returns fixed buffer capacity.
	Cap() int
}
