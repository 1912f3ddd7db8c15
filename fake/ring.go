// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake ring implementations for testing consumers of api.Ring.

package fake

import (
	"math"

	"github.com/momentics/ringstream/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is an unbounded slice-backed api.Ring. It never overwrites and keeps
// call counters, which makes consumer expectations easy to assert against.
type Ring[T any] struct {
	data []T

	// Call counters for assertions.
	Writes int
	Reads  int
	Peeks  int
	Skips  int
}

// NewRing creates an empty fake ring.
func NewRing[T any]() *Ring[T] {
	return &Ring[T]{}
}

// Write appends data; a fake never rejects or overwrites.
func (f *Ring[T]) Write(data []T) bool {
	f.Writes++
	f.data = append(f.data, data...)
	return true
}

// Read consumes and returns everything currently buffered.
func (f *Ring[T]) Read() []T {
	f.Reads++
	out := f.data
	f.data = nil
	return out
}

// ReadN consumes and returns exactly n elements.
func (f *Ring[T]) ReadN(n int) ([]T, error) {
	f.Reads++
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative read length")
	}
	if n > len(f.data) {
		return nil, api.NewError(api.ErrCodeInvalidOperation, "read length exceeds available data")
	}
	out := make([]T, n)
	copy(out, f.data)
	f.data = f.data[n:]
	return out, nil
}

// ReadInto fills dst fully and consumes; false when not enough data.
func (f *Ring[T]) ReadInto(dst []T) bool {
	f.Reads++
	if len(dst) > len(f.data) {
		return false
	}
	copy(dst, f.data)
	f.data = f.data[len(dst):]
	return true
}

// Peek returns everything currently buffered without consuming.
func (f *Ring[T]) Peek() []T {
	f.Peeks++
	out := make([]T, len(f.data))
	copy(out, f.data)
	return out
}

// PeekN returns exactly n elements without consuming.
func (f *Ring[T]) PeekN(n int) ([]T, error) {
	f.Peeks++
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative read length")
	}
	if n > len(f.data) {
		return nil, api.NewError(api.ErrCodeInvalidOperation, "read length exceeds available data")
	}
	out := make([]T, n)
	copy(out, f.data)
	return out, nil
}

// PeekInto fills dst without consuming; false when not enough data.
func (f *Ring[T]) PeekInto(dst []T) bool {
	f.Peeks++
	if len(dst) > len(f.data) {
		return false
	}
	copy(dst, f.data)
	return true
}

// Skip drops at most n buffered elements.
func (f *Ring[T]) Skip(n int) {
	f.Skips++
	if n <= 0 {
		return
	}
	if n > len(f.data) {
		n = len(f.data)
	}
	f.data = f.data[n:]
}

// Available returns the number of buffered elements.
func (f *Ring[T]) Available() int { return len(f.data) }

// Free reports effectively unbounded headroom.
func (f *Ring[T]) Free() int { return math.MaxInt - len(f.data) }

// Cap reports effectively unbounded capacity.
func (f *Ring[T]) Cap() int { return math.MaxInt }
