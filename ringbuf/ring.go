// File: ringbuf/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular buffer with a read cursor and a counted
// occupied region. Writes overwrite the oldest unread data on overflow and
// never block. Implements api.Ring for cross-package consistency.

package ringbuf

import (
	"github.com/momentics/ringstream/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a fixed-capacity ring buffer (single-owner, not safe for
// concurrent mutation).
type RingBuffer[T any] struct {
	buf   []T
	start int // index of the oldest unread element
	size  int // occupied element count, 0 <= size <= len(buf)
}

// New allocates a ring buffer holding exactly capacity elements.
func New[T any](capacity int) (*RingBuffer[T], error) {
	if capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring capacity must be at least 1").
			WithContext("capacity", capacity)
	}
	return &RingBuffer[T]{buf: make([]T, capacity)}, nil
}

// Write copies data into the buffer at the write cursor, wrapping around the
// physical end of storage as needed. When the write overruns unread data the
// oldest elements are silently discarded, so a streaming producer never
// blocks. Returns false without mutation only when data cannot fit even into
// an empty buffer.
func (r *RingBuffer[T]) Write(data []T) bool {
	n := len(data)
	if n > len(r.buf) {
		return false
	}
	if n == 0 {
		return true
	}
	end := r.index(r.start + r.size)
	first := copy(r.buf[end:], data)
	copy(r.buf, data[first:])
	if r.size+n > len(r.buf) {
		// Oldest elements overwritten: the occupied region now spans the
		// whole storage and ends at the new write cursor.
		r.start = r.index(end + n)
		r.size = len(r.buf)
	} else {
		r.size += n
	}
	return true
}

// Available returns the number of elements currently readable.
func (r *RingBuffer[T]) Available() int { return r.size }

// Free returns how many elements fit before unread data is overwritten.
func (r *RingBuffer[T]) Free() int { return len(r.buf) - r.size }

// Cap returns fixed buffer capacity.
func (r *RingBuffer[T]) Cap() int { return len(r.buf) }

// Read consumes and returns everything currently available.
func (r *RingBuffer[T]) Read() []T {
	out := make([]T, r.size)
	r.copyOut(out)
	r.advance(r.size)
	return out
}

// ReadN consumes and returns exactly n elements in write order.
func (r *RingBuffer[T]) ReadN(n int) ([]T, error) {
	if err := r.checkLen(n); err != nil {
		return nil, err
	}
	out := make([]T, n)
	r.copyOut(out)
	r.advance(n)
	return out, nil
}

// ReadInto fills dst fully and consumes the copied elements. Returns false
// without mutation when fewer than len(dst) elements are available, so hot
// loops can poll without error-path allocation.
func (r *RingBuffer[T]) ReadInto(dst []T) bool {
	if len(dst) > r.size {
		return false
	}
	r.copyOut(dst)
	r.advance(len(dst))
	return true
}

// Peek returns everything currently available without consuming it.
func (r *RingBuffer[T]) Peek() []T {
	out := make([]T, r.size)
	r.copyOut(out)
	return out
}

// PeekN returns exactly n elements without consuming them.
func (r *RingBuffer[T]) PeekN(n int) ([]T, error) {
	if err := r.checkLen(n); err != nil {
		return nil, err
	}
	out := make([]T, n)
	r.copyOut(out)
	return out, nil
}

// PeekInto fills dst without consuming. Returns false without mutation when
// fewer than len(dst) elements are available.
func (r *RingBuffer[T]) PeekInto(dst []T) bool {
	if len(dst) > r.size {
		return false
	}
	r.copyOut(dst)
	return true
}

// Skip advances the read cursor by at most n elements, consuming data
// previously obtained via Peek. Skipping past the occupied region saturates
// and leaves the buffer empty. n <= 0 is a no-op.
func (r *RingBuffer[T]) Skip(n int) {
	if n <= 0 {
		return
	}
	if n > r.size {
		n = r.size
	}
	r.advance(n)
}

// Reset drops all buffered data, keeping the allocated storage.
func (r *RingBuffer[T]) Reset() {
	r.start = 0
	r.size = 0
}

// copyOut copies the first len(dst) occupied elements starting at the read
// cursor, splitting into two segments when the region crosses the physical
// end of storage. Callers guarantee len(dst) <= size.
func (r *RingBuffer[T]) copyOut(dst []T) {
	first := copy(dst, r.buf[r.start:])
	copy(dst[first:], r.buf)
}

func (r *RingBuffer[T]) advance(n int) {
	r.start = r.index(r.start + n)
	r.size -= n
}

// index reduces a cursor position modulo capacity. Positions never exceed
// 2*capacity and are never negative.
func (r *RingBuffer[T]) index(pos int) int {
	return pos % len(r.buf)
}

func (r *RingBuffer[T]) checkLen(n int) error {
	if n < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "negative read length").
			WithContext("length", n)
	}
	if n > r.size {
		return api.NewError(api.ErrCodeInvalidOperation, "read length exceeds available data").
			WithContext("length", n).
			WithContext("available", r.size)
	}
	return nil
}
