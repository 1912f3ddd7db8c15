// File: ringbuf/chunked_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/ringstream/api"
	"github.com/momentics/ringstream/ringbuf"
)

func TestNewChunked(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		chunkSize int
		wantErr   bool
	}{
		{name: "typical", capacity: 16, chunkSize: 4},
		{name: "chunk equals capacity", capacity: 8, chunkSize: 8},
		{name: "capacity one rejected", capacity: 1, chunkSize: 2, wantErr: true},
		{name: "capacity zero rejected", capacity: 0, chunkSize: 2, wantErr: true},
		{name: "chunk size one rejected", capacity: 8, chunkSize: 1, wantErr: true},
		{name: "chunk size zero rejected", capacity: 8, chunkSize: 0, wantErr: true},
		{name: "chunk exceeds capacity rejected", capacity: 4, chunkSize: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crb, err := ringbuf.NewChunked[byte](tt.capacity, tt.chunkSize)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, api.ErrInvalidArgument)
				assert.Nil(t, crb)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.chunkSize, crb.ChunkSize())
			assert.Equal(t, tt.capacity, crb.Cap())
			assert.Equal(t, 0, crb.ChunksAvailable())
			assert.False(t, crb.CanReadChunk())
		})
	}
}

func TestChunkGating(t *testing.T) {
	crb, err := ringbuf.NewChunked[int](16, 4)
	require.NoError(t, err)

	// A partial chunk is not readable.
	require.True(t, crb.Write([]int{1, 2, 3}))
	assert.Equal(t, 3, crb.Available())
	assert.Equal(t, 0, crb.ChunksAvailable())
	assert.False(t, crb.CanReadChunk())

	_, err = crb.ReadChunk()
	assert.ErrorIs(t, err, api.ErrInvalidOperation)

	ok, err := crb.ReadChunkInto(make([]int, 4))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, crb.Available())

	// Completing two chunks' worth makes exactly two chunks readable.
	require.True(t, crb.Write([]int{4, 5, 6, 7, 8}))
	assert.Equal(t, 8, crb.Available())
	assert.Equal(t, 2, crb.ChunksAvailable())
	require.True(t, crb.CanReadChunk())

	first, err := crb.ReadChunk()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, first)
	assert.Equal(t, 1, crb.ChunksAvailable())

	second, err := crb.ReadChunk()
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7, 8}, second)
	assert.Equal(t, 0, crb.ChunksAvailable())
	assert.False(t, crb.CanReadChunk())
}

func TestChunksAvailableDiscardsRemainder(t *testing.T) {
	crb, err := ringbuf.NewChunked[byte](32, 5)
	require.NoError(t, err)

	require.True(t, crb.Write(make([]byte, 14)))
	assert.Equal(t, 14, crb.Available())
	assert.Equal(t, 2, crb.ChunksAvailable())
}

func TestChunkDestinationLengthMismatch(t *testing.T) {
	crb, err := ringbuf.NewChunked[int](16, 4)
	require.NoError(t, err)

	// Argument errors fire regardless of buffer state.
	for _, dst := range [][]int{nil, make([]int, 3), make([]int, 5)} {
		ok, err := crb.ReadChunkInto(dst)
		assert.False(t, ok)
		assert.ErrorIs(t, err, api.ErrInvalidArgument)

		ok, err = crb.PeekChunkInto(dst)
		assert.False(t, ok)
		assert.ErrorIs(t, err, api.ErrInvalidArgument)
	}

	require.True(t, crb.Write([]int{1, 2, 3, 4}))
	ok, err := crb.ReadChunkInto(make([]int, 3))
	assert.False(t, ok)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
	assert.Equal(t, 4, crb.Available())
}

func TestPeekChunkDoesNotConsume(t *testing.T) {
	crb, err := ringbuf.NewChunked[int](16, 4)
	require.NoError(t, err)
	require.True(t, crb.Write([]int{1, 2, 3, 4, 5}))

	peeked, err := crb.PeekChunk()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, peeked)
	assert.Equal(t, 5, crb.Available())
	assert.Equal(t, 1, crb.ChunksAvailable())

	again, err := crb.PeekChunk()
	require.NoError(t, err)
	assert.Equal(t, peeked, again)

	dst := make([]int, 4)
	ok, err := crb.PeekChunkInto(dst)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, peeked, dst)
	assert.Equal(t, 5, crb.Available())

	// An empty chunked ring peeks nothing.
	crb2, err := ringbuf.NewChunked[int](8, 2)
	require.NoError(t, err)
	_, err = crb2.PeekChunk()
	assert.ErrorIs(t, err, api.ErrInvalidOperation)
	ok, err = crb2.PeekChunkInto(make([]int, 2))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChunkedWriteDelegatesOverwrite(t *testing.T) {
	crb, err := ringbuf.NewChunked[int](4, 2)
	require.NoError(t, err)

	require.True(t, crb.Write([]int{1, 2, 3, 4}))
	require.True(t, crb.Write([]int{5, 6}))
	assert.Equal(t, 4, crb.Available())

	first, err := crb.ReadChunk()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, first)

	second, err := crb.ReadChunk()
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, second)

	// Over-capacity writes are rejected with no state change.
	require.True(t, crb.Write([]int{7, 8}))
	assert.False(t, crb.Write([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 2, crb.Available())
}

func TestChunkIntoRoundTrip(t *testing.T) {
	crb, err := ringbuf.NewChunked[byte](16, 4)
	require.NoError(t, err)
	require.True(t, crb.Write([]byte("abcdefgh")))

	dst := make([]byte, 4)
	ok, err := crb.ReadChunkInto(dst)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("abcd"), dst)

	ok, err = crb.ReadChunkInto(dst)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("efgh"), dst)

	ok, err = crb.ReadChunkInto(dst)
	require.NoError(t, err)
	assert.False(t, ok)
}
