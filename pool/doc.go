// Package pool
// Author: momentics <momentics@gmail.com>
//
// Slice recycling for hot-path chunk consumers. A SlicePool hands out
// fixed-length slices so per-chunk reads done in audio callbacks or tight
// drain loops stay allocation-free after warmup.
// See slicepool.go for implementation details.
package pool
