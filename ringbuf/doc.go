// Package ringbuf
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity generic ring buffers for single-owner streaming pipelines.
// Implements wraparound storage with overwrite-on-overflow writes, consuming
// and non-consuming reads, manual skip, and a chunked variant gating reads
// to whole fixed-size units.
// See ring.go and chunked.go for implementation details.
package ringbuf
