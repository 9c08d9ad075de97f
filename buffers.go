package gds

import "slices"

// blockSize is the growth/alignment quantum for scratch buffers
// (spec.md section 4.E). Chosen as a fraction of PageSize so a
// buffer's capacity never straddles an awkward allocator bucket.
const blockSize = 256

func blockAlign(n int64) int64 {
	return (n + (blockSize - 1)) &^ (blockSize - 1)
}

// ByteBuffer is a growable scratch buffer used by the bump allocator
// to stage one record's bytes before it is copied into the adjacency
// heap. Growth discards old content: callers write their whole record
// after EnsureCapacity, never depend on what was there before.
type ByteBuffer struct {
	buf    []byte
	length int64
}

// NewByteBuffer returns an empty buffer with no preallocated capacity.
func NewByteBuffer() *ByteBuffer { return &ByteBuffer{} }

// EnsureCapacity grows the buffer to at least n bytes, rounded up to
// the next block boundary, discarding any existing content.
func (b *ByteBuffer) EnsureCapacity(n int64) {
	if int64(len(b.buf)) >= n {
		return
	}
	b.buf = make([]byte, blockAlign(n))
}

// Reset truncates the logical length to zero without releasing the
// backing array.
func (b *ByteBuffer) Reset() { b.length = 0 }

// Length returns the number of bytes written since the last Reset.
func (b *ByteBuffer) Length() int64 { return b.length }

// Bytes returns the backing array's first Length() bytes. The slice
// aliases the buffer; callers must copy out what they need before the
// next EnsureCapacity or Reset.
func (b *ByteBuffer) Bytes() []byte { return b.buf[:b.length] }

// Append writes p at the current length, growing if needed, and
// advances the length.
func (b *ByteBuffer) Append(p []byte) {
	need := b.length + int64(len(p))
	if int64(len(b.buf)) < need {
		grown := make([]byte, blockAlign(need))
		copy(grown, b.buf[:b.length])
		b.buf = grown
	}
	copy(b.buf[b.length:need], p)
	b.length = need
}

// LongBuffer is the int64 analogue of ByteBuffer, used to stage a
// node's target-id run before it is delta-encoded into the adjacency
// heap.
type LongBuffer struct {
	buf    []int64
	length int64
}

// NewLongBuffer returns an empty buffer with no preallocated capacity.
func NewLongBuffer() *LongBuffer { return &LongBuffer{} }

// EnsureCapacity grows the buffer to at least n elements, rounded up
// to the next block boundary, discarding any existing content.
func (b *LongBuffer) EnsureCapacity(n int64) {
	if int64(len(b.buf)) >= n {
		return
	}
	b.buf = make([]int64, blockAlign(n))
}

// Reset truncates the logical length to zero without releasing the
// backing array.
func (b *LongBuffer) Reset() { b.length = 0 }

// Length returns the number of elements written since the last Reset.
func (b *LongBuffer) Length() int64 { return b.length }

// Values returns the backing array's first Length() elements. The
// slice aliases the buffer; callers must copy out what they need
// before the next EnsureCapacity or Reset.
func (b *LongBuffer) Values() []int64 { return b.buf[:b.length] }

// Append writes v at the current length, growing if needed, and
// advances the length.
func (b *LongBuffer) Append(v ...int64) {
	need := b.length + int64(len(v))
	if int64(len(b.buf)) < need {
		grown := make([]int64, blockAlign(need))
		copy(grown, b.buf[:b.length])
		b.buf = grown
	}
	copy(b.buf[b.length:need], v)
	b.length = need
}

// Sort sorts the elements written so far, ascending.
func (b *LongBuffer) Sort() {
	slices.Sort(b.buf[:b.length])
}
