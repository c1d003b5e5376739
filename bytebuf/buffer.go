// Package bytebuf provides an owned, growable byte buffer built on the vec
// growth primitive, plus whole-stream ingestion.
//
// Buffers are never null-terminated: no implicit trailing byte is appended
// or assumed, and interop with terminator-expecting APIs is the caller's
// concern.
//
// Every mutation (append, truncate, clear, ingestion) advances the buffer's
// generation. Views obtained from View are bound to the generation current
// at the time and panic on use once it moves, catching views retained
// across a mutation of their backing storage.
package bytebuf

import (
	"github.com/bufkit/bufkit/vec"
	"github.com/bufkit/bufkit/view"
)

// Buffer is a growable byte buffer. The zero value is an empty buffer.
// Buffers are not safe for concurrent use.
type Buffer struct {
	vec vec.Vector[byte]
	gen uint64
}

// New returns an empty buffer with the given vec options applied; use it
// when the default allocator, initial capacity, or abort policy need
// overriding.
func New(opts ...vec.Option[byte]) *Buffer {
	return &Buffer{vec: *vec.New(opts...)}
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return b.vec.Len() }

// Cap returns the buffer's current capacity in bytes.
func (b *Buffer) Cap() int { return b.vec.Cap() }

// Bytes returns the live [0, Len()) window of the backing storage. The
// window is invalidated by any subsequent mutation of the buffer; prefer
// View for anything retained.
func (b *Buffer) Bytes() []byte { return b.vec.Data() }

// String returns a copy of the buffer's content as a string.
func (b *Buffer) String() string { return string(b.vec.Data()) }

// Generation implements view.Source.
func (b *Buffer) Generation() uint64 { return b.gen }

// Append adds a single byte.
func (b *Buffer) Append(c byte) {
	b.gen++
	b.vec.Append(c)
}

// AppendBytes adds p with a single growth step.
func (b *Buffer) AppendBytes(p []byte) {
	b.gen++
	b.vec.AppendBulk(p)
}

// AppendString adds the bytes of s with a single growth step and no
// intermediate copy. No terminator is appended.
func (b *Buffer) AppendString(s string) {
	b.gen++
	copy(b.vec.Extend(len(s)), s)
}

// TruncateBy removes the last n bytes by lowering the logical size; n is
// clamped to [0, Len()]. Capacity and the allocation are unchanged.
func (b *Buffer) TruncateBy(n int) {
	b.gen++
	b.vec.TruncateBy(n)
}

// Clear releases the buffer's allocation and resets size and capacity to
// zero. Unlike TruncateBy this is a full release; the buffer remains
// usable and grows again on the next append.
func (b *Buffer) Clear() {
	b.gen++
	b.vec.Release()
}

// View returns a borrowed view over [0, Len()) bound to the buffer's
// current generation. The view panics on use after the buffer mutates.
func (b *Buffer) View() view.View {
	return view.Bind(b.vec.Data(), b)
}

// Slice returns a borrowed view over [start, end) of the buffer, clamped
// the same way view.Slice clamps; out-of-range requests degrade to empty
// or truncated views.
func (b *Buffer) Slice(start, end int) view.View {
	return b.View().Slice(start, end)
}
