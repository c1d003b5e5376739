// Package view provides a non-owning window over bytes held elsewhere: an
// owned byte buffer, a string, or a memory-mapped file. Views never
// allocate, never free, and never mutate the bytes they cover; operations
// only narrow or advance the window.
//
// A view's referenced range must stay valid and unmoved for the view's
// lifetime. Go cannot express that statically, so views bound to a Source
// carry the source's generation at bind time and every operation validates
// it, panicking on stale access instead of silently observing relocated or
// overwritten bytes. Views over external storage carry no source and are
// never stale; keeping that storage alive is the caller's obligation.
package view

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/bufkit/bufkit/internal/bounds"
)

// Source is storage that can invalidate views derived from it. Generation
// returns a counter that advances whenever the storage mutates.
type Source interface {
	Generation() uint64
}

// View is a cheap value type: copying a View copies the window, never the
// bytes under it.
type View struct {
	data []byte
	src  Source
	gen  uint64
}

// Of returns a view over externally owned bytes.
func Of(b []byte) View {
	return View{data: b}
}

// OfString returns a view over the bytes of s without copying them. Safe
// because views never write through the window.
func OfString(s string) View {
	if len(s) == 0 {
		return View{}
	}
	return View{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Bind returns a view over b checked against src: once src.Generation()
// moves past the value captured here, any use of the view panics. Buffer
// mutations in package bytebuf advance the generation, so this catches
// views retained across an append, truncate, or clear of their buffer.
func Bind(b []byte, src Source) View {
	v := View{data: b, src: src}
	if src != nil {
		v.gen = src.Generation()
	}
	return v
}

func (v View) check() {
	if v.src != nil && v.src.Generation() != v.gen {
		panic(fmt.Sprintf("view: stale view used after source mutation (bound at generation %d, source now at %d)",
			v.gen, v.src.Generation()))
	}
}

// Len returns the number of bytes the view covers.
func (v View) Len() int {
	v.check()
	return len(v.data)
}

// Empty reports whether the view covers no bytes.
func (v View) Empty() bool {
	v.check()
	return len(v.data) == 0
}

// At returns the byte at index i, which must be in [0, Len()).
func (v View) At(i int) byte {
	v.check()
	return v.data[i]
}

// Bytes returns a copy of the viewed bytes.
func (v View) Bytes() []byte {
	v.check()
	c := make([]byte, len(v.data))
	copy(c, v.data)
	return c
}

// String returns the viewed bytes as a string, copying them.
func (v View) String() string {
	v.check()
	return string(v.data)
}

// Equal reports whether a and b cover the same byte sequence. Views of
// different origin compare equal when their bytes match; a length mismatch
// short-circuits to false.
func Equal(a, b View) bool {
	a.check()
	b.check()
	return bytes.Equal(a.data, b.data)
}

// Slice returns the sub-view [start, end). Out-of-range requests clamp
// rather than fail: start > end collapses to end, and both ends clamp to
// the view's length. The result may be empty.
func (v View) Slice(start, end int) View {
	v.check()
	start, end = bounds.ClampRange(start, end, len(v.data))
	return View{data: v.data[start:end], src: v.src, gen: v.gen}
}

// Chop cuts v at the first occurrence of delim and returns the bytes
// before it. The receiver is advanced in place to the remainder after the
// delimiter; when delim does not occur, the whole content is returned and
// the receiver is consumed to empty. Intended for repeated forward-only
// tokenizing:
//
//	for !v.Empty() {
//		line := v.Chop('\n')
//		...
//	}
func (v *View) Chop(delim byte) View {
	v.check()
	out := View{src: v.src, gen: v.gen}
	if i := bytes.IndexByte(v.data, delim); i >= 0 {
		out.data = v.data[:i]
		v.data = v.data[i+1:]
	} else {
		out.data = v.data
		v.data = v.data[len(v.data):]
	}
	return out
}

// asciiSpace marks the bytes isspace(3) accepts in the default locale.
var asciiSpace = [256]bool{'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true}

// TrimLeft returns the view narrowed past leading whitespace bytes.
func (v View) TrimLeft() View {
	v.check()
	i := 0
	for i < len(v.data) && asciiSpace[v.data[i]] {
		i++
	}
	return View{data: v.data[i:], src: v.src, gen: v.gen}
}

// TrimRight returns the view narrowed past trailing whitespace bytes.
func (v View) TrimRight() View {
	v.check()
	end := len(v.data)
	for end > 0 && asciiSpace[v.data[end-1]] {
		end--
	}
	return View{data: v.data[:end], src: v.src, gen: v.gen}
}

// Trim returns the view narrowed past whitespace on both sides. It is
// idempotent.
func (v View) Trim() View {
	return v.TrimLeft().TrimRight()
}
