package vec

import (
	"fmt"

	"github.com/bufkit/bufkit/internal/bounds"
)

// Vector is an owned, contiguous, growable container of T. See the package
// documentation for the growth and failure model.
//
// Invariants: Len() <= Cap(); Cap() == 0 exactly when no storage is held;
// elements at indices [Len(), Cap()) have unspecified content.
type Vector[T any] struct {
	data []T // len(data) is the physical capacity
	size int

	initCap int          // 0 means DefaultInitialCapacity
	alloc   Allocator[T] // nil means the heap allocator
	abort   AbortFunc    // nil means print-and-exit
}

// Option configures a Vector created by New.
type Option[T any] func(*Vector[T])

// WithInitialCapacity sets the capacity adopted on the vector's first
// growth. n must be positive; non-positive values keep the default.
func WithInitialCapacity[T any](n int) Option[T] {
	return func(v *Vector[T]) {
		if n > 0 {
			v.initCap = n
		}
	}
}

// WithAllocator supplies the storage source for the vector.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(v *Vector[T]) { v.alloc = a }
}

// WithAbort supplies the policy run when allocation fails during growth.
func WithAbort[T any](f AbortFunc) Option[T] {
	return func(v *Vector[T]) { v.abort = f }
}

// New returns an empty vector with the given options applied. The zero
// value is equally valid when no options are needed.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Len returns the number of logically valid elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of elements storage can hold before the next growth.
func (v *Vector[T]) Cap() int { return len(v.data) }

// At returns the element at index i, which must be in [0, Len()).
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	return v.data[i]
}

// Data returns the live [0, Len()) window of the backing storage. The
// window is invalidated by any subsequent growth of the vector.
func (v *Vector[T]) Data() []T { return v.data[:v.size] }

// Append adds item at the end, growing storage if needed.
func (v *Vector[T]) Append(item T) {
	v.Reserve(v.size + 1)
	v.data[v.size] = item
	v.size++
}

// AppendBulk adds all items at the end with a single growth step and a
// single copy, rather than len(items) individual capacity checks.
func (v *Vector[T]) AppendBulk(items []T) {
	copy(v.Extend(len(items)), items)
}

// Extend grows the vector by n elements in one growth step and returns the
// newly appended window for the caller to fill. The window's content is
// unspecified until written.
func (v *Vector[T]) Extend(n int) []T {
	if n <= 0 {
		return nil
	}
	need, ok := bounds.AddOverflowSafe(v.size, n)
	if !ok {
		v.fail(fmt.Sprintf("vec: size overflow appending %d elements to %d", n, v.size))
	}
	v.Reserve(need)
	w := v.data[v.size:need]
	v.size = need
	return w
}

// TruncateBy removes the last n elements by lowering the logical size.
// n is clamped to [0, Len()]. Storage is neither freed nor cleared: the
// vacated slots keep their stale content until the next append overwrites
// them, and capacity is unchanged.
func (v *Vector[T]) TruncateBy(n int) {
	if n < 0 {
		n = 0
	}
	if n > v.size {
		n = v.size
	}
	v.size -= n
}

// Reserve grows capacity so at least need elements fit, reallocating at
// most once. Capacity starts at the configured initial capacity and doubles
// until it covers need; it never shrinks. Allocation failure does not
// return: it runs the abort policy.
func (v *Vector[T]) Reserve(need int) {
	if need <= len(v.data) {
		return
	}
	capacity := len(v.data)
	if capacity == 0 {
		capacity = v.initialCapacity()
	}
	for capacity < need {
		next, ok := bounds.MulOverflowSafe(capacity, 2)
		if !ok {
			v.fail(fmt.Sprintf("vec: capacity overflow growing to %d elements", need))
		}
		capacity = next
	}
	var data []T
	var ok bool
	if v.data == nil {
		data, ok = v.allocator().Alloc(capacity)
	} else {
		data, ok = v.allocator().Realloc(v.data, capacity)
	}
	if !ok {
		v.fail(fmt.Sprintf("vec: out of memory growing to %d elements", capacity))
	}
	v.data = data
}

// Release frees the backing storage through the allocator and resets the
// vector to zero size and capacity. Unlike TruncateBy this is a full
// release; the vector remains usable and grows again on the next append.
func (v *Vector[T]) Release() {
	if v.data != nil {
		v.allocator().Free(v.data)
	}
	v.data = nil
	v.size = 0
}

func (v *Vector[T]) initialCapacity() int {
	if v.initCap > 0 {
		return v.initCap
	}
	return DefaultInitialCapacity
}

func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc != nil {
		return v.alloc
	}
	return heapAllocator[T]{}
}

// fail runs the abort policy and never returns. The panic is a backstop
// for policies that violate the no-return contract.
func (v *Vector[T]) fail(msg string) {
	abort := v.abort
	if abort == nil {
		abort = defaultAbort
	}
	abort(msg)
	panic(msg)
}
