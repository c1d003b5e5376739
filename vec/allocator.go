package vec

import (
	"fmt"
	"os"
)

// DefaultInitialCapacity is the capacity a vector adopts on its first
// growth when none was configured. It affects performance only, never
// correctness.
const DefaultInitialCapacity = 1024

// Allocator supplies backing storage for a Vector.
//
// Implementations report failure with ok = false rather than an error:
// growth treats failure as unrecoverable and routes it to the vector's
// abort policy. Free exists for arena-style allocators; the default heap
// allocator leaves reclamation to the garbage collector.
type Allocator[T any] interface {
	// Alloc returns storage for n elements.
	Alloc(n int) ([]T, bool)

	// Realloc returns storage for n elements preserving the contents of
	// old. The result may alias old or be freshly allocated; old must not
	// be used afterwards.
	Realloc(old []T, n int) ([]T, bool)

	// Free releases storage previously obtained from Alloc or Realloc.
	Free(s []T)
}

// heapAllocator is the default Allocator, backed by the Go heap. Realloc is
// make-and-copy since Go has no in-place reallocation primitive.
type heapAllocator[T any] struct{}

func (heapAllocator[T]) Alloc(n int) ([]T, bool) {
	return make([]T, n), true
}

func (heapAllocator[T]) Realloc(old []T, n int) ([]T, bool) {
	if n <= cap(old) {
		return old[:n], true
	}
	s := make([]T, n)
	copy(s, old)
	return s, true
}

func (heapAllocator[T]) Free([]T) {}

// AbortFunc is the unrecoverable-failure policy invoked when growth cannot
// obtain storage. It must not return; implementations terminate the
// process, panic, or otherwise unwind.
type AbortFunc func(msg string)

func defaultAbort(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
