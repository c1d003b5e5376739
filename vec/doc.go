// Package vec provides an owned, contiguous, growable container with
// amortized-doubling growth and an injectable allocation policy.
//
// # Overview
//
// Vector[T] holds a heap-resident backing array, a logical element count,
// and a physical capacity. Appends grow capacity geometrically (factor 2,
// starting from a configurable initial capacity) so a sequence of N appends
// performs O(log N) reallocations and runs in amortized O(1) per element.
//
// The zero value is a usable empty vector:
//
//	var v vec.Vector[int]
//	v.Append(5)
//
// # Growth
//
// Reserve is the single growth primitive used by every append path. Given a
// required element count, it leaves the vector alone when capacity already
// covers it, otherwise doubles capacity until it does and performs exactly
// one reallocation. Capacity never shrinks; TruncateBy only lowers the
// logical size and leaves vacated slots with stale content, to be
// overwritten by the next append. That is not a leak: the allocation and
// capacity are unchanged.
//
// # Allocation failure
//
// Storage comes from an Allocator, by default the Go heap. Growth treats a
// failed allocation as unrecoverable: there is no error return on the
// append paths. Instead the vector's abort policy runs with a diagnostic
// message. The default policy prints it to stderr and exits the process;
// tests inject their own via WithAbort to observe the path without dying.
//
// # Thread safety
//
// Vectors are not safe for concurrent use. A vector is exclusively owned by
// whichever scope holds it; callers needing shared access must synchronize
// externally.
package vec
