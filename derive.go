package rob

import (
	"cmp"
	"hash/maphash"
)

// The comparisons below forward to the underlying values. Ownership state is
// never part of value identity: a borrowed container and an owned container
// holding equal values compare equal and hash identically.

// Equal reports whether two containers hold equal values.
func Equal[T comparable](a, b *Rob[T]) bool {
	return *a.ptr == *b.ptr
}

// EqualFunc is Equal under a caller-supplied equivalence.
func EqualFunc[T any](a, b *Rob[T], eq func(x, y T) bool) bool {
	return eq(*a.ptr, *b.ptr)
}

// Compare orders two containers by their underlying values, returning
// -1, 0 or +1 as in cmp.Compare.
func Compare[T cmp.Ordered](a, b *Rob[T]) int {
	return cmp.Compare(*a.ptr, *b.ptr)
}

// CompareFunc is Compare under a caller-supplied ordering.
func CompareFunc[T any](a, b *Rob[T], compare func(x, y T) int) int {
	return compare(*a.ptr, *b.ptr)
}

// Less reports whether a's value orders before b's.
func Less[T cmp.Ordered](a, b *Rob[T]) bool {
	return *a.ptr < *b.ptr
}

// Hash hashes the underlying value with the given seed. Two containers
// holding equal values hash identically regardless of ownership state.
func Hash[T comparable](seed maphash.Seed, r *Rob[T]) uint64 {
	return maphash.Comparable(seed, *r.ptr)
}
