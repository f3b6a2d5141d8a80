package rob

import (
	"maps"
	"slices"
)

// Buffer adoption. These constructors take over a buffer's backing storage
// as an owned container without copying elements. The caller must not keep
// using the buffer through its original variable afterwards - the container
// becomes the exclusive owner of the backing storage.

// OwnSlice adopts s, backing array included, as an owned container.
func OwnSlice[E any](s []E) Rob[[]E] {
	return FromValue(s)
}

// OwnBytes adopts b as an owned container.
func OwnBytes(b []byte) Rob[[]byte] {
	return FromValue(b)
}

// OwnString wraps s as an owned container. Strings are immutable, so the
// adoption is always copy-free.
func OwnString(s string) Rob[string] {
	return FromValue(s)
}

// OwnMap adopts m as an owned container.
func OwnMap[K comparable, V any](m map[K]V) Rob[map[K]V] {
	return FromValue(m)
}

// Clone functions for buffer element types, for use with ToMutFunc,
// IntoBoxFunc and CloneFunc.

// CloneSlice is a shallow per-element copy into a fresh backing array.
func CloneSlice[E any](s []E) []E {
	return slices.Clone(s)
}

// CloneBytes copies b into a fresh backing array.
func CloneBytes(b []byte) []byte {
	return slices.Clone(b)
}

// CloneMap copies m's entries into a fresh map.
func CloneMap[K comparable, V any](m map[K]V) map[K]V {
	return maps.Clone(m)
}
