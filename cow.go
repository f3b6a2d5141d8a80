package rob

// Cow is the classic two-variant borrowed-or-owned form: a tagged value that
// is either a borrowed pointer or an owned allocation. It exists as a
// conversion source and as the baseline the pointer+flag representation is
// measured against - every access through Value branches on the variant.
type Cow[T any] struct {
	ref *T
	box *T
}

// CowBorrowed returns the borrowed variant over *p.
func CowBorrowed[T any](p *T) Cow[T] {
	if p == nil {
		contractPanic(CodeNilAddress, "CowBorrowed: nil reference")
	}
	return Cow[T]{ref: p}
}

// CowOwned moves v into a fresh allocation and returns the owned variant.
func CowOwned[T any](v T) Cow[T] {
	return Cow[T]{box: &v}
}

// CowBox adopts an existing exclusive allocation as the owned variant.
func CowBox[T any](p *T) Cow[T] {
	if p == nil {
		contractPanic(CodeNilAddress, "CowBox: nil allocation")
	}
	return Cow[T]{box: p}
}

// IsOwned reports whether the owned variant is held.
func (c Cow[T]) IsOwned() bool {
	return c.box != nil
}

// Value returns a pointer to the held value. Unlike Rob.Get, this dispatches
// on the variant.
func (c Cow[T]) Value() *T {
	if c.box != nil {
		return c.box
	}
	return c.ref
}

// FromCow converts the tagged form into a container, preserving whichever
// variant it held. Owned data is adopted directly, never copied.
func FromCow[T any](c Cow[T]) Rob[T] {
	if c.box != nil {
		return FromBox(c.box)
	}
	return FromRef(c.ref)
}

// IntoCow consumes the container into the tagged form, preserving the
// ownership state without copying.
func (r *Rob[T]) IntoCow() Cow[T] {
	p, owned := r.IntoRaw()
	if owned {
		return Cow[T]{box: p}
	}
	return Cow[T]{ref: p}
}
