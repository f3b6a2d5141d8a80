package rob

import "fmt"

// Rob holds either a borrowed pointer or an exclusively owned heap value of
// type T. The representation is a pointer plus an ownership flag; there is no
// variant tag to dispatch on when reading.
//
// The zero value is invalid. A consumed or released container carries a nil
// pointer; cold-path operations detect it and panic with a *ContractError.
type Rob[T any] struct {
	ptr   *T
	owned bool
}

// Dropper is the optional teardown hook for owned values. Release invokes it
// exactly once on the owned value before disarming the container. Values
// without a Drop method are simply left to the garbage collector.
type Dropper interface {
	Drop()
}

// FromValue moves v into a fresh heap allocation and returns an owned
// container over it.
func FromValue[T any](v T) Rob[T] {
	return Rob[T]{ptr: &v, owned: true}
}

// FromRef returns a borrowed container over *p. No allocation is performed
// and the container never tears the referent down.
//
// Caller contract: *p must outlive the container. Go cannot check this
// statically; violating it leaves the container dangling.
func FromRef[T any](p *T) Rob[T] {
	if p == nil {
		contractPanic(CodeNilAddress, "FromRef: nil reference")
	}
	return Rob[T]{ptr: p, owned: false}
}

// FromBox adopts a pre-existing exclusive allocation as an owned container.
// The caller must not retain or free p afterwards; the container becomes the
// sole owner.
func FromBox[T any](p *T) Rob[T] {
	if p == nil {
		contractPanic(CodeNilAddress, "FromBox: nil allocation")
	}
	return Rob[T]{ptr: p, owned: true}
}

// FromRaw reconstructs a container from an address and an ownership flag, as
// produced by IntoRaw.
//
// This is the unchecked entry point: beyond rejecting a nil address, it
// trusts the caller. If owned is true, p must be an exclusive allocation that
// nothing else will free; if owned is false, *p must outlive the container.
// A false claim is not detected and corrupts the ownership contract.
func FromRaw[T any](p *T, owned bool) Rob[T] {
	if p == nil {
		contractPanic(CodeNilAddress, "FromRaw: nil address")
	}
	return Rob[T]{ptr: p, owned: owned}
}

// Get returns a pointer to the underlying value regardless of ownership
// state. This is the hot read path: a single pointer load, no branch.
//
// The result is valid only while the container is live and must be treated
// as read-only; mutation goes through ToMut. Get on a consumed container
// returns nil.
func (r *Rob[T]) Get() *T {
	return r.ptr
}

// AsRef reports the borrowed reference, if any. For a borrowed container it
// returns the original pointer and true; for an owned container it returns
// (nil, false).
//
// The asymmetry is deliberate: a borrowed pointer stays valid for as long as
// its external owner lives, while a pointer into an owned allocation is only
// valid for the container's own lifetime. Callers that want the latter use
// Get.
func (r *Rob[T]) AsRef() (*T, bool) {
	if r.owned || r.ptr == nil {
		return nil, false
	}
	return r.ptr, true
}

// IsOwned reports whether the container owns its allocation.
func (r *Rob[T]) IsOwned() bool {
	return r.owned
}

// IntoRaw consumes the container, returning the address and ownership flag
// without running any teardown. If the flag is true, responsibility for
// releasing the allocation transfers to the caller; FromRaw reverses the
// operation. The container must not be used afterwards.
func (r *Rob[T]) IntoRaw() (*T, bool) {
	if r.ptr == nil {
		contractPanic(CodeUseAfterConsume, "IntoRaw: container already consumed")
	}
	p, owned := r.ptr, r.owned
	r.ptr = nil
	r.owned = false
	return p, owned
}

// Release destroys the container. If it owns its allocation, the value's
// Drop hook (if T or *T implements Dropper) runs exactly once; a borrowed
// referent is left untouched. Releasing twice, or releasing after IntoRaw or
// IntoBox, panics with CodeUseAfterConsume.
func (r *Rob[T]) Release() {
	if r.ptr == nil {
		contractPanic(CodeUseAfterConsume, "Release: container already consumed")
	}
	if r.owned {
		dropValue(r.ptr)
	}
	r.ptr = nil
	r.owned = false
}

// dropValue runs the Dropper hook for an owned allocation, preferring a
// pointer-receiver implementation over a value-receiver one.
func dropValue[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(*p).(Dropper); ok {
		d.Drop()
	}
}

// String forwards to the underlying value's formatting; ownership state is
// not part of the rendered form.
func (r *Rob[T]) String() string {
	if r.ptr == nil {
		return "<consumed>"
	}
	return fmt.Sprint(*r.ptr)
}
