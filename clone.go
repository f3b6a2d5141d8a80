package rob

// Cloner is the clone-to-owned capability required by the copy-on-write and
// consuming-clone operations. Clone must return a copy that shares no mutable
// state with the receiver.
type Cloner[T any] interface {
	Clone() T
}

// ToMut returns a mutable pointer to the underlying value, upgrading a
// borrowed container to owned first: the referent is cloned into a new
// allocation, the container is repointed at the clone with the ownership
// flag set, and only then is the pointer handed out. The external source is
// never mutated. An already-owned container pays no allocation.
func ToMut[T Cloner[T]](r *Rob[T]) *T {
	return ToMutFunc(r, cloneOf[T])
}

// ToMutFunc is ToMut for element types without a Clone method; clone is only
// invoked when the container is borrowed.
func ToMutFunc[T any](r *Rob[T], clone func(T) T) *T {
	if r.ptr == nil {
		contractPanic(CodeUseAfterConsume, "ToMut: container already consumed")
	}
	if !r.owned {
		v := clone(*r.ptr)
		r.ptr = &v
		r.owned = true
	}
	return r.ptr
}

// IntoBox consumes the container and yields a single owned allocation. An
// owned container transfers its allocation directly, without copying; a
// borrowed container clones the referent into a new allocation. Either way
// the caller becomes the sole owner of the result.
func IntoBox[T Cloner[T]](r *Rob[T]) *T {
	return IntoBoxFunc(r, cloneOf[T])
}

// IntoBoxFunc is IntoBox for element types without a Clone method; clone is
// only invoked when the container is borrowed.
func IntoBoxFunc[T any](r *Rob[T], clone func(T) T) *T {
	if r.ptr == nil {
		contractPanic(CodeUseAfterConsume, "IntoBox: container already consumed")
	}
	p := r.ptr
	if !r.owned {
		v := clone(*p)
		p = &v
	}
	r.ptr = nil
	r.owned = false
	return p
}

// Clone duplicates the container. An owned container clones its value into a
// new owned allocation; a borrowed container yields another borrowed
// container over the same external source, copying nothing.
func Clone[T Cloner[T]](r *Rob[T]) Rob[T] {
	return CloneFunc(r, cloneOf[T])
}

// CloneFunc is Clone for element types without a Clone method; clone is only
// invoked when the container is owned.
func CloneFunc[T any](r *Rob[T], clone func(T) T) Rob[T] {
	if r.ptr == nil {
		contractPanic(CodeUseAfterConsume, "Clone: container already consumed")
	}
	if r.owned {
		return FromValue(clone(*r.ptr))
	}
	return Rob[T]{ptr: r.ptr, owned: false}
}

func cloneOf[T Cloner[T]](v T) T {
	return v.Clone()
}
