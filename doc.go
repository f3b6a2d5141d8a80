// Package rob provides Rob[T], a container that holds either a borrowed
// pointer to a value owned elsewhere or an exclusively owned heap value,
// behind one uniform read path.
//
// It plays the same role as the classic two-variant borrowed-or-owned form
// (see Cow in this package), but it is a struct of a pointer and an ownership
// flag rather than a tagged union, so reading the value is a single pointer
// load with no variant dispatch. Ownership only matters on the cold paths:
// copy-on-write upgrades, consumption and release.
//
// A borrowed container never allocates and never tears the value down; the
// caller guarantees the referent outlives the container. An owned container
// is the sole owner of its allocation and releases it exactly once, either
// through Release or by transferring ownership out via IntoRaw or IntoBox.
//
// Operations that need to clone the underlying value (ToMut, IntoBox, Clone)
// require T to implement Cloner[T]; the *Func variants take an explicit clone
// function instead, for element types without a Clone method.
package rob
