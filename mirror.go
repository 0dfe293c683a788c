package flatcol

// Scalar constrains the self-describing value types a MirrorRegion can hold:
// fixed-size values whose index representation is the value itself.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~bool
}

// MirrorRegion is the leaf region for scalar fields inside composite
// regions. The stored "index" is the value: Push hands the value back
// unchanged and Index returns it unchanged. The region owns no storage at
// all, so every operation is free and HeapSize reports nothing.
type MirrorRegion[T Scalar] struct{}

// NewMirrorRegion creates a MirrorRegion for T.
func NewMirrorRegion[T Scalar]() *MirrorRegion[T] {
	return &MirrorRegion[T]{}
}

// Push returns v as its own index.
func (r *MirrorRegion[T]) Push(v T) T { return v }

// Index returns the index, which is the value.
func (r *MirrorRegion[T]) Index(i T) T { return i }

// Clear is a no-op; there is nothing stored.
func (r *MirrorRegion[T]) Clear() {}

// MergeFrom is a no-op; there is no capacity to reserve.
func (r *MirrorRegion[T]) MergeFrom(regions []*MirrorRegion[T]) {}

// HeapSize reports nothing; the region owns no heap memory.
func (r *MirrorRegion[T]) HeapSize(fn func(used, reserved int)) {}

var _ Region[uint64, uint64, uint64, *MirrorRegion[uint64]] = (*MirrorRegion[uint64])(nil)
