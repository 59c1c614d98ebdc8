package gamut

// The channel types wrap one scalar channel value and pin down which
// range that value lives in. All three share the same operation set;
// they differ only in their native range:
//
//	kind      integer storage    float storage
//	bounded   [0, max]           [0, 1]
//	unit      [0, max]           [0, 1]
//	bipolar   [0, max]           [-1, 1]
//
// Bounded and unit channels cover the same values; the distinct types
// record whether the payload is raw intensity (a color channel) or a
// normalized fraction (luma). Integer channels of every kind cover
// their full storage range, so they are always normalized.

// BoundedChannel is a raw intensity channel spanning the full native
// range of its storage type.
type BoundedChannel[T Scalar] struct {
	Value T
}

// Clamp returns the channel with its value forced into [lo, hi].
func (c BoundedChannel[T]) Clamp(lo, hi T) BoundedChannel[T] {
	return BoundedChannel[T]{clampValue(c.Value, lo, hi)}
}

// Invert reflects the value across the channel range: v becomes max-v.
func (c BoundedChannel[T]) Invert() BoundedChannel[T] {
	var lo T
	return BoundedChannel[T]{invertValue(c.Value, lo, unitMax[T]())}
}

// Normalize forces the value into the channel range. Integer channels
// are returned unchanged.
func (c BoundedChannel[T]) Normalize() BoundedChannel[T] {
	var lo T
	return BoundedChannel[T]{clampValue(c.Value, lo, unitMax[T]())}
}

// IsNormalized reports whether the value lies inside the channel range.
func (c BoundedChannel[T]) IsNormalized() bool {
	var lo T
	return c.Value >= lo && c.Value <= unitMax[T]()
}

// Lerp interpolates from the channel toward other. The parameter is
// unclamped; integer results truncate toward zero.
func (c BoundedChannel[T]) Lerp(other BoundedChannel[T], t float64) BoundedChannel[T] {
	return BoundedChannel[T]{lerpScalar(c.Value, other.Value, t)}
}

// UnitChannel is a positive-normalized channel: it carries a fraction
// of full scale, such as luma. Its native range matches BoundedChannel.
type UnitChannel[T Scalar] struct {
	Value T
}

// Clamp returns the channel with its value forced into [lo, hi].
func (c UnitChannel[T]) Clamp(lo, hi T) UnitChannel[T] {
	return UnitChannel[T]{clampValue(c.Value, lo, hi)}
}

// Invert reflects the value across the channel range.
func (c UnitChannel[T]) Invert() UnitChannel[T] {
	var lo T
	return UnitChannel[T]{invertValue(c.Value, lo, unitMax[T]())}
}

// Normalize forces the value into the channel range. Integer channels
// are returned unchanged.
func (c UnitChannel[T]) Normalize() UnitChannel[T] {
	var lo T
	return UnitChannel[T]{clampValue(c.Value, lo, unitMax[T]())}
}

// IsNormalized reports whether the value lies inside the channel range.
func (c UnitChannel[T]) IsNormalized() bool {
	var lo T
	return c.Value >= lo && c.Value <= unitMax[T]()
}

// Lerp interpolates from the channel toward other. The parameter is
// unclamped; integer results truncate toward zero.
func (c UnitChannel[T]) Lerp(other UnitChannel[T], t float64) UnitChannel[T] {
	return UnitChannel[T]{lerpScalar(c.Value, other.Value, t)}
}

// BipolarChannel is a signed offset channel centered on a zero point,
// such as the chroma channels of YCbCr. Float storage spans [-1, 1]
// around 0; integer storage spans the full type range around the
// midpoint (max+1)/2.
type BipolarChannel[T Scalar] struct {
	Value T
}

// Clamp returns the channel with its value forced into [lo, hi].
func (c BipolarChannel[T]) Clamp(lo, hi T) BipolarChannel[T] {
	return BipolarChannel[T]{clampValue(c.Value, lo, hi)}
}

// Invert reflects the value across the channel range. For float
// storage this negates the offset from the zero point.
func (c BipolarChannel[T]) Invert() BipolarChannel[T] {
	return BipolarChannel[T]{invertValue(c.Value, bipolarMin[T](), unitMax[T]())}
}

// Normalize forces the value into the channel range. Integer channels
// are returned unchanged.
func (c BipolarChannel[T]) Normalize() BipolarChannel[T] {
	return BipolarChannel[T]{clampValue(c.Value, bipolarMin[T](), unitMax[T]())}
}

// IsNormalized reports whether the value lies inside the channel range.
func (c BipolarChannel[T]) IsNormalized() bool {
	return c.Value >= bipolarMin[T]() && c.Value <= unitMax[T]()
}

// Lerp interpolates from the channel toward other. The parameter is
// unclamped; integer results truncate toward zero.
func (c BipolarChannel[T]) Lerp(other BipolarChannel[T], t float64) BipolarChannel[T] {
	return BipolarChannel[T]{lerpScalar(c.Value, other.Value, t)}
}

// invertValue reflects v across [lo, hi]. Integer storage always lies
// inside the range, so hi-(v-lo) cannot underflow.
func invertValue[T Scalar](v, lo, hi T) T {
	return hi - (v - lo)
}
