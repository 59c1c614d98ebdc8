package gamut

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// OutOfGamutMode selects how ToRGB treats converted channels that fall
// outside the valid RGB range. YCbCr covers a wider gamut than RGB, so
// some valid YCbCr triples have no RGB equivalent.
type OutOfGamutMode int

const (
	// GamutPreserve keeps the raw converted values. Float channels may
	// lie outside [0, 1] and still carry enough information to recover
	// the original YCbCr color; integer channels saturate at the
	// storage bounds.
	GamutPreserve OutOfGamutMode = iota

	// GamutClip forces every channel into its valid range, discarding
	// the out-of-gamut information.
	GamutClip
)

// YCbCr is a luma plus blue-difference, red-difference chroma color.
// Luma spans [0, max] for integer storage and [0, 1] for float
// storage. The chroma channels are bipolar: centered on (max+1)/2 for
// integer storage and on 0 for float storage, where they span [-1, 1].
//
// A YCbCr value does not know which Model produced it; converting back
// to RGB through a different model gives garbage. Use ModeledYCbCr to
// bind the model into the type.
type YCbCr[T Scalar] struct {
	luma   UnitChannel[T]
	cb, cr BipolarChannel[T]
}

// NewYCbCr returns the color with the given luma and chroma channels.
func NewYCbCr[T Scalar](luma, cb, cr T) YCbCr[T] {
	return YCbCr[T]{
		luma: UnitChannel[T]{luma},
		cb:   BipolarChannel[T]{cb},
		cr:   BipolarChannel[T]{cr},
	}
}

// YCbCrFromTuple builds a color from an array in luma, Cb, Cr order.
func YCbCrFromTuple[T Scalar](t [3]T) YCbCr[T] {
	return NewYCbCr(t[0], t[1], t[2])
}

// YCbCrFromSlice builds a color from a slice in luma, Cb, Cr order.
// It panics if the slice does not hold exactly three values.
func YCbCrFromSlice[T Scalar](vals []T) YCbCr[T] {
	if len(vals) != 3 {
		panic(fmt.Sprintf("gamut: YCbCrFromSlice: need 3 channel values, got %d", len(vals)))
	}
	return NewYCbCr(vals[0], vals[1], vals[2])
}

// Luma returns the luma channel value.
func (c YCbCr[T]) Luma() T { return c.luma.Value }

// Cb returns the blue-difference chroma channel value.
func (c YCbCr[T]) Cb() T { return c.cb.Value }

// Cr returns the red-difference chroma channel value.
func (c YCbCr[T]) Cr() T { return c.cr.Value }

// SetLuma replaces the luma channel value.
func (c *YCbCr[T]) SetLuma(v T) { c.luma.Value = v }

// SetCb replaces the blue-difference chroma channel value.
func (c *YCbCr[T]) SetCb(v T) { c.cb.Value = v }

// SetCr replaces the red-difference chroma channel value.
func (c *YCbCr[T]) SetCr(v T) { c.cr.Value = v }

// NumChannels reports 3.
func (YCbCr[T]) NumChannels() int { return 3 }

// ToTuple returns the channels as an array in luma, Cb, Cr order.
func (c YCbCr[T]) ToTuple() [3]T {
	return [3]T{c.luma.Value, c.cb.Value, c.cr.Value}
}

// AsSlice flattens the channels into a new slice in luma, Cb, Cr
// order. The slice does not alias the color.
func (c YCbCr[T]) AsSlice() []T {
	return []T{c.luma.Value, c.cb.Value, c.cr.Value}
}

// Invert reflects every channel across its range: luma across the
// unit range, chroma across the bipolar range.
func (c YCbCr[T]) Invert() YCbCr[T] {
	return YCbCr[T]{
		luma: c.luma.Invert(),
		cb:   c.cb.Invert(),
		cr:   c.cr.Invert(),
	}
}

// Normalize forces every channel into its native range. Integer colors
// are returned unchanged.
func (c YCbCr[T]) Normalize() YCbCr[T] {
	return YCbCr[T]{
		luma: c.luma.Normalize(),
		cb:   c.cb.Normalize(),
		cr:   c.cr.Normalize(),
	}
}

// IsNormalized reports whether every channel lies inside its native
// range.
func (c YCbCr[T]) IsNormalized() bool {
	return c.luma.IsNormalized() && c.cb.IsNormalized() && c.cr.IsNormalized()
}

// Lerp linearly interpolates each channel toward other. The parameter
// is unclamped; integer channels interpolate in float64 and truncate
// toward zero. Both colors must come from the same model for the
// result to be meaningful.
func (c YCbCr[T]) Lerp(other YCbCr[T], t float64) YCbCr[T] {
	return YCbCr[T]{
		luma: c.luma.Lerp(other.luma, t),
		cb:   c.cb.Lerp(other.cb, t),
		cr:   c.cr.Lerp(other.cr, t),
	}
}

// ApproxEqual reports whether the colors match within the default
// tolerance of the storage type. Integer colors compare exactly.
func (c YCbCr[T]) ApproxEqual(other YCbCr[T]) bool {
	return approxEq(c.luma.Value, other.luma.Value) &&
		approxEq(c.cb.Value, other.cb.Value) &&
		approxEq(c.cr.Value, other.cr.Value)
}

// EqualULPs reports whether each pair of channels is within maxULPs
// representable float values of each other. Integer colors compare
// exactly.
func (c YCbCr[T]) EqualULPs(other YCbCr[T], maxULPs uint) bool {
	return ulpsEq(c.luma.Value, other.luma.Value, maxULPs) &&
		ulpsEq(c.cb.Value, other.cb.Value, maxULPs) &&
		ulpsEq(c.cr.Value, other.cr.Value, maxULPs)
}

func (c YCbCr[T]) String() string {
	return fmt.Sprintf("YCbCr(%v, %v, %v)", c.luma.Value, c.cb.Value, c.cr.Value)
}

// YCbCrFromRGB converts an RGB color through the model's forward
// transform. The math runs entirely in float64: channels normalize to
// [0, 1], pass through the matrix, scale back to storage range, gain
// the model shift and narrow to T in one final cast. Integer results
// round half away from zero and saturate at the storage bounds.
func YCbCrFromRGB[T Scalar](c RGB[T], m Model[T]) YCbCr[T] {
	scale := toFloat(unitMax[T]())
	rgb := f64.Vec3{
		toFloat(c.red.Value) / scale,
		toFloat(c.green.Value) / scale,
		toFloat(c.blue.Value) / scale,
	}
	ycc := applyTransform(m.ForwardTransform(), rgb)
	shift := m.Shift()
	return NewYCbCr(
		fromFloat[T](ycc[0]*scale+shift[0]),
		fromFloat[T](ycc[1]*scale+shift[1]),
		fromFloat[T](ycc[2]*scale+shift[2]),
	)
}

// ToRGB converts back to RGB through the model's inverse transform,
// undoing the shift first. Out-of-gamut results are handled per mode:
// GamutPreserve keeps them, GamutClip forces every channel into range.
func (c YCbCr[T]) ToRGB(m Model[T], mode OutOfGamutMode) RGB[T] {
	scale := toFloat(unitMax[T]())
	shift := m.Shift()
	ycc := f64.Vec3{
		(toFloat(c.luma.Value) - shift[0]) / scale,
		(toFloat(c.cb.Value) - shift[1]) / scale,
		(toFloat(c.cr.Value) - shift[2]) / scale,
	}
	rgb := applyTransform(m.InverseTransform(), ycc)
	out := NewRGB(
		fromFloat[T](rgb[0]*scale),
		fromFloat[T](rgb[1]*scale),
		fromFloat[T](rgb[2]*scale),
	)
	if mode == GamutClip {
		out = out.Normalize()
	}
	return out
}
