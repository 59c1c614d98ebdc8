package gamut

import (
	"fmt"
	"math"
)

// RGB is an additive red, green, blue color. Each channel spans the
// full native range of its storage type: [0, max] for integer storage,
// [0, 1] for float storage. The zero value is black.
type RGB[T Scalar] struct {
	red, green, blue BoundedChannel[T]
}

// NewRGB returns the color with the given red, green and blue channels.
func NewRGB[T Scalar](red, green, blue T) RGB[T] {
	return RGB[T]{
		red:   BoundedChannel[T]{red},
		green: BoundedChannel[T]{green},
		blue:  BoundedChannel[T]{blue},
	}
}

// RGBFromTuple builds a color from an array in red, green, blue order.
func RGBFromTuple[T Scalar](t [3]T) RGB[T] {
	return NewRGB(t[0], t[1], t[2])
}

// RGBFromSlice builds a color from a slice in red, green, blue order.
// It panics if the slice does not hold exactly three values.
func RGBFromSlice[T Scalar](vals []T) RGB[T] {
	if len(vals) != 3 {
		panic(fmt.Sprintf("gamut: RGBFromSlice: need 3 channel values, got %d", len(vals)))
	}
	return NewRGB(vals[0], vals[1], vals[2])
}

// RGBBroadcast replicates one value across all three channels,
// producing a gray color.
func RGBBroadcast[T Scalar](v T) RGB[T] {
	return NewRGB(v, v, v)
}

// Red returns the red channel value.
func (c RGB[T]) Red() T { return c.red.Value }

// Green returns the green channel value.
func (c RGB[T]) Green() T { return c.green.Value }

// Blue returns the blue channel value.
func (c RGB[T]) Blue() T { return c.blue.Value }

// SetRed replaces the red channel value.
func (c *RGB[T]) SetRed(v T) { c.red.Value = v }

// SetGreen replaces the green channel value.
func (c *RGB[T]) SetGreen(v T) { c.green.Value = v }

// SetBlue replaces the blue channel value.
func (c *RGB[T]) SetBlue(v T) { c.blue.Value = v }

// NumChannels reports 3.
func (RGB[T]) NumChannels() int { return 3 }

// ToTuple returns the channels as an array in red, green, blue order.
func (c RGB[T]) ToTuple() [3]T {
	return [3]T{c.red.Value, c.green.Value, c.blue.Value}
}

// AsSlice flattens the channels into a new slice in red, green, blue
// order. The slice does not alias the color.
func (c RGB[T]) AsSlice() []T {
	return []T{c.red.Value, c.green.Value, c.blue.Value}
}

// Clamp forces every channel into [lo, hi].
func (c RGB[T]) Clamp(lo, hi T) RGB[T] {
	return RGB[T]{
		red:   c.red.Clamp(lo, hi),
		green: c.green.Clamp(lo, hi),
		blue:  c.blue.Clamp(lo, hi),
	}
}

// Invert reflects every channel across its range, producing the
// complementary color. Inverting twice returns the original.
func (c RGB[T]) Invert() RGB[T] {
	return RGB[T]{
		red:   c.red.Invert(),
		green: c.green.Invert(),
		blue:  c.blue.Invert(),
	}
}

// Normalize forces every channel into its native range. Integer colors
// are returned unchanged.
func (c RGB[T]) Normalize() RGB[T] {
	return RGB[T]{
		red:   c.red.Normalize(),
		green: c.green.Normalize(),
		blue:  c.blue.Normalize(),
	}
}

// IsNormalized reports whether every channel lies inside its native
// range.
func (c RGB[T]) IsNormalized() bool {
	return c.red.IsNormalized() && c.green.IsNormalized() && c.blue.IsNormalized()
}

// Lerp linearly interpolates each channel toward other: 0 returns the
// receiver, 1 returns other. The parameter is unclamped, so values
// outside [0, 1] extrapolate. Integer channels interpolate in float64
// and truncate toward zero.
func (c RGB[T]) Lerp(other RGB[T], t float64) RGB[T] {
	return RGB[T]{
		red:   c.red.Lerp(other.red, t),
		green: c.green.Lerp(other.green, t),
		blue:  c.blue.Lerp(other.blue, t),
	}
}

// ApproxEqual reports whether the colors match within the default
// tolerance of the storage type. Integer colors compare exactly.
func (c RGB[T]) ApproxEqual(other RGB[T]) bool {
	return approxEq(c.red.Value, other.red.Value) &&
		approxEq(c.green.Value, other.green.Value) &&
		approxEq(c.blue.Value, other.blue.Value)
}

// EqualULPs reports whether each pair of channels is within maxULPs
// representable float values of each other. Integer colors compare
// exactly.
func (c RGB[T]) EqualULPs(other RGB[T], maxULPs uint) bool {
	return ulpsEq(c.red.Value, other.red.Value, maxULPs) &&
		ulpsEq(c.green.Value, other.green.Value, maxULPs) &&
		ulpsEq(c.blue.Value, other.blue.Value, maxULPs)
}

// RGBA implements the standard library's image/color.Color interface.
// Channels are normalized, scaled to the 16-bit range and reported
// fully opaque, so an RGB of any storage type can be handed to image
// encoders directly.
func (c RGB[T]) RGBA() (r, g, b, a uint32) {
	n := c.Normalize()
	scale := toFloat(unitMax[T]())
	r = uint32(math.Round(toFloat(n.red.Value) / scale * 0xffff))
	g = uint32(math.Round(toFloat(n.green.Value) / scale * 0xffff))
	b = uint32(math.Round(toFloat(n.blue.Value) / scale * 0xffff))
	return r, g, b, 0xffff
}

func (c RGB[T]) String() string {
	return fmt.Sprintf("RGB(%v, %v, %v)", c.red.Value, c.green.Value, c.blue.Value)
}
