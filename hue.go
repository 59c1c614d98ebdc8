package gamut

import (
	"math"

	"github.com/gamutgo/gamut/angle"
)

// hueEpsilon keeps the hue denominator nonzero for achromatic colors,
// where max and min coincide. Gray inputs yield a hue of 0 instead of
// dividing by zero.
const hueEpsilon = 1e-10

// Chroma returns the colorfulness of the color: the difference between
// its largest and smallest channel, in the native scale of T. Gray
// colors, including black and white, have zero chroma.
func (c RGB[T]) Chroma() T {
	c1, c2, c3 := c.red.Value, c.green.Value, c.blue.Value
	if c2 < c3 {
		c2, c3 = c3, c2
	}
	if c1 < c2 {
		c1, c2 = c2, c1
	}
	if c2 < c3 {
		c2, c3 = c3, c2
	}
	return c1 - c3
}

// Hue returns the color's position on the color wheel in fractional
// turns: red at 0, green at 1/3, blue at 2/3. The result lies in
// [0, 1) and is computed in float64 for every storage type. Achromatic
// colors report a hue of 0.
//
//	deg := c.Hue().Degrees()
func (c RGB[T]) Hue() angle.Turns {
	r := toFloat(c.red.Value)
	g := toFloat(c.green.Value)
	b := toFloat(c.blue.Value)
	factor, v1, v2, v3, minChan := hueOrder(r, g, b)
	hue := factor + (v2-v3)/(6*(v1-minChan)+hueEpsilon)
	return angle.Turns(math.Abs(hue))
}

// hueOrder moves the dominant channel to the front while tracking which
// sector of the color wheel the swaps walked through. The returned
// factor recovers the sector offset, v2-v3 carries the signed position
// inside the sector, and minChan is the smallest of the three original
// channels. The tail pair is deliberately left unsorted: its sign is
// part of the result.
func hueOrder(c1, c2, c3 float64) (factor, v1, v2, v3, minChan float64) {
	factor = 0
	if c2 < c3 {
		c2, c3 = c3, c2
		factor = -1
	}
	minChan = c3
	if c1 < c2 {
		c1, c2 = c2, c1
		factor = -1.0/3.0 - factor
		minChan = math.Min(c2, c3)
	}
	return factor, c1, c2, c3, minChan
}
