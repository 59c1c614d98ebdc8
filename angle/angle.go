// Package angle provides explicit angular units for hue measurements.
//
// Hue extraction reports positions on the color wheel in fractional
// turns. The Turns, Degrees and Radians types carry the unit in the
// type so a fraction of a revolution can never be mistaken for a
// degree count. Conversions between the three units are exact up to
// float64 rounding.
package angle

import (
	"fmt"
	"math"
)

// Turns is an angle measured in full revolutions: 1 is one trip around
// the circle. On the color wheel red sits at 0, green at 1/3 and blue
// at 2/3.
type Turns float64

// Degrees is an angle measured in degrees, 360 per revolution.
type Degrees float64

// Radians is an angle measured in radians, 2π per revolution.
type Radians float64

const (
	degreesPerTurn = 360
	radiansPerTurn = 2 * math.Pi
)

// Degrees converts the angle to degrees.
func (t Turns) Degrees() Degrees { return Degrees(float64(t) * degreesPerTurn) }

// Radians converts the angle to radians.
func (t Turns) Radians() Radians { return Radians(float64(t) * radiansPerTurn) }

// Normalize wraps the angle into [0, 1).
func (t Turns) Normalize() Turns { return Turns(wrap(float64(t), 1)) }

func (t Turns) String() string { return fmt.Sprintf("%gtr", float64(t)) }

// Turns converts the angle to fractional turns.
func (d Degrees) Turns() Turns { return Turns(float64(d) / degreesPerTurn) }

// Radians converts the angle to radians.
func (d Degrees) Radians() Radians { return Radians(float64(d) * math.Pi / 180) }

// Normalize wraps the angle into [0, 360).
func (d Degrees) Normalize() Degrees { return Degrees(wrap(float64(d), degreesPerTurn)) }

func (d Degrees) String() string { return fmt.Sprintf("%g°", float64(d)) }

// Turns converts the angle to fractional turns.
func (r Radians) Turns() Turns { return Turns(float64(r) / radiansPerTurn) }

// Degrees converts the angle to degrees.
func (r Radians) Degrees() Degrees { return Degrees(float64(r) * 180 / math.Pi) }

// Normalize wraps the angle into [0, 2π).
func (r Radians) Normalize() Radians { return Radians(wrap(float64(r), radiansPerTurn)) }

func (r Radians) String() string { return fmt.Sprintf("%grad", float64(r)) }

// wrap reduces v modulo period into [0, period).
func wrap(v, period float64) float64 {
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	return v
}
