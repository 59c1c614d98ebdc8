package gamut

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Integer enumerates the unsigned integer storage types a channel can
// use. The set is exact: a named type whose underlying type is uint8 is
// not a valid storage type, which keeps the internal type switches total.
type Integer interface {
	uint8 | uint16 | uint32
}

// Float enumerates the floating-point storage types a channel can use.
type Float interface {
	float32 | float64
}

// Scalar is the full set of channel storage types.
type Scalar interface {
	Integer | Float
}

// Machine epsilons of the two float storage types, used as both the
// absolute and the relative tolerance in approximate comparisons.
const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52
)

// unitMax reports the top of the native range for bounded and
// positive-normalized channels: the type maximum for integer storage,
// 1 for float storage. The bottom of that range is always zero.
func unitMax[T Scalar]() T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		v := uint8(math.MaxUint8)
		return T(v)
	case uint16:
		v := uint16(math.MaxUint16)
		return T(v)
	case uint32:
		v := uint32(math.MaxUint32)
		return T(v)
	}
	v := 1.0
	return T(v)
}

// bipolarMin reports the bottom of the native range for bipolar
// channels: zero for integer storage, -1 for float storage.
func bipolarMin[T Scalar]() T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		v := -1.0
		return T(v)
	}
	return zero
}

// bipolarZero reports the zero point of the bipolar range in float64:
// the midpoint (max+1)/2 for integer storage, 0 for float storage.
func bipolarZero[T Scalar]() float64 {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 128
	case uint16:
		return 32768
	case uint32:
		return 2147483648
	}
	return 0
}

// toFloat widens a channel value to float64 for arithmetic.
func toFloat[T Scalar](v T) float64 { return float64(v) }

// fromFloat narrows a float64 back to the storage type. Integer storage
// rounds half away from zero and saturates at the type bounds; float
// storage keeps the value as is.
func fromFloat[T Scalar](v float64) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(clampRound(v, math.MaxUint8))
	case uint16:
		return T(clampRound(v, math.MaxUint16))
	case uint32:
		return T(clampRound(v, math.MaxUint32))
	}
	return T(v)
}

// truncFloat narrows a float64 back to the storage type, truncating
// toward zero for integer storage. Values beyond the type bounds
// saturate. Interpolation uses this instead of fromFloat.
func truncFloat[T Scalar](v float64) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(clampTo(v, math.MaxUint8))
	case uint16:
		return T(clampTo(v, math.MaxUint16))
	case uint32:
		return T(clampTo(v, math.MaxUint32))
	}
	return T(v)
}

// clampRound rounds half away from zero, then clamps to [0, max].
func clampRound(v, max float64) float64 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// clampTo clamps to [0, max] without rounding.
func clampTo(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// clampValue orders v into [lo, hi].
func clampValue[T Scalar](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// lerpScalar interpolates from a toward b in float64 space. The
// parameter is unclamped, so values outside [0, 1] extrapolate.
// Integer results truncate toward zero.
func lerpScalar[T Scalar](a, b T, t float64) T {
	av := toFloat(a)
	return truncFloat[T](av + (toFloat(b)-av)*t)
}

// approxEq compares two values within the default tolerance of the
// storage type. Integer storage compares exactly.
func approxEq[T Scalar](a, b T) bool {
	switch av := any(a).(type) {
	case float32:
		bv := any(b).(float32)
		return scalar.EqualWithinAbsOrRel(float64(av), float64(bv), epsilon32, epsilon32)
	case float64:
		bv := any(b).(float64)
		return scalar.EqualWithinAbsOrRel(av, bv, epsilon64, epsilon64)
	default:
		return a == b
	}
}

// ulpsEq compares two values by the number of representable floats
// between them. Integer storage compares exactly.
func ulpsEq[T Scalar](a, b T, maxULPs uint) bool {
	switch av := any(a).(type) {
	case float32:
		return ulpsEqual32(av, any(b).(float32), maxULPs)
	case float64:
		return scalar.EqualWithinULP(av, any(b).(float64), maxULPs)
	default:
		return a == b
	}
}

// ulpsEqual32 is the float32 analogue of scalar.EqualWithinULP.
func ulpsEqual32(a, b float32, maxULPs uint) bool {
	if a == b {
		return true
	}
	fa, fb := float64(a), float64(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return false
	}
	if math.Signbit(fa) != math.Signbit(fb) {
		return math.Float32bits(float32(math.Abs(fa)))+math.Float32bits(float32(math.Abs(fb))) <= uint32(maxULPs)
	}
	ua, ub := math.Float32bits(a), math.Float32bits(b)
	if ua > ub {
		ua, ub = ub, ua
	}
	return ub-ua <= uint32(maxULPs)
}
