package gamut

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"
)

// ErrSingularTransform reports a forward transform with no inverse.
// DeriveModel wraps it, so errors.Is recognizes the failure.
var ErrSingularTransform = errors.New("gamut: singular forward transform")

// DerivedModel is a Model built at runtime from a forward matrix. The
// inverse is computed once at construction, so conversions through a
// derived model cost the same as through the standard ones.
//
// Video-range (studio swing) encodings fit here: scale the forward
// rows by the narrowed excursions and set the shift to the black
// offsets, and the inverse follows automatically.
type DerivedModel[T Scalar] struct {
	forward, inverse f64.Mat3
	shift            f64.Vec3
}

// DeriveModel builds a model from a forward transform and a shift in
// the native scale of T. It fails with ErrSingularTransform if the
// matrix cannot be inverted. An ill-conditioned matrix still derives,
// with a warning through the package logger.
func DeriveModel[T Scalar](forward f64.Mat3, shift f64.Vec3) (*DerivedModel[T], error) {
	var inv mat.Dense
	err := inv.Inverse(mat.NewDense(3, 3, forward[:]))
	var cond mat.Condition
	switch {
	case err == nil:
	case errors.As(err, &cond) && !math.IsInf(float64(cond), 1):
		// Invertible but numerically delicate. Keep the result and
		// let the caller decide whether the precision is acceptable.
		Logger().Warn("derived model is ill-conditioned", "cond", float64(cond))
	default:
		return nil, fmt.Errorf("%w: %v", ErrSingularTransform, err)
	}

	m := &DerivedModel[T]{forward: forward, shift: shift}
	for i := range m.inverse {
		m.inverse[i] = inv.At(i/3, i%3)
	}
	Logger().Debug("derived ycbcr model", "shift", shift)
	return m, nil
}

// ForwardTransform returns the matrix the model was derived from.
func (m *DerivedModel[T]) ForwardTransform() f64.Mat3 { return m.forward }

// InverseTransform returns the inverse computed at construction.
func (m *DerivedModel[T]) InverseTransform() f64.Mat3 { return m.inverse }

// Shift returns the per-channel offset in the native scale of T.
func (m *DerivedModel[T]) Shift() f64.Vec3 { return m.shift }
