package gamut

// ModeledYCbCr pairs a YCbCr color with the model that produced it, so
// the conversion back to RGB cannot run against the wrong matrices.
// The model type is part of the color's type: two ModeledYCbCr values
// with different models cannot be mixed up at compile time.
type ModeledYCbCr[T Scalar, M Model[T]] struct {
	color YCbCr[T]
	model M
}

// WithModel binds a bare YCbCr color to the model it was encoded with.
func WithModel[T Scalar, M Model[T]](c YCbCr[T], m M) ModeledYCbCr[T, M] {
	return ModeledYCbCr[T, M]{color: c, model: m}
}

// ModeledFromRGB converts an RGB color and keeps the model with the
// result.
func ModeledFromRGB[T Scalar, M Model[T]](c RGB[T], m M) ModeledYCbCr[T, M] {
	return ModeledYCbCr[T, M]{color: YCbCrFromRGB(c, m), model: m}
}

// Color returns the bare YCbCr color.
func (c ModeledYCbCr[T, M]) Color() YCbCr[T] { return c.color }

// Model returns the bound model.
func (c ModeledYCbCr[T, M]) Model() M { return c.model }

// Luma returns the luma channel value.
func (c ModeledYCbCr[T, M]) Luma() T { return c.color.Luma() }

// Cb returns the blue-difference chroma channel value.
func (c ModeledYCbCr[T, M]) Cb() T { return c.color.Cb() }

// Cr returns the red-difference chroma channel value.
func (c ModeledYCbCr[T, M]) Cr() T { return c.color.Cr() }

// NumChannels reports 3.
func (ModeledYCbCr[T, M]) NumChannels() int { return 3 }

// ToRGB converts back to RGB through the bound model.
func (c ModeledYCbCr[T, M]) ToRGB(mode OutOfGamutMode) RGB[T] {
	return c.color.ToRGB(c.model, mode)
}
