package gamut

import "golang.org/x/image/math/f64"

// Model describes an RGB to YCbCr encoding: a forward matrix taking
// normalized RGB to luma and centered chroma, its inverse, and the
// shift that recenters each channel in storage scale.
//
// The matrices are scale invariant. They act on channel values
// normalized to [0, 1]; YCbCrFromRGB and ToRGB handle the scaling to
// and from the storage type, so one model serves every Scalar
// instantiation. The shift is expressed in the native scale of T:
// {0, 128, 128} for uint8 storage, {0, 0, 0} for float storage.
type Model[T Scalar] interface {
	// ForwardTransform returns the row-major matrix taking RGB to
	// unshifted YCbCr.
	ForwardTransform() f64.Mat3

	// InverseTransform returns the row-major matrix taking unshifted
	// YCbCr back to RGB.
	InverseTransform() f64.Mat3

	// Shift returns the per-channel offset added after the forward
	// transform, in the native scale of T.
	Shift() f64.Vec3
}

// StandardShift returns the shift shared by the full-range standard
// models: zero for luma and the bipolar zero point for both chroma
// channels. Custom models with the usual centered-chroma layout can
// reuse it.
func StandardShift[T Scalar]() f64.Vec3 {
	zp := bipolarZero[T]()
	return f64.Vec3{0, zp, zp}
}

// Luma weights of the three supported standards. Every other matrix
// coefficient derives from them, so the forward and inverse transforms
// are consistent to full float64 precision.
const (
	jpegKR, jpegKG, jpegKB       = 0.299, 0.587, 0.114
	bt709KR, bt709KG, bt709KB    = 0.2126, 0.7152, 0.0722
	bt2020KR, bt2020KG, bt2020KB = 0.2627, 0.6780, 0.0593
)

var (
	jpegForward   = fullRangeForward(jpegKR, jpegKG, jpegKB)
	jpegInverse   = fullRangeInverse(jpegKR, jpegKG, jpegKB)
	bt709Forward  = fullRangeForward(bt709KR, bt709KG, bt709KB)
	bt709Inverse  = fullRangeInverse(bt709KR, bt709KG, bt709KB)
	bt2020Forward = fullRangeForward(bt2020KR, bt2020KG, bt2020KB)
	bt2020Inverse = fullRangeInverse(bt2020KR, bt2020KG, bt2020KB)
)

// fullRangeForward builds the forward matrix of a full-range encoding
// from its luma weights: Y is the weighted sum, Cb scales B-Y into
// [-0.5, 0.5], Cr does the same for R-Y.
func fullRangeForward(kr, kg, kb float64) f64.Mat3 {
	cbDiv := 2 * (1 - kb)
	crDiv := 2 * (1 - kr)
	return f64.Mat3{
		kr, kg, kb,
		-kr / cbDiv, -kg / cbDiv, 0.5,
		0.5, -kg / crDiv, -kb / crDiv,
	}
}

// fullRangeInverse builds the exact inverse of fullRangeForward for
// the same luma weights.
func fullRangeInverse(kr, kg, kb float64) f64.Mat3 {
	cbDiv := 2 * (1 - kb)
	crDiv := 2 * (1 - kr)
	return f64.Mat3{
		1, 0, crDiv,
		1, -kb * cbDiv / kg, -kr * crDiv / kg,
		1, cbDiv, 0,
	}
}

// JPEGModel is the full-range BT.601 encoding used by JFIF: the
// familiar Y'CbCr of baseline JPEG, with chroma centered on 128 for
// uint8 storage.
type JPEGModel[T Scalar] struct{}

func (JPEGModel[T]) ForwardTransform() f64.Mat3 { return jpegForward }
func (JPEGModel[T]) InverseTransform() f64.Mat3 { return jpegInverse }
func (JPEGModel[T]) Shift() f64.Vec3            { return StandardShift[T]() }

// BT709Model is the full-range Rec. 709 encoding used for HD video.
type BT709Model[T Scalar] struct{}

func (BT709Model[T]) ForwardTransform() f64.Mat3 { return bt709Forward }
func (BT709Model[T]) InverseTransform() f64.Mat3 { return bt709Inverse }
func (BT709Model[T]) Shift() f64.Vec3            { return StandardShift[T]() }

// BT2020Model is the full-range Rec. 2020 encoding used for UHD video.
type BT2020Model[T Scalar] struct{}

func (BT2020Model[T]) ForwardTransform() f64.Mat3 { return bt2020Forward }
func (BT2020Model[T]) InverseTransform() f64.Mat3 { return bt2020Inverse }
func (BT2020Model[T]) Shift() f64.Vec3            { return StandardShift[T]() }
