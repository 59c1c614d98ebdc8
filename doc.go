// Package gamut provides strongly typed color representations and
// colorspace conversions for Go.
//
// # Overview
//
// gamut models colors as small generic value types whose channels are
// range-aware: every channel knows whether it is a raw intensity, a
// positive-normalized fraction or a bipolar offset, and every
// operation respects that range. Colors are parameterized over their
// storage type, from uint8 up to float64, with identical semantics at
// every width.
//
// # Quick Start
//
//	import "github.com/gamutgo/gamut"
//
//	// An 8-bit RGB color.
//	c := gamut.NewRGB[uint8](255, 136, 0)
//
//	// Channel math: interpolation, inversion, hue and chroma.
//	mid := c.Lerp(c.Invert(), 0.5)
//	deg := c.Hue().Degrees()
//
//	// Encode to YCbCr and back with the JPEG (full-range BT.601) model.
//	ycc := gamut.YCbCrFromRGB(c, gamut.JPEGModel[uint8]{})
//	back := ycc.ToRGB(gamut.JPEGModel[uint8]{}, gamut.GamutClip)
//
// # Color Models
//
// Two color models are built in:
//   - [RGB]: additive red, green, blue with bounded channels
//   - [YCbCr]: luma plus two bipolar chroma channels
//
// Conversions between them go through a [Model], which carries the
// forward and inverse matrices and the chroma shift. [JPEGModel],
// [BT709Model] and [BT2020Model] cover the common standards;
// [DeriveModel] builds custom encodings, including video-range ones,
// from a forward matrix alone.
//
// # Storage Types
//
// Channel storage is any type in the [Scalar] constraint: uint8,
// uint16, uint32, float32 or float64. Integer channels span the full
// type range; float channels are normalized. All conversion math runs
// in float64 regardless of the storage type, with a single rounding
// step when values return to storage.
//
// # Logging
//
// gamut is silent by default. Pass a [log/slog.Logger] to [SetLogger]
// to surface model-derivation diagnostics.
package gamut

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
