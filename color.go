package gamut

// Color is the contract shared by every color model in the package.
// Implementations are small value types: operations return new values
// and never mutate the receiver.
type Color interface {
	// NumChannels reports the fixed number of channels in the model.
	NumChannels() int
}

// HomogeneousColor is satisfied by color models whose channels all use
// one storage type and one channel kind, so whole-color operations like
// clamping apply the same bounds to every channel. C is the concrete
// color type itself.
//
// Channels flatten in the model's canonical order: red, green, blue
// for [RGB]. The matching FromSlice constructor accepts the same order.
type HomogeneousColor[C any, T Scalar] interface {
	Color

	// AsSlice flattens the channels into a freshly allocated slice.
	AsSlice() []T

	// Clamp forces every channel into [lo, hi].
	Clamp(lo, hi T) C
}
