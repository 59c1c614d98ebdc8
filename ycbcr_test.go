package gamut

import (
	"math"
	"testing"
)

func TestYCbCrAccessors(t *testing.T) {
	c := NewYCbCr[uint8](76, 85, 255)
	if c.Luma() != 76 || c.Cb() != 85 || c.Cr() != 255 {
		t.Errorf("accessors = (%d, %d, %d)", c.Luma(), c.Cb(), c.Cr())
	}
	if got := c.NumChannels(); got != 3 {
		t.Errorf("NumChannels() = %d, want 3", got)
	}

	c.SetLuma(10)
	c.SetCb(20)
	c.SetCr(30)
	if c != NewYCbCr[uint8](10, 20, 30) {
		t.Errorf("after setters: %v", c)
	}
}

func TestYCbCrTupleAndSlice(t *testing.T) {
	c := NewYCbCr(0.5, -0.25, 0.25)
	if got := YCbCrFromTuple(c.ToTuple()); got != c {
		t.Errorf("tuple round trip = %v", got)
	}
	s := c.AsSlice()
	if len(s) != 3 || s[0] != 0.5 || s[1] != -0.25 || s[2] != 0.25 {
		t.Errorf("AsSlice() = %v", s)
	}
	s[1] = 99
	if c.Cb() != -0.25 {
		t.Error("AsSlice must not alias the color")
	}
	if got := YCbCrFromSlice([]float64{0.5, -0.25, 0.25}); got != c {
		t.Errorf("YCbCrFromSlice = %v", got)
	}
}

func TestYCbCrFromSlicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("YCbCrFromSlice with 4 values should panic")
		}
	}()
	YCbCrFromSlice([]float32{1, 2, 3, 4})
}

func TestYCbCrInvert(t *testing.T) {
	f := NewYCbCr(0.2, -0.5, 0.25)
	want := NewYCbCr(0.8, 0.5, -0.25)
	if got := f.Invert(); !got.ApproxEqual(want) {
		t.Errorf("Invert() = %v, want %v", got, want)
	}
	if got := f.Invert().Invert(); !got.ApproxEqual(f) {
		t.Errorf("double Invert() = %v, want %v", got, f)
	}

	i := NewYCbCr[uint8](200, 100, 30)
	if got := i.Invert(); got != NewYCbCr[uint8](55, 155, 225) {
		t.Errorf("integer Invert() = %v", got)
	}
}

func TestYCbCrNormalize(t *testing.T) {
	c := NewYCbCr(1.5, -1.5, 0.25)
	want := NewYCbCr(1.0, -1.0, 0.25)
	if got := c.Normalize(); got != want {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
	if c.IsNormalized() {
		t.Error("out-of-range color reports IsNormalized() = true")
	}
	if !want.IsNormalized() {
		t.Error("luma 1, cb -1 should be in range")
	}
	// Chroma is bipolar: -1 is valid for float storage.
	if !NewYCbCr(0.0, -1.0, 1.0).IsNormalized() {
		t.Error("bipolar extremes should be in range")
	}
}

func TestYCbCrLerp(t *testing.T) {
	a := NewYCbCr[uint8](0, 128, 128)
	b := NewYCbCr[uint8](255, 0, 255)
	if got := a.Lerp(b, 0.5); got != NewYCbCr[uint8](127, 64, 191) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v", got)
	}
}

func TestYCbCrString(t *testing.T) {
	if got := NewYCbCr[uint8](76, 85, 255).String(); got != "YCbCr(76, 85, 255)" {
		t.Errorf("String() = %q", got)
	}
}

// JFIF reference values for the uint8 primaries under the JPEG model.
func TestYCbCrFromRGBJPEG(t *testing.T) {
	model := JPEGModel[uint8]{}
	tests := []struct {
		name string
		in   RGB[uint8]
		want YCbCr[uint8]
	}{
		{"black", NewRGB[uint8](0, 0, 0), NewYCbCr[uint8](0, 128, 128)},
		{"white", NewRGB[uint8](255, 255, 255), NewYCbCr[uint8](255, 128, 128)},
		{"red", NewRGB[uint8](255, 0, 0), NewYCbCr[uint8](76, 85, 255)},
		{"green", NewRGB[uint8](0, 255, 0), NewYCbCr[uint8](150, 44, 21)},
		{"blue", NewRGB[uint8](0, 0, 255), NewYCbCr[uint8](29, 255, 107)},
		{"gray", NewRGB[uint8](128, 128, 128), NewYCbCr[uint8](128, 128, 128)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YCbCrFromRGB(tt.in, model); got != tt.want {
				t.Errorf("YCbCrFromRGB(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Float storage keeps chroma centered on zero: no shift is applied.
func TestYCbCrFromRGBFloat(t *testing.T) {
	model := JPEGModel[float64]{}
	got := YCbCrFromRGB(NewRGB(0.0, 0.0, 1.0), model)
	if math.Abs(got.Luma()-0.114) > 1e-9 {
		t.Errorf("Luma = %v, want 0.114", got.Luma())
	}
	if math.Abs(got.Cb()-0.5) > 1e-9 {
		t.Errorf("Cb = %v, want 0.5", got.Cb())
	}
	if math.Abs(got.Cr()-(-0.114/1.402)) > 1e-9 {
		t.Errorf("Cr = %v, want %v", got.Cr(), -0.114/1.402)
	}

	gray := YCbCrFromRGB(RGBBroadcast(0.5), model)
	if math.Abs(gray.Cb()) > 1e-12 || math.Abs(gray.Cr()) > 1e-12 {
		t.Errorf("gray chroma = (%v, %v), want (0, 0)", gray.Cb(), gray.Cr())
	}
}

func testRoundTrip[T Scalar](t *testing.T, name string, m Model[T], colors []RGB[T], tol float64) {
	t.Helper()
	for _, c := range colors {
		back := YCbCrFromRGB(c, m).ToRGB(m, GamutPreserve)
		for i, got := range back.AsSlice() {
			want := c.AsSlice()[i]
			if math.Abs(toFloat(got)-toFloat(want)) > tol {
				t.Errorf("%s: round trip of %v = %v (channel %d off by more than %v)",
					name, c, back, i, tol)
				break
			}
		}
	}
}

func TestRoundTripStorageTypes(t *testing.T) {
	u8 := []RGB[uint8]{
		NewRGB[uint8](0, 0, 0),
		NewRGB[uint8](255, 255, 255),
		NewRGB[uint8](200, 150, 100),
		NewRGB[uint8](13, 17, 19),
		NewRGB[uint8](255, 0, 128),
	}
	testRoundTrip(t, "uint8/jpeg", JPEGModel[uint8]{}, u8, 2)
	testRoundTrip(t, "uint8/bt709", BT709Model[uint8]{}, u8, 2)
	testRoundTrip(t, "uint8/bt2020", BT2020Model[uint8]{}, u8, 2)

	testRoundTrip(t, "uint16/jpeg", JPEGModel[uint16]{}, []RGB[uint16]{
		NewRGB[uint16](0, 65535, 32768),
		NewRGB[uint16](1000, 2000, 3000),
	}, 2)

	testRoundTrip(t, "uint32/jpeg", JPEGModel[uint32]{}, []RGB[uint32]{
		NewRGB[uint32](0, math.MaxUint32, 1<<31),
		NewRGB[uint32](123456789, 987654321, 42),
	}, 4)

	testRoundTrip(t, "float32/jpeg", JPEGModel[float32]{}, []RGB[float32]{
		NewRGB[float32](0, 1, 0.5),
		NewRGB[float32](0.8, 0.1, 0.3),
	}, 1e-6)

	testRoundTrip(t, "float64/bt2020", BT2020Model[float64]{}, []RGB[float64]{
		NewRGB(0.0, 1.0, 0.5),
		NewRGB(0.25, 0.125, 0.625),
	}, 1e-12)
}

// Every sampled uint8 color must survive a JPEG round trip within two
// quantization steps per channel.
func TestRoundTripGrid(t *testing.T) {
	model := JPEGModel[uint8]{}
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				c := NewRGB(uint8(r), uint8(g), uint8(b))
				back := YCbCrFromRGB(c, model).ToRGB(model, GamutPreserve)
				if chanDiff(c.Red(), back.Red()) > 2 ||
					chanDiff(c.Green(), back.Green()) > 2 ||
					chanDiff(c.Blue(), back.Blue()) > 2 {
					t.Fatalf("round trip of %v = %v", c, back)
				}
			}
		}
	}
}

func chanDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestOutOfGamutModes(t *testing.T) {
	model := JPEGModel[float64]{}
	// Zero luma with strong chroma decodes to a negative green channel.
	ycc := NewYCbCr(0.0, 0.5, 0.5)

	preserved := ycc.ToRGB(model, GamutPreserve)
	if preserved.Green() >= 0 {
		t.Fatalf("GamutPreserve green = %v, want negative", preserved.Green())
	}
	if preserved.IsNormalized() {
		t.Error("preserved out-of-gamut color reports IsNormalized() = true")
	}

	clipped := ycc.ToRGB(model, GamutClip)
	if !clipped.IsNormalized() {
		t.Error("GamutClip result must be normalized")
	}
	if clipped.Green() != 0 {
		t.Errorf("GamutClip green = %v, want 0", clipped.Green())
	}
	if math.Abs(clipped.Red()-preserved.Red()) > 1e-12 {
		t.Error("GamutClip must not move in-range channels")
	}
}

// GamutPreserve keeps enough information to recover the YCbCr color;
// GamutClip does not.
func TestGamutPreserveRecovers(t *testing.T) {
	model := JPEGModel[float64]{}
	ycc := NewYCbCr(0.1, 0.4, -0.45)

	viaPreserve := YCbCrFromRGB(ycc.ToRGB(model, GamutPreserve), model)
	if !viaPreserve.ApproxEqual(ycc) {
		t.Errorf("preserve round trip = %v, want %v", viaPreserve, ycc)
	}

	viaClip := YCbCrFromRGB(ycc.ToRGB(model, GamutClip), model)
	if viaClip.ApproxEqual(ycc) {
		t.Error("clip round trip unexpectedly lossless for out-of-gamut input")
	}
}

// Integer storage cannot represent out-of-range channels, so both
// modes saturate identically there.
func TestOutOfGamutInteger(t *testing.T) {
	model := JPEGModel[uint8]{}
	ycc := NewYCbCr[uint8](0, 255, 255)
	preserved := ycc.ToRGB(model, GamutPreserve)
	clipped := ycc.ToRGB(model, GamutClip)
	if preserved != clipped {
		t.Errorf("integer preserve %v != clip %v", preserved, clipped)
	}
}

// Decoding with a different model than the one that encoded must not
// return the original color for saturated inputs.
func TestModelMismatch(t *testing.T) {
	c := NewRGB[uint8](255, 0, 0)
	ycc := YCbCrFromRGB(c, JPEGModel[uint8]{})
	wrong := ycc.ToRGB(BT709Model[uint8]{}, GamutClip)
	if wrong == c {
		t.Error("decoding through the wrong model should distort saturated colors")
	}
}
