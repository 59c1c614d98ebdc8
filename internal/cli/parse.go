package cli

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gamutgo/gamut"
)

// parseColor reads an 8-bit RGB color from one of three spellings:
// a hex string ("#f80", "f80", "#ff8800"), a comma-separated channel
// triple ("255,136,0") or an SVG 1.1 color name ("tomato").
func parseColor(s string) (gamut.RGB[uint8], error) {
	var zero gamut.RGB[uint8]
	s = strings.TrimSpace(s)
	if s == "" {
		return zero, fmt.Errorf("empty color")
	}

	if strings.Contains(s, ",") {
		return parseTriple(s)
	}
	if c, ok := parseHexColor(s); ok {
		return c, nil
	}
	if nc, ok := colornames.Map[strings.ToLower(s)]; ok {
		return gamut.NewRGB(nc.R, nc.G, nc.B), nil
	}
	return zero, fmt.Errorf("unrecognized color %q (want #rrggbb, r,g,b or a color name)", s)
}

// parseHexColor accepts "RGB" and "RRGGBB" forms, with or without a
// leading '#'. Short-form digits replicate: #f80 is #ff8800.
func parseHexColor(s string) (gamut.RGB[uint8], bool) {
	var zero gamut.RGB[uint8]
	hadHash := strings.HasPrefix(s, "#")
	s = strings.TrimPrefix(s, "#")

	var r, g, b uint64
	var err error
	switch len(s) {
	case 3:
		// Bare three-letter strings like "red" reach here too; only
		// treat them as hex when they parse as hex.
		if !hadHash && !isHex(s) {
			return zero, false
		}
		if r, err = strconv.ParseUint(s[0:1], 16, 8); err != nil {
			return zero, false
		}
		if g, err = strconv.ParseUint(s[1:2], 16, 8); err != nil {
			return zero, false
		}
		if b, err = strconv.ParseUint(s[2:3], 16, 8); err != nil {
			return zero, false
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if r, err = strconv.ParseUint(s[0:2], 16, 8); err != nil {
			return zero, false
		}
		if g, err = strconv.ParseUint(s[2:4], 16, 8); err != nil {
			return zero, false
		}
		if b, err = strconv.ParseUint(s[4:6], 16, 8); err != nil {
			return zero, false
		}
	default:
		return zero, false
	}
	return gamut.NewRGB(uint8(r), uint8(g), uint8(b)), true
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// parseTriple reads "r,g,b" with each channel in [0, 255].
func parseTriple(s string) (gamut.RGB[uint8], error) {
	var zero gamut.RGB[uint8]
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return zero, fmt.Errorf("channel triple %q: want 3 values, got %d", s, len(parts))
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return zero, fmt.Errorf("channel triple %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}
	return gamut.RGBFromTuple(ch), nil
}

// formatHex renders a color as a lowercase #rrggbb string.
func formatHex(c gamut.RGB[uint8]) string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// modelFromName maps a --model flag value to its conversion model.
func modelFromName(name string) (gamut.Model[uint8], error) {
	switch strings.ToLower(name) {
	case "jpeg", "bt601":
		return gamut.JPEGModel[uint8]{}, nil
	case "bt709", "rec709":
		return gamut.BT709Model[uint8]{}, nil
	case "bt2020", "rec2020":
		return gamut.BT2020Model[uint8]{}, nil
	default:
		return nil, fmt.Errorf("unknown model %q (want jpeg, bt709 or bt2020)", name)
	}
}

// gamutModeFromName maps a --gamut flag value to an OutOfGamutMode.
func gamutModeFromName(name string) (gamut.OutOfGamutMode, error) {
	switch strings.ToLower(name) {
	case "preserve":
		return gamut.GamutPreserve, nil
	case "clip":
		return gamut.GamutClip, nil
	default:
		return 0, fmt.Errorf("unknown gamut mode %q (want preserve or clip)", name)
	}
}
