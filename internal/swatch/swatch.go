// Package swatch defines the two fixed color representations used by
// documents and palettes, and the fill color value exchanged with the host.
//
// Channels are real-valued on a 0-255 scale in both representations. The
// package does not convert between representations: a palette supplies both
// values for each entry.
package swatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownRepresentation is returned when parsing an unrecognized
// representation name.
var ErrUnknownRepresentation = errors.New("unknown color representation")

// Representation selects one of the two color encodings.
type Representation int

const (
	// RGB is the 3-channel additive representation.
	RGB Representation = iota
	// CMYK is the 4-channel subtractive representation.
	CMYK
)

// ParseRepresentation accepts "rgb" or "cmyk", case-insensitive.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb":
		return RGB, nil
	case "cmyk":
		return CMYK, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownRepresentation)
	}
}

// Channels returns the channel count of the representation.
func (r Representation) Channels() int {
	if r == CMYK {
		return 4
	}
	return 3
}

func (r Representation) String() string {
	switch r {
	case RGB:
		return "rgb"
	case CMYK:
		return "cmyk"
	default:
		return "Representation(" + strconv.Itoa(int(r)) + ")"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Representation) MarshalText() ([]byte, error) {
	if r != RGB && r != CMYK {
		return nil, fmt.Errorf("%d: %w", int(r), ErrUnknownRepresentation)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Representation) UnmarshalText(b []byte) error {
	v, err := ParseRepresentation(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Color3 holds red, green, blue channels.
type Color3 [3]float64

// Color4 holds cyan, magenta, yellow, black channels.
type Color4 [4]float64

// String formats the channels as "(r, g, b)", the format used in
// unmatched-color reports.
func (c Color3) String() string {
	return "(" + formatChannel(c[0]) + ", " + formatChannel(c[1]) + ", " + formatChannel(c[2]) + ")"
}

// String formats the channels as "(c, m, y, k)".
func (c Color4) String() string {
	return "(" + formatChannel(c[0]) + ", " + formatChannel(c[1]) + ", " +
		formatChannel(c[2]) + ", " + formatChannel(c[3]) + ")"
}

func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Colorful converts the channels to a go-colorful color, clamping to gamut.
func (c Color3) Colorful() colorful.Color {
	return colorful.Color{R: c[0] / 255, G: c[1] / 255, B: c[2] / 255}.Clamped()
}

// Hex returns the channels as "#rrggbb".
func (c Color3) Hex() string {
	return c.Colorful().Hex()
}

// ParseHex parses "#rrggbb" (or "#rgb") into a Color3.
func ParseHex(s string) (Color3, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return Color3{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return Color3{float64(r), float64(g), float64(b)}, nil
}

// Distance returns the CIEDE2000 perceptual distance between two colors.
func Distance(a, b Color3) float64 {
	return a.Colorful().DistanceCIEDE2000(b.Colorful())
}

// Color is a fill value as reported by the host: the representation it is
// expressed in, plus the channel values of both representations. A side that
// the host does not know is left zero.
type Color struct {
	Space Representation `json:"space"`
	RGB   Color3         `json:"rgb"`
	CMYK  Color4         `json:"cmyk"`
}

// NewRGB returns an RGB fill.
func NewRGB(r, g, b float64) Color {
	return Color{Space: RGB, RGB: Color3{r, g, b}}
}

// NewCMYK returns a CMYK fill.
func NewCMYK(c, m, y, k float64) Color {
	return Color{Space: CMYK, CMYK: Color4{c, m, y, k}}
}

// Channels returns the channel values of rep.
func (c Color) Channels(rep Representation) []float64 {
	if rep == CMYK {
		return c.CMYK[:]
	}
	return c.RGB[:]
}

func (c Color) String() string {
	if c.Space == CMYK {
		return "cmyk" + c.CMYK.String()
	}
	return "rgb" + c.RGB.String()
}
