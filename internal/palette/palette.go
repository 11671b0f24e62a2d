// Package palette matches item fill colors against a dual-representation
// palette and converts them.
//
// # Palettes
//
// Each entry pairs an RGB value with the CMYK value of the same perceptual
// color. Both are supplied by the caller; nothing is derived. Entry order is
// the contract between matching and converting: an index returned by
// MatchToPalette is only meaningful against the same Palette.
//
// # Tolerance
//
// Two colors match in a representation when every channel of that
// representation differs by strictly less than 1.0 on the 0-255 scale. This
// absorbs per-channel rounding from conversion round trips.
//
// # Unmatched Colors
//
// ConvertToPalette completes even when some items have no palette entry. Their
// colors are deduplicated, logged as a warning, raised as a host alert when
// supported, and written as a text annotation below the canvases.
package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// ErrPaletteLengthMismatch is returned when primaries and secondaries differ
// in length.
var ErrPaletteLengthMismatch = errors.New("palette length mismatch")

// Entry is one palette color in both representations.
type Entry struct {
	Name      string        `json:"name,omitempty"`
	Primary   swatch.Color3 `json:"rgb"`
	Secondary swatch.Color4 `json:"cmyk"`
}

// Color returns the entry as a fill in rep.
func (e Entry) Color(rep swatch.Representation) swatch.Color {
	return swatch.Color{Space: rep, RGB: e.Primary, CMYK: e.Secondary}
}

// Palette is an ordered list of entries.
type Palette []Entry

// BuildPalette zips primaries and secondaries into a palette.
func BuildPalette(primaries []swatch.Color3, secondaries []swatch.Color4) (Palette, error) {
	if len(primaries) != len(secondaries) {
		return nil, fmt.Errorf("%d primaries, %d secondaries: %w",
			len(primaries), len(secondaries), ErrPaletteLengthMismatch)
	}
	p := make(Palette, len(primaries))
	for i := range primaries {
		p[i] = Entry{Primary: primaries[i], Secondary: secondaries[i]}
	}
	return p, nil
}

// fileEntry accepts rgb as either [r, g, b] or "#rrggbb".
type fileEntry struct {
	Name string          `json:"name"`
	RGB  json.RawMessage `json:"rgb"`
	CMYK *swatch.Color4  `json:"cmyk"`
}

type fileFormat struct {
	Entries []fileEntry `json:"entries"`
}

// Decode reads a palette file:
//
//	{"entries": [{"name": "brand red", "rgb": "#ff0000", "cmyk": [0, 100, 100, 0]}]}
func Decode(r io.Reader) (Palette, error) {
	var f fileFormat
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode palette: %w", err)
	}

	p := make(Palette, 0, len(f.Entries))
	for i, fe := range f.Entries {
		primary, err := parsePrimary(fe.RGB)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if fe.CMYK == nil {
			return nil, fmt.Errorf("entry %d: missing cmyk: %w", i, ErrPaletteLengthMismatch)
		}
		p = append(p, Entry{Name: fe.Name, Primary: primary, Secondary: *fe.CMYK})
	}
	return p, nil
}

func parsePrimary(raw json.RawMessage) (swatch.Color3, error) {
	if len(raw) == 0 {
		return swatch.Color3{}, fmt.Errorf("missing rgb: %w", ErrPaletteLengthMismatch)
	}
	var hex string
	if err := json.Unmarshal(raw, &hex); err == nil {
		return swatch.ParseHex(hex)
	}
	var c swatch.Color3
	if err := json.Unmarshal(raw, &c); err != nil {
		return swatch.Color3{}, fmt.Errorf("invalid rgb %s: %w", raw, err)
	}
	return c, nil
}

// Load reads a palette file from path.
func Load(path string) (Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
