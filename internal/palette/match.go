package palette

import (
	"math"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// Tolerance is the exclusive per-channel difference under which two channel
// values are considered equal.
const Tolerance = 1.0

// NoMatch is the index reported for a color with no palette entry.
const NoMatch = -1

// ColorsMatch reports whether every channel of rep differs by less than
// Tolerance between c1 and c2.
func ColorsMatch(c1, c2 swatch.Color, rep swatch.Representation) bool {
	a, b := c1.Channels(rep), c2.Channels(rep)
	for i := range a {
		if math.Abs(a[i]-b[i]) >= Tolerance {
			return false
		}
	}
	return true
}

// MatchToPalette returns the index of the first entry matching c in rep, or
// NoMatch. Earlier entries win when several match.
func MatchToPalette(c swatch.Color, p Palette, rep swatch.Representation) int {
	for i, e := range p {
		if ColorsMatch(c, e.Color(rep), rep) {
			return i
		}
	}
	return NoMatch
}

// MatchItemsToPalette matches every item's fill. The result is index-aligned
// with items; pass the same, unreordered slice to ConvertToPalette.
func MatchItemsToPalette(items []document.Item, p Palette, rep swatch.Representation) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = MatchToPalette(it.Fill(), p, rep)
	}
	return out
}
