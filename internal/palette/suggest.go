package palette

import (
	"math"

	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// Suggestion names the palette entry perceptually closest to an unmatched
// color. Index is NoMatch when the palette is empty.
type Suggestion struct {
	Color    string  `json:"color"`
	Hex      string  `json:"hex"`
	Index    int     `json:"index"`
	Name     string  `json:"name,omitempty"`
	Distance float64 `json:"distance"`
}

// Suggest finds the entry whose RGB value is nearest c by CIEDE2000.
func Suggest(c swatch.Color3, p Palette) Suggestion {
	s := Suggestion{Color: c.String(), Hex: c.Hex(), Index: NoMatch}
	best := math.Inf(1)
	for i, e := range p {
		if d := swatch.Distance(c, e.Primary); d < best {
			best = d
			s.Index = i
			s.Name = e.Name
		}
	}
	if s.Index != NoMatch {
		s.Distance = math.Round(best*100) / 100
	}
	return s
}
