package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

var (
	defaultGridColor = color.NRGBA{R: 255, A: 128}
	labelColor       = color.NRGBA{A: 255}
)

// maxGridLines guards against a tiny spacing over a large document.
const maxGridLines = 1000

// drawGrid overlays lines at document coordinates that are multiples of
// opts.GridSpacing, so positions in the preview can be read off directly.
func drawGrid(img *image.NRGBA, world geometry.Region, opts Options) error {
	spacing := opts.GridSpacing
	c := defaultGridColor
	if opts.GridColor != "" {
		rgb, err := swatch.ParseHex(opts.GridColor)
		if err != nil {
			return err
		}
		c = color.NRGBA{R: channel(rgb[0]), G: channel(rgb[1]), B: channel(rgb[2]), A: 128}
	}

	x0, x1 := math.Ceil(world.Left/spacing), math.Floor(world.Right/spacing)
	y0, y1 := math.Ceil(world.Bottom/spacing), math.Floor(world.Top/spacing)
	if (x1-x0+1)+(y1-y0+1) > maxGridLines {
		return fmt.Errorf("grid spacing %g draws more than %d lines", spacing, maxGridLines)
	}

	b := img.Bounds()
	src := image.NewUniform(c)
	px := func(x float64) int { return int(math.Round((x - world.Left) * opts.Scale)) }
	py := func(y float64) int { return int(math.Round((world.Top - y) * opts.Scale)) }

	for k := x0; k <= x1; k++ {
		x := px(k * spacing)
		draw.Draw(img, image.Rect(x, b.Min.Y, x+1, b.Max.Y), src, image.Point{}, draw.Over)
	}
	for k := y0; k <= y1; k++ {
		y := py(k * spacing)
		draw.Draw(img, image.Rect(b.Min.X, y, b.Max.X, y+1), src, image.Point{}, draw.Over)
	}

	if !opts.GridLabels {
		return nil
	}
	for i := x0; i <= x1; i++ {
		for j := y0; j <= y1; j++ {
			p := geometry.Pt(i*spacing, j*spacing)
			drawText(img, image.Pt(px(p.X)+2, py(p.Y)+2), fmt.Sprintf("%g,%g", p.X, p.Y), labelColor)
		}
	}
	return nil
}
