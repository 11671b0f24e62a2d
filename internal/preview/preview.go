// Package preview rasterizes a document into a PNG thumbnail so layout and
// recoloring results can be checked by eye.
//
// Canvases are drawn as white rectangles on a gray pasteboard. Items with a
// known size are drawn as filled rectangles at their anchor, composited with
// their opacity. Text items are drawn with a fixed 7x13 bitmap face.
package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// Options controls rendering.
type Options struct {
	// Scale is pixels per document unit. Zero means 1.
	Scale float64

	// MaxSize bounds the longer output side in pixels. Zero means no bound.
	MaxSize int

	// Margin is the pasteboard border around the content, in document units.
	Margin float64

	// GridSpacing draws grid lines at multiples of this many document units.
	// Zero means no grid.
	GridSpacing float64

	// GridLabels prints the document coordinates at each grid intersection.
	GridLabels bool

	// GridColor is the "#rrggbb" line color. Empty means red.
	GridColor string
}

var (
	pasteboard = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	canvasFill = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// maxPixels caps the unscaled raster so a stray far-away item cannot request
// a huge allocation.
const maxPixels = 8192

// Result contains the rendered preview.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	// Size is the encoded PNG size, for display (e.g. "12 kB").
	Size string `json:"size"`
}

// Render draws doc into an image.
func Render(doc document.Document, opts Options) (*image.NRGBA, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	items := doc.SelectAll()
	world, ok := extent(doc.Canvases(), items)
	if !ok {
		return nil, fmt.Errorf("nothing to render")
	}
	world = geometry.Region{
		Left:   world.Left - opts.Margin,
		Top:    world.Top + opts.Margin,
		Right:  world.Right + opts.Margin,
		Bottom: world.Bottom - opts.Margin,
	}

	w := int(math.Ceil(world.Width() * opts.Scale))
	h := int(math.Ceil(world.Height() * opts.Scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w > maxPixels || h > maxPixels {
		return nil, fmt.Errorf("preview %dx%d exceeds %d pixels per side", w, h, maxPixels)
	}

	toPixel := func(p geometry.Point) image.Point {
		return image.Pt(
			int(math.Round((p.X-world.Left)*opts.Scale)),
			int(math.Round((world.Top-p.Y)*opts.Scale)),
		)
	}

	img := imaging.New(w, h, pasteboard)
	for _, c := range doc.Canvases() {
		r := c.Region()
		cw, ch := scaled(r.Width(), opts.Scale), scaled(r.Height(), opts.Scale)
		if cw == 0 || ch == 0 {
			continue
		}
		img = imaging.Paste(img, imaging.New(cw, ch, canvasFill), toPixel(r.TopLeft()))
	}

	for _, it := range items {
		if t, ok := it.(document.Texter); ok && t.Text() != "" {
			drawText(img, toPixel(it.Position()), t.Text(), displayColor(it.Fill()))
			continue
		}
		s, ok := it.(document.Sized)
		if !ok {
			continue
		}
		iw, ih := s.Size()
		pw, ph := scaled(iw, opts.Scale), scaled(ih, opts.Scale)
		if pw == 0 || ph == 0 {
			continue
		}
		opacity := math.Max(0, math.Min(1, it.Opacity()/100))
		img = imaging.Overlay(img, imaging.New(pw, ph, displayColor(it.Fill())), toPixel(it.Position()), opacity)
	}

	if opts.GridSpacing > 0 {
		if err := drawGrid(img, world, opts); err != nil {
			return nil, err
		}
	}

	if opts.MaxSize > 0 && (w > opts.MaxSize || h > opts.MaxSize) {
		img = imaging.Fit(img, opts.MaxSize, opts.MaxSize, imaging.Lanczos)
	}
	return img, nil
}

// RenderPNG renders doc and encodes it as base64 PNG.
func RenderPNG(doc document.Document, opts Options) (*Result, error) {
	img, err := Render(doc, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &Result{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Size:        humanize.Bytes(uint64(buf.Len())),
	}, nil
}

// extent is the union of canvas regions and sized item rectangles.
func extent(canvases []document.Canvas, items []document.Item) (geometry.Region, bool) {
	var r geometry.Region
	n := 0
	add := func(o geometry.Region) {
		if n == 0 {
			r = o
		} else {
			r.Left = math.Min(r.Left, o.Left)
			r.Top = math.Max(r.Top, o.Top)
			r.Right = math.Max(r.Right, o.Right)
			r.Bottom = math.Min(r.Bottom, o.Bottom)
		}
		n++
	}
	for _, c := range canvases {
		add(c.Region())
	}
	for _, it := range items {
		p := it.Position()
		var w, h float64
		if s, ok := it.(document.Sized); ok {
			w, h = s.Size()
		}
		add(geometry.Region{Left: p.X, Top: p.Y, Right: p.X + w, Bottom: p.Y - h})
	}
	return r, n > 0
}

func scaled(v, scale float64) int {
	return int(math.Round(v * scale))
}

// displayColor picks the RGB side of a fill, falling back to a naive
// conversion of CMYK percentages when only CMYK is known.
func displayColor(c swatch.Color) color.NRGBA {
	rgb := c.RGB
	if c.Space == swatch.CMYK && rgb == (swatch.Color3{}) {
		k := 1 - clampUnit(c.CMYK[3]/100)
		for i := 0; i < 3; i++ {
			rgb[i] = 255 * (1 - clampUnit(c.CMYK[i]/100)) * k
		}
	}
	return color.NRGBA{R: channel(rgb[0]), G: channel(rgb[1]), B: channel(rgb[2]), A: 255}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// drawText draws each line of s with its top-left at p.
func drawText(img *image.NRGBA, p image.Point, s string, c color.NRGBA) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	for i, line := range strings.Split(s, "\n") {
		d.Dot = fixed.P(p.X, p.Y+face.Ascent+i*face.Height)
		d.DrawString(line)
	}
}
