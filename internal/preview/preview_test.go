package preview

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/document/memdoc"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

func newPreviewDocument(t *testing.T) *memdoc.Document {
	t.Helper()
	d, err := memdoc.NewHost().Create(swatch.RGB, document.Points)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	d.AddItem(memdoc.ItemSpec{
		Position: geometry.Pt(100, -100),
		Width:    50,
		Height:   50,
		Fill:     swatch.NewRGB(255, 0, 0),
		Opacity:  100,
	}, nil)
	return d
}

func nrgbaAt(t *testing.T, c color.Color) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func TestRender(t *testing.T) {
	img, err := Render(newPreviewDocument(t), Options{Margin: 10})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if img.Bounds().Dx() != 632 || img.Bounds().Dy() != 812 {
		t.Errorf("size: got %dx%d, want 632x812", img.Bounds().Dx(), img.Bounds().Dy())
	}

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"pasteboard", 5, 5, pasteboard},
		{"canvas", 20, 20, canvasFill},
		{"item", 135, 135, color.NRGBA{R: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nrgbaAt(t, img.At(tt.x, tt.y)); got != tt.want {
				t.Errorf("pixel (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRender_Opacity(t *testing.T) {
	d := newPreviewDocument(t)
	d.Items()[0].SetOpacity(0)

	img, err := Render(d, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := nrgbaAt(t, img.At(125, 125)); got != canvasFill {
		t.Errorf("transparent item should not show: got %v", got)
	}
}

func TestRender_MaxSize(t *testing.T) {
	img, err := Render(newPreviewDocument(t), Options{MaxSize: 100})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds().Dx() > 100 || img.Bounds().Dy() > 100 {
		t.Errorf("got %dx%d, want within 100x100", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRender_IncludesAnnotationBelowCanvas(t *testing.T) {
	d := newPreviewDocument(t)
	if _, err := d.AddText("(1, 2, 3)", geometry.Pt(0, -812)); err != nil {
		t.Fatal(err)
	}

	img, err := Render(d, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	// Canvas is 792 tall, the text starts 20 below it and is 13 tall.
	if img.Bounds().Dy() != 825 {
		t.Errorf("height: got %d, want 825", img.Bounds().Dy())
	}
}

func TestRenderPNG(t *testing.T) {
	res, err := RenderPNG(newPreviewDocument(t), Options{Scale: 0.5})
	if err != nil {
		t.Fatalf("RenderPNG failed: %v", err)
	}
	if res.MimeType != "image/png" {
		t.Errorf("mime type: got %s", res.MimeType)
	}
	if !strings.HasSuffix(res.Size, "B") {
		t.Errorf("size: got %q", res.Size)
	}

	data, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid png: %v", err)
	}
	if img.Bounds().Dx() != res.Width || res.Width != 306 {
		t.Errorf("width: got %d (decoded %d), want 306", res.Width, img.Bounds().Dx())
	}
}

func TestDisplayColor_CMYKFallback(t *testing.T) {
	got := displayColor(swatch.NewCMYK(0, 100, 100, 0))
	if got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("got %v, want red", got)
	}
}

func TestRender_Grid(t *testing.T) {
	img, err := Render(newPreviewDocument(t), Options{GridSpacing: 100})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	tests := []struct {
		name     string
		x, y     int
		wantLine bool
	}{
		{"vertical line", 100, 50, true},
		{"horizontal line", 50, 200, true},
		{"between lines", 50, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nrgbaAt(t, img.At(tt.x, tt.y))
			onLine := got != canvasFill
			if onLine != tt.wantLine {
				t.Errorf("pixel (%d,%d) = %v: on line %v, want %v", tt.x, tt.y, got, onLine, tt.wantLine)
			}
			if tt.wantLine && got.R != 255 {
				t.Errorf("grid should be red over white: got %v", got)
			}
		})
	}
}

func TestRender_GridErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"bad color", Options{GridSpacing: 100, GridColor: "red"}},
		{"too dense", Options{GridSpacing: 0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Render(newPreviewDocument(t), tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}
