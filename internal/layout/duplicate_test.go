package layout

import (
	"errors"
	"testing"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/document/memdoc"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// newTwoCanvasSource builds an RGB source with two canvases side by side and
// content on both, plus one locked item.
func newTwoCanvasSource(t *testing.T, h *memdoc.Host) *memdoc.Document {
	t.Helper()
	d, err := h.Create(swatch.RGB, document.Millimeters)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	left, _ := geometry.CanvasRegion(100, 50, 400, 300)
	right, _ := geometry.CanvasRegion(600, 50, 400, 300)
	if _, err := d.AddCanvas("left", left); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddCanvas("right", right); err != nil {
		t.Fatal(err)
	}
	if err := d.RemoveCanvas(0); err != nil {
		t.Fatal(err)
	}

	d.AddItem(memdoc.ItemSpec{Name: "a", Position: geometry.Pt(150, -80), Fill: swatch.NewRGB(255, 0, 0), Opacity: 100}, nil)
	d.AddItem(memdoc.ItemSpec{Name: "b", Position: geometry.Pt(320, -200), Fill: swatch.NewRGB(0, 255, 0), Opacity: 100}, nil)
	d.AddItem(memdoc.ItemSpec{Name: "c", Position: geometry.Pt(700, -100), Fill: swatch.NewRGB(0, 0, 255), Opacity: 100}, nil)
	d.AddItem(memdoc.ItemSpec{Name: "locked", Position: geometry.Pt(0, 500), Locked: true, Opacity: 100}, nil)
	return d
}

func names(items []document.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.(*memdoc.Item).Name()
	}
	return out
}

func TestDuplicateDocument_PreservesLayout(t *testing.T) {
	offsets := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(37.5, -12),
		geometry.Pt(-1000, 2500),
	}
	reps := []swatch.Representation{swatch.RGB, swatch.CMYK}

	for _, off := range offsets {
		for _, rep := range reps {
			t.Run(off.String()+"/"+rep.String(), func(t *testing.T) {
				h := memdoc.NewHost(memdoc.WithPasteOffset(off))
				src := newTwoCanvasSource(t, h)

				srcCanvasTL, _ := TopLeftOfCanvases(src.Canvases())
				srcContentTL, _ := TopLeftOf(src.SelectAll())
				want := geometry.Offset(srcContentTL, srcCanvasTL)

				res, err := DuplicateDocument(h, src, rep)
				if err != nil {
					t.Fatalf("DuplicateDocument failed: %v", err)
				}
				dst := res.Document

				if dst.Representation() != rep {
					t.Errorf("representation: got %v, want %v", dst.Representation(), rep)
				}
				if dst.Units() != document.Millimeters {
					t.Errorf("units: got %v, want mm", dst.Units())
				}

				dstCanvasTL, _ := TopLeftOfCanvases(dst.Canvases())
				dstContentTL, err := TopLeftOf(res.Items)
				if err != nil {
					t.Fatalf("TopLeftOf failed: %v", err)
				}
				got := geometry.Offset(dstContentTL, dstCanvasTL)
				if !got.ApproxEqual(want, tol) {
					t.Errorf("layout offset: got %v, want %v", got, want)
				}
				if !res.LayoutOffset.ApproxEqual(want, tol) {
					t.Errorf("reported offset: got %v, want %v", res.LayoutOffset, want)
				}
			})
		}
	}
}

func TestDuplicateDocument_CanvasesAndOrder(t *testing.T) {
	h := memdoc.NewHost()
	src := newTwoCanvasSource(t, h)

	res, err := DuplicateDocument(h, src, swatch.CMYK)
	if err != nil {
		t.Fatalf("DuplicateDocument failed: %v", err)
	}

	canvases := res.Document.Canvases()
	if len(canvases) != 2 {
		t.Fatalf("canvases: got %d, want 2 (default removed)", len(canvases))
	}
	for i, c := range canvases {
		if c.Region() != src.Canvases()[i].Region() || c.Name() != src.Canvases()[i].Name() {
			t.Errorf("canvas %d: got %q %+v", i, c.Name(), c.Region())
		}
	}

	got := names(res.Items)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("items: got %v, want %v (locked excluded)", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: got %s, want %s", i, got[i], want[i])
		}
	}

	// Source content is left untouched.
	if src.Items()[0].Position() != geometry.Pt(150, -80) {
		t.Errorf("source item moved: %v", src.Items()[0].Position())
	}
}

func TestDuplicateCanvasInNewDocument(t *testing.T) {
	h := memdoc.NewHost(memdoc.WithPasteOffset(geometry.Pt(9, 9)))
	src := newTwoCanvasSource(t, h)

	res, err := DuplicateCanvasInNewDocument(h, src, 1, swatch.CMYK)
	if err != nil {
		t.Fatalf("DuplicateCanvasInNewDocument failed: %v", err)
	}

	if len(res.Document.Canvases()) != 1 || res.Document.Canvases()[0].Name() != "right" {
		t.Fatalf("expected only the right canvas")
	}
	if got := names(res.Items); len(got) != 1 || got[0] != "c" {
		t.Fatalf("items: got %v, want [c]", got)
	}
	if !res.Items[0].Position().ApproxEqual(geometry.Pt(700, -100), tol) {
		t.Errorf("position: got %v, want (700, -100)", res.Items[0].Position())
	}

	if _, err := DuplicateCanvasInNewDocument(h, src, 5, swatch.CMYK); !errors.Is(err, document.ErrInvalidIndex) {
		t.Errorf("bad index: got %v, want ErrInvalidIndex", err)
	}
}

func TestDuplicateCanvasesInNewDocument(t *testing.T) {
	h := memdoc.NewHost()
	src := newTwoCanvasSource(t, h)

	res, err := DuplicateCanvasesInNewDocument(h, src, swatch.CMYK)
	if err != nil {
		t.Fatalf("DuplicateCanvasesInNewDocument failed: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("documents: got %d, want 2", len(res))
	}
	if got := names(res[0].Items); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("first document items: got %v", got)
	}
	if got := names(res[1].Items); len(got) != 1 || got[0] != "c" {
		t.Errorf("second document items: got %v", got)
	}
}

func TestDuplicateDocument_NoContent(t *testing.T) {
	h := memdoc.NewHost()
	src, _ := h.Create(swatch.RGB, document.Points)

	res, err := DuplicateDocument(h, src, swatch.CMYK)
	if err != nil {
		t.Fatalf("DuplicateDocument failed: %v", err)
	}
	if len(res.Items) != 0 {
		t.Errorf("items: got %d", len(res.Items))
	}
	if len(res.Document.Canvases()) != 1 {
		t.Errorf("canvases: got %d", len(res.Document.Canvases()))
	}
}

type emptyDoc struct{ document.Document }

func (emptyDoc) Canvases() []document.Canvas { return nil }
func (emptyDoc) SelectAll() []document.Item  { return nil }

func TestDuplicateDocument_NoCanvases(t *testing.T) {
	_, err := DuplicateDocument(memdoc.NewHost(), emptyDoc{}, swatch.CMYK)
	if !errors.Is(err, ErrNoCanvases) {
		t.Errorf("got %v, want ErrNoCanvases", err)
	}
	if _, err := DuplicateCanvasesInNewDocument(memdoc.NewHost(), emptyDoc{}, swatch.CMYK); !errors.Is(err, ErrNoCanvases) {
		t.Errorf("per-canvas: got %v, want ErrNoCanvases", err)
	}
}
