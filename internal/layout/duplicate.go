package layout

import (
	"fmt"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/logging"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// Duplication is the outcome of copying canvases and content into a new
// document.
type Duplication struct {
	// Document is the new destination document.
	Document document.Document

	// Items are the duplicated items, in source order.
	Items []document.Item

	// Sources are the source items, index-aligned with Items.
	Sources []document.Item

	// LayoutOffset is the content top-left relative to the canvas top-left,
	// identical in source and destination.
	LayoutOffset geometry.Point
}

// DuplicateDocument copies every canvas of src and all of its unlocked content
// into one new document using rep.
func DuplicateDocument(host document.Host, src document.Document, rep swatch.Representation) (*Duplication, error) {
	return duplicate(host, src, src.Canvases(), src.SelectAll(), rep)
}

// DuplicateCanvasInNewDocument copies canvas index of src and the content
// anchored on it into a new document using rep.
func DuplicateCanvasInNewDocument(host document.Host, src document.Document, index int, rep swatch.Representation) (*Duplication, error) {
	canvases := src.Canvases()
	if index < 0 || index >= len(canvases) {
		return nil, fmt.Errorf("duplicate canvas %d of %d: %w", index, len(canvases), document.ErrInvalidIndex)
	}
	items, err := src.SelectOnCanvas(index)
	if err != nil {
		return nil, err
	}
	return duplicate(host, src, canvases[index:index+1], items, rep)
}

// DuplicateCanvasesInNewDocument copies each canvas of src, with its content,
// into its own new document. Results are in canvas order. On failure the
// documents created so far are returned along with the error.
func DuplicateCanvasesInNewDocument(host document.Host, src document.Document, rep swatch.Representation) ([]*Duplication, error) {
	n := len(src.Canvases())
	if n == 0 {
		return nil, ErrNoCanvases
	}
	out := make([]*Duplication, 0, n)
	for i := 0; i < n; i++ {
		dup, err := DuplicateCanvasInNewDocument(host, src, i, rep)
		if err != nil {
			return out, fmt.Errorf("canvas %d: %w", i, err)
		}
		out = append(out, dup)
	}
	return out, nil
}

func duplicate(host document.Host, src document.Document, canvases []document.Canvas, items []document.Item, rep swatch.Representation) (*Duplication, error) {
	log := logging.Logger()

	// Measure.
	canvasTL, err := TopLeftOfCanvases(canvases)
	if err != nil {
		return nil, err
	}
	var layoutOffset geometry.Point
	if len(items) > 0 {
		contentTL, err := TopLeftOf(items)
		if err != nil {
			return nil, err
		}
		layoutOffset = geometry.Offset(contentTL, canvasTL)
	}

	// Provision the destination. The host's default canvas is dropped once
	// the real ones exist.
	dst, err := host.NewDocument(rep, src.Units())
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	for _, c := range canvases {
		if _, err := dst.AddCanvas(c.Name(), c.Region()); err != nil {
			return nil, fmt.Errorf("failed to add canvas %q: %w", c.Name(), err)
		}
	}
	if err := dst.RemoveCanvas(0); err != nil {
		return nil, fmt.Errorf("failed to remove default canvas: %w", err)
	}
	log.Info("provisioned document", "canvases", len(canvases), "representation", rep, "units", src.Units())

	res := &Duplication{Document: dst, Sources: items, LayoutOffset: layoutOffset}
	if len(items) == 0 {
		return res, nil
	}

	// Duplicate in source order.
	res.Items = make([]document.Item, 0, len(items))
	for i, it := range items {
		dup, err := it.Duplicate(dst)
		if err != nil {
			return res, fmt.Errorf("failed to duplicate item %d: %w", i, err)
		}
		res.Items = append(res.Items, dup)
	}

	// Re-anchor against the destination canvases.
	dstCanvasTL, err := TopLeftOfCanvases(dst.Canvases())
	if err != nil {
		return res, err
	}
	if _, err := TranslateCollectionTo(res.Items, dstCanvasTL.Add(layoutOffset)); err != nil {
		return res, err
	}
	log.Debug("re-anchored duplicates", "count", len(res.Items), "layout_offset", layoutOffset)
	return res, nil
}
