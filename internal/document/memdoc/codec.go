package memdoc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// fileFormat is the on-disk JSON layout of a document.
type fileFormat struct {
	ID             string                `json:"id,omitempty"`
	Units          document.Units        `json:"units"`
	Representation swatch.Representation `json:"representation"`
	Canvases       []canvasRecord        `json:"canvases"`
	Layers         []layerRecord         `json:"layers"`
	Items          []itemRecord          `json:"items"`
}

type canvasRecord struct {
	Name   string          `json:"name"`
	Region geometry.Region `json:"region"`
}

type layerRecord struct {
	Name   string `json:"name"`
	Locked bool   `json:"locked,omitempty"`
}

type itemRecord struct {
	Kind     Kind           `json:"kind"`
	Name     string         `json:"name,omitempty"`
	Layer    string         `json:"layer,omitempty"`
	Position geometry.Point `json:"position"`
	Width    float64        `json:"width,omitempty"`
	Height   float64        `json:"height,omitempty"`
	Fill     swatch.Color   `json:"fill"`
	Opacity  *float64       `json:"opacity,omitempty"`
	Locked   bool           `json:"locked,omitempty"`
	Text     string         `json:"text,omitempty"`
}

// Decode reads a JSON document. Missing opacity defaults to 100; items naming
// an unknown layer get a new unlocked layer of that name.
func (h *Host) Decode(r io.Reader) (*Document, error) {
	var f fileFormat
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if len(f.Canvases) == 0 {
		return nil, fmt.Errorf("document has no canvases")
	}

	d := h.empty(f.Representation, f.Units)
	if f.ID != "" {
		d.id = f.ID
	}
	for _, c := range f.Canvases {
		if _, err := d.AddCanvas(c.Name, c.Region); err != nil {
			return nil, err
		}
	}
	for _, l := range f.Layers {
		d.AddLayer(l.Name).locked = l.Locked
	}
	for _, rec := range f.Items {
		opacity := 100.0
		if rec.Opacity != nil {
			opacity = *rec.Opacity
		}
		var layer *Layer
		if rec.Layer != "" {
			layer = d.layerOrCreate(rec.Layer)
		}
		d.AddItem(ItemSpec{
			Kind:     rec.Kind,
			Name:     rec.Name,
			Position: rec.Position,
			Width:    rec.Width,
			Height:   rec.Height,
			Fill:     rec.Fill,
			Opacity:  opacity,
			Locked:   rec.Locked,
			Text:     rec.Text,
		}, layer)
	}
	return d, nil
}

// Open reads a JSON document from path.
func (h *Host) Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()
	return h.Decode(f)
}

// Encode writes the document as indented JSON. Transient groups are not
// persisted; grouped items are written as plain items.
func (d *Document) Encode(w io.Writer) error {
	f := fileFormat{
		ID:             d.id,
		Units:          d.units,
		Representation: d.rep,
	}
	for _, c := range d.canvases {
		f.Canvases = append(f.Canvases, canvasRecord{Name: c.name, Region: c.region})
	}
	for _, l := range d.layers {
		f.Layers = append(f.Layers, layerRecord{Name: l.name, Locked: l.locked})
	}
	for _, it := range d.items {
		opacity := it.opacity
		rec := itemRecord{
			Kind:     it.kind,
			Name:     it.name,
			Position: it.pos,
			Width:    it.width,
			Height:   it.height,
			Fill:     it.fill,
			Opacity:  &opacity,
			Locked:   it.locked,
			Text:     it.text,
		}
		if it.layer != nil {
			rec.Layer = it.layer.name
		}
		f.Items = append(f.Items, rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return nil
}

// Save writes the document to path.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create document file: %w", err)
	}
	if err := d.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
