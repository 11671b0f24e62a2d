// Package memdoc is an in-memory host document model implementing the
// capability set in package document.
//
// Documents are created by a Host and can be persisted as JSON. memdoc backs
// the MCP server and doubles as the mock document in tests.
//
// memdoc is not safe for concurrent use. Callers serialize access per
// document, matching the single-threaded host it stands in for.
package memdoc

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// ErrForeignObject is returned when an item, layer or document created by a
// different host implementation is passed in.
var ErrForeignObject = errors.New("object does not belong to this host")

// ErrLastCanvas is returned when removing the only canvas of a document.
var ErrLastCanvas = errors.New("document must keep at least one canvas")

// DefaultCanvasSize is the size of the canvas every new document starts with.
var DefaultCanvasSize = geometry.Pt(612, 792)

// Option configures a Host.
type Option func(*Host)

// WithPasteOffset shifts every duplicated item by p when it lands in the
// target document, the way hosts re-home pasted content relative to their own
// ruler origin.
func WithPasteOffset(p geometry.Point) Option {
	return func(h *Host) { h.pasteOffset = p }
}

// Host creates in-memory documents.
type Host struct {
	pasteOffset geometry.Point
}

// NewHost returns a host.
func NewHost(opts ...Option) *Host {
	h := &Host{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewDocument creates a document with a single default canvas at the origin
// and one unlocked layer.
func (h *Host) NewDocument(rep swatch.Representation, units document.Units) (document.Document, error) {
	return h.Create(rep, units)
}

// Create is NewDocument returning the concrete type.
func (h *Host) Create(rep swatch.Representation, units document.Units) (*Document, error) {
	if rep != swatch.RGB && rep != swatch.CMYK {
		return nil, fmt.Errorf("new document: %w", swatch.ErrUnknownRepresentation)
	}
	r, err := geometry.CanvasRegion(0, 0, DefaultCanvasSize.X, DefaultCanvasSize.Y)
	if err != nil {
		return nil, err
	}
	d := h.empty(rep, units)
	d.canvases = []*Canvas{{name: "Artboard 1", region: r}}
	d.AddLayer("Layer 1")
	return d, nil
}

func (h *Host) empty(rep swatch.Representation, units document.Units) *Document {
	if units == "" {
		units = document.Points
	}
	return &Document{host: h, id: uuid.NewString(), units: units, rep: rep}
}

// Canvas is a named region.
type Canvas struct {
	name   string
	region geometry.Region
}

// Name returns the canvas name.
func (c *Canvas) Name() string { return c.name }

// Region returns the canvas rectangle.
func (c *Canvas) Region() geometry.Region { return c.region }

// Layer is a named, lockable item container.
type Layer struct {
	name   string
	locked bool
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Locked reports the layer lock flag.
func (l *Layer) Locked() bool { return l.locked }

// SetLocked sets the layer lock flag.
func (l *Layer) SetLocked(v bool) { l.locked = v }

// Document is an in-memory document.
type Document struct {
	host     *Host
	id       string
	units    document.Units
	rep      swatch.Representation
	canvases []*Canvas
	layers   []*Layer
	items    []*Item
	groups   []*Group
	alerts   []string
}

// ID returns the document's identifier. It is assigned at creation and kept
// across Save and Open.
func (d *Document) ID() string { return d.id }

// Units returns the document's unit system.
func (d *Document) Units() document.Units { return d.units }

// Representation returns the document's color representation.
func (d *Document) Representation() swatch.Representation { return d.rep }

// Canvases returns the canvases in index order.
func (d *Document) Canvases() []document.Canvas {
	out := make([]document.Canvas, len(d.canvases))
	for i, c := range d.canvases {
		out[i] = c
	}
	return out
}

// AddCanvas appends a canvas.
func (d *Document) AddCanvas(name string, r geometry.Region) (document.Canvas, error) {
	if r.Right < r.Left || r.Top < r.Bottom {
		return nil, fmt.Errorf("add canvas %q: %w", name, geometry.ErrNegativeSize)
	}
	if name == "" {
		name = fmt.Sprintf("Artboard %d", len(d.canvases)+1)
	}
	c := &Canvas{name: name, region: r}
	d.canvases = append(d.canvases, c)
	return c, nil
}

// RemoveCanvas removes the canvas at index.
func (d *Document) RemoveCanvas(index int) error {
	if index < 0 || index >= len(d.canvases) {
		return fmt.Errorf("remove canvas %d of %d: %w", index, len(d.canvases), document.ErrInvalidIndex)
	}
	if len(d.canvases) == 1 {
		return ErrLastCanvas
	}
	d.canvases = append(d.canvases[:index], d.canvases[index+1:]...)
	return nil
}

// Layers returns the layers in order.
func (d *Document) Layers() []*Layer {
	return d.layers
}

// AddLayer appends an unlocked layer.
func (d *Document) AddLayer(name string) *Layer {
	l := &Layer{name: name}
	d.layers = append(d.layers, l)
	return l
}

// Layer returns the layer with the given name, or nil.
func (d *Document) Layer(name string) *Layer {
	for _, l := range d.layers {
		if l.name == name {
			return l
		}
	}
	return nil
}

func (d *Document) layerOrCreate(name string) *Layer {
	if l := d.Layer(name); l != nil {
		return l
	}
	return d.AddLayer(name)
}

func (d *Document) defaultLayer() *Layer {
	if len(d.layers) == 0 {
		return d.AddLayer("Layer 1")
	}
	return d.layers[0]
}

// Items returns every item, locked or not, in stacking order.
func (d *Document) Items() []*Item {
	return d.items
}

// AddItem appends an item. A nil layer means the first layer.
func (d *Document) AddItem(spec ItemSpec, layer *Layer) *Item {
	if layer == nil {
		layer = d.defaultLayer()
	}
	it := &Item{
		doc:     d,
		kind:    spec.Kind,
		name:    spec.Name,
		pos:     spec.Position,
		width:   spec.Width,
		height:  spec.Height,
		fill:    spec.Fill,
		opacity: spec.Opacity,
		locked:  spec.Locked,
		text:    spec.Text,
		layer:   layer,
	}
	if it.kind == "" {
		it.kind = KindPath
	}
	d.items = append(d.items, it)
	return it
}

// SelectAll returns every unlocked, ungrouped item on an unlocked layer.
func (d *Document) SelectAll() []document.Item {
	var out []document.Item
	for _, it := range d.items {
		if it.group == nil && document.Editable(it) {
			out = append(out, it)
		}
	}
	return out
}

// SelectOnCanvas returns the selectable items whose anchor lies inside
// canvas index.
func (d *Document) SelectOnCanvas(index int) ([]document.Item, error) {
	if index < 0 || index >= len(d.canvases) {
		return nil, fmt.Errorf("select on canvas %d of %d: %w", index, len(d.canvases), document.ErrInvalidIndex)
	}
	r := d.canvases[index].region
	var out []document.Item
	for _, it := range d.items {
		if it.group != nil || !document.Editable(it) {
			continue
		}
		p := it.pos
		if p.X >= r.Left && p.X <= r.Right && p.Y <= r.Top && p.Y >= r.Bottom {
			out = append(out, it)
		}
	}
	return out, nil
}

// AddText places a text item with its top-left at p on the first layer.
func (d *Document) AddText(contents string, p geometry.Point) (document.Item, error) {
	w, h := textExtent(contents)
	it := d.AddItem(ItemSpec{
		Kind:     KindText,
		Position: p,
		Width:    w,
		Height:   h,
		Fill:     swatch.NewRGB(0, 0, 0),
		Opacity:  100,
		Text:     contents,
	}, d.defaultLayer())
	return it, nil
}

// Alert records a user-visible warning.
func (d *Document) Alert(message string) {
	d.alerts = append(d.alerts, message)
}

// Alerts returns the warnings raised so far.
func (d *Document) Alerts() []string {
	return d.alerts
}

// NewGroup creates an empty transient group on layer.
func (d *Document) NewGroup(layer document.Layer) (document.Group, error) {
	l, ok := layer.(*Layer)
	if !ok && layer != nil {
		return nil, fmt.Errorf("new group: %w", ErrForeignObject)
	}
	if l == nil {
		l = d.defaultLayer()
	}
	g := &Group{doc: d, layer: l}
	d.groups = append(d.groups, g)
	return g, nil
}

// Groups returns the groups that have not been discarded.
func (d *Document) Groups() []*Group {
	return d.groups
}

// textExtent approximates a text frame's size with a 7x13 cell per rune.
func textExtent(s string) (float64, float64) {
	lines, longest, cur := 1, 0, 0
	for _, r := range s {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		if cur > longest {
			longest = cur
		}
	}
	return float64(longest * 7), float64(lines * 13)
}
