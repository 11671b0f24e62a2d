package memdoc

import (
	"errors"
	"fmt"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// Kind is an item's type.
type Kind string

// Item kinds.
const (
	KindPath Kind = "path"
	KindText Kind = "text"
)

// ItemSpec describes a new item.
type ItemSpec struct {
	Kind     Kind
	Name     string
	Position geometry.Point
	Width    float64
	Height   float64
	Fill     swatch.Color
	Opacity  float64
	Locked   bool
	Text     string
}

// Item is a drawable object. Position is its top-left anchor, and its extent
// runs Width rightward and Height downward from there.
type Item struct {
	doc     *Document
	kind    Kind
	name    string
	pos     geometry.Point
	width   float64
	height  float64
	fill    swatch.Color
	opacity float64
	locked  bool
	text    string
	layer   *Layer
	group   *Group
}

// Kind returns the item kind.
func (it *Item) Kind() Kind { return it.kind }

// Name returns the item name.
func (it *Item) Name() string { return it.name }

// Position returns the top-left anchor.
func (it *Item) Position() geometry.Point { return it.pos }

// Translate moves the item.
func (it *Item) Translate(dx, dy float64) {
	it.pos.X += dx
	it.pos.Y += dy
}

// Size returns the item's extent.
func (it *Item) Size() (float64, float64) { return it.width, it.height }

// Fill returns the fill color.
func (it *Item) Fill() swatch.Color { return it.fill }

// SetFill sets the fill color.
func (it *Item) SetFill(c swatch.Color) { it.fill = c }

// Opacity returns the opacity (0-100).
func (it *Item) Opacity() float64 { return it.opacity }

// SetOpacity sets the opacity (0-100).
func (it *Item) SetOpacity(v float64) { it.opacity = v }

// Locked reports the item lock flag.
func (it *Item) Locked() bool { return it.locked }

// SetLocked sets the item lock flag.
func (it *Item) SetLocked(v bool) { it.locked = v }

// Layer returns the containing layer.
func (it *Item) Layer() document.Layer {
	if it.layer == nil {
		return nil
	}
	return it.layer
}

// Text returns the contents of a text item.
func (it *Item) Text() string { return it.text }

// Duplicate copies the item to the end of dst, onto the layer of the same
// name (created if missing), shifted by the host's paste offset.
func (it *Item) Duplicate(dst document.Document) (document.Item, error) {
	d, ok := dst.(*Document)
	if !ok {
		return nil, fmt.Errorf("duplicate item: %w", ErrForeignObject)
	}
	layerName := "Layer 1"
	if it.layer != nil {
		layerName = it.layer.name
	}
	dup := d.AddItem(ItemSpec{
		Kind:     it.kind,
		Name:     it.name,
		Position: it.pos.Add(d.host.pasteOffset),
		Width:    it.width,
		Height:   it.height,
		Fill:     it.fill,
		Opacity:  it.opacity,
		Text:     it.text,
	}, d.layerOrCreate(layerName))
	return dup, nil
}

// ErrGroupNotEmpty is returned when discarding a group that still has members.
var ErrGroupNotEmpty = errors.New("group still has members")

// Group is a transient container. Members keep their stacking position in the
// document while grouped.
type Group struct {
	doc       *Document
	layer     *Layer
	members   []*Item
	discarded bool
}

// Position returns the top-left of the members, or the origin when empty.
func (g *Group) Position() geometry.Point {
	if len(g.members) == 0 {
		return geometry.Point{}
	}
	a := geometry.NewAnchor()
	for _, m := range g.members {
		a.Include(m.pos)
	}
	return a.Point()
}

// Translate moves every member.
func (g *Group) Translate(dx, dy float64) {
	for _, m := range g.members {
		m.Translate(dx, dy)
	}
}

// Adopt moves item into the group.
func (g *Group) Adopt(item document.Item) error {
	it, ok := item.(*Item)
	if !ok || it.doc != g.doc {
		return fmt.Errorf("adopt: %w", ErrForeignObject)
	}
	if it.group != nil {
		return fmt.Errorf("adopt: item already grouped")
	}
	it.group = g
	it.layer = g.layer
	g.members = append(g.members, it)
	return nil
}

// Release moves item out of the group onto layer.
func (g *Group) Release(item document.Item, layer document.Layer) error {
	it, ok := item.(*Item)
	if !ok || it.group != g {
		return fmt.Errorf("release: %w", ErrForeignObject)
	}
	l, ok := layer.(*Layer)
	if !ok {
		return fmt.Errorf("release: %w", ErrForeignObject)
	}
	for i, m := range g.members {
		if m == it {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
	it.group = nil
	it.layer = l
	return nil
}

// Members returns the grouped items.
func (g *Group) Members() []document.Item {
	out := make([]document.Item, len(g.members))
	for i, m := range g.members {
		out[i] = m
	}
	return out
}

// Discard deletes the group from its document.
func (g *Group) Discard() error {
	if len(g.members) > 0 {
		return ErrGroupNotEmpty
	}
	if g.discarded {
		return nil
	}
	for i, x := range g.doc.groups {
		if x == g {
			g.doc.groups = append(g.doc.groups[:i], g.doc.groups[i+1:]...)
			break
		}
	}
	g.discarded = true
	return nil
}
