// Package document declares the capability set this module consumes from a
// host vector-graphics document model.
//
// The host owns documents, layers, canvases and items. Layout and palette
// operations only ever talk to the host through these interfaces, so a real
// host binding and the in-memory memdoc package are interchangeable.
//
// Lock flags are advisory and read-only here: operations skip locked items and
// items on locked layers, and never change a lock.
package document

import (
	"errors"

	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// ErrInvalidIndex is returned for an out-of-range canvas or palette index.
var ErrInvalidIndex = errors.New("invalid index")

// Units names a document's measurement system.
type Units string

// Supported unit systems.
const (
	Points      Units = "pt"
	Pixels      Units = "px"
	Millimeters Units = "mm"
	Inches      Units = "in"
)

// Positioned is anything with a top-left anchor that can be moved.
type Positioned interface {
	// Position returns the top-left anchor (Y up).
	Position() geometry.Point
	// Translate moves the item by (dx, dy).
	Translate(dx, dy float64)
}

// Fillable is anything with a fill color and opacity (0-100).
type Fillable interface {
	Fill() swatch.Color
	SetFill(c swatch.Color)
	Opacity() float64
	SetOpacity(v float64)
}

// Layer is a container of items that can be locked as a whole.
type Layer interface {
	Name() string
	Locked() bool
}

// Lockable is anything with its own lock flag and a containing layer.
type Lockable interface {
	Locked() bool
	Layer() Layer
}

// Item is a drawable object in a document.
type Item interface {
	Positioned
	Fillable
	Lockable

	// Duplicate deep-copies the item into dst, placed at the end of dst's
	// stacking order.
	Duplicate(dst Document) (Item, error)
}

// Sized is implemented by items that can report their extent.
type Sized interface {
	Size() (width, height float64)
}

// Texter is implemented by text items.
type Texter interface {
	Text() string
}

// Canvas is a named rectangular region of a document.
type Canvas interface {
	Name() string
	Region() geometry.Region
}

// Document is a host document.
type Document interface {
	Units() Units
	Representation() swatch.Representation

	// Canvases returns the canvases in index order.
	Canvases() []Canvas
	// AddCanvas appends a canvas.
	AddCanvas(name string, r geometry.Region) (Canvas, error)
	// RemoveCanvas removes the canvas at index. A document always keeps at
	// least one canvas.
	RemoveCanvas(index int) error

	// SelectAll returns every unlocked drawable item on an unlocked layer,
	// in stacking order.
	SelectAll() []Item
	// SelectOnCanvas returns the unlocked items anchored inside canvas index.
	SelectOnCanvas(index int) ([]Item, error)

	// AddText places a text annotation with its top-left at p.
	AddText(contents string, p geometry.Point) (Item, error)
}

// Host creates documents.
type Host interface {
	NewDocument(rep swatch.Representation, units Units) (Document, error)
}

// Alerter is implemented by documents that can show a user-visible warning.
type Alerter interface {
	Alert(message string)
}

// Group is a transient container of items used for measurement and movement.
type Group interface {
	Positioned

	// Adopt moves item into the group.
	Adopt(item Item) error
	// Release moves item out of the group onto layer.
	Release(item Item, layer Layer) error
	// Members returns the items currently in the group.
	Members() []Item
	// Discard deletes the group. The group must be empty.
	Discard() error
}

// Grouper is implemented by documents that support grouping.
type Grouper interface {
	NewGroup(layer Layer) (Group, error)
}

// Editable reports whether neither item nor its layer is locked.
func Editable(item Lockable) bool {
	if item.Locked() {
		return false
	}
	if l := item.Layer(); l != nil && l.Locked() {
		return false
	}
	return true
}

// Regions returns the region of each canvas.
func Regions(canvases []Canvas) []geometry.Region {
	out := make([]geometry.Region, len(canvases))
	for i, c := range canvases {
		out[i] = c.Region()
	}
	return out
}
