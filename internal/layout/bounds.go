package layout

import (
	"errors"
	"fmt"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
)

// ErrEmptyCollection is returned when measuring or moving a collection with
// no members.
var ErrEmptyCollection = errors.New("empty collection")

// ErrNoCanvases is returned when a document has no canvases to measure.
var ErrNoCanvases = errors.New("document has no canvases")

// TopLeftOf returns the top-left anchor of items: the minimum X and maximum Y
// over each item's position.
func TopLeftOf[T document.Positioned](items []T) (geometry.Point, error) {
	a := geometry.NewAnchor()
	for _, it := range items {
		a.Include(it.Position())
	}
	if a.Empty() {
		return a.Point(), ErrEmptyCollection
	}
	return a.Point(), nil
}

// TopLeftOfCanvas returns the top-left corner of a canvas.
func TopLeftOfCanvas(c document.Canvas) geometry.Point {
	return c.Region().TopLeft()
}

// TopLeftOfCanvases returns the union top-left of canvases.
func TopLeftOfCanvases(canvases []document.Canvas) (geometry.Point, error) {
	a := geometry.NewAnchor()
	for _, c := range canvases {
		a.Include(TopLeftOfCanvas(c))
	}
	if a.Empty() {
		return a.Point(), ErrNoCanvases
	}
	return a.Point(), nil
}

// BottomLeftOfCanvases returns the lowest, leftmost point of canvases: the
// minimum left edge and the minimum bottom edge.
func BottomLeftOfCanvases(canvases []document.Canvas) (geometry.Point, error) {
	p, ok := geometry.Lowest(document.Regions(canvases))
	if !ok {
		return p, ErrNoCanvases
	}
	return p, nil
}

// TopLeftByGrouping measures items by grouping them and reading the group's
// position. The group is always released, and any release failure is joined
// to the returned error.
func TopLeftByGrouping(g document.Grouper, items []document.Item) (geometry.Point, error) {
	var p geometry.Point
	err := WithGroup(g, items, func(grp document.Group) error {
		p = grp.Position()
		return nil
	})
	if err != nil {
		return geometry.Point{}, fmt.Errorf("measure by grouping: %w", err)
	}
	return p, nil
}
