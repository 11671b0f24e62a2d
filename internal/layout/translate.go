package layout

import (
	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/logging"
)

// TranslateTo moves item so its anchor lands on dest, returning the delta
// applied.
func TranslateTo(item document.Positioned, dest geometry.Point) geometry.Point {
	d := geometry.Offset(dest, item.Position())
	item.Translate(d.X, d.Y)
	return d
}

// TranslateCollectionTo moves items as one rigid body so their top-left lands
// on dest. The collection is measured once and the same delta is applied to
// every member.
func TranslateCollectionTo[T document.Positioned](items []T, dest geometry.Point) (geometry.Point, error) {
	from, err := TopLeftOf(items)
	if err != nil {
		return geometry.Point{}, err
	}
	d := geometry.Offset(dest, from)
	for _, it := range items {
		it.Translate(d.X, d.Y)
	}
	logging.Logger().Debug("translated collection", "count", len(items), "from", from, "to", dest)
	return d, nil
}
