package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeSize is returned when a region is requested with a negative
// width or height.
var ErrNegativeSize = errors.New("negative region size")

// Point represents a real-valued 2D position or displacement.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Neg returns the point with both components negated.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// ApproxEqual reports whether both components of p and q differ by at most tol.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

// IsFinite reports whether neither component is infinite or NaN.
func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Offset returns p1 - p2, the translation that moves p2 onto p1.
//
// Offset is antisymmetric: Offset(a, b) == Offset(b, a).Neg() for all finite
// inputs.
func Offset(p1, p2 Point) Point {
	return Point{X: p1.X - p2.X, Y: p1.Y - p2.Y}
}

// Region is a canvas rectangle in document coordinates (Y up), so Top is
// greater than or equal to Bottom for any region built by CanvasRegion.
type Region struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// CanvasRegion builds a Region from a downward-measured origin and a size.
//
// Parameters:
//   - x: Left edge.
//   - y: Distance of the top edge below the document origin. Stored negated.
//   - width, height: Region size. Must be non-negative.
//
// Returns:
//   - Region: {left: x, top: -y, right: x+width, bottom: -(y+height)}.
//   - error: ErrNegativeSize if width or height is negative.
func CanvasRegion(x, y, width, height float64) (Region, error) {
	if width < 0 || height < 0 {
		return Region{}, fmt.Errorf("canvas region %gx%g: %w", width, height, ErrNegativeSize)
	}
	return Region{
		Left:   x,
		Top:    -y,
		Right:  x + width,
		Bottom: -(y + height),
	}, nil
}

// TopLeft returns the region's top-left corner.
func (r Region) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// BottomLeft returns the region's bottom-left corner.
func (r Region) BottomLeft() Point {
	return Point{X: r.Left, Y: r.Bottom}
}

// Width returns the horizontal extent.
func (r Region) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Region) Height() float64 {
	return r.Top - r.Bottom
}

// Translate returns the region moved by d.
func (r Region) Translate(d Point) Region {
	return Region{
		Left:   r.Left + d.X,
		Top:    r.Top + d.Y,
		Right:  r.Right + d.X,
		Bottom: r.Bottom + d.Y,
	}
}

// Anchor accumulates the top-left corner of a set of points: the minimum X and
// the maximum Y, taken independently.
//
// The zero value is not ready for use; call NewAnchor. An anchor that has seen
// no points reports the sentinel (+Inf, -Inf) from Point.
type Anchor struct {
	p Point
	n int
}

// NewAnchor returns an empty anchor.
func NewAnchor() *Anchor {
	return &Anchor{p: Point{X: math.Inf(1), Y: math.Inf(-1)}}
}

// Include folds p into the anchor.
func (a *Anchor) Include(p Point) {
	a.p.X = math.Min(a.p.X, p.X)
	a.p.Y = math.Max(a.p.Y, p.Y)
	a.n++
}

// Point returns the accumulated top-left, or (+Inf, -Inf) when empty.
func (a *Anchor) Point() Point {
	return a.p
}

// Empty reports whether no point has been included.
func (a *Anchor) Empty() bool {
	return a.n == 0
}

// Lowest accumulates the bottom-left corner of a set of regions: the minimum
// left edge and the minimum bottom edge.
func Lowest(regions []Region) (Point, bool) {
	if len(regions) == 0 {
		return Point{}, false
	}
	p := regions[0].BottomLeft()
	for _, r := range regions[1:] {
		p.X = math.Min(p.X, r.Left)
		p.Y = math.Min(p.Y, r.Bottom)
	}
	return p, true
}
