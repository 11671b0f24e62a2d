// Package geometry provides the coordinate primitives shared by the layout
// and palette packages.
//
// # Coordinate System
//
// Item positions use document coordinates where X increases rightward and Y
// increases upward. A position is always the top-left anchor of an item, so
// "topmost" means the largest Y and "leftmost" the smallest X.
//
// Canvas regions are built from a downward-measured origin (x, y) and a size
// (width, height). The region stores top and bottom negated relative to the
// supplied values:
//
//	left   = x
//	top    = -y
//	right  = x + width
//	bottom = -(y + height)
//
// This keeps a region's top-left directly comparable with item positions.
//
// # Offsets
//
// Offset(a, b) is always a - b: the translation that moves b onto a. Every
// caller in this module uses that single convention.
package geometry
