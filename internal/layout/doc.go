// Package layout measures and moves collections of items and duplicates
// canvases into new documents while preserving the content's placement
// relative to its canvases.
//
// # Bounds
//
// The top-left of a collection is the minimum X and maximum Y over each
// member's own anchor, taken independently. It is not the anchor of any one
// member, and it trusts each item's anchor rather than computing geometric
// bounds from outlines. Empty collections yield ErrEmptyCollection.
//
// Hosts that only report group-level positions are served by
// TopLeftByGrouping, which wraps the collection in a transient group for the
// duration of the read and always ungroups afterwards.
//
// # Movement
//
// TranslateCollectionTo measures once and applies one shared offset to every
// member, so relative placement between members is preserved exactly.
//
// # Duplication
//
// Duplication runs a single pass with no rollback: measure the source,
// provision the destination, duplicate content in source order, then
// re-anchor the duplicates against the destination canvases. A failure part
// way leaves the destination document in an indeterminate state; callers
// should inspect or discard it.
package layout
