package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/layout"
	"github.com/ironsheep/artboard-tools-mcp/internal/logging"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// ErrIndicesLengthMismatch is returned when the precomputed indices are not
// aligned with the items being converted.
var ErrIndicesLengthMismatch = errors.New("indices not aligned with items")

// AnnotationMargin is the distance between the canvases' lowest edge and the
// top of the unmatched-color annotation.
const AnnotationMargin = 20.0

// ConvertMatchedItemsToColor sets the fill of every editable item matching
// from in rep to to. Locked items are skipped. Returns the number of items
// changed.
func ConvertMatchedItemsToColor(items []document.Item, from, to swatch.Color, rep swatch.Representation) int {
	n := 0
	for _, it := range items {
		if !document.Editable(it) {
			continue
		}
		if ColorsMatch(it.Fill(), from, rep) {
			it.SetFill(to)
			n++
		}
	}
	return n
}

// ConvertAllToColor sets fill and opacity on every editable item. Returns the
// number of items changed.
func ConvertAllToColor(items []document.Item, to swatch.Color, opacity float64) int {
	n := 0
	for _, it := range items {
		if !document.Editable(it) {
			continue
		}
		it.SetFill(to)
		it.SetOpacity(opacity)
		n++
	}
	return n
}

// Report summarizes a palette conversion.
type Report struct {
	// Converted is the number of items recolored.
	Converted int `json:"converted"`

	// Skipped is the number of locked items left alone.
	Skipped int `json:"skipped"`

	// Unmatched lists the distinct unconverted colors, sorted, formatted as
	// "(r, g, b)" from each item's RGB channels.
	Unmatched []string `json:"unmatched,omitempty"`

	// Suggestions gives the perceptually nearest entry for each unmatched
	// color, in the same order as Unmatched.
	Suggestions []Suggestion `json:"suggestions,omitempty"`

	// Annotation is the text item holding the unmatched list, if written.
	Annotation document.Item `json:"-"`
}

// ConvertToPalette recolors each item to the palette entry at its precomputed
// index, in rep. Items whose index is out of range keep their fill and are
// reported as unmatched. When any are unmatched, a warning is raised and the
// list is written into doc as a text annotation AnnotationMargin below the
// bottom-left of its canvases.
//
// The conversion itself does not fail on unmatched colors; an error is
// returned only for misaligned indices or a failed annotation.
func ConvertToPalette(doc document.Document, items []document.Item, p Palette, indices []int, rep swatch.Representation) (*Report, error) {
	if len(indices) != len(items) {
		return nil, fmt.Errorf("%d indices for %d items: %w", len(indices), len(items), ErrIndicesLengthMismatch)
	}

	report := &Report{}
	var unmatched []string
	colors := make(map[string]swatch.Color3)
	for i, it := range items {
		if !document.Editable(it) {
			report.Skipped++
			continue
		}
		idx := indices[i]
		if idx >= 0 && idx < len(p) {
			it.SetFill(p[idx].Color(rep))
			report.Converted++
			continue
		}
		rgb := it.Fill().RGB
		s := rgb.String()
		unmatched = append(unmatched, s)
		colors[s] = rgb
	}

	report.Unmatched = dedupe(unmatched)
	if len(report.Unmatched) == 0 {
		logging.Logger().Info("palette conversion complete", "converted", report.Converted, "representation", rep)
		return report, nil
	}

	for _, s := range report.Unmatched {
		report.Suggestions = append(report.Suggestions, Suggest(colors[s], p))
	}

	msg := fmt.Sprintf("%d color(s) did not match the palette", len(report.Unmatched))
	logging.Logger().Warn(msg, "converted", report.Converted, "unmatched", report.Unmatched)
	if a, ok := doc.(document.Alerter); ok {
		a.Alert(msg)
	}

	at, err := annotationPoint(doc)
	if err != nil {
		return report, err
	}
	note, err := doc.AddText(strings.Join(report.Unmatched, "\n"), at)
	if err != nil {
		return report, fmt.Errorf("failed to write unmatched report: %w", err)
	}
	report.Annotation = note
	return report, nil
}

// annotationPoint is AnnotationMargin below the lowest, leftmost canvas point.
func annotationPoint(doc document.Document) (geometry.Point, error) {
	bl, err := layout.BottomLeftOfCanvases(doc.Canvases())
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Pt(bl.X, bl.Y-AnnotationMargin), nil
}

// dedupe sorts s and collapses adjacent duplicates.
func dedupe(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	sort.Strings(s)
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
