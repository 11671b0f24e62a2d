package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/document/memdoc"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/layout"
	"github.com/ironsheep/artboard-tools-mcp/internal/logging"
	"github.com/ironsheep/artboard-tools-mcp/internal/palette"
	"github.com/ironsheep/artboard-tools-mcp/internal/preview"
	"github.com/ironsheep/artboard-tools-mcp/internal/swatch"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "doc_load", "doc_duplicate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		logging.Logger().Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads documents from the store as needed
//  4. Calls the appropriate layout/palette/preview function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Document Operations
	case "doc_load":
		return s.handleDocLoad(args)
	case "doc_bounds":
		return s.handleDocBounds(args)
	case "doc_translate":
		return s.handleDocTranslate(args)
	case "doc_duplicate":
		return s.handleDocDuplicate(args)
	case "doc_preview":
		return s.handleDocPreview(args)
	case "doc_save":
		return s.handleDocSave(args)

	// Palette Operations
	case "palette_match":
		return s.handlePaletteMatch(args)
	case "palette_convert":
		return s.handlePaletteConvert(args)

	// Color Operations
	case "color_match":
		return s.handleColorMatch(args)
	case "color_convert_matched":
		return s.handleColorConvertMatched(args)
	case "color_convert_all":
		return s.handleColorConvertAll(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// parseRepresentation returns fallback for an empty name.
func parseRepresentation(name string, fallback swatch.Representation) (swatch.Representation, error) {
	if name == "" {
		return fallback, nil
	}
	return swatch.ParseRepresentation(name)
}

// selectItems returns the editable content of doc, or of one canvas.
func selectItems(doc document.Document, canvas *int) ([]document.Item, error) {
	if canvas == nil {
		return doc.SelectAll(), nil
	}
	return doc.SelectOnCanvas(*canvas)
}

// === Document Handlers ===

type docLoadArgs struct {
	Path   string `json:"path"`
	Reload bool   `json:"reload"`
}

// CanvasInfo describes one canvas of a loaded document.
type CanvasInfo struct {
	Index  int             `json:"index"`
	Name   string          `json:"name"`
	Region geometry.Region `json:"region"`
}

// LayerInfo describes one layer of a loaded document.
type LayerInfo struct {
	Name   string `json:"name"`
	Locked bool   `json:"locked"`
}

// DocumentInfo summarizes a loaded document.
type DocumentInfo struct {
	ID             string                `json:"id"`
	Path           string                `json:"path"`
	Units          document.Units        `json:"units"`
	Representation swatch.Representation `json:"representation"`
	Canvases       []CanvasInfo          `json:"canvases"`
	Layers         []LayerInfo           `json:"layers"`
	Items          int                   `json:"items"`
	Editable       int                   `json:"editable"`
}

func describeDocument(path string, d *memdoc.Document) *DocumentInfo {
	info := &DocumentInfo{
		ID:             d.ID(),
		Path:           path,
		Units:          d.Units(),
		Representation: d.Representation(),
		Items:          len(d.Items()),
		Editable:       len(d.SelectAll()),
	}
	for i, c := range d.Canvases() {
		info.Canvases = append(info.Canvases, CanvasInfo{Index: i, Name: c.Name(), Region: c.Region()})
	}
	for _, l := range d.Layers() {
		info.Layers = append(info.Layers, LayerInfo{Name: l.Name(), Locked: l.Locked()})
	}
	return info
}

func (s *Server) handleDocLoad(args json.RawMessage) (interface{}, error) {
	var a docLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Reload {
		s.store.Evict(a.Path)
	}
	d, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return describeDocument(a.Path, d), nil
}

type docBoundsArgs struct {
	Path    string `json:"path"`
	Scope   string `json:"scope"`
	Canvas  *int   `json:"canvas"`
	ByGroup bool   `json:"by_group"`
}

// BoundsResult is the measured corner of a document part.
type BoundsResult struct {
	Scope      string          `json:"scope"`
	TopLeft    geometry.Point  `json:"top_left"`
	BottomLeft *geometry.Point `json:"bottom_left,omitempty"`
	Items      int             `json:"items,omitempty"`
}

func (s *Server) handleDocBounds(args json.RawMessage) (interface{}, error) {
	var a docBoundsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scope == "" {
		a.Scope = "content"
	}
	d, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}

	switch a.Scope {
	case "content":
		items, err := selectItems(d, a.Canvas)
		if err != nil {
			return nil, err
		}
		var tl geometry.Point
		if a.ByGroup {
			tl, err = layout.TopLeftByGrouping(d, items)
		} else {
			tl, err = layout.TopLeftOf(items)
		}
		if err != nil {
			return nil, err
		}
		return &BoundsResult{Scope: a.Scope, TopLeft: tl, Items: len(items)}, nil

	case "canvases", "canvas":
		canvases := d.Canvases()
		if a.Scope == "canvas" {
			if a.Canvas == nil {
				return nil, fmt.Errorf("scope canvas requires a canvas index")
			}
			i := *a.Canvas
			if i < 0 || i >= len(canvases) {
				return nil, fmt.Errorf("canvas %d of %d: %w", i, len(canvases), document.ErrInvalidIndex)
			}
			canvases = canvases[i : i+1]
		}
		tl, err := layout.TopLeftOfCanvases(canvases)
		if err != nil {
			return nil, err
		}
		bl, err := layout.BottomLeftOfCanvases(canvases)
		if err != nil {
			return nil, err
		}
		return &BoundsResult{Scope: a.Scope, TopLeft: tl, BottomLeft: &bl}, nil

	default:
		return nil, fmt.Errorf("invalid scope: %s (use content, canvases, or canvas)", a.Scope)
	}
}

type docTranslateArgs struct {
	Path   string  `json:"path"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Canvas *int    `json:"canvas"`
}

// TranslateResult reports a rigid move of document content.
type TranslateResult struct {
	Offset geometry.Point `json:"offset"`
	Items  int            `json:"items"`
}

func (s *Server) handleDocTranslate(args json.RawMessage) (interface{}, error) {
	var a docTranslateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	d, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	items, err := selectItems(d, a.Canvas)
	if err != nil {
		return nil, err
	}
	offset, err := layout.TranslateCollectionTo(items, geometry.Pt(a.X, a.Y))
	if err != nil {
		return nil, err
	}
	return &TranslateResult{Offset: offset, Items: len(items)}, nil
}

type docDuplicateArgs struct {
	Path           string          `json:"path"`
	Representation string          `json:"representation"`
	Mode           string          `json:"mode"`
	Canvas         *int            `json:"canvas"`
	Output         string          `json:"output"`
	PalettePath    string          `json:"palette_path"`
	Palette        json.RawMessage `json:"palette"`
}

// DuplicateOutput describes one document written by doc_duplicate.
type DuplicateOutput struct {
	ID           string          `json:"id"`
	Output       string          `json:"output"`
	Canvases     int             `json:"canvases"`
	Items        int             `json:"items"`
	LayoutOffset geometry.Point  `json:"layout_offset"`
	Palette      *palette.Report `json:"palette,omitempty"`
}

// DuplicateResult lists the documents written by doc_duplicate.
type DuplicateResult struct {
	Representation swatch.Representation `json:"representation"`
	Documents      []DuplicateOutput     `json:"documents"`
}

func (s *Server) handleDocDuplicate(args json.RawMessage) (interface{}, error) {
	var a docDuplicateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Mode == "" {
		a.Mode = "document"
	}
	if a.Output == "" {
		return nil, fmt.Errorf("output path is required")
	}
	rep, err := swatch.ParseRepresentation(a.Representation)
	if err != nil {
		return nil, err
	}
	src, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	p, err := loadPalette(a.PalettePath, a.Palette)
	if err != nil {
		return nil, err
	}

	var dups []*layout.Duplication
	switch a.Mode {
	case "document":
		dup, err := layout.DuplicateDocument(s.host, src, rep)
		if err != nil {
			return nil, err
		}
		dups = append(dups, dup)
	case "canvas":
		if a.Canvas == nil {
			return nil, fmt.Errorf("mode canvas requires a canvas index")
		}
		dup, err := layout.DuplicateCanvasInNewDocument(s.host, src, *a.Canvas, rep)
		if err != nil {
			return nil, err
		}
		dups = append(dups, dup)
	case "canvases":
		dups, err = layout.DuplicateCanvasesInNewDocument(s.host, src, rep)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid mode: %s (use document, canvas, or canvases)", a.Mode)
	}

	res := &DuplicateResult{Representation: rep}
	for i, dup := range dups {
		out := DuplicateOutput{
			Output:       a.Output,
			Canvases:     len(dup.Document.Canvases()),
			Items:        len(dup.Items),
			LayoutOffset: dup.LayoutOffset,
		}
		if a.Mode == "canvases" {
			out.Output = numberedPath(a.Output, i+1)
		}

		if p != nil {
			// Sources still carry the fills in the source representation.
			indices := palette.MatchItemsToPalette(dup.Sources, p, src.Representation())
			report, err := palette.ConvertToPalette(dup.Document, dup.Items, p, indices, rep)
			if err != nil {
				return nil, err
			}
			out.Palette = report
			s.reportUnmatched(out.Output, report)
		}

		md, ok := dup.Document.(*memdoc.Document)
		if !ok {
			return nil, fmt.Errorf("unexpected document type %T", dup.Document)
		}
		if err := md.Save(out.Output); err != nil {
			return nil, err
		}
		out.ID = md.ID()
		s.store.Put(out.Output, md)
		res.Documents = append(res.Documents, out)
	}
	return res, nil
}

// numberedPath inserts "-n" before the extension of path.
func numberedPath(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), n, ext)
}

// loadPalette reads a palette from a file or an inline object. It returns
// nil when neither is given.
func loadPalette(path string, inline json.RawMessage) (palette.Palette, error) {
	switch {
	case path != "":
		return palette.Load(path)
	case len(inline) > 0 && string(inline) != "null":
		return palette.Decode(bytes.NewReader(inline))
	default:
		return nil, nil
	}
}

type docPreviewArgs struct {
	Path        string   `json:"path"`
	Scale       float64  `json:"scale"`
	MaxSize     int      `json:"max_size"`
	Margin      *float64 `json:"margin"`
	GridSpacing float64  `json:"grid_spacing"`
	GridLabels  bool     `json:"grid_labels"`
	GridColor   string   `json:"grid_color"`
}

func (s *Server) handleDocPreview(args json.RawMessage) (interface{}, error) {
	var a docPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.MaxSize == 0 {
		a.MaxSize = 1024
	}
	margin := 20.0
	if a.Margin != nil {
		margin = *a.Margin
	}
	d, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return preview.RenderPNG(d, preview.Options{
		Scale:       a.Scale,
		MaxSize:     a.MaxSize,
		Margin:      margin,
		GridSpacing: a.GridSpacing,
		GridLabels:  a.GridLabels,
		GridColor:   a.GridColor,
	})
}

type docSaveArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
}

// SaveResult reports a written document.
type SaveResult struct {
	Output string `json:"output"`
	Items  int    `json:"items"`
}

func (s *Server) handleDocSave(args json.RawMessage) (interface{}, error) {
	var a docSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Output == "" {
		a.Output = a.Path
	}
	d, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if err := d.Save(a.Output); err != nil {
		return nil, err
	}
	if a.Output != a.Path {
		s.store.Put(a.Output, d)
	}
	return &SaveResult{Output: a.Output, Items: len(d.Items())}, nil
}

// === Palette Handlers ===

type paletteArgs struct {
	Path           string `json:"path"`
	PalettePath    string `json:"palette_path"`
	Representation string `json:"representation"`
}

// ItemMatch is the palette entry matched by one item.
type ItemMatch struct {
	Item  int          `json:"item"`
	Name  string       `json:"name,omitempty"`
	Fill  swatch.Color `json:"fill"`
	Match int          `json:"match"`
	Entry string       `json:"entry,omitempty"`
}

// PaletteMatchResult lists per-item palette matches.
type PaletteMatchResult struct {
	Representation swatch.Representation `json:"representation"`
	Matched        int                   `json:"matched"`
	Unmatched      int                   `json:"unmatched"`
	Items          []ItemMatch           `json:"items"`
}

type named interface {
	Name() string
}

func (s *Server) loadForPalette(a paletteArgs) (*memdoc.Document, palette.Palette, swatch.Representation, error) {
	d, err := s.store.Load(a.Path)
	if err != nil {
		return nil, nil, 0, err
	}
	rep, err := parseRepresentation(a.Representation, d.Representation())
	if err != nil {
		return nil, nil, 0, err
	}
	p, err := palette.Load(a.PalettePath)
	if err != nil {
		return nil, nil, 0, err
	}
	return d, p, rep, nil
}

func (s *Server) handlePaletteMatch(args json.RawMessage) (interface{}, error) {
	var a paletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	d, p, rep, err := s.loadForPalette(a)
	if err != nil {
		return nil, err
	}

	items := d.SelectAll()
	indices := palette.MatchItemsToPalette(items, p, rep)
	res := &PaletteMatchResult{Representation: rep, Items: make([]ItemMatch, len(items))}
	for i, it := range items {
		m := ItemMatch{Item: i, Fill: it.Fill(), Match: indices[i]}
		if n, ok := it.(named); ok {
			m.Name = n.Name()
		}
		if indices[i] == palette.NoMatch {
			res.Unmatched++
		} else {
			res.Matched++
			m.Entry = p[indices[i]].Name
		}
		res.Items[i] = m
	}
	return res, nil
}

func (s *Server) handlePaletteConvert(args json.RawMessage) (interface{}, error) {
	var a paletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	d, p, rep, err := s.loadForPalette(a)
	if err != nil {
		return nil, err
	}

	items := d.SelectAll()
	indices := palette.MatchItemsToPalette(items, p, d.Representation())
	report, err := palette.ConvertToPalette(d, items, p, indices, rep)
	if err != nil {
		return nil, err
	}
	s.reportUnmatched(a.Path, report)
	return report, nil
}

// reportUnmatched tells the client about colors a conversion left alone.
func (s *Server) reportUnmatched(path string, report *palette.Report) {
	if report == nil || len(report.Unmatched) == 0 {
		return
	}
	s.warn(fmt.Sprintf("%s: %d color(s) did not match the palette", path, len(report.Unmatched)), report.Unmatched)
}

// === Color Handlers ===

type colorMatchArgs struct {
	A              swatch.Color `json:"a"`
	B              swatch.Color `json:"b"`
	Representation string       `json:"representation"`
}

func (s *Server) handleColorMatch(args json.RawMessage) (interface{}, error) {
	var a colorMatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rep, err := parseRepresentation(a.Representation, swatch.RGB)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"match":          palette.ColorsMatch(a.A, a.B, rep),
		"representation": rep,
	}, nil
}

type colorConvertMatchedArgs struct {
	Path           string       `json:"path"`
	From           swatch.Color `json:"from"`
	To             swatch.Color `json:"to"`
	Representation string       `json:"representation"`
}

// ConvertResult counts recolored items.
type ConvertResult struct {
	Converted int `json:"converted"`
	Editable  int `json:"editable"`
}

func (s *Server) handleColorConvertMatched(args json.RawMessage) (interface{}, error) {
	var a colorConvertMatchedArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	d, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	rep, err := parseRepresentation(a.Representation, d.Representation())
	if err != nil {
		return nil, err
	}
	items := d.SelectAll()
	n := palette.ConvertMatchedItemsToColor(items, a.From, a.To, rep)
	return &ConvertResult{Converted: n, Editable: len(items)}, nil
}

type colorConvertAllArgs struct {
	Path    string       `json:"path"`
	To      swatch.Color `json:"to"`
	Opacity *float64     `json:"opacity"`
}

func (s *Server) handleColorConvertAll(args json.RawMessage) (interface{}, error) {
	var a colorConvertAllArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opacity := 100.0
	if a.Opacity != nil {
		opacity = *a.Opacity
	}
	d, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	items := d.SelectAll()
	n := palette.ConvertAllToColor(items, a.To, opacity)
	return &ConvertResult{Converted: n, Editable: len(items)}, nil
}
