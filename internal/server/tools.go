package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorSchema describes a fill value argument.
func colorSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"space": map[string]interface{}{
				"type": "string",
				"enum": []string{"rgb", "cmyk"},
			},
			"rgb": map[string]interface{}{
				"type":     "array",
				"items":    map[string]interface{}{"type": "number"},
				"minItems": 3,
				"maxItems": 3,
			},
			"cmyk": map[string]interface{}{
				"type":     "array",
				"items":    map[string]interface{}{"type": "number"},
				"minItems": 4,
				"maxItems": 4,
			},
		},
	}
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the document file (JSON)",
	}
}

func representationProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"rgb", "cmyk"},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Document Operations
		{
			Name:        "doc_load",
			Description: "Load a document and return its units, color representation, canvases, layers and item counts. The document stays open for subsequent operations until saved.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"reload": map[string]interface{}{
						"type":        "boolean",
						"description": "Discard the open copy and read the file again. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "doc_bounds",
			Description: "Get the top-left point (minimum X, maximum Y) of the document content, of all canvases, or of one canvas. Canvas scopes also report the bottom-left point.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"scope": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"content", "canvases", "canvas"},
						"description": "What to measure. Default content",
						"default":     "content",
					},
					"canvas": map[string]interface{}{
						"type":        "integer",
						"description": "Canvas index, for scope canvas (or to limit content to one canvas)",
					},
					"by_group": map[string]interface{}{
						"type":        "boolean",
						"description": "Measure content by temporarily grouping it. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "doc_translate",
			Description: "Move the document content as a rigid block so its top-left lands on (x, y). Returns the offset applied. Changes are kept in memory until doc_save.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "number",
						"description": "Destination X coordinate",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Destination Y coordinate (Y grows upward)",
					},
					"canvas": map[string]interface{}{
						"type":        "integer",
						"description": "Only move the content anchored on this canvas",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "doc_duplicate",
			Description: "Copy canvases and content into new documents in the chosen color representation, preserving layout relative to the canvases. Optionally recolor the copies against a palette, matching in the source representation. Results are written to output and kept open.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":           pathProperty(),
					"representation": representationProperty("Color representation of the new documents"),
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"document", "canvas", "canvases"},
						"description": "document: all canvases into one document. canvas: one canvas. canvases: one document per canvas. Default document",
						"default":     "document",
					},
					"canvas": map[string]interface{}{
						"type":        "integer",
						"description": "Canvas index, for mode canvas",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Output file path. In canvases mode each document gets a -N suffix before the extension",
					},
					"palette_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional palette file to recolor the copies with",
					},
					"palette": map[string]interface{}{
						"type":        "object",
						"description": "Optional inline palette, same layout as a palette file: {\"entries\": [{\"name\", \"rgb\", \"cmyk\"}]}",
					},
				},
				"required": []string{"path", "representation", "output"},
			},
		},
		{
			Name:        "doc_preview",
			Description: "Render the document as a PNG preview and return it as base64. Canvases are white on a gray pasteboard; items are drawn as filled rectangles.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Pixels per document unit. Default 1.0",
						"default":     1.0,
					},
					"max_size": map[string]interface{}{
						"type":        "integer",
						"description": "Fit the preview within this many pixels per side. Default 1024",
						"default":     1024,
					},
					"margin": map[string]interface{}{
						"type":        "number",
						"description": "Pasteboard border in document units. Default 20",
						"default":     20,
					},
					"grid_spacing": map[string]interface{}{
						"type":        "number",
						"description": "Draw a coordinate grid every N document units. Default none",
					},
					"grid_labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Label grid intersections with document coordinates. Default false",
						"default":     false,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as #rrggbb. Default red",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "doc_save",
			Description: "Write the open document to disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Destination path. Defaults to path",
					},
				},
				"required": []string{"path"},
			},
		},

		// Palette Operations
		{
			Name:        "palette_match",
			Description: "Match the fill of every unlocked item to a palette entry. An item matches when every channel differs by less than 1.0; the first matching entry wins and -1 means no match.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"palette_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the palette file",
					},
					"representation": representationProperty("Representation to compare in. Defaults to the document's"),
				},
				"required": []string{"path", "palette_path"},
			},
		},
		{
			Name:        "palette_convert",
			Description: "Recolor unlocked items to their matching palette entries. Unmatched colors are listed in a text annotation below the canvases and reported with the nearest palette suggestion.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"palette_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the palette file",
					},
					"representation": representationProperty("Representation to write fills in. Defaults to the document's"),
				},
				"required": []string{"path", "palette_path"},
			},
		},

		// Color Operations
		{
			Name:        "color_match",
			Description: "Check whether two colors match: every channel of the representation differs by less than 1.0.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a":              colorSchema("First color"),
					"b":              colorSchema("Second color"),
					"representation": representationProperty("Representation to compare in. Default rgb"),
				},
				"required": []string{"a", "b"},
			},
		},
		{
			Name:        "color_convert_matched",
			Description: "Set the fill of every unlocked item matching one color to another color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":           pathProperty(),
					"from":           colorSchema("Color to replace"),
					"to":             colorSchema("Replacement color"),
					"representation": representationProperty("Representation to compare in. Defaults to the document's"),
				},
				"required": []string{"path", "from", "to"},
			},
		},
		{
			Name:        "color_convert_all",
			Description: "Set the fill and opacity of every unlocked item.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"to":   colorSchema("New fill color"),
					"opacity": map[string]interface{}{
						"type":        "number",
						"description": "New opacity, 0-100. Default 100",
						"default":     100,
					},
				},
				"required": []string{"path", "to"},
			},
		},
	}
}
