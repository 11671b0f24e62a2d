// Package server implements the MCP (Model Context Protocol) server for
// artboard layout and palette tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the layout,
// palette and preview packages through the MCP protocol, so an assistant can
// inspect a vector document, copy its canvases into new documents in another
// color representation, and recolor content against a brand palette.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Document Operations:
//   - doc_load: Load a document and summarize it
//   - doc_bounds: Top-left of content, canvases, or one canvas
//   - doc_translate: Move content rigidly to a point
//   - doc_duplicate: Copy canvases and content into new documents
//   - doc_preview: Render a PNG preview
//   - doc_save: Write the open document to disk
//
// Palette Operations:
//   - palette_match: Per-item palette indices
//   - palette_convert: Recolor to matching palette entries
//
// Color Operations:
//   - color_match: Compare two colors within tolerance
//   - color_convert_matched: Replace one color with another
//   - color_convert_all: Set every fill and opacity
//
// # Document Store
//
// Documents are JSON files read through the memdoc host. Once loaded, a
// document is kept in memory by path and later tools operate on that copy;
// edits reach disk only through doc_save or doc_duplicate's output.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Colors that a palette conversion leaves unmatched are also sent to the
// client as a notifications/message warning ahead of the tool response.
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
