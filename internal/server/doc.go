// Package server implements the MCP (Model Context Protocol) server for
// floor plan digitizing tools.
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
// Basic Image Information:
//   - image_load: Load image and get metadata, including channel count
//   - image_dimensions: Get width and height
//
// Palette Tuning:
//   - floorplan_classify_color: Sample a pixel and classify it
//   - floorplan_dominant_colors: Exact colour histogram with labels
//
// Digitizing:
//   - floorplan_digitize: Rooms as rectangles in millimetres (or pixels)
//   - floorplan_render_rooms: Debug overlay of the detected rooms
//
// Outline Tracing:
//   - floorplan_outline: Exterior outline of a rectangle-based unit plan
//   - floorplan_envelope: Convex hull of several placed units
//
// Diagnostics:
//   - ocr_info: OCR backend availability
//
// # Image Caching
//
// Images are cached by path and reused across tool calls. The cache
// enforces the configured pixel ceiling before decoding.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with
// code -32000 and the Go error string in data. A missing OCR backend is
// not an error: floorplan_digitize then reports null scale fields and
// rooms in pixels.
package server
