package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and channel count. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},

		// Palette Tuning
		{
			Name:        "floorplan_classify_color",
			Description: "Sample the color at a pixel and report which room type the classifier assigns to it (ignore, other or a room type).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the floor plan image"),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "floorplan_dominant_colors",
			Description: "List the most frequent exact colors in an image or region with the room type each one classifies as. Use it to find the fill colors of a new plan style.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the floor plan image"),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 10",
						"default":     10,
					},
					"x1": map[string]interface{}{"type": "integer", "description": "Optional region left edge"},
					"y1": map[string]interface{}{"type": "integer", "description": "Optional region top edge"},
					"x2": map[string]interface{}{"type": "integer", "description": "Optional region right edge (exclusive)"},
					"y2": map[string]interface{}{"type": "integer", "description": "Optional region bottom edge (exclusive)"},
				},
				"required": []string{"path"},
			},
		},

		// Digitizing
		{
			Name:        "floorplan_digitize",
			Description: "Digitize a color-coded floor plan raster: locate the footprint, calibrate millimetres per pixel from dimension labels (OCR) and return every room as a rectangle. Without readable labels the scale is null and rooms are in pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the floor plan image (3-channel color)"),
					"min_region_pixels": map[string]interface{}{
						"type":        "integer",
						"description": "Drop regions smaller than this many pixels. Default from FLOORPLAN_MIN_REGION_PIXELS (1500)",
					},
					"ocr_whitelist": map[string]interface{}{
						"type":        "string",
						"description": "Characters OCR may return. Default \"0123456789\"",
					},
					"disable_ocr": map[string]interface{}{
						"type":        "boolean",
						"description": "Skip calibration and report pixel units",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "floorplan_render_rooms",
			Description: "Render the detected rooms as labelled rectangles over the plan and return a base64-encoded PNG. Use it to check classification and region extraction visually.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the floor plan image"),
					"min_region_pixels": map[string]interface{}{
						"type":        "integer",
						"description": "Drop regions smaller than this many pixels. Default 1500",
					},
					"crop_to_footprint": map[string]interface{}{
						"type":        "boolean",
						"description": "Crop the output to the plan footprint. Default true",
						"default":     true,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional output scale factor. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},

		// Outline Tracing
		{
			Name:        "floorplan_outline",
			Description: "Trace the exterior outline of a unit plan whose spaces are axis-aligned rectangles. Returns the centred polygon, or the plan rectangle with a reason when the spaces do not form a single hole-free shape.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to a plan JSON file (overallDimensions + spaces)"),
					"plan": map[string]interface{}{
						"type":        "object",
						"description": "Inline plan, used when path is not given",
					},
					"geojson": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return the outline as a GeoJSON Feature",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "floorplan_envelope",
			Description: "Compute the convex hull of several unit outlines placed at offsets (building envelope).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to a JSON array of placements ({name, offset:{x,z}, plan})"),
					"placements": map[string]interface{}{
						"type":        "array",
						"description": "Inline placements, used when path is not given",
					},
				},
			},
		},

		// Diagnostics
		{
			Name:        "ocr_info",
			Description: "Report whether the OCR backend used for scale calibration is available, with its version and language.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
