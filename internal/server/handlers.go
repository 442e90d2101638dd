package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/floorplan-mcp/internal/detection"
	"github.com/ironsheep/floorplan-mcp/internal/digitizer"
	"github.com/ironsheep/floorplan-mcp/internal/imaging"
	"github.com/ironsheep/floorplan-mcp/internal/ocr"
	"github.com/ironsheep/floorplan-mcp/internal/outline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "floorplan_digitize").
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
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
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Palette Tuning
	case "floorplan_classify_color":
		return s.handleClassifyColor(args)
	case "floorplan_dominant_colors":
		return s.handleDominantColors(args)

	// Digitizing
	case "floorplan_digitize":
		return s.handleDigitize(ctx, args)
	case "floorplan_render_rooms":
		return s.handleRenderRooms(args)

	// Outline Tracing
	case "floorplan_outline":
		return s.handleOutline(args)
	case "floorplan_envelope":
		return s.handleEnvelope(args)

	// Diagnostics
	case "ocr_info":
		return ocr.Probe(ctx, s.cfg.OCR()), nil

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

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Palette Tuning Handlers ===

type classifyColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type classifyColorResult struct {
	*imaging.ColorResult
	Label detection.Label `json:"label"`
}

func (s *Server) handleClassifyColor(args json.RawMessage) (interface{}, error) {
	var a classifyColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	c, err := imaging.SampleColor(img, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &classifyColorResult{
		ColorResult: c,
		Label:       detection.Classify(c.RGB.R, c.RGB.G, c.RGB.B),
	}, nil
}

type dominantColorsArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
	X1    int    `json:"x1"`
	Y1    int    `json:"y1"`
	X2    int    `json:"x2"`
	Y2    int    `json:"y2"`
}

type labelledColor struct {
	imaging.ColorFrequency
	Label detection.Label `json:"label"`
}

type dominantColorsResult struct {
	Colors []labelledColor `json:"colors"`
}

func (s *Server) handleDominantColors(args json.RawMessage) (interface{}, error) {
	var a dominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count <= 0 {
		a.Count = 10
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.X2 > a.X1 && a.Y2 > a.Y1 {
		region = &imaging.Region{X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y2}
	}
	dc, err := imaging.DominantColors(img, a.Count, region)
	if err != nil {
		return nil, err
	}

	out := &dominantColorsResult{Colors: make([]labelledColor, 0, len(dc.Colors))}
	for _, c := range dc.Colors {
		out.Colors = append(out.Colors, labelledColor{
			ColorFrequency: c,
			Label:          detection.Classify(c.RGB.R, c.RGB.G, c.RGB.B),
		})
	}
	return out, nil
}

// === Digitizing Handlers ===

type digitizeArgs struct {
	Path            string `json:"path"`
	MinRegionPixels int    `json:"min_region_pixels"`
	OCRWhitelist    string `json:"ocr_whitelist"`
	DisableOCR      bool   `json:"disable_ocr"`
}

func (s *Server) handleDigitize(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a digitizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := s.cfg.Digitize()
	if a.MinRegionPixels > 0 {
		opts.MinRegionPixels = a.MinRegionPixels
	}
	if a.OCRWhitelist != "" {
		opts.OCRWhitelist = a.OCRWhitelist
	}
	opts.DisableOCR = a.DisableOCR

	return s.digitizer.DigitizeImage(ctx, img, opts)
}

type renderRoomsArgs struct {
	Path            string  `json:"path"`
	MinRegionPixels int     `json:"min_region_pixels"`
	CropToFootprint *bool   `json:"crop_to_footprint"`
	Scale           float64 `json:"scale"`
}

type renderRoomsResult struct {
	*imaging.OverlayResult
	LayoutBounds detection.Bounds `json:"layoutBounds"`
}

func (s *Server) handleRenderRooms(args json.RawMessage) (interface{}, error) {
	var a renderRoomsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MinRegionPixels <= 0 {
		a.MinRegionPixels = s.cfg.MinRegionPixels
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if ch := imaging.Channels(img); ch != 3 {
		return nil, fmt.Errorf("%w: expected 3 channels, got %d", digitizer.ErrUnsupportedImageFormat, ch)
	}

	grid := detection.ClassifyImage(imaging.ToRGB(img))
	footprint, err := detection.LocateFootprint(grid)
	if err != nil {
		return nil, err
	}
	regions := detection.ExtractRegions(grid, a.MinRegionPixels)

	boxes := make([]imaging.OverlayBox, 0, len(regions))
	for _, r := range regions {
		boxes = append(boxes, imaging.OverlayBox{
			X1:    r.Bounds.MinX,
			Y1:    r.Bounds.MinY,
			X2:    r.Bounds.MaxX + 1,
			Y2:    r.Bounds.MaxY + 1,
			Label: fmt.Sprintf("%d %s", r.ID, r.Type),
			Color: roomColor(r.Type),
		})
	}

	var crop *imaging.Region
	if a.CropToFootprint == nil || *a.CropToFootprint {
		crop = &imaging.Region{X1: footprint.MinX, Y1: footprint.MinY, X2: footprint.MaxX + 1, Y2: footprint.MaxY + 1}
	}

	overlay, err := imaging.RenderOverlay(img, boxes, crop, a.Scale)
	if err != nil {
		return nil, err
	}
	return &renderRoomsResult{OverlayResult: overlay, LayoutBounds: footprint}, nil
}

// roomColor darkens the first palette sample of a room type so the box
// stands out against its own fill. Other is drawn in red.
func roomColor(l detection.Label) string {
	for _, p := range detection.DefaultPalettes {
		if p.Label == l && len(p.Samples) > 0 {
			return p.Samples[0].BlendLab(colorful.Color{}, 0.5).Clamped().Hex()
		}
	}
	return "#FF0000"
}

// === Outline Handlers ===

type outlineArgs struct {
	Path    string        `json:"path"`
	Plan    *outline.Plan `json:"plan"`
	GeoJSON bool          `json:"geojson"`
}

type outlineResult struct {
	outline.Result
	GeoJSON json.RawMessage `json:"geojson,omitempty"`
}

var errNoInput = errors.New("either path or an inline value is required")

func (s *Server) handleOutline(args json.RawMessage) (interface{}, error) {
	var a outlineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	plan := a.Plan
	if a.Path != "" {
		p, err := outline.LoadPlan(a.Path)
		if err != nil {
			return nil, err
		}
		plan = p
	}
	if plan == nil {
		return nil, fmt.Errorf("plan: %w", errNoInput)
	}

	res := &outlineResult{Result: outline.Trace(*plan)}
	if a.GeoJSON {
		data, err := res.Result.GeoJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to encode GeoJSON: %w", err)
		}
		res.GeoJSON = data
	}
	return res, nil
}

type envelopeArgs struct {
	Path       string              `json:"path"`
	Placements []outline.Placement `json:"placements"`
}

func (s *Server) handleEnvelope(args json.RawMessage) (interface{}, error) {
	var a envelopeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	placements := a.Placements
	if a.Path != "" {
		p, err := outline.LoadPlacements(a.Path)
		if err != nil {
			return nil, err
		}
		placements = p
	}
	if placements == nil {
		return nil, fmt.Errorf("placements: %w", errNoInput)
	}
	return outline.Envelope(placements), nil
}
