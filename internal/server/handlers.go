package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/friendlygt/mask-tools-mcp/internal/export"
	"github.com/friendlygt/mask-tools-mcp/internal/mask"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "patch_add_region").
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
// Annotation errors from the core taxonomy (out-of-bounds positions, invalid
// dimensions, degenerate thresholding input) map to JSON-RPC code -32602;
// all other tool failures map to -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	s.mu.Lock()
	result, err := s.executeTool(params.Name, params.Arguments)
	s.mu.Unlock()
	if err != nil {
		code, message := classifyError(err)
		return s.errorResponse(req.ID, code, message, err.Error())
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Session lifecycle
	case "image_load":
		return s.handleImageLoad(args)
	case "image_info":
		return s.handleImageInfo(args)

	// Patch inspection
	case "patch_info":
		return s.handlePatchInfo(args)
	case "patch_overlay":
		return s.handlePatchOverlay(args)

	// Mask editing
	case "patch_add_region":
		return s.handlePatchAddRegion(args)
	case "patch_remove_region":
		return s.handlePatchRemoveRegion(args)
	case "patch_clear":
		return s.handlePatchClear(args)
	case "patch_threshold":
		return s.handlePatchThreshold(args)

	// Whole-image export
	case "mask_export":
		return s.handleMaskExport(args)
	case "overlay_export":
		return s.handleOverlayExport(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// classifyError maps annotation-core errors to JSON-RPC codes.
func classifyError(err error) (int, string) {
	var oobErr *mask.OutOfBoundsError
	var dimErr *mask.InvalidDimensionError
	var degErr *mask.DegenerateInputError
	if errors.As(err, &oobErr) || errors.As(err, &dimErr) || errors.As(err, &degErr) {
		return -32602, "Invalid params"
	}
	return -32000, "Tool execution failed"
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

// session returns the annotation session for path.
func (s *Server) session(path string) (*mask.Image, error) {
	im, ok := s.sessions[path]
	if !ok {
		return nil, fmt.Errorf("no session for %s: call image_load first", path)
	}
	return im, nil
}

// patch returns one patch of the session for path.
func (s *Server) patch(path string, row, col int) (*mask.Patch, error) {
	im, err := s.session(path)
	if err != nil {
		return nil, err
	}
	return im.PatchAt(row, col)
}

// === Session Lifecycle Handlers ===

// LoadResult describes a freshly tiled annotation session.
type LoadResult struct {
	Path           string `json:"path"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	PaddedWidth    int    `json:"padded_width"`
	PaddedHeight   int    `json:"padded_height"`
	PatchesPerAxis int    `json:"patches_per_axis"`
	PatchWidth     int    `json:"patch_width"`
	PatchHeight    int    `json:"patch_height"`
}

type imageLoadArgs struct {
	Path           string `json:"path"`
	PatchesPerAxis int    `json:"patches_per_axis"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.PatchesPerAxis == 0 {
		a.PatchesPerAxis = s.cfg.Annotation.PatchesPerAxis
	}

	grid, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	im, err := mask.NewImage(grid, a.PatchesPerAxis, s.eventHook())
	if err != nil {
		return nil, err
	}
	s.sessions[a.Path] = im

	return loadResult(a.Path, im), nil
}

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}
	return loadResult(a.Path, im), nil
}

func loadResult(path string, im *mask.Image) *LoadResult {
	first := im.Patches()[0]
	n := im.PatchesPerAxis()
	return &LoadResult{
		Path:           path,
		Width:          im.Grid().Width(),
		Height:         im.Grid().Height(),
		PaddedWidth:    first.Width() * n,
		PaddedHeight:   first.Height() * n,
		PatchesPerAxis: n,
		PatchWidth:     first.Width(),
		PatchHeight:    first.Height(),
	}
}

// === Patch Inspection Handlers ===

// PatchInfoResult describes the current state of one patch.
type PatchInfoResult struct {
	Row                int     `json:"row"`
	Col                int     `json:"col"`
	Width              int     `json:"width"`
	Height             int     `json:"height"`
	Threshold          float64 `json:"threshold"`
	ForegroundPixels   int     `json:"foreground_pixels"`
	ForegroundFraction float64 `json:"foreground_fraction"`
}

type patchArgs struct {
	Path string `json:"path"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

func patchInfo(p *mask.Patch) *PatchInfoResult {
	return &PatchInfoResult{
		Row:                p.Index().Row,
		Col:                p.Index().Col,
		Width:              p.Width(),
		Height:             p.Height(),
		Threshold:          p.Threshold(),
		ForegroundPixels:   p.ForegroundCount(),
		ForegroundFraction: p.ForegroundFraction(),
	}
}

func (s *Server) handlePatchInfo(args json.RawMessage) (interface{}, error) {
	var a patchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.patch(a.Path, a.Row, a.Col)
	if err != nil {
		return nil, err
	}
	return patchInfo(p), nil
}

// OverlayResult contains a patch overlay encoded as base64 PNG.
type OverlayResult struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handlePatchOverlay(args json.RawMessage) (interface{}, error) {
	var a patchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.patch(a.Path, a.Row, a.Col)
	if err != nil {
		return nil, err
	}
	encoded, err := export.PNGBase64(p.Overlay())
	if err != nil {
		return nil, err
	}
	return &OverlayResult{
		Row:         p.Index().Row,
		Col:         p.Index().Col,
		Width:       p.Width(),
		Height:      p.Height(),
		ImageBase64: encoded,
		MimeType:    export.MIMEType,
	}, nil
}

// === Mask Editing Handlers ===

type regionArgs struct {
	Path   string  `json:"path"`
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Radius float64 `json:"radius"`
}

func (s *Server) handlePatchAddRegion(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.patch(a.Path, a.Row, a.Col)
	if err != nil {
		return nil, err
	}
	if err := p.AddRegion(a.X, a.Y, a.Radius); err != nil {
		return nil, err
	}
	return patchInfo(p), nil
}

func (s *Server) handlePatchRemoveRegion(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.patch(a.Path, a.Row, a.Col)
	if err != nil {
		return nil, err
	}
	if err := p.RemoveRegion(a.X, a.Y, a.Radius); err != nil {
		return nil, err
	}
	return patchInfo(p), nil
}

func (s *Server) handlePatchClear(args json.RawMessage) (interface{}, error) {
	var a patchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.patch(a.Path, a.Row, a.Col)
	if err != nil {
		return nil, err
	}
	p.ClearMask()
	return patchInfo(p), nil
}

type thresholdArgs struct {
	Path  string  `json:"path"`
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Value float64 `json:"value"`
}

func (s *Server) handlePatchThreshold(args json.RawMessage) (interface{}, error) {
	var a thresholdArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.patch(a.Path, a.Row, a.Col)
	if err != nil {
		return nil, err
	}
	p.ApplyThreshold(a.Value)
	return patchInfo(p), nil
}

// === Whole-Image Export Handlers ===

// ExportResult contains a full-resolution raster assembled from the patch
// grid, as base64 PNG and optionally written to disk.
type ExportResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	SavedTo     string `json:"saved_to,omitempty"`
}

type exportArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleMaskExport(args json.RawMessage) (interface{}, error) {
	var a exportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}
	return s.exportRaster(export.MaskImage(im.AssembleMask()), a.OutputPath)
}

func (s *Server) handleOverlayExport(args json.RawMessage) (interface{}, error) {
	var a exportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}
	return s.exportRaster(im.AssembleOverlay(), a.OutputPath)
}

func (s *Server) exportRaster(img image.Image, outputPath string) (interface{}, error) {
	encoded, err := export.PNGBase64(img)
	if err != nil {
		return nil, err
	}
	result := &ExportResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    export.MIMEType,
	}
	if outputPath != "" {
		if err := export.SaveImage(img, outputPath); err != nil {
			return nil, err
		}
		result.SavedTo = outputPath
	}
	return result, nil
}
