package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the argument every tool shares: the image file whose
// annotation session the tool operates on.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// patchProperties are the arguments addressing one patch within a session.
func patchProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"row": map[string]interface{}{
			"type":        "integer",
			"description": "Patch row in the patch grid (0-based)",
		},
		"col": map[string]interface{}{
			"type":        "integer",
			"description": "Patch column in the patch grid (0-based)",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Session lifecycle
		{
			Name:        "image_load",
			Description: "Load an image as grayscale, tile it into a patch grid, and auto-seed every patch's mask with its Otsu threshold. Starts (or restarts) the annotation session for this path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"patches_per_axis": map[string]interface{}{
						"type":        "integer",
						"description": "Patch grid size along one dimension. Defaults to the configured value (10).",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_info",
			Description: "Get the dimensions and patch grid layout of an already loaded annotation session.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Patch inspection
		{
			Name:        "patch_info",
			Description: "Get one patch's shape, current threshold, and foreground statistics.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": patchProperties(),
				"required":   []string{"path", "row", "col"},
			},
		},
		{
			Name:        "patch_overlay",
			Description: "Render one patch's overlay (grayscale with the masked region tinted red) as base64-encoded PNG for visual review.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": patchProperties(),
				"required":   []string{"path", "row", "col"},
			},
		},

		// Mask editing
		{
			Name:        "patch_add_region",
			Description: "Mark every pixel within a circular brush as foreground in one patch's mask. The brush center must lie inside the patch; parts of the disk outside it are clipped.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": regionProperties(),
				"required":   []string{"path", "row", "col", "x", "y", "radius"},
			},
		},
		{
			Name:        "patch_remove_region",
			Description: "Mark every pixel within a circular brush as background in one patch's mask. Bounds behavior matches patch_add_region.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": regionProperties(),
				"required":   []string{"path", "row", "col", "x", "y", "radius"},
			},
		},
		{
			Name:        "patch_clear",
			Description: "Clear one patch's mask entirely and mark it as manually overridden (threshold becomes 1).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": patchProperties(),
				"required":   []string{"path", "row", "col"},
			},
		},
		{
			Name:        "patch_threshold",
			Description: "Reseed one patch's mask from an explicit intensity threshold: every pixel strictly brighter than the value becomes foreground.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProperties(patchProperties(), map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "number",
						"description": "Intensity cutoff in [0,1]",
					},
				}),
				"required": []string{"path", "row", "col", "value"},
			},
		},

		// Whole-image export
		{
			Name:        "mask_export",
			Description: "Assemble the full-resolution binary mask from all patch masks (dropping tiling padding) and return it as base64 PNG; optionally also write it to disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path to also write the mask image to",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "overlay_export",
			Description: "Stitch all patch overlays into one full-resolution image cropped to the original dimensions and return it as base64 PNG; optionally also write it to disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path to also write the overlay image to",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

func regionProperties() map[string]interface{} {
	return mergeProperties(patchProperties(), map[string]interface{}{
		"x": map[string]interface{}{
			"type":        "integer",
			"description": "Brush center X within the patch (0-based)",
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": "Brush center Y within the patch (0-based)",
		},
		"radius": map[string]interface{}{
			"type":        "number",
			"description": "Brush radius in pixels (>= 0)",
		},
	})
}

func mergeProperties(base, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
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
