package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_info",
		"patch_info",
		"patch_overlay",
		"patch_add_region",
		"patch_remove_region",
		"patch_clear",
		"patch_threshold",
		"mask_export",
		"overlay_export",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name == "" {
			t.Error("tool with empty name")
		}
		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
		if tool.InputSchema == nil {
			t.Errorf("tool %s has no input schema", tool.Name)
			continue
		}
		if tool.InputSchema["type"] != "object" {
			t.Errorf("tool %s: schema type got %v, want object", tool.Name, tool.InputSchema["type"])
		}

		props, ok := tool.InputSchema["properties"].(map[string]interface{})
		if !ok {
			t.Errorf("tool %s: properties missing", tool.Name)
			continue
		}
		if _, ok := props["path"]; !ok {
			t.Errorf("tool %s: every tool takes a path argument", tool.Name)
		}

		required, ok := tool.InputSchema["required"].([]string)
		if !ok || len(required) == 0 {
			t.Errorf("tool %s: required list missing", tool.Name)
			continue
		}
		for _, name := range required {
			if _, ok := props[name]; !ok {
				t.Errorf("tool %s: required argument %s not in properties", tool.Name, name)
			}
		}
	}
}

// TestToolDefinitions_Dispatch ensures every advertised tool is actually
// wired into the dispatcher: calling it must not fail with "unknown tool".
func TestToolDefinitions_Dispatch(t *testing.T) {
	s := New(nil)

	for _, tool := range GetToolDefinitions() {
		_, err := s.executeTool(tool.Name, []byte(`{"path":"/missing.png"}`))
		if err == nil {
			continue // nothing to check, tool somehow succeeded
		}
		if got := err.Error(); got == "unknown tool: "+tool.Name {
			t.Errorf("tool %s is advertised but not dispatched", tool.Name)
		}
	}
}
