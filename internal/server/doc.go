// Package server implements the MCP (Model Context Protocol) server for mask annotation tools.
//
// This package provides a JSON-RPC 2.0 server that exposes interactive binary
// mask annotation through the MCP protocol. It's designed to work with Claude
// and other MCP-compatible clients, letting an AI system build ground-truth
// segmentation masks patch by patch.
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
// The server provides 10 annotation tools organized into categories:
//
// Session Lifecycle:
//   - image_load: Load an image, tile it into patches, auto-seed every mask
//   - image_info: Get dimensions and patch grid layout
//
// Patch Inspection:
//   - patch_info: Shape, threshold, and foreground statistics for one patch
//   - patch_overlay: Render one patch's red-tinted overlay as base64 PNG
//
// Mask Editing:
//   - patch_add_region: Paint a circular brush of foreground pixels
//   - patch_remove_region: Erase a circular brush back to background
//   - patch_clear: Clear a patch's mask entirely
//   - patch_threshold: Reseed a patch's mask from an explicit threshold
//
// Whole-Image Export:
//   - mask_export: Assemble and export the full-resolution binary mask
//   - overlay_export: Stitch and export the full-resolution overlay
//
// # Sessions
//
// The server keeps one annotation session per image path. image_load creates
// (or replaces) the session; every other tool addresses an existing session by
// the same path. Decoded source images are additionally cached by the loader,
// so reloading a path does not reread the file. Sessions persist for the
// lifetime of the server process.
//
// # Concurrency
//
// A single mutex serializes tool execution. Sessions are not safe for
// concurrent mutation, and the stdio transport delivers one request at a
// time anyway.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32602 for invalid annotation arguments (out-of-bounds brush
//     centers, bad dimensions, degenerate patch data), -32000 for other
//     tool failures, or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
