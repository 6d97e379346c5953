// ABOUTME: MCP tool implementation for media library uploads.
// ABOUTME: Registers upload_media, returning the attachment id used for feature images.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxUploadBytes caps media uploads at 32 MiB.
const maxUploadBytes = 32 << 20

func (s *Server) registerMediaTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "upload_media",
		Description: "Upload a local file to the site's media library. The returned attachment id is what create_post and update_post accept as feature_image.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"path": {"type": "string", "description": "Path to a local file", "minLength": 1}
			},
			"required": ["path"]
		}`),
	}, s.handleUploadMedia)
}

func (s *Server) handleUploadMedia(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Path == "" {
		return toolError("path is required"), nil
	}

	info, err := os.Stat(args.Path)
	if err != nil {
		return toolError("failed to read file: %v", err), nil
	}
	if info.Size() > maxUploadBytes {
		return toolError("file is too large (%d bytes, limit %d)", info.Size(), maxUploadBytes), nil
	}

	data, err := os.ReadFile(args.Path)
	if err != nil {
		return toolError("failed to read file: %v", err), nil
	}

	media, err := s.media.CreateMedia(ctx, filepath.Base(args.Path), data)
	if err != nil {
		return toolError("failed to upload media: %v", err), nil
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: fmt.Sprintf("Uploaded %s (attachment ID: %d)\nURL: %s", filepath.Base(args.Path), media.ID, media.SourceURL),
		}},
	}, nil
}
