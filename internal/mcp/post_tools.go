// ABOUTME: MCP tool implementations for post operations.
// ABOUTME: Registers list, current, create, update, select, and clear tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/quill/internal/models"
	"github.com/2389-research/quill/internal/provider"
)

func (s *Server) registerPostTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_posts",
		Description: "List all posts on the site across every status (published, scheduled, draft, pending, private).",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {}
		}`),
	}, s.handleListPosts)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "get_current_post",
		Description: "Show the currently selected post, if any. Updates always target the selected post.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {}
		}`),
	}, s.handleGetCurrentPost)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "create_post",
		Description: "Create a new draft post from markdown content and select it. Fails if a post is already selected - clear or finish it first.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Post title.", "minLength": 1},
				"content": {"type": "string", "description": "Post body in markdown.", "minLength": 1},
				"tags": {"type": "array", "items": {"type": "string"}, "description": "Optional tag names; missing tags are created"},
				"feature_image": {"type": "string", "description": "Optional attachment id of an uploaded image"}
			},
			"required": ["title", "content"]
		}`),
	}, s.handleCreatePost)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "update_post",
		Description: "Update the currently selected post. Only the fields you pass are changed. Fails if no post is selected.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "New title"},
				"content": {"type": "string", "description": "New body markup"},
				"tags": {"type": "array", "items": {"type": "string"}, "description": "Replacement tag names"},
				"feature_image": {"type": "string", "description": "Attachment id of an uploaded image"},
				"status": {"type": "string", "enum": ["published", "scheduled", "draft", "pending", "private"], "description": "New status"}
			}
		}`),
	}, s.handleUpdatePost)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "select_post",
		Description: "Select an existing post by id so that subsequent updates target it.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Post id", "minLength": 1}
			},
			"required": ["id"]
		}`),
	}, s.handleSelectPost)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "clear_post",
		Description: "Clear the currently selected post without touching the site.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {}
		}`),
	}, s.handleClearPost)
}

func (s *Server) handleListPosts(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	posts, err := s.provider.ListAll(ctx)
	if err != nil {
		return toolError("failed to list posts: %v", err), nil
	}

	if len(posts) == 0 {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{Text: "No posts found."}},
		}, nil
	}

	var sb strings.Builder
	for _, post := range posts {
		sb.WriteString(formatPost(post))
		sb.WriteString("\n")
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: sb.String()}},
	}, nil
}

func (s *Server) handleGetCurrentPost(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	post, err := s.provider.GetCurrent(s.state)
	if err != nil {
		return toolError("failed to read current post: %v", err), nil
	}
	if post == nil {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{Text: "No post selected."}},
		}, nil
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: formatPost(post) + "\n\n" + post.Content,
		}},
	}, nil
}

func (s *Server) handleCreatePost(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Title        string   `json:"title"`
		Content      string   `json:"content"`
		Tags         []string `json:"tags"`
		FeatureImage string   `json:"feature_image"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Title == "" {
		return toolError("title is required"), nil
	}
	if args.Content == "" {
		return toolError("content is required"), nil
	}

	post, err := s.provider.Create(ctx, s.state, provider.CreateInput{
		Title:        args.Title,
		Content:      args.Content,
		Tags:         args.Tags,
		FeatureImage: args.FeatureImage,
	})
	if err != nil {
		return toolError("failed to create post: %v", err), nil
	}
	s.saveCheckpoint()

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: fmt.Sprintf("Draft created and selected (ID: %s)", post.ID),
		}},
	}, nil
}

func (s *Server) handleUpdatePost(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Title        *string  `json:"title"`
		Content      *string  `json:"content"`
		Tags         []string `json:"tags"`
		FeatureImage *string  `json:"feature_image"`
		Status       *string  `json:"status"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	in := provider.UpdateInput{
		Title:        args.Title,
		Content:      args.Content,
		Tags:         args.Tags,
		FeatureImage: args.FeatureImage,
	}
	if args.Status != nil {
		status := models.Status(*args.Status)
		if !models.IsValidStatus(status) {
			return toolError("invalid status %q - valid statuses: published, scheduled, draft, pending, private", *args.Status), nil
		}
		in.Status = &status
	}

	post, err := s.provider.Update(ctx, s.state, in)
	if err != nil {
		return toolError("failed to update post: %v", err), nil
	}
	s.saveCheckpoint()

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: fmt.Sprintf("Post updated (ID: %s, status: %s)", post.ID, post.Status),
		}},
	}, nil
}

func (s *Server) handleSelectPost(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.ID == "" {
		return toolError("id is required"), nil
	}

	post, err := s.provider.SelectByID(ctx, s.state, args.ID)
	if err != nil {
		return toolError("failed to select post: %v", err), nil
	}
	s.saveCheckpoint()

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: fmt.Sprintf("Selected %s", formatPost(post)),
		}},
	}, nil
}

func (s *Server) handleClearPost(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	s.provider.Clear(s.state)
	s.saveCheckpoint()

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: "Selection cleared."}},
	}, nil
}

// formatPost renders a one-line summary of a normalized post.
func formatPost(post *models.Post) string {
	return fmt.Sprintf("%q (ID: %s) [%s] updated %s",
		post.Title, post.ID, post.Status, post.UpdatedAt.Format("2006-01-02 15:04:05"))
}
