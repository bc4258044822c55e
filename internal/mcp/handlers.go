package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"marvin/internal/api"
	"marvin/internal/classify"
	"marvin/internal/formatting"
)

// handleAddTask handles the add_task MCP tool.
func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title argument is required"), nil
	}

	task := map[string]interface{}{"title": title}
	if day, ok := request.GetArguments()["day"].(string); ok && day != "" {
		task["day"] = day
	}
	if note, ok := request.GetArguments()["note"].(string); ok && note != "" {
		task["note"] = note
	}

	body, err := json.Marshal(task)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode task: %v", err)), nil
	}

	op := api.Operation{Method: http.MethodPost, Path: classify.PathAddTask}
	return s.call(ctx, op, body, classify.ContentTypeJSON, nil)
}

// handleAddProject handles the add_project MCP tool.
func (s *Server) handleAddProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title argument is required"), nil
	}

	body, err := json.Marshal(map[string]interface{}{"title": title})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode project: %v", err)), nil
	}

	op := api.Operation{Method: http.MethodPost, Path: classify.PathAddProject}
	return s.call(ctx, op, body, classify.ContentTypeJSON, nil)
}

// handleTodayItems handles the today_items MCP tool.
func (s *Server) handleTodayItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var query url.Values
	if date, ok := request.GetArguments()["date"].(string); ok && date != "" {
		query = url.Values{"date": {date}}
	}

	return s.call(ctx, api.OpTodayItems, nil, "", query)
}

// handleDueItems handles the due_items MCP tool.
func (s *Server) handleDueItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var query url.Values
	if by, ok := request.GetArguments()["by"].(string); ok && by != "" {
		query = url.Values{"by": {by}}
	}

	return s.call(ctx, api.OpDueItems, nil, "", query)
}

// handleTrackedItem handles the tracked_item MCP tool.
func (s *Server) handleTrackedItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.call(ctx, api.OpTrackedItem, nil, "", nil)
}

// handleMarkDone handles the mark_done MCP tool.
func (s *Server) handleMarkDone(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	itemID, err := request.RequireString("item_id")
	if err != nil {
		return mcp.NewToolResultError("item_id argument is required"), nil
	}

	body, err := json.Marshal(map[string]interface{}{"itemId": itemID})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode request: %v", err)), nil
	}

	return s.call(ctx, api.OpMarkDone, body, classify.ContentTypeJSON, nil)
}

// handleReadDoc handles the read_doc MCP tool.
func (s *Server) handleReadDoc(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id argument is required"), nil
	}

	return s.call(ctx, api.OpGetDoc, nil, "", url.Values{"id": {id}})
}

// call dispatches one operation and wraps the response for the assistant.
// JSON bodies are re-indented for readability; anything else passes through
// as-is. Dispatch failures become tool errors, never protocol errors.
func (s *Server) call(ctx context.Context, op api.Operation, body []byte, contentType string, query url.Values) (*mcp.CallToolResult, error) {
	resp, err := s.dispatch(ctx, op, body, contentType, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Request failed: %v", err)), nil
	}

	var doc interface{}
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return mcp.NewToolResultText(string(resp.Body)), nil
	}
	return mcp.NewToolResultText(formatting.PrettyJSON(doc)), nil
}
