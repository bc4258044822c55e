// Package mcp exposes Marvin operations as MCP tools over stdio, so AI
// assistants can read and mutate the user's task list through the same
// endpoint resolution and fallback chain the CLI commands use.
package mcp

import (
	"context"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"marvin/internal/api"
	"marvin/internal/config"
)

// Server bridges MCP tool calls onto the API dispatch pipeline.
type Server struct {
	client    *api.Client
	options   *config.Options
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server bound to the resolved options. Tool calls
// dispatch through the regular endpoint chain, so target pinning and token
// configuration apply exactly as they do for commands.
func NewServer(client *api.Client, options *config.Options, version string) *Server {
	mcpServer := server.NewMCPServer(
		"marvin",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)

	s := &Server{
		client:    client,
		options:   options,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s
}

// Start serves the MCP protocol over stdin/stdout until the client hangs up.
func (s *Server) Start(ctx context.Context) error {
	return server.ServeStdio(s.mcpServer)
}

// dispatch runs one operation through the endpoint chain.
func (s *Server) dispatch(ctx context.Context, op api.Operation, body []byte, contentType string, query url.Values) (*api.Response, error) {
	credential, err := api.CredentialFor(s.options, op.Capability)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, api.Request{
		Method:      op.Method,
		Path:        op.Path,
		Query:       query,
		Body:        body,
		ContentType: contentType,
		Candidates:  api.Candidates(s.options, op.Capability),
		Credential:  credential,
	})
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	addTaskTool := mcp.NewTool("add_task",
		mcp.WithDescription("Create a task in Amazing Marvin"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the task"),
		),
		mcp.WithString("day",
			mcp.Description("Day to schedule the task on (YYYY-MM-DD)"),
		),
		mcp.WithString("note",
			mcp.Description("Note attached to the task"),
		),
	)
	s.mcpServer.AddTool(addTaskTool, s.handleAddTask)

	addProjectTool := mcp.NewTool("add_project",
		mcp.WithDescription("Create a project in Amazing Marvin"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the project"),
		),
	)
	s.mcpServer.AddTool(addProjectTool, s.handleAddProject)

	todayItemsTool := mcp.NewTool("today_items",
		mcp.WithDescription("List the items scheduled for today"),
		mcp.WithString("date",
			mcp.Description("Day to list instead of today (YYYY-MM-DD)"),
		),
	)
	s.mcpServer.AddTool(todayItemsTool, s.handleTodayItems)

	dueItemsTool := mcp.NewTool("due_items",
		mcp.WithDescription("List the items that are due"),
		mcp.WithString("by",
			mcp.Description("List items due by this day (YYYY-MM-DD)"),
		),
	)
	s.mcpServer.AddTool(dueItemsTool, s.handleDueItems)

	trackedItemTool := mcp.NewTool("tracked_item",
		mcp.WithDescription("Get the currently time-tracked item"),
	)
	s.mcpServer.AddTool(trackedItemTool, s.handleTrackedItem)

	markDoneTool := mcp.NewTool("mark_done",
		mcp.WithDescription("Mark a task or project done"),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("ID of the item to mark done"),
		),
	)
	s.mcpServer.AddTool(markDoneTool, s.handleMarkDone)

	readDocTool := mcp.NewTool("read_doc",
		mcp.WithDescription("Read any database document by ID (requires the full access token)"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("ID of the document to read"),
		),
	)
	s.mcpServer.AddTool(readDocTool, s.handleReadDoc)
}
