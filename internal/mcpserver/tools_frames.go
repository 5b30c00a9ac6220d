package mcpserver

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmcps/browsermcp/internal/cdpdriver"
)

func registerFrameTools(srv *server.MCPServer, d *cdpdriver.Driver) {
	listTool := mcplib.NewTool("list_frames",
		mcplib.WithDescription("Depth-first traversal of Page.getFrameTree, main frame first."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(listTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.ListFrames(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	switchTool := mcplib.NewTool("switch_to_frame",
		mcplib.WithDescription(`Switch the current execution context to the frame identified by
id_or_index (a frameId from list_frames, or its index in that list).

Uses the context from the frame's Runtime.executionContextCreated event. If
one was already recorded it is used without re-checking; otherwise one is
forced via Page.createIsolatedWorld and the switch waits for it to arrive.`),
		mcplib.WithString("id_or_index", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(switchTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		idOrIndex, err := request.RequireString("id_or_index")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.SwitchToFrame(idOrIndex, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	mainTool := mcplib.NewTool("switch_to_main_frame",
		mcplib.WithDescription("Reset the current execution context to the page's default (main) world."),
	)
	srv.AddTool(mainTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return textResult(d.SwitchToMainFrame()), nil
	})
}
