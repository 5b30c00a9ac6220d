package mcpserver

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmcps/browsermcp/internal/cdpdriver"
)

func registerTabTools(srv *server.MCPServer, d *cdpdriver.Driver) {
	listTool := mcplib.NewTool("list_tabs",
		mcplib.WithDescription("List page targets via Target.getTargets, sorted by target id so indices are stable across calls."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(listTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		tabs, err := d.ListTabs(ctx, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(tabs), nil
	})

	switchTool := mcplib.NewTool("switch_tab",
		mcplib.WithDescription("Re-attach to the index-th page tab (from list_tabs) and activate it. Fails on an out-of-range index without changing the current session."),
		mcplib.WithNumber("index", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(switchTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		index, err := request.RequireInt("index")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.SwitchTab(index, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	closeTool := mcplib.NewTool("close_tab",
		mcplib.WithDescription("Close the current tab and re-attach to the first remaining one, if any; closing the only tab leaves the session empty."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(closeTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.CloseTab(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	newTool := mcplib.NewTool("new_tab",
		mcplib.WithDescription("Open a new tab via Target.createTarget and attach to it."),
		mcplib.WithString("url", mcplib.Description("defaults to about:blank")),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(newTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.NewTab(request.GetString("url", ""), timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})
}
