package mcpserver

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmcps/browsermcp/internal/cdpdriver"
)

func registerNavigationTools(srv *server.MCPServer, d *cdpdriver.Driver) {
	navTool := mcplib.NewTool("navigate",
		mcplib.WithDescription("Navigate the attached tab to url. Clears the console ring on success."),
		mcplib.WithString("url", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(navTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.Navigate(url, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	backTool := mcplib.NewTool("navigate_back",
		mcplib.WithDescription(`Go back one entry in the tab's navigation history.

Fails with error_detail "No back history." if already at the oldest entry —
this is a semantic error, not a protocol failure, so callers should branch on
it rather than retry.`),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(backTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.NavigateBack(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	forwardTool := mcplib.NewTool("navigate_forward",
		mcplib.WithDescription(`Go forward one entry in the tab's navigation history. Fails with error_detail "No forward history." at the newest entry.`),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(forwardTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.NavigateForward(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	historyTool := mcplib.NewTool("get_navigation_history",
		mcplib.WithDescription("Return the tab's navigation history and current position."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(historyTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.GetNavigationHistory(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	refreshTool := mcplib.NewTool("refresh",
		mcplib.WithDescription("Reload the current page."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(refreshTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.Refresh(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	waitNavTool := mcplib.NewTool("wait_for_navigation",
		mcplib.WithDescription("Poll document.readyState until 'complete' or timeout_ms elapses (default 10s)."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(waitNavTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.WaitForNavigation(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	waitSecTool := mcplib.NewTool("wait_seconds",
		mcplib.WithDescription("Sleep for the given number of seconds, capped at 120."),
		mcplib.WithNumber("seconds", mcplib.Required()),
	)
	srv.AddTool(waitSecTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		seconds, err := request.RequireFloat("seconds")
		if err != nil {
			return errResult(err), nil
		}
		return textResult(d.WaitSeconds(seconds)), nil
	})
}
