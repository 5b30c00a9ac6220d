package mcpserver

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmcps/browsermcp/internal/cdpdriver"
)

func registerDialogTools(srv *server.MCPServer, d *cdpdriver.Driver) {
	getTool := mcplib.NewTool("get_dialog_message",
		mcplib.WithDescription("Read the pending-dialog slot populated by a javascript alert/confirm/prompt/beforeunload; fails if none is open."),
	)
	srv.AddTool(getTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.GetDialogMessage()
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	acceptTool := mcplib.NewTool("accept_dialog",
		mcplib.WithDescription("Accept the open dialog via Page.handleJavaScriptDialog and clear the pending-dialog slot."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(acceptTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.AcceptDialog(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	dismissTool := mcplib.NewTool("dismiss_dialog",
		mcplib.WithDescription("Dismiss the open dialog via Page.handleJavaScriptDialog and clear the pending-dialog slot."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(dismissTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.DismissDialog(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	promptTool := mcplib.NewTool("send_prompt_value",
		mcplib.WithDescription("Accept an open prompt() dialog with the given input text."),
		mcplib.WithString("text", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(promptTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.SendPromptValue(text, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})
}
