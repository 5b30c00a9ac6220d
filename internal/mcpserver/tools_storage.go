package mcpserver

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmcps/browsermcp/internal/cdpdriver"
)

func storageKind(request mcplib.CallToolRequest) cdpdriver.StorageKind {
	if request.GetString("kind", "local") == "session" {
		return cdpdriver.StorageSession
	}
	return cdpdriver.StorageLocal
}

func registerStorageTools(srv *server.MCPServer, d *cdpdriver.Driver) {
	getStorageTool := mcplib.NewTool("get_storage",
		mcplib.WithDescription("Read from localStorage or sessionStorage (kind: local|session). With no key, returns the whole store as a JSON object string."),
		mcplib.WithString("kind", mcplib.Description("local (default) or session")),
		mcplib.WithString("key"),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(getStorageTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.GetStorage(storageKind(request), request.GetString("key", ""), timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	setStorageTool := mcplib.NewTool("set_storage",
		mcplib.WithDescription("Write a key/value pair into localStorage or sessionStorage."),
		mcplib.WithString("kind", mcplib.Description("local (default) or session")),
		mcplib.WithString("key", mcplib.Required()),
		mcplib.WithString("value", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(setStorageTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		key, err := request.RequireString("key")
		if err != nil {
			return errResult(err), nil
		}
		value, err := request.RequireString("value")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.SetStorage(storageKind(request), key, value, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	getCookiesTool := mcplib.NewTool("get_cookies",
		mcplib.WithDescription("Return all cookies visible to the browser via Network.getCookies (browser-scope, not tied to the current tab)."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(getCookiesTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.GetCookies(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	setCookieTool := mcplib.NewTool("set_cookie",
		mcplib.WithDescription("Set a cookie via Network.setCookie."),
		mcplib.WithString("name", mcplib.Required()),
		mcplib.WithString("value", mcplib.Required()),
		mcplib.WithString("domain", mcplib.Required()),
		mcplib.WithString("path", mcplib.Description("defaults to '/'")),
		mcplib.WithString("same_site", mcplib.Description("Strict|Lax|None")),
		mcplib.WithBoolean("http_only"),
		mcplib.WithBoolean("secure"),
		mcplib.WithNumber("expires", mcplib.Description("unix seconds; omit for a session cookie")),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(setCookieTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errResult(err), nil
		}
		value, err := request.RequireString("value")
		if err != nil {
			return errResult(err), nil
		}
		domain, err := request.RequireString("domain")
		if err != nil {
			return errResult(err), nil
		}
		path := request.GetString("path", "/")
		sameSite := request.GetString("same_site", "")
		res, err := d.SetCookie(name, value, domain, path, sameSite,
			request.GetBool("http_only", false), request.GetBool("secure", false),
			request.GetFloat("expires", 0), timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	clearCookiesTool := mcplib.NewTool("clear_cookies",
		mcplib.WithDescription("Clear all browser cookies via Network.clearBrowserCookies."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(clearCookiesTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.ClearCookies(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	getClipTool := mcplib.NewTool("get_clipboard",
		mcplib.WithDescription("Read the system clipboard via navigator.clipboard.readText()."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(getClipTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.GetClipboard(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	setClipTool := mcplib.NewTool("set_clipboard",
		mcplib.WithDescription("Write the system clipboard via navigator.clipboard.writeText()."),
		mcplib.WithString("text", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(setClipTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.SetClipboard(text, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})
}
