package mcpserver

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmcps/browsermcp/internal/cdpdriver"
)

func registerLifecycleTools(srv *server.MCPServer, d *cdpdriver.Driver, defaults OpenBrowserDefaults) {
	openTool := mcplib.NewTool("open_browser",
		mcplib.WithDescription(`Launch or adopt a Chrome instance and attach to a page tab.

**When to use:**
- First call of any automation session; every other tool requires an open
  browser.
- Re-opening after close_browser, or after switching profile_dir to isolate
  one automation run from another.

**Behavior:**
- If profile_dir already has a parseable DevToolsActivePort file, this adopts
  the Chrome it names instead of spawning a new process; that Chrome is not
  probed before connecting (disable_translate forbids adoption when set).
- Otherwise launches a fresh Chrome with the configured default flags plus
  chrome_path/remote_debugging_port overrides if given, waits for the
  DevToolsActivePort file, and connects over its WebSocket endpoint.
- Picks the first existing page tab, or creates one via Target.createTarget,
  and attaches to it.

**vs. new_tab:** open_browser starts the whole session; new_tab adds a tab to
an already-open one.`),
		mcplib.WithString("profile_dir", mcplib.Description("Chrome user-data directory; defaults to a bmcps-managed temp dir")),
		mcplib.WithString("chrome_path", mcplib.Description("Override the Chrome binary path")),
		mcplib.WithNumber("remote_debugging_port", mcplib.Description("Fixed debugging port; 0 picks an ephemeral one")),
		mcplib.WithBoolean("disable_translate", mcplib.Description("Add --disable-translate and forbid adopting an existing instance")),
	)
	srv.AddTool(openTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		profileDir := request.GetString("profile_dir", defaults.ProfileDir)
		chromePath := request.GetString("chrome_path", defaults.ChromePath)
		port := request.GetInt("remote_debugging_port", defaults.RemoteDebuggingPort)
		opts := cdpdriver.OpenBrowserOptions{DisableTranslate: request.GetBool("disable_translate", defaults.DisableTranslate)}

		res, err := d.OpenBrowser(ctx, profileDir, chromePath, port, opts)
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	closeTool := mcplib.NewTool("close_browser",
		mcplib.WithDescription("Close the WebSocket connection and, if this process launched Chrome (not adopted), kill its process tree."),
	)
	srv.AddTool(closeTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return textResult(d.CloseBrowser()), nil
	})
}
