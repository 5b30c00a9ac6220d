// Package mcpserver exposes every cdpdriver Command Facade verb as an MCP
// tool over mark3labs/mcp-go, grouped the way the teacher's hub proxy groups
// its own tool families (script, log, proxy, browser, repl) into one
// registration function per family.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmcps/browsermcp/internal/cdpdriver"
)

const (
	serverName    = "bmcps"
	serverVersion = "0.1.0"
)

// OpenBrowserDefaults carries the process-level flag values that seed
// open_browser's parameters whenever the calling MCP client omits them.
type OpenBrowserDefaults struct {
	ProfileDir          string
	ChromePath          string
	RemoteDebuggingPort int
	DisableTranslate    bool
}

// New constructs the MCP server and registers every tool family against the
// supplied driver. The driver is unconnected until a caller invokes the
// open_browser tool.
func New(d *cdpdriver.Driver, defaults OpenBrowserDefaults) *server.MCPServer {
	srv := server.NewMCPServer(serverName, serverVersion)

	registerLifecycleTools(srv, d, defaults)
	registerNavigationTools(srv, d)
	registerInteractionTools(srv, d)
	registerInspectionTools(srv, d)
	registerConsoleTools(srv, d)
	registerFrameTools(srv, d)
	registerDialogTools(srv, d)
	registerStorageTools(srv, d)
	registerTabTools(srv, d)

	return srv
}
