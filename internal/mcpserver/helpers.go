package mcpserver

import (
	"encoding/json"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

func textResult(v interface{}) *mcplib.CallToolResult {
	var text string
	switch t := v.(type) {
	case string:
		text = t
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return mcplib.NewToolResultError(err.Error())
		}
		text = string(raw)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.TextContent{Type: "text", Text: text}},
	}
}

func errResult(err error) *mcplib.CallToolResult {
	return mcplib.NewToolResultError(err.Error())
}

// timeoutArg reads an optional timeout_ms argument, returning 0 (meaning
// "use the driver default") when absent.
func timeoutArg(request mcplib.CallToolRequest) time.Duration {
	ms := request.GetInt("timeout_ms", 0)
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
