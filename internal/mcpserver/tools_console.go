package mcpserver

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmcps/browsermcp/internal/cdpdriver"
)

func registerConsoleTools(srv *server.MCPServer, d *cdpdriver.Driver) {
	tool := mcplib.NewTool("get_console_messages",
		mcplib.WithDescription(`Query the console ring with independent level, time, and count filters.

**Level filter:** either min_level (rank order debug<log<info<warning<error,
inclusive) or an explicit levels list ("only" semantics).

**Time filter:** one of none, last_duration (value+unit), range (from_ms,
to_ms), from_onwards (from_ms), or until (to_ms). Bounds are resolved against
the server clock sampled at query time; that sample and a Date.now() reading
taken in the page are returned as time_sync in the result so callers can
reconcile page vs wall-clock time.

**Count/order:** max_entries (default 500) and order (newest_first, the
default, or oldest_first); truncated is set when more entries matched than
were returned.`),
		mcplib.WithString("min_level", mcplib.Description("debug|log|info|warning|error; mutually exclusive with levels")),
		mcplib.WithString("levels", mcplib.Description("comma-separated explicit level set, e.g. 'error,warning'")),
		mcplib.WithString("time_mode", mcplib.Description("none (default) | last_duration | range | from_onwards | until")),
		mcplib.WithNumber("last_duration_value"),
		mcplib.WithString("last_duration_unit", mcplib.Description("milliseconds|seconds|minutes")),
		mcplib.WithNumber("from_ms"),
		mcplib.WithNumber("to_ms"),
		mcplib.WithNumber("max_entries"),
		mcplib.WithString("order", mcplib.Description("newest_first (default) | oldest_first")),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(tool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		opts := cdpdriver.GetConsoleMessagesOptions{
			LevelScope: parseLevelScope(request),
			TimeScope:  parseTimeScope(request),
			CountScope: cdpdriver.CountScope{
				MaxEntries: request.GetInt("max_entries", 0),
				Order:      cdpdriver.SortOrder(request.GetString("order", string(cdpdriver.OrderNewestFirst))),
			},
		}
		res, err := d.GetConsoleMessages(opts, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})
}

func parseLevelScope(request mcplib.CallToolRequest) cdpdriver.LevelScope {
	if levels := request.GetString("levels", ""); levels != "" {
		return cdpdriver.LevelScope{Type: cdpdriver.LevelScopeOnly, Levels: splitLevels(levels)}
	}
	min := request.GetString("min_level", "")
	if min == "" {
		min = string(cdpdriver.LevelDebug)
	}
	return cdpdriver.LevelScope{Type: cdpdriver.LevelScopeMinLevel, Level: cdpdriver.ConsoleLevel(min)}
}

func splitLevels(csv string) []cdpdriver.ConsoleLevel {
	var out []cdpdriver.ConsoleLevel
	start := 0
	for i := 0; i <= len(csv); i++ {
		if i == len(csv) || csv[i] == ',' {
			if i > start {
				out = append(out, cdpdriver.ConsoleLevel(csv[start:i]))
			}
			start = i + 1
		}
	}
	return out
}

func parseTimeScope(request mcplib.CallToolRequest) cdpdriver.TimeScope {
	switch request.GetString("time_mode", "none") {
	case "last_duration":
		return cdpdriver.TimeScope{
			Type:              cdpdriver.TimeScopeLastDuration,
			LastDurationValue: int64(request.GetInt("last_duration_value", 0)),
			LastDurationUnit:  cdpdriver.DurationUnit(request.GetString("last_duration_unit", string(cdpdriver.UnitSeconds))),
		}
	case "range":
		return cdpdriver.TimeScope{
			Type:   cdpdriver.TimeScopeRange,
			FromMs: int64(request.GetInt("from_ms", 0)),
			ToMs:   int64(request.GetInt("to_ms", 0)),
		}
	case "from_onwards":
		return cdpdriver.TimeScope{Type: cdpdriver.TimeScopeFromOnwards, FromMs: int64(request.GetInt("from_ms", 0))}
	case "until":
		return cdpdriver.TimeScope{Type: cdpdriver.TimeScopeUntil, ToMs: int64(request.GetInt("to_ms", 0))}
	default:
		return cdpdriver.TimeScope{Type: cdpdriver.TimeScopeNone}
	}
}
