package mcpserver

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmcps/browsermcp/internal/cdpdriver"
)

func registerInspectionTools(srv *server.MCPServer, d *cdpdriver.Driver) {
	evalTool := mcplib.NewTool("evaluate_javascript",
		mcplib.WithDescription(`Evaluate script in the page's current execution context (the main world
unless switch_to_frame changed it) and return the serialized result.

On an uncaught exception, the error message joins exceptionDetails.text with
exception.description when the browser provides both.`),
		mcplib.WithString("script", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(evalTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		script, err := request.RequireString("script")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.EvaluateJavaScript(script, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res.JSON), nil
	})

	screenshotTool := mcplib.NewTool("capture_screenshot",
		mcplib.WithDescription("Capture the page as a base64-encoded image via Page.captureScreenshot."),
		mcplib.WithString("format", mcplib.Description("jpeg (default) or png")),
		mcplib.WithNumber("quality", mcplib.Description("1-100, jpeg only, default 70")),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(screenshotTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		format := request.GetString("format", "jpeg")
		quality := request.GetInt("quality", 70)
		res, err := d.CaptureScreenshot(format, quality, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	sourceTool := mcplib.NewTool("get_page_source",
		mcplib.WithDescription("Return document.documentElement.outerHTML."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(sourceTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.GetPageSource(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	outerHTMLTool := mcplib.NewTool("get_outer_html",
		mcplib.WithDescription("Return the outerHTML of the element matching selector; fails if it resolves to null."),
		mcplib.WithString("selector", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(outerHTMLTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		selector, err := request.RequireString("selector")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.GetOuterHTML(selector, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	visibleTool := mcplib.NewTool("is_visible",
		mcplib.WithDescription("True iff the element matching selector has no display:none/visibility:hidden in its computed style chain, a non-null offsetParent (unless position:fixed), and a non-zero bounding rect."),
		mcplib.WithString("selector", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(visibleTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		selector, err := request.RequireString("selector")
		if err != nil {
			return errResult(err), nil
		}
		visible, err := d.IsVisible(selector, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(visible), nil
	})

	boxTool := mcplib.NewTool("get_element_bounding_box",
		mcplib.WithDescription("Return getBoundingClientRect() for the element matching selector as {x, y, width, height}."),
		mcplib.WithString("selector", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(boxTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		selector, err := request.RequireString("selector")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.GetElementBoundingBox(selector, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	elementsTool := mcplib.NewTool("list_interactive_elements",
		mcplib.WithDescription(`List form controls, buttons, links, and ARIA-interactive elements on the
page. Each entry carries a selector you can pass straight to click_element,
fill_field, etc; selectors are synthetic data-bmcps-id attributes that stay on
the elements until the next call renumbers them, and are not stable across
navigations.`),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(elementsTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.ListInteractiveElements(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	setBoundsTool := mcplib.NewTool("set_window_bounds",
		mcplib.WithDescription("Resize the browser window via Browser.setWindowBounds."),
		mcplib.WithNumber("width", mcplib.Required()),
		mcplib.WithNumber("height", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(setBoundsTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		width, err := request.RequireInt("width")
		if err != nil {
			return errResult(err), nil
		}
		height, err := request.RequireInt("height")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.SetWindowBounds(width, height, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	resizeTool := mcplib.NewTool("resize_browser",
		mcplib.WithDescription("Alias of set_window_bounds."),
		mcplib.WithNumber("width", mcplib.Required()),
		mcplib.WithNumber("height", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(resizeTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		width, err := request.RequireInt("width")
		if err != nil {
			return errResult(err), nil
		}
		height, err := request.RequireInt("height")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.SetWindowBounds(width, height, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	uaTool := mcplib.NewTool("set_user_agent",
		mcplib.WithDescription("Override the navigator.userAgent string via Network.setUserAgentOverride."),
		mcplib.WithString("user_agent", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(uaTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		ua, err := request.RequireString("user_agent")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.SetUserAgent(ua, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	geoTool := mcplib.NewTool("set_geolocation",
		mcplib.WithDescription("Override the page's reported geolocation via Emulation.setGeolocationOverride."),
		mcplib.WithNumber("latitude", mcplib.Required()),
		mcplib.WithNumber("longitude", mcplib.Required()),
		mcplib.WithNumber("accuracy"),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(geoTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		lat, err := request.RequireFloat("latitude")
		if err != nil {
			return errResult(err), nil
		}
		lon, err := request.RequireFloat("longitude")
		if err != nil {
			return errResult(err), nil
		}
		accuracy := request.GetFloat("accuracy", 1)
		res, err := d.SetGeolocation(lat, lon, accuracy, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	networkTool := mcplib.NewTool("get_network_requests",
		mcplib.WithDescription("Return a snapshot of the bounded network request ring (oldest first), enabling Network observation on first call."),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(networkTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := d.GetNetworkRequests(timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})
}
