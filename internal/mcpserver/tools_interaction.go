package mcpserver

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmcps/browsermcp/internal/cdpdriver"
)

func registerInteractionTools(srv *server.MCPServer, d *cdpdriver.Driver) {
	clickTool := mcplib.NewTool("click_element",
		mcplib.WithDescription(`Click the element matching selector.

Resolves selector via DOM.querySelector, computes the element's box-model
center, and dispatches a synthetic mouse press+release there. If resolution
or dispatch fails for any reason, falls back to evaluating el.click() in the
page so the call still succeeds against elements CDP's box model can't place
(zero-size, display:contents, etc).`),
		mcplib.WithString("selector", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(clickTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		selector, err := request.RequireString("selector")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.Click(selector, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	dblTool := mcplib.NewTool("double_click_element",
		mcplib.WithDescription("Same pipeline as click_element with clickCount 2."),
		mcplib.WithString("selector", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(dblTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		selector, err := request.RequireString("selector")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.DoubleClick(selector, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	rightTool := mcplib.NewTool("right_click_element",
		mcplib.WithDescription("Same pipeline as click_element with button 'right'."),
		mcplib.WithString("selector", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(rightTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		selector, err := request.RequireString("selector")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.RightClick(selector, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	coordTool := mcplib.NewTool("click_at_coordinates",
		mcplib.WithDescription("Click at raw viewport coordinates, skipping DOM resolution entirely."),
		mcplib.WithNumber("x", mcplib.Required()),
		mcplib.WithNumber("y", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(coordTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		x, err := request.RequireFloat("x")
		if err != nil {
			return errResult(err), nil
		}
		y, err := request.RequireFloat("y")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.ClickAtCoordinates(x, y, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	hoverTool := mcplib.NewTool("hover_element",
		mcplib.WithDescription("Move the mouse over the element matching selector without clicking."),
		mcplib.WithString("selector", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(hoverTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		selector, err := request.RequireString("selector")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.HoverElement(selector, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	dragTool := mcplib.NewTool("drag_and_drop",
		mcplib.WithDescription("Drag source_selector's element onto target_selector's element: press at source's center, move to target's center, release."),
		mcplib.WithString("source_selector", mcplib.Required()),
		mcplib.WithString("target_selector", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(dragTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		src, err := request.RequireString("source_selector")
		if err != nil {
			return errResult(err), nil
		}
		dst, err := request.RequireString("target_selector")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.DragAndDrop(src, dst, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	dragCoordTool := mcplib.NewTool("drag_from_to",
		mcplib.WithDescription("Same as drag_and_drop but with raw coordinate pairs instead of selectors."),
		mcplib.WithNumber("x0", mcplib.Required()),
		mcplib.WithNumber("y0", mcplib.Required()),
		mcplib.WithNumber("x1", mcplib.Required()),
		mcplib.WithNumber("y1", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(dragCoordTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		x0, err := request.RequireFloat("x0")
		if err != nil {
			return errResult(err), nil
		}
		y0, err := request.RequireFloat("y0")
		if err != nil {
			return errResult(err), nil
		}
		x1, err := request.RequireFloat("x1")
		if err != nil {
			return errResult(err), nil
		}
		y1, err := request.RequireFloat("y1")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.DragFromTo(x0, y0, x1, y1, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	fillTool := mcplib.NewTool("fill_field",
		mcplib.WithDescription("Focus the element matching selector, optionally clear it, then insert value as text via Input.insertText."),
		mcplib.WithString("selector", mcplib.Required()),
		mcplib.WithString("value", mcplib.Required()),
		mcplib.WithBoolean("clear_first"),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(fillTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		selector, err := request.RequireString("selector")
		if err != nil {
			return errResult(err), nil
		}
		value, err := request.RequireString("value")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.FillField(selector, value, request.GetBool("clear_first", false), timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	sendKeysTool := mcplib.NewTool("send_keys",
		mcplib.WithDescription("Insert arbitrary UTF-16 text at the current focus via Input.insertText."),
		mcplib.WithString("text", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(sendKeysTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.SendKeys(text, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	keyPressTool := mcplib.NewTool("key_press",
		mcplib.WithDescription("Dispatch a named key (e.g. Enter, Tab, Escape) as keyDown then keyUp."),
		mcplib.WithString("key", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(keyPressTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		key, err := request.RequireString("key")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.KeyPress(key, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	keyDownTool := mcplib.NewTool("key_down",
		mcplib.WithDescription("Dispatch only the keyDown half of key_press, for held-key gestures."),
		mcplib.WithString("key", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(keyDownTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		key, err := request.RequireString("key")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.KeyDown(key, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	keyUpTool := mcplib.NewTool("key_up",
		mcplib.WithDescription("Dispatch only the keyUp half of key_press."),
		mcplib.WithString("key", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(keyUpTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		key, err := request.RequireString("key")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.KeyUp(key, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	scrollTool := mcplib.NewTool("scroll",
		mcplib.WithDescription("Scroll the page, or an element if selector is given, by delta_x/delta_y pixels."),
		mcplib.WithString("selector", mcplib.Description("If present, scroll this element instead of the page")),
		mcplib.WithNumber("delta_x"),
		mcplib.WithNumber("delta_y"),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(scrollTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		scope := cdpdriver.ScrollScope{
			DeltaX: request.GetFloat("delta_x", 0),
			DeltaY: request.GetFloat("delta_y", 0),
		}
		if selector := request.GetString("selector", ""); selector != "" {
			scope.Type = cdpdriver.ScrollScopeElement
			scope.Selector = selector
		}
		res, err := d.Scroll(scope, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	uploadTool := mcplib.NewTool("upload_file",
		mcplib.WithDescription("Set the files of a file input matching selector via DOM.setFileInputFiles."),
		mcplib.WithString("selector", mcplib.Required()),
		mcplib.WithArray("paths", mcplib.Required(), mcplib.Items(map[string]interface{}{"type": "string"})),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(uploadTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		selector, err := request.RequireString("selector")
		if err != nil {
			return errResult(err), nil
		}
		rawPaths, err := request.RequireStringSlice("paths")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.UploadFile(selector, rawPaths, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})

	waitSelTool := mcplib.NewTool("wait_for_selector",
		mcplib.WithDescription("Poll document.querySelector(selector) every ~100ms until it resolves or timeout_ms elapses (default 5s)."),
		mcplib.WithString("selector", mcplib.Required()),
		mcplib.WithNumber("timeout_ms"),
	)
	srv.AddTool(waitSelTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		selector, err := request.RequireString("selector")
		if err != nil {
			return errResult(err), nil
		}
		res, err := d.WaitForSelector(selector, timeoutArg(request))
		if err != nil {
			return errResult(err), nil
		}
		return textResult(res), nil
	})
}
