package cdpdriver

import "time"

type getWindowForTargetReply struct {
	WindowID int64 `json:"windowId"`
}

// SetWindowBounds implements spec.md §4.F window bounds: resolve
// Browser.getWindowForTarget -> windowId, then Browser.setWindowBounds.
func (d *Driver) SetWindowBounds(width, height int, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	t := d.timeout(timeout)
	targetID, _ := d.state.session()

	rep, err := d.correlator.sendAndWait("Browser.getWindowForTarget", map[string]interface{}{"targetId": targetID}, "", t)
	if err != nil {
		return DriverResult{}, err
	}
	var win getWindowForTargetReply
	if err := decodeResult(rep.Result, &win); err != nil {
		return DriverResult{}, err
	}

	bounds := map[string]interface{}{"width": width, "height": height}
	params := map[string]interface{}{"windowId": win.WindowID, "bounds": bounds}
	if _, err := d.correlator.sendAndWait("Browser.setWindowBounds", params, "", t); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "window resized"}, nil
}
