package cdpdriver

import (
	"context"
	"time"
)

// ListTabs returns the page tabs via Session Manager's enumerate_page_tabs
// (spec.md §4.E).
func (d *Driver) ListTabs(ctx context.Context, timeout time.Duration) ([]TabInfo, error) {
	return d.session.enumeratePageTabs(ctx, d.timeout(timeout))
}

// SwitchTab implements spec.md §8's out-of-range boundary case via Session
// Manager's switch_tab.
func (d *Driver) SwitchTab(index int, timeout time.Duration) (DriverResult, error) {
	if err := d.session.switchTab(index, d.timeout(timeout)); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "switched tab"}, nil
}

// CloseTab implements spec.md §8's close-the-only-tab boundary case via
// Session Manager's close_tab.
func (d *Driver) CloseTab(timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	if err := d.session.closeTab(d.timeout(timeout)); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "tab closed"}, nil
}

// NewTab opens a tab with Target.createTarget, then attaches to it (so the caller's next command acts on the freshly created
// tab without an explicit switch_tab).
func (d *Driver) NewTab(url string, timeout time.Duration) (DriverResult, error) {
	if url == "" {
		url = "about:blank"
	}
	t := d.timeout(timeout)
	rep, err := d.correlator.sendAndWait("Target.createTarget", map[string]interface{}{"url": url}, "", t)
	if err != nil {
		return DriverResult{}, err
	}
	var res struct {
		TargetID string `json:"targetId"`
	}
	if err := decodeResult(rep.Result, &res); err != nil {
		return DriverResult{}, err
	}
	if err := d.session.attach(res.TargetID, t); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "opened new tab"}, nil
}
