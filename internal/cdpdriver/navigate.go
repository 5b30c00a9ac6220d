package cdpdriver

import "time"

type navigateReply struct {
	FrameID   string `json:"frameId"`
	ErrorText string `json:"errorText"`
}

// Navigate implements spec.md §4.F navigate(url): requires an attached
// session, issues Page.navigate, succeeds iff there is no top-level error and
// no result.errorText; clears the console ring on success.
func (d *Driver) Navigate(url string, timeout time.Duration) (NavigateResult, error) {
	if err := d.requireSession(); err != nil {
		return NavigateResult{}, err
	}
	_, sessionID := d.state.session()

	rep, err := d.correlator.sendAndWait("Page.navigate", map[string]interface{}{"url": url}, sessionID, d.timeout(timeout))
	if err != nil {
		return NavigateResult{}, err
	}

	var res navigateReply
	if err := decodeResult(rep.Result, &res); err != nil {
		return NavigateResult{}, err
	}
	if res.ErrorText != "" {
		return NavigateResult{Success: false, ErrorText: res.ErrorText}, nil
	}

	d.state.clearConsole()
	return NavigateResult{Success: true, FrameID: res.FrameID}, nil
}

type navigationHistoryReply struct {
	CurrentIndex int `json:"currentIndex"`
	Entries      []struct {
		ID    int    `json:"id"`
		URL   string `json:"url"`
		Title string `json:"title"`
	} `json:"entries"`
}

// GetNavigationHistory implements Page.getNavigationHistory, exposed as its
// own verb per SPEC_FULL.md §12.
func (d *Driver) GetNavigationHistory(timeout time.Duration) (NavigationHistoryResult, error) {
	if err := d.requireSession(); err != nil {
		return NavigationHistoryResult{}, err
	}
	_, sessionID := d.state.session()

	rep, err := d.correlator.sendAndWait("Page.getNavigationHistory", nil, sessionID, d.timeout(timeout))
	if err != nil {
		return NavigationHistoryResult{}, err
	}
	var res navigationHistoryReply
	if err := decodeResult(rep.Result, &res); err != nil {
		return NavigationHistoryResult{}, err
	}

	entries := make([]NavigationHistoryEntry, 0, len(res.Entries))
	for _, e := range res.Entries {
		entries = append(entries, NavigationHistoryEntry{ID: e.ID, URL: e.URL, Title: e.Title})
	}
	return NavigationHistoryResult{Success: true, CurrentIndex: res.CurrentIndex, Entries: entries}, nil
}

func (d *Driver) navigateHistoryBy(delta int, timeout time.Duration) (NavigateResult, error) {
	hist, err := d.GetNavigationHistory(timeout)
	if err != nil {
		return NavigateResult{}, err
	}
	target := hist.CurrentIndex + delta
	if target < 0 || target >= len(hist.Entries) {
		detail := "No back history."
		if delta > 0 {
			detail = "No forward history."
		}
		return NavigateResult{}, NewSemanticError(detail)
	}

	_, sessionID := d.state.session()
	entryID := hist.Entries[target].ID
	_, err = d.correlator.sendAndWait("Page.navigateToHistoryEntry", map[string]interface{}{"entryId": entryID}, sessionID, d.timeout(timeout))
	if err != nil {
		return NavigateResult{}, err
	}
	d.state.clearConsole()
	return NavigateResult{Success: true}, nil
}

// NavigateBack implements spec.md §4.F navigate_back.
func (d *Driver) NavigateBack(timeout time.Duration) (NavigateResult, error) {
	return d.navigateHistoryBy(-1, timeout)
}

// NavigateForward implements spec.md §4.F navigate_forward.
func (d *Driver) NavigateForward(timeout time.Duration) (NavigateResult, error) {
	return d.navigateHistoryBy(1, timeout)
}

// Refresh implements Page.reload (SPEC_FULL.md §12).
func (d *Driver) Refresh(timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	_, sessionID := d.state.session()
	_, err := d.correlator.sendAndWait("Page.reload", nil, sessionID, d.timeout(timeout))
	if err != nil {
		return DriverResult{}, err
	}
	d.state.clearConsole()
	return DriverResult{Success: true, Message: "page reloaded"}, nil
}
