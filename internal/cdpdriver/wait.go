package cdpdriver

import (
	"encoding/json"
	"time"
)

const waitPollInterval = 100 * time.Millisecond

// WaitForSelector implements SPEC_FULL.md §12 wait_for_selector: polls for
// selector to resolve to a non-null element every ~100ms until timeout.
func (d *Driver) WaitForSelector(selector string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	script := "document.querySelector(" + jsStringLiteral(selector) + ") !== null"

	deadline := time.Now().Add(timeout)
	for {
		res, err := d.evaluate(script, d.defaultTimeout, false)
		if err == nil {
			var found bool
			if json.Unmarshal(res.Result.Value, &found) == nil && found {
				return DriverResult{Success: true, Message: "selector appeared: " + selector}, nil
			}
		}
		if time.Now().After(deadline) {
			return DriverResult{}, NewSemanticError("timed out waiting for selector: " + selector)
		}
		time.Sleep(waitPollInterval)
	}
}

// WaitForNavigation implements SPEC_FULL.md §12 wait_for_navigation: polls
// document.readyState === "complete".
func (d *Driver) WaitForNavigation(timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	deadline := time.Now().Add(timeout)
	for {
		res, err := d.evaluate("document.readyState === 'complete'", d.defaultTimeout, false)
		if err == nil {
			var done bool
			if json.Unmarshal(res.Result.Value, &done) == nil && done {
				return DriverResult{Success: true, Message: "navigation complete"}, nil
			}
		}
		if time.Now().After(deadline) {
			return DriverResult{}, NewSemanticError("timed out waiting for navigation to complete")
		}
		time.Sleep(waitPollInterval)
	}
}

// WaitSeconds implements SPEC_FULL.md §12 wait_seconds: a plain bounded
// sleep, capped so a single tool call cannot hang the logical thread
// indefinitely (spec.md §5).
func (d *Driver) WaitSeconds(seconds float64) DriverResult {
	const maxWait = 120 * time.Second
	dur := time.Duration(seconds * float64(time.Second))
	if dur < 0 {
		dur = 0
	}
	if dur > maxWait {
		dur = maxWait
	}
	time.Sleep(dur)
	return DriverResult{Success: true, Message: "waited"}
}
