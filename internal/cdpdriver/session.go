package cdpdriver

import (
	"context"
	"sort"
	"time"
)

// sessionManager tracks the attached target/session and enumerates page
// targets in a stable order (spec.md §4.E).
type sessionManager struct {
	c     *correlator
	state *connectionState
}

func newSessionManager(c *correlator, state *connectionState) *sessionManager {
	return &sessionManager{c: c, state: state}
}

type targetInfo struct {
	TargetID string `json:"targetId"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Attached bool   `json:"attached"`
}

type getTargetsResult struct {
	TargetInfos []targetInfo `json:"targetInfos"`
}

type attachToTargetResult struct {
	SessionID string `json:"sessionId"`
}

// enumeratePageTabs calls Target.getTargets, keeps "page" targets, and sorts
// by target id so indices are stable across calls (spec.md §4.E).
func (sm *sessionManager) enumeratePageTabs(ctx context.Context, timeout time.Duration) ([]TabInfo, error) {
	rep, err := sm.c.sendAndWait("Target.getTargets", nil, "", timeout)
	if err != nil {
		return nil, err
	}
	var res getTargetsResult
	if err := decodeResult(rep.Result, &res); err != nil {
		return nil, err
	}

	tabs := make([]TabInfo, 0, len(res.TargetInfos))
	for _, ti := range res.TargetInfos {
		if ti.Type != "page" {
			continue
		}
		tabs = append(tabs, TabInfo{TargetID: ti.TargetID, Title: ti.Title, URL: ti.URL, Type: ti.Type})
	}
	sort.Slice(tabs, func(i, j int) bool { return tabs[i].TargetID < tabs[j].TargetID })
	return tabs, nil
}

// attach issues Target.attachToTarget{flatten:true}, stores the session, and
// as a mandatory post-condition clears the console ring and enables Runtime
// on the new session (spec.md §4.E).
func (sm *sessionManager) attach(targetID string, timeout time.Duration) error {
	params := map[string]interface{}{"targetId": targetID, "flatten": true}
	rep, err := sm.c.sendAndWait("Target.attachToTarget", params, "", timeout)
	if err != nil {
		return err
	}
	var res attachToTargetResult
	if err := decodeResult(rep.Result, &res); err != nil {
		return err
	}

	// clearSession also resets networkEnabled, so Network.enable is issued
	// again on the new session the first time it is needed.
	sm.state.clearSession()
	sm.state.setSession(targetID, res.SessionID)
	sm.state.clearConsole()
	sm.state.setCurrentExecutionContext(0)

	_, err = sm.c.sendAndWait("Runtime.enable", nil, res.SessionID, timeout)
	return err
}

// switchTab re-attaches to the index-th page target and activates it
// (spec.md §4.E, §8 boundary case: out-of-range leaves session unchanged).
func (sm *sessionManager) switchTab(index int, timeout time.Duration) error {
	tabs, err := sm.enumeratePageTabs(context.Background(), timeout)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(tabs) {
		return NewSemanticError("tab index out of range")
	}

	target := tabs[index]
	if err := sm.attach(target.TargetID, timeout); err != nil {
		return err
	}

	_, err = sm.c.sendAndWait("Target.activateTarget", map[string]interface{}{"targetId": target.TargetID}, "", timeout)
	return err
}

// closeTab closes the current target, clears session ids, and attempts to
// re-attach to the first remaining page target so the facade is never left
// sessionless unnecessarily (spec.md §4.E, §8 boundary case: closing the only
// tab succeeds and leaves current_session_id empty).
func (sm *sessionManager) closeTab(timeout time.Duration) error {
	targetID, _ := sm.state.session()
	if targetID == "" {
		return ErrNoSession
	}

	_, err := sm.c.sendAndWait("Target.closeTarget", map[string]interface{}{"targetId": targetID}, "", timeout)
	sm.state.clearSession()
	if err != nil {
		return err
	}

	remaining, err := sm.enumeratePageTabs(context.Background(), timeout)
	if err != nil || len(remaining) == 0 {
		return nil
	}
	return sm.attach(remaining[0].TargetID, timeout)
}
