// Package cdpdriver is a from-scratch Chrome DevTools Protocol driver: a
// request/response correlator over an asynchronous WebSocket transport, a
// session/target multiplexer, event-driven state caches, a Chrome process
// launcher, and a facade of high-level browser operations composed from
// those pieces.
package cdpdriver

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bmcps/browsermcp/internal/bmcpslog"
	"github.com/bmcps/browsermcp/internal/config"
)

const defaultCommandTimeout = 10 * time.Second

// Driver is the single owned facade a caller constructs per connection
// lifecycle (open_browser ... close_browser), replacing the source's
// module-level global connection state (spec.md §9). Every Command Facade
// method hangs off this type; tests construct isolated instances freely.
type Driver struct {
	log *logrus.Entry
	cfg *config.Config

	state      *connectionState
	correlator *correlator
	demux      *demux
	session    *sessionManager
	launcher   *launcher

	launch *launchResult

	defaultTimeout time.Duration
}

// NewDriver constructs an unconnected Driver. Call OpenBrowser before any
// other Command Facade method.
func NewDriver(cfg *config.Config) *Driver {
	state := newConnectionState()
	d := newDemux(state)
	c := newCorrelator(d)

	return &Driver{
		log:            bmcpslog.For("driver"),
		cfg:            cfg,
		state:          state,
		correlator:     c,
		demux:          d,
		session:        newSessionManager(c, state),
		launcher:       newLauncher(cfg),
		defaultTimeout: cfg.DefaultCommandTimeout(),
	}
}

// requireSession is the uniform precondition every Command Facade verb
// checks first (spec.md §4.F).
func (d *Driver) requireSession() error {
	if !d.state.hasSession() {
		return ErrNoSession
	}
	return nil
}

func (d *Driver) timeout(override time.Duration) time.Duration {
	if override > 0 {
		return override
	}
	return d.defaultTimeout
}

// OpenBrowser composes the launcher and session manager per spec.md §4.G:
// adopt-or-launch, discover targets, attach, enable console. On any failure
// after spawn it kills the Chrome it launched (never one it adopted).
func (d *Driver) OpenBrowser(ctx context.Context, profileDir, chromePathOverride string, remoteDebuggingPort int, opts OpenBrowserOptions) (DriverResult, error) {
	lr, err := d.launcher.launch(ctx, profileDir, chromePathOverride, remoteDebuggingPort, opts)
	if err != nil {
		return DriverResult{Success: false, ErrorDetail: err.Error()}, err
	}
	d.launch = lr

	connectCtx, cancel := context.WithTimeout(ctx, d.cfg.ConnectTimeout())
	defer cancel()
	if err := d.correlator.t.connect(connectCtx, lr.WebSocketURL, d.cfg.ConnectTimeout()); err != nil {
		d.teardownAfterFailedOpen()
		return DriverResult{Success: false, ErrorDetail: err.Error()}, err
	}
	d.state.setConnected(true)
	if lr.ChildPID != 0 && !lr.Adopted {
		d.state.setChild(lr.ChildPID)
	}

	if _, err := d.correlator.sendAndWait("Target.setDiscoverTargets", map[string]interface{}{"discover": true}, "", d.defaultTimeout); err != nil {
		d.log.WithError(err).Debug("Target.setDiscoverTargets failed, continuing")
	}

	targetID, err := d.pickOrCreatePageTarget(ctx)
	if err != nil {
		d.teardownAfterFailedOpen()
		return DriverResult{Success: false, ErrorDetail: err.Error()}, err
	}

	if err := d.session.attach(targetID, d.defaultTimeout); err != nil {
		d.teardownAfterFailedOpen()
		return DriverResult{Success: false, ErrorDetail: err.Error()}, err
	}

	return DriverResult{Success: true, Message: "browser opened"}, nil
}

func (d *Driver) pickOrCreatePageTarget(ctx context.Context) (string, error) {
	tabs, err := d.session.enumeratePageTabs(ctx, d.defaultTimeout)
	if err != nil {
		return "", err
	}
	if len(tabs) > 0 {
		return tabs[0].TargetID, nil
	}

	rep, err := d.correlator.sendAndWait("Target.createTarget", map[string]interface{}{"url": "about:blank"}, "", d.defaultTimeout)
	if err != nil {
		return "", err
	}
	var res struct {
		TargetID string `json:"targetId"`
	}
	if err := decodeResult(rep.Result, &res); err != nil {
		return "", err
	}
	return res.TargetID, nil
}

func (d *Driver) teardownAfterFailedOpen() {
	d.correlator.t.close()
	d.state.setConnected(false)
	if d.launch != nil {
		d.launch.release()
	}
}

// CloseBrowser implements the Detaching->Idle transition of spec.md §4.H:
// destroy the socket, then kill the child iff owned.
func (d *Driver) CloseBrowser() DriverResult {
	d.correlator.t.close()
	d.state.setConnected(false)
	d.state.clearSession()
	if d.launch != nil {
		d.launch.release()
		d.launch = nil
	}
	return DriverResult{Success: true, Message: "browser closed"}
}

// evaluate is the shared primitive behind evaluate_javascript and every
// internal script-based verb (fill, scroll, storage, is_visible, ...).
func (d *Driver) evaluate(script string, timeout time.Duration, awaitPromise bool) (rawEvaluateResult, error) {
	params := map[string]interface{}{
		"expression":    script,
		"returnByValue": true,
	}
	if awaitPromise {
		params["awaitPromise"] = true
	}
	if ctxID := d.state.getCurrentExecutionContext(); ctxID != 0 {
		params["contextId"] = ctxID
	}

	_, sessionID := d.state.session()
	rep, err := d.correlator.sendAndWait("Runtime.evaluate", params, sessionID, d.timeout(timeout))
	if err != nil {
		return rawEvaluateResult{}, err
	}

	var res rawEvaluateResult
	if err := decodeResult(rep.Result, &res); err != nil {
		return rawEvaluateResult{}, err
	}
	if res.ExceptionDetails != nil {
		text := res.ExceptionDetails.Text
		if res.ExceptionDetails.Exception != nil && res.ExceptionDetails.Exception.Description != "" {
			text = text + ": " + res.ExceptionDetails.Exception.Description
		}
		return res, NewProtocolError(0, "", text)
	}
	return res, nil
}

type rawEvaluateResult struct {
	Result struct {
		Type  string          `json:"type"`
		Value json.RawMessage `json:"value"`
	} `json:"result"`
	ExceptionDetails *struct {
		Text      string `json:"text"`
		Exception *struct {
			Description string `json:"description"`
		} `json:"exception"`
	} `json:"exceptionDetails"`
}
