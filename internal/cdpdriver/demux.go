package cdpdriver

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bmcps/browsermcp/internal/bmcpslog"
)

// demux classifies every inbound event (a message the correlator determined
// carried no id) and mutates the appropriate state cache (spec.md §4.D). It
// implements eventSink; the correlator holds it only through that interface.
type demux struct {
	log   *logrus.Entry
	state *connectionState
}

func newDemux(state *connectionState) *demux {
	return &demux{log: bmcpslog.For("demux"), state: state}
}

func (d *demux) HandleEvent(msg inboundMessage) {
	switch msg.Method {
	case "Runtime.consoleAPICalled":
		d.handleConsoleAPICalled(msg)
	case "Page.javascriptDialogOpening":
		d.handleDialogOpening(msg)
	case "Runtime.executionContextCreated":
		d.handleExecutionContextCreated(msg)
	case "Network.requestWillBeSent":
		d.handleRequestWillBeSent(msg)
	case "Network.responseReceived":
		d.handleResponseReceived(msg)
	default:
		d.log.WithField("method", msg.Method).Debug("unhandled event, discarding")
	}
}

type consoleArg struct {
	Type        string          `json:"type"`
	Value       json.RawMessage `json:"value"`
	Description string          `json:"description"`
}

type consoleAPICalledParams struct {
	Type      string       `json:"type"`
	Args      []consoleArg `json:"args"`
	SessionID string       `json:"sessionId"`
}

func (d *demux) handleConsoleAPICalled(msg inboundMessage) {
	var p consoleAPICalledParams
	if err := json.Unmarshal(msg.Params, &p); err != nil {
		return
	}

	_, currentSession := d.state.session()
	if msg.SessionID != "" && currentSession != "" && msg.SessionID != currentSession {
		return
	}

	text := composeConsoleText(p.Args)
	entry := ConsoleEntry{
		TimestampMs: time.Now().UnixMilli(),
		Level:       normalizeConsoleLevel(p.Type),
		Text:        sanitizeUTF8(text),
	}
	d.state.appendConsole(entry)
}

// composeConsoleText joins each arg's string value, else its JSON dump, else
// its description, skipping empties, joined by single spaces (spec.md §4.D).
func composeConsoleText(args []consoleArg) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		var s string
		if len(a.Value) > 0 {
			var str string
			if err := json.Unmarshal(a.Value, &str); err == nil {
				s = str
			} else {
				s = string(a.Value)
			}
		} else if a.Description != "" {
			s = a.Description
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func normalizeConsoleLevel(cdpType string) ConsoleLevel {
	switch cdpType {
	case "log":
		return LevelLog
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelLog
	}
}

type dialogOpeningParams struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (d *demux) handleDialogOpening(msg inboundMessage) {
	var p dialogOpeningParams
	if err := json.Unmarshal(msg.Params, &p); err != nil {
		return
	}
	d.state.setDialog(PendingDialog{Type: DialogType(p.Type), Message: p.Message})
}

type executionContext struct {
	ID      int64 `json:"id"`
	AuxData struct {
		FrameID string `json:"frameId"`
	} `json:"auxData"`
}

type executionContextCreatedParams struct {
	Context executionContext `json:"context"`
}

func (d *demux) handleExecutionContextCreated(msg inboundMessage) {
	var p executionContextCreatedParams
	if err := json.Unmarshal(msg.Params, &p); err != nil {
		return
	}
	if p.Context.AuxData.FrameID != "" && p.Context.ID != 0 {
		d.state.recordFrameContext(p.Context.AuxData.FrameID, p.Context.ID)
	}
}

type requestWillBeSentParams struct {
	RequestID string `json:"requestId"`
	Request   struct {
		URL    string `json:"url"`
		Method string `json:"method"`
	} `json:"request"`
}

func (d *demux) handleRequestWillBeSent(msg inboundMessage) {
	var p requestWillBeSentParams
	if err := json.Unmarshal(msg.Params, &p); err != nil {
		return
	}
	d.state.appendNetworkRequest(NetworkRequestEntry{
		RequestID: p.RequestID,
		URL:       p.Request.URL,
		Method:    p.Request.Method,
	})
}

type responseReceivedParams struct {
	RequestID string `json:"requestId"`
	Response  struct {
		Status     int    `json:"status"`
		StatusText string `json:"statusText"`
	} `json:"response"`
}

func (d *demux) handleResponseReceived(msg inboundMessage) {
	var p responseReceivedParams
	if err := json.Unmarshal(msg.Params, &p); err != nil {
		return
	}
	d.state.fillNetworkResponse(p.RequestID, p.Response.Status, p.Response.StatusText)
}
