package cdpdriver

import "time"

// domHelper bundles the DOM.enable -> getDocument -> querySelector ->
// getBoxModel pipeline spec.md §4.F describes for click (and reuses for
// hover, double/right click, drag, bounding box, outer html).
type domHelper struct {
	d *Driver
}

func (d *Driver) dom() domHelper { return domHelper{d: d} }

func (h domHelper) enable(timeout time.Duration) error {
	_, sessionID := h.d.state.session()
	_, err := h.d.correlator.sendAndWait("DOM.enable", nil, sessionID, timeout)
	return err
}

type getDocumentReply struct {
	Root struct {
		NodeID int64 `json:"nodeId"`
	} `json:"root"`
}

func (h domHelper) documentRoot(timeout time.Duration) (int64, error) {
	_, sessionID := h.d.state.session()
	rep, err := h.d.correlator.sendAndWait("DOM.getDocument", nil, sessionID, timeout)
	if err != nil {
		return 0, err
	}
	var res getDocumentReply
	if err := decodeResult(rep.Result, &res); err != nil {
		return 0, err
	}
	return res.Root.NodeID, nil
}

type querySelectorReply struct {
	NodeID int64 `json:"nodeId"`
}

func (h domHelper) querySelector(rootNodeID int64, selector string, timeout time.Duration) (int64, error) {
	_, sessionID := h.d.state.session()
	params := map[string]interface{}{"nodeId": rootNodeID, "selector": selector}
	rep, err := h.d.correlator.sendAndWait("DOM.querySelector", params, sessionID, timeout)
	if err != nil {
		return 0, err
	}
	var res querySelectorReply
	if err := decodeResult(rep.Result, &res); err != nil {
		return 0, err
	}
	if res.NodeID == 0 {
		return 0, NewSemanticError("element not found: " + selector)
	}
	return res.NodeID, nil
}

// resolveNode runs DOM.enable -> getDocument -> querySelector for selector,
// returning the resolved nodeId.
func (h domHelper) resolveNode(selector string, timeout time.Duration) (int64, error) {
	if err := h.enable(timeout); err != nil {
		return 0, err
	}
	rootID, err := h.documentRoot(timeout)
	if err != nil {
		return 0, err
	}
	return h.querySelector(rootID, selector, timeout)
}

type boxModelReply struct {
	Model struct {
		Content []float64 `json:"content"`
	} `json:"model"`
}

// boxCenter returns the center point of an element's content quad (eight
// doubles forming four corners) per spec.md §4.F click.
func (h domHelper) boxCenter(nodeID int64, timeout time.Duration) (x, y float64, err error) {
	_, sessionID := h.d.state.session()
	rep, err := h.d.correlator.sendAndWait("DOM.getBoxModel", map[string]interface{}{"nodeId": nodeID}, sessionID, timeout)
	if err != nil {
		return 0, 0, err
	}
	var res boxModelReply
	if err := decodeResult(rep.Result, &res); err != nil {
		return 0, 0, err
	}
	if len(res.Model.Content) < 8 {
		return 0, 0, NewSemanticError("element has no box model (not rendered)")
	}
	c := res.Model.Content
	x = (c[0] + c[4]) / 2
	y = (c[1] + c[5]) / 2
	return x, y, nil
}

// selectorCenter resolves selector to a nodeId and returns its box center.
func (h domHelper) selectorCenter(selector string, timeout time.Duration) (x, y float64, err error) {
	nodeID, err := h.resolveNode(selector, timeout)
	if err != nil {
		return 0, 0, err
	}
	return h.boxCenter(nodeID, timeout)
}
