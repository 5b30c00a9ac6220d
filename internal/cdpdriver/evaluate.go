package cdpdriver

import (
	"encoding/json"
	"time"
)

// EvaluateResult is returned by EvaluateJavaScript.
type EvaluateResult struct {
	Success     bool
	JSON        string // the evaluated result, serialized
	ErrorDetail string
}

// EvaluateJavaScript implements spec.md §4.F evaluate_javascript: on
// exception, returns exceptionDetails.text joined with exception.description;
// on success, returns the serialized result.
func (d *Driver) EvaluateJavaScript(script string, timeout time.Duration) (EvaluateResult, error) {
	if err := d.requireSession(); err != nil {
		return EvaluateResult{}, err
	}
	res, err := d.evaluate(script, timeout, false)
	if err != nil {
		return EvaluateResult{Success: false, ErrorDetail: err.Error()}, err
	}
	return EvaluateResult{Success: true, JSON: string(res.Result.Value)}, nil
}

// GetPageSource implements SPEC_FULL.md §12 get_page_source.
func (d *Driver) GetPageSource(timeout time.Duration) (GetPageSourceResult, error) {
	if err := d.requireSession(); err != nil {
		return GetPageSourceResult{}, err
	}
	res, err := d.evaluate("document.documentElement.outerHTML", timeout, false)
	if err != nil {
		return GetPageSourceResult{}, err
	}
	html, err := decodeStringValue(res.Result.Value)
	if err != nil {
		return GetPageSourceResult{}, err
	}
	return GetPageSourceResult{Success: true, HTML: sanitizeUTF8(html)}, nil
}

// GetOuterHTML implements SPEC_FULL.md §12 get_outer_html(selector).
func (d *Driver) GetOuterHTML(selector string, timeout time.Duration) (GetPageSourceResult, error) {
	if err := d.requireSession(); err != nil {
		return GetPageSourceResult{}, err
	}
	script := "(function(){var el=document.querySelector(" + jsStringLiteral(selector) + ");if(!el){return null;}return el.outerHTML;})()"
	res, err := d.evaluate(script, timeout, false)
	if err != nil {
		return GetPageSourceResult{}, err
	}
	if string(res.Result.Value) == "null" {
		return GetPageSourceResult{}, NewSemanticError("element not found: " + selector)
	}
	html, err := decodeStringValue(res.Result.Value)
	if err != nil {
		return GetPageSourceResult{}, err
	}
	return GetPageSourceResult{Success: true, HTML: sanitizeUTF8(html)}, nil
}

// IsVisible implements SPEC_FULL.md §12 is_visible(selector).
func (d *Driver) IsVisible(selector string, timeout time.Duration) (bool, error) {
	if err := d.requireSession(); err != nil {
		return false, err
	}
	script := `(function(){
		var el = document.querySelector(` + jsStringLiteral(selector) + `);
		if (!el) return false;
		var style = window.getComputedStyle(el);
		if (style.display === 'none' || style.visibility === 'hidden') return false;
		if (el.offsetParent === null && style.position !== 'fixed') return false;
		var rect = el.getBoundingClientRect();
		return rect.width > 0 && rect.height > 0;
	})()`
	res, err := d.evaluate(script, timeout, false)
	if err != nil {
		return false, err
	}
	var visible bool
	if err := json.Unmarshal(res.Result.Value, &visible); err != nil {
		return false, NewProtocolError(0, "", "is_visible did not return a boolean")
	}
	return visible, nil
}

// GetElementBoundingBox implements SPEC_FULL.md §12 get_element_bounding_box.
func (d *Driver) GetElementBoundingBox(selector string, timeout time.Duration) (BoundingBoxResult, error) {
	if err := d.requireSession(); err != nil {
		return BoundingBoxResult{}, err
	}
	script := `(function(){
		var el = document.querySelector(` + jsStringLiteral(selector) + `);
		if (!el) return null;
		var r = el.getBoundingClientRect();
		return {x: r.x, y: r.y, width: r.width, height: r.height};
	})()`
	res, err := d.evaluate(script, timeout, false)
	if err != nil {
		return BoundingBoxResult{}, err
	}
	if string(res.Result.Value) == "null" {
		return BoundingBoxResult{}, NewSemanticError("element not found: " + selector)
	}
	var box struct {
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.Unmarshal(res.Result.Value, &box); err != nil {
		return BoundingBoxResult{}, NewProtocolError(0, "", "bounding box result was not an object")
	}
	return BoundingBoxResult{Success: true, X: box.X, Y: box.Y, Width: box.Width, Height: box.Height}, nil
}

func decodeStringValue(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", NewProtocolError(0, "", "expected a string result")
	}
	return s, nil
}
