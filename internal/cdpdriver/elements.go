package cdpdriver

import (
	"encoding/json"
	"time"
)

// listInteractiveElementsScript selects form controls, buttons, anchors, and
// ARIA variants; tags each with a data-bmcps-id attribute (left on the element
// after the call, so the returned selectors work in later calls until the
// next listing renumbers them or the page navigates) and emits a JSON array matching
// InteractiveElement, per spec.md §4.F list_interactive_elements.
const listInteractiveElementsScript = `(function(){
	var selectors = [
		'input:not([type=hidden])', 'textarea', 'select', 'button',
		'a[href]', '[role=button]', '[role=link]', '[role=checkbox]',
		'[role=radio]', '[role=tab]', '[role=menuitem]', '[contenteditable=true]'
	];
	var nodes = document.querySelectorAll(selectors.join(','));
	var out = [];
	for (var i = 0; i < nodes.length; i++) {
		var el = nodes[i];
		el.setAttribute('data-bmcps-id', String(i));
		var label = el.getAttribute('aria-label') || el.getAttribute('placeholder') || (el.innerText || '').trim().slice(0, 80);
		out.push({
			selector: '[data-bmcps-id="' + i + '"]',
			role: el.getAttribute('role') || el.tagName.toLowerCase(),
			label: label,
			placeholder: el.getAttribute('placeholder') || '',
			type: el.getAttribute('type') || el.tagName.toLowerCase(),
			text: (el.innerText || el.value || '').trim().slice(0, 200)
		});
	}
	return JSON.stringify(out);
})()`

// ListInteractiveElements implements spec.md §4.F list_interactive_elements.
// The adapter (here: this function) parses the returned JSON and
// UTF-8-sanitizes every string field.
func (d *Driver) ListInteractiveElements(timeout time.Duration) (ListInteractiveElementsResult, error) {
	if err := d.requireSession(); err != nil {
		return ListInteractiveElementsResult{}, err
	}

	res, err := d.evaluate(listInteractiveElementsScript, timeout, false)
	if err != nil {
		return ListInteractiveElementsResult{}, err
	}

	var jsonStr string
	if err := json.Unmarshal(res.Result.Value, &jsonStr); err != nil {
		return ListInteractiveElementsResult{}, NewProtocolError(0, "", "list_interactive_elements did not return a string")
	}

	var raw []struct {
		Selector    string `json:"selector"`
		Role        string `json:"role"`
		Label       string `json:"label"`
		Placeholder string `json:"placeholder"`
		Type        string `json:"type"`
		Text        string `json:"text"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return ListInteractiveElementsResult{}, NewProtocolError(0, "", "list_interactive_elements returned malformed JSON")
	}

	elements := make([]InteractiveElement, 0, len(raw))
	for _, r := range raw {
		elements = append(elements, InteractiveElement{
			Selector:    sanitizeUTF8(r.Selector),
			Role:        sanitizeUTF8(r.Role),
			Label:       sanitizeUTF8(r.Label),
			Placeholder: sanitizeUTF8(r.Placeholder),
			Type:        sanitizeUTF8(r.Type),
			Text:        sanitizeUTF8(r.Text),
		})
	}
	return ListInteractiveElementsResult{Success: true, Elements: elements}, nil
}
