package cdpdriver

import "time"

// FillField implements spec.md §4.F fill_field: evaluate a script that
// focuses the element and, if clearFirst, clears its value and dispatches
// input+change; then send Input.insertText.
func (d *Driver) FillField(selector, value string, clearFirst bool, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	t := d.timeout(timeout)

	clearStmt := ""
	if clearFirst {
		clearStmt = "el.value='';el.dispatchEvent(new Event('input',{bubbles:true}));el.dispatchEvent(new Event('change',{bubbles:true}));"
	}
	script := "(function(){var el=document.querySelector(" + jsStringLiteral(selector) + ");if(!el){throw new Error('element not found');}el.focus();" + clearStmt + "return true;})()"
	if _, err := d.evaluate(script, t, false); err != nil {
		return DriverResult{}, err
	}

	_, sessionID := d.state.session()
	if _, err := d.correlator.sendAndWait("Input.insertText", map[string]interface{}{"text": value}, sessionID, t); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "filled " + selector}, nil
}

// SendKeys implements SPEC_FULL.md §12 send_keys: dispatches printable text
// via Input.insertText (the CDP-recommended path for arbitrary UTF-16 text,
// avoiding per-rune key-code lookups that dispatchKeyEvent would require).
func (d *Driver) SendKeys(text string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	_, sessionID := d.state.session()
	_, err := d.correlator.sendAndWait("Input.insertText", map[string]interface{}{"text": text}, sessionID, d.timeout(timeout))
	if err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "sent keys"}, nil
}

// KeyPress implements SPEC_FULL.md §12 key_press: a named key (e.g. "Enter",
// "Tab") dispatched as a keyDown+keyUp pair.
func (d *Driver) KeyPress(key string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	t := d.timeout(timeout)
	if err := d.dispatchKeyEvent("keyDown", key, t); err != nil {
		return DriverResult{}, err
	}
	if err := d.dispatchKeyEvent("keyUp", key, t); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "pressed " + key}, nil
}

// KeyDown implements SPEC_FULL.md §12 key_down.
func (d *Driver) KeyDown(key string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	if err := d.dispatchKeyEvent("keyDown", key, d.timeout(timeout)); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "key down " + key}, nil
}

// KeyUp implements SPEC_FULL.md §12 key_up.
func (d *Driver) KeyUp(key string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	if err := d.dispatchKeyEvent("keyUp", key, d.timeout(timeout)); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "key up " + key}, nil
}

func (d *Driver) dispatchKeyEvent(eventType, key string, timeout time.Duration) error {
	_, sessionID := d.state.session()
	params := map[string]interface{}{"type": eventType, "key": key}
	_, err := d.correlator.sendAndWait("Input.dispatchKeyEvent", params, sessionID, timeout)
	return err
}

// UploadFile implements SPEC_FULL.md §12 upload_file: DOM.setFileInputFiles
// against the resolved nodeId.
func (d *Driver) UploadFile(selector string, paths []string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	t := d.timeout(timeout)
	nodeID, err := d.dom().resolveNode(selector, t)
	if err != nil {
		return DriverResult{}, err
	}
	_, sessionID := d.state.session()
	params := map[string]interface{}{"files": paths, "nodeId": nodeID}
	if _, err := d.correlator.sendAndWait("DOM.setFileInputFiles", params, sessionID, t); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "uploaded file(s) to " + selector}, nil
}
