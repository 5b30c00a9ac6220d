package cdpdriver

import "time"

// GetStorage implements spec.md §4.F get_storage: with a key, returns that
// key's value; with no key, returns the whole store as a JSON object string.
func (d *Driver) GetStorage(kind StorageKind, key string, timeout time.Duration) (string, error) {
	if err := d.requireSession(); err != nil {
		return "", err
	}
	var script string
	if key == "" {
		script = "(function(){var out={};var s=window." + string(kind) + ";for(var i=0;i<s.length;i++){var k=s.key(i);out[k]=s.getItem(k);}return JSON.stringify(out);})()"
	} else {
		script = "window." + string(kind) + ".getItem(" + jsStringLiteral(key) + ")"
	}
	res, err := d.evaluate(script, timeout, false)
	if err != nil {
		return "", err
	}
	if key != "" && string(res.Result.Value) == "null" {
		return "", nil
	}
	s, err := decodeStringValue(res.Result.Value)
	if err != nil {
		return "", err
	}
	return sanitizeUTF8(s), nil
}

// SetStorage implements spec.md §4.F set_storage.
func (d *Driver) SetStorage(kind StorageKind, key, value string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	script := "window." + string(kind) + ".setItem(" + jsStringLiteral(key) + "," + jsStringLiteral(value) + ")"
	if _, err := d.evaluate(script, timeout, false); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "stored"}, nil
}

// GetClipboard implements SPEC_FULL.md §12 get_clipboard via the Clipboard
// API, awaiting the promise it returns (spec.md §6 names awaitPromise
// explicitly for this operation).
func (d *Driver) GetClipboard(timeout time.Duration) (string, error) {
	if err := d.requireSession(); err != nil {
		return "", err
	}
	res, err := d.evaluate("navigator.clipboard.readText()", timeout, true)
	if err != nil {
		return "", err
	}
	s, err := decodeStringValue(res.Result.Value)
	if err != nil {
		return "", err
	}
	return sanitizeUTF8(s), nil
}

// SetClipboard implements SPEC_FULL.md §12 set_clipboard.
func (d *Driver) SetClipboard(text string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	script := "navigator.clipboard.writeText(" + jsStringLiteral(text) + ")"
	if _, err := d.evaluate(script, timeout, true); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "clipboard set"}, nil
}
