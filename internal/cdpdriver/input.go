package cdpdriver

import "time"

// dispatchMouseEvent issues Input.dispatchMouseEvent with the given type,
// coordinates, button and click count.
func (d *Driver) dispatchMouseEvent(eventType string, x, y float64, button string, clickCount int, timeout time.Duration) error {
	_, sessionID := d.state.session()
	params := map[string]interface{}{
		"type":       eventType,
		"x":          x,
		"y":          y,
		"button":     button,
		"clickCount": clickCount,
	}
	_, err := d.correlator.sendAndWait("Input.dispatchMouseEvent", params, sessionID, timeout)
	return err
}

func (d *Driver) mouseClickAt(x, y float64, button string, clickCount int, timeout time.Duration) error {
	if err := d.dispatchMouseEvent("mousePressed", x, y, button, clickCount, timeout); err != nil {
		return err
	}
	return d.dispatchMouseEvent("mouseReleased", x, y, button, clickCount, timeout)
}

// jsClickFallback evaluates el.click() when the box-model pipeline fails, per
// spec.md §4.F click's documented fallback.
func (d *Driver) jsClickFallback(selector string, timeout time.Duration) error {
	script := "(function(){var el=document.querySelector(" + jsStringLiteral(selector) + ");if(!el){throw new Error('element not found');}el.click();return true;})()"
	_, err := d.evaluate(script, timeout, false)
	return err
}

// jsStringLiteral renders s as a JSON string literal, the idiom every
// generated in-page script in this package uses to safely embed selectors and
// values without building ad hoc escaping.
func jsStringLiteral(s string) string {
	b, _ := jsonMarshalCompact(s)
	return string(b)
}
