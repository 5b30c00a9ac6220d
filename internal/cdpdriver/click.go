package cdpdriver

import "time"

// Click implements spec.md §4.F click(selector): box-model pipeline with a
// JS el.click() fallback on any failure resolving the element or its box.
func (d *Driver) Click(selector string, timeout time.Duration) (DriverResult, error) {
	return d.clickPipeline(selector, "left", 1, timeout)
}

// DoubleClick implements spec.md §4.F double_click.
func (d *Driver) DoubleClick(selector string, timeout time.Duration) (DriverResult, error) {
	return d.clickPipeline(selector, "left", 2, timeout)
}

// RightClick implements spec.md §4.F right_click.
func (d *Driver) RightClick(selector string, timeout time.Duration) (DriverResult, error) {
	return d.clickPipeline(selector, "right", 1, timeout)
}

func (d *Driver) clickPipeline(selector, button string, clickCount int, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}

	x, y, err := d.dom().selectorCenter(selector, d.timeout(timeout))
	if err == nil {
		if err := d.mouseClickAt(x, y, button, clickCount, d.timeout(timeout)); err == nil {
			return DriverResult{Success: true, Message: "clicked " + selector}, nil
		}
	}

	if err := d.jsClickFallback(selector, d.timeout(timeout)); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "clicked " + selector + " (fallback)"}, nil
}

// ClickAtCoordinates implements SPEC_FULL.md §12 click_at_coordinates: skips
// DOM resolution entirely.
func (d *Driver) ClickAtCoordinates(x, y float64, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	if err := d.mouseClickAt(x, y, "left", 1, d.timeout(timeout)); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "clicked at coordinates"}, nil
}

// HoverElement implements SPEC_FULL.md §12 hover_element.
func (d *Driver) HoverElement(selector string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	x, y, err := d.dom().selectorCenter(selector, d.timeout(timeout))
	if err != nil {
		return DriverResult{}, err
	}
	if err := d.dispatchMouseEvent("mouseMoved", x, y, "none", 0, d.timeout(timeout)); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "hovered " + selector}, nil
}

// DragAndDrop implements spec.md §4.F drag_and_drop: derive centers of
// source and target, press@source -> move@target -> release@target.
func (d *Driver) DragAndDrop(sourceSelector, targetSelector string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	sx, sy, err := d.dom().selectorCenter(sourceSelector, d.timeout(timeout))
	if err != nil {
		return DriverResult{}, err
	}
	tx, ty, err := d.dom().selectorCenter(targetSelector, d.timeout(timeout))
	if err != nil {
		return DriverResult{}, err
	}
	return d.dragSequence(sx, sy, tx, ty, timeout)
}

// DragFromTo implements SPEC_FULL.md §12 drag_from_to: raw coordinates.
func (d *Driver) DragFromTo(x0, y0, x1, y1 float64, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	return d.dragSequence(x0, y0, x1, y1, timeout)
}

func (d *Driver) dragSequence(sx, sy, tx, ty float64, timeout time.Duration) (DriverResult, error) {
	t := d.timeout(timeout)
	if err := d.dispatchMouseEvent("mousePressed", sx, sy, "left", 1, t); err != nil {
		return DriverResult{}, err
	}
	if err := d.dispatchMouseEvent("mouseMoved", tx, ty, "left", 0, t); err != nil {
		return DriverResult{}, err
	}
	if err := d.dispatchMouseEvent("mouseReleased", tx, ty, "left", 1, t); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "dragged"}, nil
}
