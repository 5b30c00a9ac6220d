package cdpdriver

import "time"

// Scroll implements SPEC_FULL.md §12 scroll(scope): page scroll evaluates
// window.scrollBy; element scroll requires a selector and evaluates
// el.scrollBy, failing if the selector does not resolve.
func (d *Driver) Scroll(scope ScrollScope, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}

	var script string
	switch scope.Type {
	case ScrollScopeElement:
		if scope.Selector == "" {
			return DriverResult{}, NewSemanticError("scroll with scope 'element' requires a selector")
		}
		script = "(function(){var el=document.querySelector(" + jsStringLiteral(scope.Selector) + ");if(!el){throw new Error('element not found');}el.scrollBy(" + jsonNumber(scope.DeltaX) + "," + jsonNumber(scope.DeltaY) + ");return true;})()"
	default:
		script = "(function(){window.scrollBy(" + jsonNumber(scope.DeltaX) + "," + jsonNumber(scope.DeltaY) + ");return true;})()"
	}

	if _, err := d.evaluate(script, timeout, false); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "scrolled"}, nil
}

func jsonNumber(f float64) string {
	b, _ := jsonMarshalCompact(f)
	return string(b)
}
