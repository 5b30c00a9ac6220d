package cdpdriver

import "time"

// SetUserAgent implements SPEC_FULL.md §12 set_user_agent via
// Network.setUserAgentOverride, which requires Network.enable first on a
// freshly attached target.
func (d *Driver) SetUserAgent(userAgent string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	if err := d.ensureNetworkEnabled(timeout); err != nil {
		return DriverResult{}, err
	}
	_, sessionID := d.state.session()
	params := map[string]interface{}{"userAgent": userAgent}
	if _, err := d.correlator.sendAndWait("Network.setUserAgentOverride", params, sessionID, d.timeout(timeout)); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "user agent overridden"}, nil
}
