package cdpdriver

import "time"

// SetGeolocation implements SPEC_FULL.md §12 set_geolocation via
// Emulation.setGeolocationOverride.
func (d *Driver) SetGeolocation(latitude, longitude, accuracy float64, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	_, sessionID := d.state.session()
	params := map[string]interface{}{
		"latitude":  latitude,
		"longitude": longitude,
		"accuracy":  accuracy,
	}
	if _, err := d.correlator.sendAndWait("Emulation.setGeolocationOverride", params, sessionID, d.timeout(timeout)); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "geolocation override set"}, nil
}
