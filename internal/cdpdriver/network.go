package cdpdriver

import "time"

// ensureNetworkEnabled issues Network.enable at most once per session, the
// first time any network-observing verb is called (spec.md §4.D network
// requests are only captured once Network.enable has been sent).
func (d *Driver) ensureNetworkEnabled(timeout time.Duration) error {
	if d.state.markNetworkEnabled() {
		return nil
	}
	_, sessionID := d.state.session()
	_, err := d.correlator.sendAndWait("Network.enable", nil, sessionID, d.timeout(timeout))
	return err
}

// GetNetworkRequests implements SPEC_FULL.md §12 get_network_requests: a
// snapshot of the bounded network ring, oldest first.
func (d *Driver) GetNetworkRequests(timeout time.Duration) (GetNetworkRequestsResult, error) {
	if err := d.requireSession(); err != nil {
		return GetNetworkRequestsResult{}, err
	}
	if err := d.ensureNetworkEnabled(timeout); err != nil {
		return GetNetworkRequestsResult{}, err
	}
	entries := d.state.networkSnapshot()
	out := make([]NetworkRequestEntry, len(entries))
	for i, e := range entries {
		e.URL = sanitizeUTF8(e.URL)
		e.Method = sanitizeUTF8(e.Method)
		e.StatusText = sanitizeUTF8(e.StatusText)
		out[i] = e
	}
	return GetNetworkRequestsResult{Success: true, Requests: out}, nil
}
