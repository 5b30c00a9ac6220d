package cdpdriver

import (
	"encoding/json"
	"fmt"
)

// decodeResult unmarshals a reply's result payload into dst, wrapping any
// failure as a protocol error since a malformed reply from Chrome is not a
// semantic or transport failure.
func decodeResult(raw json.RawMessage, dst interface{}) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: empty result", ErrProtocol)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	return nil
}
