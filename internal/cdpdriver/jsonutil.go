package cdpdriver

import "encoding/json"

func jsonMarshalCompact(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
