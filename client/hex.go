package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// HexNum keeps original text of a value, which could be a hex string like
// "1a" or a number. It's used by color codes. Numbers keep their JSON text and
// null becomes "0".
type HexNum string

func (self *HexNum) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0:
		return fmt.Errorf("unmarshal HexNum: empty input")
	case bytes.Equal(b, nullLiteral):
		*self = "0"
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("unmarshal HexNum from %s: %w", b, err)
		}
		*self = HexNum(s)
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		*self = HexNum(b)
	default:
		return unmarshalTypeError(b, reflect.TypeOf(*self))
	}
	return nil
}

func (self HexNum) String() string {
	return string(self)
}
