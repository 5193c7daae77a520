package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Float is a number, which GuruFocus serializes sometimes as JSON number and
// sometimes as string. Unmarshaling never fails for JSON scalars:
//
//   - numbers are kept as is;
//   - null and "" become 0;
//   - strings are parsed, and text like "Negative Tangible Equity" becomes NaN.
//
// Any other JSON type is an error.
type Float float64

var nullLiteral = []byte("null")

func (self *Float) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0:
		return errors.New("unmarshal Float: empty input")
	case bytes.Equal(b, nullLiteral):
		*self = 0
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("unmarshal Float from %s: %w", b, err)
		}
		*self = ParseFloat(s)
		return nil
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf("unmarshal Float from %s: %w", b, err)
		}
		*self = Float(f)
		return nil
	}
	return unmarshalTypeError(b, reflect.TypeOf(*self))
}

// unmarshalTypeError reports b as a JSON value of wrong type. json fills in
// the field path of *json.UnmarshalTypeError only.
func unmarshalTypeError(b []byte, t reflect.Type) error {
	var value string
	switch b[0] {
	case '{':
		value = "object"
	case '[':
		value = "array"
	case 't', 'f':
		value = "bool"
	default:
		value = "literal " + string(b)
	}
	return &json.UnmarshalTypeError{Value: value, Type: t}
}

// ParseFloat converts s the same way as Float unmarshals a JSON string.
func ParseFloat(s string) Float {
	if s == "" {
		return 0
	} else if isHexFloat(s) {
		return Float(math.NaN())
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Float(math.NaN())
	}
	// ±Inf when out of range
	return Float(f)
}

func isHexFloat(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// MarshalJSON writes NaN and ±Inf as strings, because JSON has no literals
// for them. Unmarshaling gets them back.
func (self Float) MarshalJSON() ([]byte, error) {
	f := float64(self)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte(strconv.Quote(self.String())), nil
	}
	return []byte(self.String()), nil
}

func (self Float) Value() float64 {
	return float64(self)
}

func (self Float) IsNaN() bool {
	return math.IsNaN(float64(self))
}

func (self Float) String() string {
	return strconv.FormatFloat(float64(self), 'g', -1, 64)
}
