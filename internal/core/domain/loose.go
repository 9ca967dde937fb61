package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// LooseInt decodes an integer field that upstream may send as a number,
// a numeric string, a boolean or null. Decoding never fails; anything
// unusable, including a number outside the int range, leaves the value
// absent.
type LooseInt struct {
	Value int
	Valid bool
}

// IntOf returns a present LooseInt.
func IntOf(v int) LooseInt {
	return LooseInt{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *LooseInt) UnmarshalJSON(data []byte) error {
	*i = LooseInt{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if n, ok := parseLooseInt(s); ok {
			*i = IntOf(n)
		}
	case 't':
		*i = IntOf(1)
	case 'f':
		*i = IntOf(0)
	case '{', '[':
		// Objects and arrays are not integers.
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err == nil {
			if n, ok := floatToInt(f); ok {
				*i = IntOf(n)
			}
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (i LooseInt) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return jsonNull, nil
	}
	return []byte(strconv.Itoa(i.Value)), nil
}

// Truthy reports whether the value is present and non-zero.
func (i LooseInt) Truthy() bool {
	return i.Valid && i.Value != 0
}

// Or returns the value, or fallback when absent.
func (i LooseInt) Or(fallback int) int {
	if !i.Valid {
		return fallback
	}
	return i.Value
}

func parseLooseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return floatToInt(f)
	}
	return 0, false
}

// floatToInt truncates f, refusing values an int cannot hold.
func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// LooseString decodes a string field that upstream may send as a string,
// a number, a boolean or null. Decoding never fails. Numbers and true keep
// their literal text; false and numeric zero count as absent.
type LooseString struct {
	Value string
	Valid bool
}

// StringOf returns a present LooseString.
func StringOf(v string) LooseString {
	return LooseString{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	*s = LooseString{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}

	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err == nil {
			*s = StringOf(v)
		}
	case '{', '[':
		// Objects and arrays are not strings.
	case 't':
		*s = StringOf("true")
	case 'f':
		// false is never a usable string.
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err == nil && f != 0 {
			*s = StringOf(string(data))
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s LooseString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return jsonNull, nil
	}
	return json.Marshal(s.Value)
}

// Truthy reports whether the value is present and not blank.
func (s LooseString) Truthy() bool {
	return s.Valid && strings.TrimSpace(s.Value) != ""
}

// Or returns the trimmed value, or fallback when absent or blank.
func (s LooseString) Or(fallback string) string {
	if !s.Truthy() {
		return fallback
	}
	return strings.TrimSpace(s.Value)
}

// String returns the trimmed value, empty when absent.
func (s LooseString) String() string {
	return s.Or("")
}
