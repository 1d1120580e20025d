package validators

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayouts are the accepted textual date formats, tried in order.
var DateLayouts = []string{
	time.RFC3339Nano,
	time.DateTime,
	time.DateOnly,
}

// IsAbsent reports whether v counts as a missing value: nil or an empty string.
func IsAbsent(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case json.Number:
		return strings.TrimSpace(val.String()) == ""
	default:
		return false
	}
}

// ToFloat converts numbers and numeric strings to float64.
// NaN, infinities and anything non-numeric report ok == false.
func ToFloat(v any) (float64, bool) {
	var f float64

	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int8:
		f = float64(val)
	case int16:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case uint:
		f = float64(val)
	case uint8:
		f = float64(val)
	case uint16:
		f = float64(val)
	case uint32:
		f = float64(val)
	case uint64:
		f = float64(val)
	case json.Number:
		return ToFloat(val.String())
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f, false
	}
	return f, true
}

// ToInt64 converts integral numbers and integral numeric strings to int64.
func ToInt64(v any) (int64, bool) {
	f, ok := ToFloat(v)
	if !ok || f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// ParseDate accepts a non-zero time.Time or a string in one of DateLayouts.
func ParseDate(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, !val.IsZero()
	case string:
		s := strings.TrimSpace(val)
		for _, layout := range DateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// AsFloat extracts the named field as a float64. Absent values stay nil,
// non-numeric values become NaN.
func AsFloat(name string) ExtractFunc {
	return func(input Input) any {
		v := input[name]
		if IsAbsent(v) {
			return nil
		}
		f, ok := ToFloat(v)
		if !ok {
			return math.NaN()
		}
		return f
	}
}

// AsDate extracts the named field as a time.Time. Absent values stay nil and
// unparsable values are returned unchanged so that IsDate rejects them.
func AsDate(name string) ExtractFunc {
	return func(input Input) any {
		v := input[name]
		if IsAbsent(v) {
			return nil
		}
		if t, ok := ParseDate(v); ok {
			return t
		}
		return v
	}
}

// isEmptyID reports the "no id supplied" values: absent, zero or "0".
func isEmptyID(v any) bool {
	if IsAbsent(v) {
		return true
	}
	if b, ok := v.(bool); ok {
		return !b
	}
	f, ok := ToFloat(v)
	return ok && f == 0
}
