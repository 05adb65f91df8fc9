package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Values wraps a map[string]any of settings overrides for typed extraction.
//
// String returns the default when the key is missing or not a string. The
// Parse accessors return an error instead, for settings that must fail fast.
// Strings are accepted wherever a number or boolean is expected, since
// environment variables arrive as text.
type Values struct {
	data map[string]any
}

// NewValues creates Values from the given map.
// If data is nil, empty Values are returned.
func NewValues(data map[string]any) Values {
	if data == nil {
		data = make(map[string]any)
	}
	return Values{data: data}
}

// Lookup returns the raw value for key. A nil value counts as missing.
func (v Values) Lookup(key string) (any, bool) {
	val, ok := v.data[key]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (v Values) String(key, defaultVal string) string {
	s, err := v.ParseString(key, defaultVal)
	if err != nil {
		return defaultVal
	}
	return s
}

// ParseString returns the string value for key, or defaultVal if missing.
func (v Values) ParseString(key, defaultVal string) (string, error) {
	raw, ok := v.Lookup(key)
	if !ok {
		return defaultVal, nil
	}
	s, ok := raw.(string)
	if !ok {
		return defaultVal, fmt.Errorf("value is not a valid string")
	}
	return s, nil
}

// ParseBool returns the boolean value for key, or defaultVal if missing.
func (v Values) ParseBool(key string, defaultVal bool) (bool, error) {
	raw, ok := v.Lookup(key)
	if !ok {
		return defaultVal, nil
	}
	b, err := toBool(raw)
	if err != nil {
		return defaultVal, err
	}
	return b, nil
}

// ParseInt returns the integer value for key, or defaultVal if missing.
func (v Values) ParseInt(key string, defaultVal int) (int, error) {
	raw, ok := v.Lookup(key)
	if !ok {
		return defaultVal, nil
	}
	n, err := toInt(raw)
	if err != nil {
		return defaultVal, err
	}
	return n, nil
}

// ParseFloat returns the float64 value for key, or defaultVal if missing.
func (v Values) ParseFloat(key string, defaultVal float64) (float64, error) {
	raw, ok := v.Lookup(key)
	if !ok {
		return defaultVal, nil
	}
	f, err := toFloat(raw)
	if err != nil {
		return defaultVal, err
	}
	return f, nil
}

// toBool accepts booleans, yes/no style strings and the integers 0 and 1.
func toBool(raw any) (bool, error) {
	errNotBool := fmt.Errorf("value is not a valid boolean")
	switch val := raw.(type) {
	case bool:
		return val, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "1", "t", "true", "yes", "y", "on":
			return true, nil
		case "0", "f", "false", "no", "n", "off":
			return false, nil
		}
		return false, errNotBool
	}
	n, err := toInt(raw)
	if err != nil || (n != 0 && n != 1) {
		return false, errNotBool
	}
	return n == 1, nil
}

func toInt(raw any) (int, error) {
	errNotInt := fmt.Errorf("value is not a valid integer")
	switch val := raw.(type) {
	case int:
		return val, nil
	case int8:
		return int(val), nil
	case int16:
		return int(val), nil
	case int32:
		return int(val), nil
	case int64:
		return int(val), nil
	case uint:
		return int(val), nil
	case uint8:
		return int(val), nil
	case uint16:
		return int(val), nil
	case uint32:
		return int(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return 0, errNotInt
		}
		return int(val), nil
	case float64:
		// Only convert if there's no fractional part
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return int(val), nil
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n, nil
		}
	}
	return 0, errNotInt
}

func toFloat(raw any) (float64, error) {
	var f float64
	switch val := raw.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case uint64:
		f = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("value is not a valid number")
		}
		f = parsed
	default:
		n, err := toInt(raw)
		if err != nil {
			return 0, fmt.Errorf("value is not a valid number")
		}
		f = float64(n)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value must be finite")
	}
	return f, nil
}
