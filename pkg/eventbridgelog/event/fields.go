package event

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	eberrors "github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/errors"
)

// Fields is the construction mapping: snake_case field name to value.
type Fields map[string]any

// With returns a copy of f overlaid with other. Neither input is modified.
func (f Fields) With(other Fields) Fields {
	out := make(Fields, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Clone returns a shallow copy of f.
func (f Fields) Clone() Fields {
	return f.With(nil)
}

// Validation messages, shared with tests through the FieldError values.
const (
	msgRequired = "field required"
	msgEmpty    = "must not be empty"
)

// reader pulls typed values out of a Fields mapping and collects every
// failure instead of stopping at the first.
type reader struct {
	fields Fields
	errs   []eberrors.FieldError
}

func newReader(fields Fields) *reader {
	return &reader{fields: fields}
}

func (r *reader) fail(field, msg string, value any) {
	r.errs = append(r.errs, eberrors.FieldError{Field: field, Message: msg, Value: value})
}

func (r *reader) failErr(field, msg string, value any, cause error) {
	r.errs = append(r.errs, eberrors.FieldError{Field: field, Message: msg, Value: value, Err: cause})
}

// err returns a ValidationError for model if anything failed.
func (r *reader) err(model string) error {
	if len(r.errs) == 0 {
		return nil
	}
	return eberrors.NewValidationError(model, r.errs)
}

// lookup treats nil values as absent, matching JSON null.
func (r *reader) lookup(field string) (any, bool) {
	v, ok := r.fields[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// --- strings ---

func (r *reader) requiredString(field string) string {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, msgRequired, nil)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(field, "value is not a valid string", v)
		return ""
	}
	if strings.TrimSpace(s) == "" {
		r.fail(field, msgEmpty, v)
		return ""
	}
	return s
}

func (r *reader) optionalString(field string) string {
	return r.stringDefault(field, "")
}

func (r *reader) stringDefault(field, def string) string {
	v, ok := r.lookup(field)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		r.fail(field, "value is not a valid string", v)
		return def
	}
	if s == "" {
		return def
	}
	return s
}

func (r *reader) requiredEmail(field string) string {
	s := r.requiredString(field)
	if s == "" {
		return ""
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		r.fail(field, "value is not a valid email address", s)
		return ""
	}
	return s
}

// --- integers ---

func (r *reader) requiredInt(field string) int {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, msgRequired, nil)
		return 0
	}
	n, err := asInt(v)
	if err != nil {
		r.fail(field, err.Error(), v)
		return 0
	}
	return n
}

func (r *reader) intDefault(field string, def int) int {
	v, ok := r.lookup(field)
	if !ok {
		return def
	}
	n, err := asInt(v)
	if err != nil {
		r.fail(field, err.Error(), v)
		return def
	}
	return n
}

func (r *reader) optionalInt(field string) *int {
	v, ok := r.lookup(field)
	if !ok {
		return nil
	}
	n, err := asInt(v)
	if err != nil {
		r.fail(field, err.Error(), v)
		return nil
	}
	return &n
}

// --- booleans ---

func (r *reader) requiredBool(field string) bool {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, msgRequired, nil)
		return false
	}
	b, err := asBool(v)
	if err != nil {
		r.fail(field, err.Error(), v)
		return false
	}
	return b
}

func (r *reader) boolDefault(field string, def bool) bool {
	v, ok := r.lookup(field)
	if !ok {
		return def
	}
	b, err := asBool(v)
	if err != nil {
		r.fail(field, err.Error(), v)
		return def
	}
	return b
}

// --- floats (non-currency ratios only) ---

func (r *reader) optionalFloat(field string) *float64 {
	v, ok := r.lookup(field)
	if !ok {
		return nil
	}
	f, err := asFloat(v)
	if err != nil {
		r.fail(field, err.Error(), v)
		return nil
	}
	return &f
}

// --- decimals ---

func (r *reader) requiredDecimal(field string) decimal.Decimal {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, msgRequired, nil)
		return decimal.Zero
	}
	d, err := asDecimal(v)
	if err != nil {
		r.fail(field, err.Error(), v)
		return decimal.Zero
	}
	return d
}

func (r *reader) optionalDecimal(field string) *decimal.Decimal {
	v, ok := r.lookup(field)
	if !ok {
		return nil
	}
	d, err := asDecimal(v)
	if err != nil {
		r.fail(field, err.Error(), v)
		return nil
	}
	return &d
}

// --- times ---

func (r *reader) requiredTime(field string) time.Time {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, msgRequired, nil)
		return time.Time{}
	}
	t, err := asTime(v)
	if err != nil {
		r.fail(field, err.Error(), v)
		return time.Time{}
	}
	return t
}

func (r *reader) optionalTime(field string) *time.Time {
	v, ok := r.lookup(field)
	if !ok {
		return nil
	}
	t, err := asTime(v)
	if err != nil {
		r.fail(field, err.Error(), v)
		return nil
	}
	return &t
}

// --- uuids ---

func (r *reader) optionalUUID(field string) *uuid.UUID {
	v, ok := r.lookup(field)
	if !ok {
		return nil
	}
	id, err := asUUID(v)
	if err != nil {
		r.fail(field, err.Error(), v)
		return nil
	}
	return &id
}

// --- collections ---

// stringList reads a list of strings. Required lists may be empty; an
// absent optional list is returned as an empty, non-nil slice when
// emptyDefault is set and nil otherwise.
func (r *reader) stringList(field string, required, emptyDefault bool) []string {
	v, ok := r.lookup(field)
	if !ok {
		if required {
			r.fail(field, msgRequired, nil)
		}
		if emptyDefault {
			return []string{}
		}
		return nil
	}

	var out []string
	switch val := v.(type) {
	case []string:
		out = append([]string{}, val...)
	case []any:
		out = make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				r.fail(field, "list items must be strings", v)
				return nil
			}
			out = append(out, s)
		}
	default:
		r.fail(field, "value is not a valid list", v)
		return nil
	}

	if len(out) == 0 && !required && !emptyDefault {
		return nil
	}
	return out
}

// objectList reads a list of JSON objects. A required list may be empty
// and is never nil; an empty optional list collapses to nil.
func (r *reader) objectList(field string, required bool) []map[string]any {
	v, ok := r.lookup(field)
	if !ok {
		if required {
			r.fail(field, msgRequired, nil)
		}
		return nil
	}

	normalized, err := normalizeJSON(v)
	if err != nil {
		r.fail(field, "value is not JSON serializable", v)
		return nil
	}
	items, ok := normalized.([]any)
	if !ok {
		r.fail(field, "value is not a valid list", v)
		return nil
	}

	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			r.fail(field, "list items must be objects", v)
			return nil
		}
		out = append(out, m)
	}
	if len(out) == 0 && !required {
		return nil
	}
	return out
}

// object reads a JSON object. An empty optional object collapses to nil.
func (r *reader) object(field string, required bool) map[string]any {
	v, ok := r.lookup(field)
	if !ok {
		if required {
			r.fail(field, msgRequired, nil)
		}
		return nil
	}

	normalized, err := normalizeJSON(v)
	if err != nil {
		r.fail(field, "value is not JSON serializable", v)
		return nil
	}
	m, ok := normalized.(map[string]any)
	if !ok {
		r.fail(field, "value is not a valid object", v)
		return nil
	}
	if len(m) == 0 && !required {
		return nil
	}
	return m
}

// --- constraints ---
//
// Range checks are skipped for fields that already failed to read.

func (r *reader) failed(field string) bool {
	for _, e := range r.errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (r *reader) nonNegativeDecimal(field string, d decimal.Decimal) {
	if !r.failed(field) && d.IsNegative() {
		r.fail(field, "must be greater than or equal to 0", d.String())
	}
}

func (r *reader) nonNegativeDecimalPtr(field string, d *decimal.Decimal) {
	if d != nil {
		r.nonNegativeDecimal(field, *d)
	}
}

func (r *reader) minInt(field string, n, min int) {
	if !r.failed(field) && n < min {
		r.fail(field, fmt.Sprintf("must be greater than or equal to %d", min), n)
	}
}

func (r *reader) minIntPtr(field string, n *int, min int) {
	if n != nil {
		r.minInt(field, *n, min)
	}
}

func (r *reader) intBetween(field string, n, min, max int) {
	if !r.failed(field) && (n < min || n > max) {
		r.fail(field, fmt.Sprintf("must be between %d and %d", min, max), n)
	}
}

func (r *reader) floatBetween(field string, f *float64, min, max float64) {
	if f != nil && (*f < min || *f > max) {
		r.fail(field, fmt.Sprintf("must be between %g and %g", min, max), *f)
	}
}

// --- coercion ---

func asInt(v any) (int, error) {
	errNotInt := fmt.Errorf("value is not a valid integer")
	switch val := v.(type) {
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
	case float32:
		return floatToInt(float64(val))
	case float64:
		return floatToInt(val)
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return int(n), nil
		}
		if f, err := val.Float64(); err == nil {
			return floatToInt(f)
		}
		return 0, errNotInt
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, errNotInt
		}
		return n, nil
	}
	return 0, errNotInt
}

// floatToInt only converts when there is no fractional part.
func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("value is not a valid integer")
	}
	return int(f), nil
}

// asBool accepts booleans, the strings strconv.ParseBool understands and
// the integers 0 and 1.
func asBool(v any) (bool, error) {
	errNotBool := fmt.Errorf("value is not a valid boolean")
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return false, errNotBool
		}
		return b, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
		n, err := asInt(val)
		if err != nil || (n != 0 && n != 1) {
			return false, errNotBool
		}
		return n == 1, nil
	}
	return false, errNotBool
}

func asFloat(v any) (float64, error) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case uint64:
		f = float64(val)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		n, _ := asInt(val)
		f = float64(n)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, fmt.Errorf("value is not a valid number")
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("value is not a valid number")
		}
		f = parsed
	default:
		return 0, fmt.Errorf("value is not a valid number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value must be finite")
	}
	return f, nil
}

// Bounds on accepted decimals, checked before canonicalization.
const (
	maxDecimalExponent = 100
	maxDecimalDigits   = 38
)

// asDecimal converts integers, floats, numeric strings and decimals into an
// exact decimal. Floats use their shortest round-tripping representation,
// so 99.99 becomes exactly 99.99.
func asDecimal(v any) (decimal.Decimal, error) {
	var d decimal.Decimal
	switch val := v.(type) {
	case decimal.Decimal:
		d = val
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero, fmt.Errorf("value is not a valid decimal")
		}
		d = *val
	case uint64:
		d = decimal.NewFromBigInt(new(big.Int).SetUint64(val), 0)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		n, _ := asInt(val)
		d = decimal.NewFromInt(int64(n))
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return decimal.Zero, fmt.Errorf("value must be finite")
		}
		d = decimal.NewFromFloat32(val)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.Zero, fmt.Errorf("value must be finite")
		}
		d = decimal.NewFromFloat(val)
	case json.Number:
		parsed, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("value is not a valid decimal")
		}
		d = parsed
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return decimal.Zero, fmt.Errorf("value is not a valid decimal")
		}
		d = parsed
	default:
		return decimal.Zero, fmt.Errorf("value is not a valid decimal")
	}

	if exp := d.Exponent(); exp > maxDecimalExponent || exp < -maxDecimalExponent {
		return decimal.Zero, fmt.Errorf("value is out of range")
	}
	d = canonicalDecimal(d)
	if d.NumDigits() > maxDecimalDigits {
		return decimal.Zero, fmt.Errorf("value has more than %d digits", maxDecimalDigits)
	}
	return d, nil
}

// canonicalDecimal strips trailing fractional zeros and scales positive
// exponents into the coefficient, so that a value and its serialized form
// rebuild to the same representation. The exponent must already be bounded.
func canonicalDecimal(d decimal.Decimal) decimal.Decimal {
	coef, exp := d.Coefficient(), d.Exponent()
	ten := big.NewInt(10)

	if exp > 0 {
		coef.Mul(coef, new(big.Int).Exp(ten, big.NewInt(int64(exp)), nil))
		return decimal.NewFromBigInt(coef, 0)
	}

	q, m := new(big.Int), new(big.Int)
	for exp < 0 {
		q.QuoRem(coef, ten, m)
		if m.Sign() != 0 {
			break
		}
		coef.Set(q)
		exp++
	}
	return decimal.NewFromBigInt(coef, exp)
}

// Accepted timestamp layouts. Strings without a zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

func asTime(v any) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		if val.IsZero() {
			return time.Time{}, fmt.Errorf("value is not a valid datetime")
		}
		return normalizeTime(val), nil
	case *time.Time:
		if val == nil || val.IsZero() {
			return time.Time{}, fmt.Errorf("value is not a valid datetime")
		}
		return normalizeTime(*val), nil
	case string:
		s := strings.TrimSpace(val)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return normalizeTime(t), nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("value is not a valid datetime")
}

// normalizeTime stores instants as UTC with microsecond precision, the
// resolution consumers on other runtimes can represent.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func asUUID(v any) (uuid.UUID, error) {
	switch val := v.(type) {
	case uuid.UUID:
		return val, nil
	case *uuid.UUID:
		if val != nil {
			return *val, nil
		}
	case string:
		id, err := uuid.Parse(strings.TrimSpace(val))
		if err == nil {
			return id, nil
		}
	}
	return uuid.Nil, fmt.Errorf("value is not a valid uuid")
}

// normalizeJSON converts open values (metadata, addresses, line items) to
// the JSON-native types they decode back into, so that a reconstructed
// event compares equal to the original.
func normalizeJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
