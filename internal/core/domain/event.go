package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// UnknownValue is reported for any parameter lookup that does not reach a scalar leaf.
const UnknownValue = "unknown"

// Event is one observation from a device at a point in time.
type Event struct {
	Timestamp time.Time
	Fields    map[string]any
}

// Value is the result of resolving a dotted path against an event payload.
// Present is false when the path is missing, null or ends on a non-scalar.
type Value struct {
	Raw     string
	Kind    ValueKind
	Present bool
}

// String returns the raw value, or UnknownValue when the lookup failed.
func (v Value) String() string {
	if !v.Present {
		return UnknownValue
	}
	return v.Raw
}

// Lookup resolves path against the event fields.
func (e Event) Lookup(path string) Value {
	return Resolve(e.Fields, path)
}

// Resolve walks fields following the dot separated path. A flat key equal to
// the whole remaining path is also accepted, so payloads that were flattened
// by the event store resolve the same way as nested ones.
func Resolve(fields map[string]any, path string) Value {
	if len(fields) == 0 || path == "" {
		return Value{}
	}

	cur := fields
	rest := path
	for {
		if v, ok := cur[rest]; ok {
			return ScalarValue(v)
		}
		head, tail, found := strings.Cut(rest, ".")
		if !found || head == "" {
			return Value{}
		}
		next, ok := cur[head].(map[string]any)
		if !ok {
			return Value{}
		}
		cur, rest = next, tail
	}
}

// ScalarValue converts a leaf into a Value. Maps, slices, nil and blank strings
// are not scalars.
func ScalarValue(v any) Value {
	switch x := v.(type) {
	case bool:
		return Value{Raw: strconv.FormatBool(x), Kind: ValueKindBoolean, Present: true}
	case string:
		if strings.TrimSpace(x) == "" {
			return Value{}
		}
		return Value{Raw: x, Kind: ValueKindString, Present: true}
	case float64:
		return Value{Raw: strconv.FormatFloat(x, 'f', -1, 64), Kind: ValueKindNumber, Present: true}
	case float32:
		return Value{Raw: strconv.FormatFloat(float64(x), 'f', -1, 32), Kind: ValueKindNumber, Present: true}
	case int:
		return Value{Raw: strconv.Itoa(x), Kind: ValueKindNumber, Present: true}
	case int64:
		return Value{Raw: strconv.FormatInt(x, 10), Kind: ValueKindNumber, Present: true}
	case int32:
		return Value{Raw: strconv.FormatInt(int64(x), 10), Kind: ValueKindNumber, Present: true}
	case uint64:
		return Value{Raw: strconv.FormatUint(x, 10), Kind: ValueKindNumber, Present: true}
	case uint32:
		return Value{Raw: strconv.FormatUint(uint64(x), 10), Kind: ValueKindNumber, Present: true}
	case json.Number:
		return Value{Raw: x.String(), Kind: ValueKindNumber, Present: true}
	default:
		return Value{}
	}
}
