// Package payload normalizes the loosely typed JSON bodies posted by the browser
// extension. Every accessor tolerates missing keys, nulls and wrong types by
// returning a zero value instead of an error.
package payload

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// WrapperKey is the key under which clients may nest the real body.
const WrapperKey = "payload"

// maxExactFloat is the largest magnitude a float64 holds without losing integer precision.
const maxExactFloat = 1 << 53

// Payload is a decoded JSON object.
type Payload map[string]any

// Decode parses body and unwraps it. Bodies that are empty, unparsable or not a
// JSON object decode to an empty Payload.
func Decode(body []byte) Payload {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Payload{}
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return Payload{}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return Payload{}
	}
	return Unwrap(obj)
}

// Unwrap returns the innermost object nested under "payload", otherwise obj.
func Unwrap(obj map[string]any) Payload {
	for {
		inner, ok := obj[WrapperKey].(map[string]any)
		if !ok {
			break
		}
		obj = inner
	}
	if obj == nil {
		return Payload{}
	}
	return Payload(obj)
}

// Lookup follows path through nested objects and returns the value found.
func (p Payload) Lookup(path ...string) (any, bool) {
	var cur any = map[string]any(p)
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// String returns the text at path, or "" when absent. Numbers are formatted;
// other non-string values yield "".
func (p Payload) String(path ...string) string {
	v, _ := p.Lookup(path...)
	return AsString(v)
}

// Int returns the integer at path, or 0 when absent or not coercible.
func (p Payload) Int(path ...string) int {
	v, _ := p.Lookup(path...)
	return AsInt(v)
}

// Object returns the nested object at path, or an empty Payload.
func (p Payload) Object(path ...string) Payload {
	v, _ := p.Lookup(path...)
	if obj, ok := v.(map[string]any); ok {
		return Payload(obj)
	}
	return Payload{}
}

// FirstString returns the first non-empty text among the given paths.
func (p Payload) FirstString(paths ...[]string) string {
	for _, path := range paths {
		if s := strings.TrimSpace(p.String(path...)); s != "" {
			return s
		}
	}
	return ""
}

// FirstInt returns the value of the first path that is present and not null.
func (p Payload) FirstInt(paths ...[]string) int {
	for _, path := range paths {
		if v, ok := p.Lookup(path...); ok && v != nil {
			return AsInt(v)
		}
	}
	return 0
}

// AsString coerces v to text.
func AsString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// AsInt coerces v to an integer. JSON numbers truncate toward zero, strings are
// parsed as base-10 integers, everything else is 0.
func AsInt(v any) int {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.Abs(t) > maxExactFloat {
			return 0
		}
		return int(t)
	case int:
		return t
	case json.Number:
		n, err := strconv.Atoi(t.String())
		if err != nil {
			return 0
		}
		return n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
