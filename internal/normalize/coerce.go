package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// asString converts a decoded JSON value to a string. Scalars keep their
// JSON text; null, objects and lists become "".
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// asList returns v as a list, or an empty list for any other shape
func asList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	default:
		return []any{}
	}
}

// asObject returns v as an object, or an empty object for any other shape
func asObject(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// trimmedStrings coerces every element to a trimmed string, drops blanks
// and keeps at most limit entries in their original order.
func trimmedStrings(v any, limit int) []string {
	out := make([]string, 0)
	for _, item := range asList(v) {
		if len(out) >= limit {
			break
		}
		s := strings.TrimSpace(asString(item))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
