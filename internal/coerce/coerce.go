// Package coerce holds the defaulting primitives every format adapter uses.
// All functions are total: they never panic and never return an error, they
// fall back to the caller's default instead.
package coerce

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// IntOr parses an integer out of raw, returning def when raw is nil, empty,
// non-numeric, or not a scalar. Strings follow parseInt rules: leading
// whitespace and sign are accepted and parsing stops at the first non-digit,
// so "16abc" and "16.7" both yield 16. Floats are truncated toward zero.
func IntOr(raw any, def int) int {
	switch v := raw.(type) {
	case nil:
		return def
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			return def
		}
		return int(v)
	case float32:
		return floatOr(float64(v), def)
	case float64:
		return floatOr(v, def)
	case string:
		return stringIntOr(v, def)
	default:
		return def
	}
}

func floatOr(f float64, def int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	t := math.Trunc(f)
	if t > math.MaxInt64 || t < math.MinInt64 {
		return def
	}
	return int(t)
}

func stringIntOr(s string, def int) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return def
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return def
	}
	return n
}

// StringOr returns raw trimmed when it is a non-blank string. Numbers are
// rendered in their shortest form. Anything else yields def.
func StringOr(raw any, def string) string {
	switch v := raw.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
		return def
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return def
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return def
	}
}

// ListOr maps every element of raw through fn when raw is an array,
// otherwise it returns def. fn must itself be total.
func ListOr[T any](raw any, fn func(any) T, def []T) []T {
	arr, ok := raw.([]any)
	if !ok {
		return def
	}
	out := make([]T, 0, len(arr))
	for _, el := range arr {
		out = append(out, fn(el))
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// TimeOr parses a timestamp from an RFC3339-ish string, a bare date, or a
// unix-millisecond number. Unparsable input yields def.
func TimeOr(raw any, def time.Time) time.Time {
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC()
			}
		}
		return def
	case float64:
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return def
		}
		return time.UnixMilli(int64(v)).UTC()
	default:
		return def
	}
}

// Map returns raw as an object, or nil when it is not one.
func Map(raw any) map[string]any {
	m, _ := raw.(map[string]any)
	return m
}

// First returns the value of the first key present in m with a non-nil
// value. Keys are checked strictly in the order given.
func First(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
