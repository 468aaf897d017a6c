package protocol

import "strconv"

// Payload field extraction is deliberately forgiving: a missing field, an
// explicit null, or a value of the wrong shape yields the caller's default
// instead of an error. Handlers validate afterwards.

func getString(p map[string]any, key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return def
}

func getInt(p map[string]any, key string, def int) int {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return def
}

// getIntSlice extracts a numeric array, skipping non-numeric elements.
func getIntSlice(p map[string]any, key string) []int {
	arr, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(arr))
	for _, v := range arr {
		if n, ok := v.(float64); ok {
			out = append(out, int(n))
		}
	}
	return out
}
