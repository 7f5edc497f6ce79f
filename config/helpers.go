package config

// SetIfPresent returns a copy of m with k set to v when v is present (non-nil
// and not an empty string). The input map is never mutated, so callers can
// build option maps without hidden aliasing. A nil input behaves as an empty
// map.
func SetIfPresent(m map[string]any, k string, v any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for key, val := range m {
		out[key] = val
	}
	if v == nil {
		return out
	}
	if s, ok := v.(string); ok && s == "" {
		return out
	}
	out[k] = v
	return out
}
