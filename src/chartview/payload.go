package chartview

// Map-selection signals carry their captured datum values keyed by the escaped
// property path (see chartspec.Spec.SelectionKey). The value under that key is
// the ordered list of selected region codes; charts here capture at most one,
// but the payload shape allows several.

// Selection builds a signal payload for the given escaped key and codes.
// With no codes it returns the empty-selection payload.
func Selection(key string, codes ...string) map[string]any {
	if len(codes) == 0 {
		return map[string]any{}
	}
	vals := make([]any, len(codes))
	for i, c := range codes {
		vals[i] = c
	}
	return map[string]any{key: vals}
}

// SelectedRegions extracts the ordered region codes from a map-selection
// signal value. Any malformed shape (nil, wrong type, missing key, non-string
// entries) is treated as an empty selection rather than an error.
func SelectedRegions(key string, value any) []string {
	m, ok := value.(map[string]any)
	if !ok || key == "" {
		return nil
	}
	raw, ok := m[key]
	if !ok {
		return nil
	}
	switch vs := raw.(type) {
	case []string:
		out := make([]string, 0, len(vs))
		for _, s := range vs {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
