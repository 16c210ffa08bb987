package canon

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// CoerceFinite converts an arbitrary raw value to a finite float64. Danish
// comma decimals ("12,50") are normalized before parsing; NaN, ±Inf and
// anything unparseable degrade to 0. This permissive policy is intentional:
// renderers surface emptiness, the builder never fails on bad numerics.
func CoerceFinite(v any) float64 {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		if strings.Contains(s, ",") {
			// "1.234,50" and "12,50" both mean a comma decimal.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
		v = s
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// lookup returns the first value present under any of the aliases.
func lookup(m map[string]any, aliases ...string) (any, bool) {
	if m == nil {
		return nil, false
	}
	for _, k := range aliases {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// str resolves the first non-empty string among the aliases.
func str(m map[string]any, aliases ...string) string {
	for _, k := range aliases {
		if v, ok := m[k]; ok && v != nil {
			if s := strings.TrimSpace(cast.ToString(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

// num resolves the first present numeric among the aliases, coerced finite.
func num(m map[string]any, aliases ...string) float64 {
	v, ok := lookup(m, aliases...)
	if !ok {
		return 0
	}
	return CoerceFinite(v)
}

// sub resolves a nested mapping; absent or wrongly typed values become nil.
func sub(m map[string]any, aliases ...string) map[string]any {
	v, ok := lookup(m, aliases...)
	if !ok {
		return nil
	}
	mm, err := cast.ToStringMapE(v)
	if err != nil {
		return nil
	}
	return mm
}

// list resolves a nested array; absent or wrongly typed values become nil.
func list(m map[string]any, aliases ...string) []any {
	v, ok := lookup(m, aliases...)
	if !ok {
		return nil
	}
	s, err := cast.ToSliceE(v)
	if err != nil {
		return nil
	}
	return s
}

// entry converts one array element to a mapping, or nil.
func entry(v any) map[string]any {
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil
	}
	return m
}
