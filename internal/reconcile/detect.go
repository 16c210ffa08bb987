// Package reconcile detects the shape of an externally supplied payload
// (current snapshot or one of the legacy generations) and reconstructs a
// draft the canonical builder understands, closing the export/import round
// trip.
package reconcile

import "github.com/spf13/cast"

// Shape is the closed set of recognized payload generations.
type Shape int

const (
	ShapeUnknown Shape = iota
	// ShapeSnapshot is the current interchange format: a job wrapper under a
	// schema-version tag.
	ShapeSnapshot
	// ShapeFlatV2 is the second generation: meta.caseNumber next to a flat
	// items array.
	ShapeFlatV2
	// ShapeItemsOnly is a bare items array without full meta.
	ShapeItemsOnly
	// ShapeLegacyV1 is the first generation: version/type fields with info
	// and materials arrays.
	ShapeLegacyV1
)

func (s Shape) String() string {
	switch s {
	case ShapeSnapshot:
		return "snapshot"
	case ShapeFlatV2:
		return "flat-v2"
	case ShapeItemsOnly:
		return "items-only"
	case ShapeLegacyV1:
		return "legacy-v1"
	default:
		return "unknown"
	}
}

// DetectShape classifies a payload. Detection runs in fixed priority order;
// the first matching generation wins.
func DetectShape(payload map[string]any) Shape {
	if payload == nil {
		return ShapeUnknown
	}

	if asMap(payload["job"]) != nil {
		return ShapeSnapshot
	}

	meta := asMap(payload["meta"])
	hasItems := asList(payload["items"]) != nil || asList(payload["lines"]) != nil
	if meta != nil && cast.ToString(meta["caseNumber"]) != "" && hasItems {
		return ShapeFlatV2
	}
	if hasItems {
		return ShapeItemsOnly
	}

	_, hasVersion := payload["version"]
	_, hasType := payload["type"]
	if (hasVersion || hasType) && asList(payload["info"]) != nil && asList(payload["materials"]) != nil {
		return ShapeLegacyV1
	}

	// A bare materials array without the v1 markers still carries line
	// items; treat it like the items-only generation.
	if asList(payload["materials"]) != nil {
		return ShapeItemsOnly
	}

	return ShapeUnknown
}

func asMap(v any) map[string]any {
	if v == nil {
		return nil
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil
	}
	return m
}

func asList(v any) []any {
	if v == nil {
		return nil
	}
	s, err := cast.ToSliceE(v)
	if err != nil {
		return nil
	}
	return s
}
