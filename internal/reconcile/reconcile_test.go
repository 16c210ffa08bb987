package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReneLS365/Cssmate-sub002/internal/canon"
	"github.com/ReneLS365/Cssmate-sub002/internal/faults"
	"github.com/ReneLS365/Cssmate-sub002/internal/model"
	"github.com/ReneLS365/Cssmate-sub002/internal/snapshot"
)

func TestDetectShape(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
		want    Shape
	}{
		{
			"snapshot",
			map[string]any{"schemaVersion": model.SchemaVersion, "job": map[string]any{}},
			ShapeSnapshot,
		},
		{
			"flat v2",
			map[string]any{
				"meta":  map[string]any{"caseNumber": "S-1"},
				"items": []any{map[string]any{"quantity": 1}},
			},
			ShapeFlatV2,
		},
		{
			"items only",
			map[string]any{"items": []any{map[string]any{"quantity": 1}}},
			ShapeItemsOnly,
		},
		{
			"legacy v1",
			map[string]any{
				"version":   1,
				"type":      "montage",
				"info":      []any{},
				"materials": []any{map[string]any{"antal": 1}},
			},
			ShapeLegacyV1,
		},
		{
			"bare materials",
			map[string]any{"materials": []any{map[string]any{"antal": 1}}},
			ShapeItemsOnly,
		},
		{"empty", map[string]any{}, ShapeUnknown},
		{"nil", nil, ShapeUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectShape(tc.payload))
		})
	}
}

func TestReconcile_NoLineItems(t *testing.T) {
	_, err := Reconcile(map[string]any{"meta": map[string]any{"caseNumber": "S-1"}})
	require.Error(t, err)
	assert.True(t, faults.IsValidation(err))
	assert.Contains(t, err.Error(), "no recognizable line items")
}

func TestReconcile_SnapshotRejectsWrongSchema(t *testing.T) {
	_, err := Reconcile(map[string]any{
		"schemaVersion": "cssmate.job.v9",
		"job":           map[string]any{"items": []any{}},
	})
	require.Error(t, err)
	assert.True(t, faults.IsFormat(err))
}

func TestReconcile_LegacyV1(t *testing.T) {
	draft, err := Reconcile(map[string]any{
		"version": 1,
		"type":    "demontage",
		"info": []any{
			map[string]any{"label": "sagsnummer", "value": "S-0042"},
			map[string]any{"label": "kunde", "value": "Mester Madsen"},
		},
		"materials": []any{
			map[string]any{"navn": "Søjle", "antal": 3, "pris": 12.5},
		},
	})
	require.NoError(t, err)

	m := canon.Build(draft, canon.Options{})
	assert.Equal(t, "S-0042", m.Meta.CaseNumber)
	assert.Equal(t, "Mester Madsen", m.Meta.Customer)
	assert.Equal(t, "demontage", m.Meta.JobType)
	require.Len(t, m.Items, 1)
	assert.Equal(t, 37.5, m.Totals.Materials)
}

func fullDraft() model.RawDraft {
	return model.RawDraft{
		"meta": map[string]any{
			"caseNumber": "2024-117",
			"caseName":   "Havnegade 12",
			"customer":   "Byg & Bo ApS",
			"address":    "Havnegade 12, 5000 Odense",
			"date":       "2026-02-01",
			"system":     "bosta",
			"jobType":    "montage",
			"jobFactor":  1.12,
		},
		"lines": []any{
			map[string]any{"lineNumber": 1, "itemNumber": "100200", "name": "Ramme 200", "unit": "stk", "quantity": 4, "unitPrice": 25},
			map[string]any{"lineNumber": 2, "itemNumber": "100300", "name": "Dæk 300", "unit": "stk", "quantity": 2, "unitPrice": 15},
		},
		"extras": map[string]any{
			"distance":  map[string]any{"quantity": 2, "rate": 25},
			"surcharge": map[string]any{"percent": 10},
			"extraWork": []any{
				map[string]any{"description": "Oprydning", "quantity": 2, "rate": 150},
			},
		},
		"wage": map[string]any{
			"workers": []any{
				map[string]any{"name": "Jens", "hours": 10, "rate": 50},
			},
		},
	}
}

// The round trip must reproduce meta, items, extras and wage for every
// supported import generation; only timestamps and ids may differ.
func TestRoundTrip_SnapshotShape(t *testing.T) {
	first := canon.Build(fullDraft(), canon.Options{})
	snap := snapshot.Wrap(first, "base", snapshot.Options{ExportedAt: time.Now()})
	data, err := snapshot.Encode(snap)
	require.NoError(t, err)

	draft2, err := ReconcileJSON(data)
	require.NoError(t, err)
	second := canon.Build(draft2, canon.Options{})

	first.Meta.UpdatedAt, second.Meta.UpdatedAt = "", ""
	assert.Equal(t, first, second)
}

func TestRoundTrip_FlatV2Shape(t *testing.T) {
	first := canon.Build(fullDraft(), canon.Options{})

	draft2, err := Reconcile(fullDraft())
	require.NoError(t, err)
	second := canon.Build(draft2, canon.Options{})

	assert.Equal(t, first, second)
}

func TestRoundTrip_ItemsOnlyShape(t *testing.T) {
	payload := map[string]any{
		"caseNumber": "2024-117",
		"items": []any{
			map[string]any{"name": "Ramme 200", "quantity": 4, "unitPrice": 25},
		},
	}

	draft, err := Reconcile(payload)
	require.NoError(t, err)
	m := canon.Build(draft, canon.Options{})

	assert.Equal(t, "2024-117", m.Meta.CaseNumber)
	require.Len(t, m.Items, 1)
	assert.Equal(t, 100.0, m.Totals.Materials)
	assert.Empty(t, m.Wage.Workers)
	assert.Empty(t, m.Extras.ExtraWork)
}
