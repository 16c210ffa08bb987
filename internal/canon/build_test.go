package canon

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReneLS365/Cssmate-sub002/internal/model"
)

func draftWithItems() model.RawDraft {
	return model.RawDraft{
		"meta": map[string]any{
			"caseNumber": "2024-117",
			"caseName":   "Havnegade 12",
			"customer":   "Byg & Bo ApS",
			"system":     "bosta",
			"jobType":    "montage",
		},
		"lines": []any{
			map[string]any{"name": "Ramme 200", "quantity": 4, "unitPrice": 25},
			map[string]any{"name": "Dæk 300", "quantity": 2, "unitPrice": 15},
		},
	}
}

func TestBuild_DerivesMaterialsTotal(t *testing.T) {
	m := Build(draftWithItems(), Options{})

	require.Len(t, m.Items, 2)
	assert.Equal(t, 100.0, m.Items[0].LineTotal)
	assert.Equal(t, 30.0, m.Items[1].LineTotal)
	assert.Equal(t, 130.0, m.Totals.Materials)
	assert.Equal(t, 130.0, m.Totals.Akkord)
}

func TestBuild_ExtrasAndAkkord(t *testing.T) {
	raw := draftWithItems()
	raw["extras"] = map[string]any{
		"distance":  map[string]any{"amount": 50},
		"surcharge": map[string]any{"percent": 10},
	}

	m := Build(raw, Options{})

	assert.Equal(t, 13.0, m.Extras.Surcharge.Amount)
	assert.Equal(t, 63.0, m.Totals.Extras)
	assert.Equal(t, 193.0, m.Totals.Akkord)
}

func TestBuild_FiltersZeroQuantity(t *testing.T) {
	raw := model.RawDraft{
		"lines": []any{
			map[string]any{"name": "kept", "quantity": 1, "unitPrice": 10},
			map[string]any{"name": "dropped", "quantity": 0, "unitPrice": 99},
		},
	}

	m := Build(raw, Options{})

	require.Len(t, m.Items, 1)
	assert.Equal(t, "kept", m.Items[0].Name)
}

func TestBuild_LegacyMaterialsArrayAndDanishAliases(t *testing.T) {
	raw := model.RawDraft{
		"sagsnummer": "S-0042",
		"kunde":      "Mester Madsen",
		"materials": []any{
			map[string]any{"navn": "Søjle", "antal": "3", "pris": "12,50"},
		},
	}

	m := Build(raw, Options{})

	assert.Equal(t, "S-0042", m.Meta.CaseNumber)
	assert.Equal(t, "Mester Madsen", m.Meta.Customer)
	require.Len(t, m.Items, 1)
	assert.Equal(t, "Søjle", m.Items[0].Name)
	assert.Equal(t, 12.5, m.Items[0].UnitPrice)
	assert.Equal(t, 37.5, m.Items[0].LineTotal)
}

func TestBuild_NestedMetaWinsOverTopLevel(t *testing.T) {
	raw := model.RawDraft{
		"caseNumber": "OLD",
		"meta":       map[string]any{"caseNumber": "NEW"},
		"lines":      []any{map[string]any{"quantity": 1, "unitPrice": 1}},
	}

	m := Build(raw, Options{})
	assert.Equal(t, "NEW", m.Meta.CaseNumber)
}

func TestBuild_ExplicitLineTotalWins(t *testing.T) {
	raw := model.RawDraft{
		"lines": []any{
			map[string]any{"quantity": 2, "unitPrice": 10, "lineTotal": 25},
		},
	}

	m := Build(raw, Options{})
	require.Len(t, m.Items, 1)
	assert.Equal(t, 25.0, m.Items[0].LineTotal)
	assert.Equal(t, 25.0, m.Totals.Materials)
}

func TestBuild_OverridePolicyIsPerField(t *testing.T) {
	raw := draftWithItems()
	raw["extras"] = map[string]any{"distance": map[string]any{"amount": 50}}
	raw["totals"] = map[string]any{"materials": 1000}

	m := Build(raw, Options{})

	// Explicit materials wins, akkord still derives from the final values.
	assert.Equal(t, 1000.0, m.Totals.Materials)
	assert.Equal(t, 50.0, m.Totals.Extras)
	assert.Equal(t, 1050.0, m.Totals.Akkord)
}

func TestBuild_ExplicitAkkordOverrideIsTrusted(t *testing.T) {
	raw := draftWithItems()
	raw["totals"] = map[string]any{"akkord": 999}

	m := Build(raw, Options{})

	// The override wins even though it disagrees with materials+extras, and
	// the breakdown stays derived for audit.
	assert.Equal(t, 999.0, m.Totals.Akkord)
	assert.Equal(t, 130.0, m.Totals.Materials)
	assert.NotEqual(t, m.Totals.Akkord, m.Totals.Materials+m.Totals.Extras)
}

func TestBuild_WageRows(t *testing.T) {
	raw := model.RawDraft{
		"lines": []any{map[string]any{"quantity": 1, "unitPrice": 100}},
		"wage": map[string]any{
			"workers": []any{
				map[string]any{"name": "Jens", "hours": 10, "rate": 50},
				map[string]any{"navn": "Ole", "timer": 5, "sats": 40, "tillaeg": 25},
			},
		},
	}

	m := Build(raw, Options{})

	require.Len(t, m.Wage.Workers, 2)
	assert.Equal(t, 500.0, m.Wage.Workers[0].Total)
	assert.Equal(t, 225.0, m.Wage.Workers[1].Total)
	assert.Equal(t, 15.0, m.Wage.TotalHours)
	assert.Equal(t, 725.0, m.Wage.TotalSum)
	assert.Equal(t, 825.0, m.Totals.Project)
}

func TestBuild_StampsUpdatedAt(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := Build(model.RawDraft{}, Options{ExportedAt: at})
	assert.Equal(t, "2026-03-01T12:00:00Z", m.Meta.UpdatedAt)
}

func TestBuildCharge_DerivesRateAndAmount(t *testing.T) {
	c := buildCharge(map[string]any{"quantity": 4, "amount": 100})
	assert.Equal(t, 25.0, c.Rate)

	c = buildCharge(map[string]any{"quantity": 3, "rate": 10})
	assert.Equal(t, 30.0, c.Amount)
}

func TestCoerceFinite(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"int", 7, 7},
		{"float string", "12.5", 12.5},
		{"comma decimal", "12,50", 12.5},
		{"thousand separator", "1.234,50", 1234.5},
		{"garbage", "n/a", 0},
		{"empty", "", 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"nil", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CoerceFinite(tc.in))
		})
	}
}
