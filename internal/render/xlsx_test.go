package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/ReneLS365/Cssmate-sub002/internal/model"
)

func xlsxModel() model.CanonicalModel {
	return model.CanonicalModel{
		Meta: model.Meta{CaseNumber: "000117", Date: "2026-02-01", System: "bosta"},
		Items: []model.Item{
			{LineNumber: 1, System: "bosta", Name: "Ramme", Quantity: 4, UnitPrice: 25, LineTotal: 100},
			{LineNumber: 2, System: "haki", Name: "Dæk", Quantity: 2, UnitPrice: 15, LineTotal: 30},
		},
	}
}

func openArtifact(t *testing.T, a model.RenderArtifact) *xlsx.File {
	t.Helper()
	f, err := xlsx.OpenReaderAt(bytes.NewReader(a.Data), int64(len(a.Data)))
	require.NoError(t, err)
	return f
}

func TestRenderXLSX_MergedSheetWhenNoSelection(t *testing.T) {
	a, err := RenderXLSX(xlsxModel(), "base", nil)
	require.NoError(t, err)
	assert.Equal(t, "base.xlsx", a.FileName)

	f := openArtifact(t, a)
	require.Len(t, f.Sheets, 1)
	assert.Equal(t, "Materialer", f.Sheets[0].Name)
}

func TestRenderXLSX_OneSheetPerSystem(t *testing.T) {
	a, err := RenderXLSX(xlsxModel(), "base", []string{"bosta", "haki"})
	require.NoError(t, err)

	f := openArtifact(t, a)
	require.Len(t, f.Sheets, 2)
	assert.Equal(t, "bosta", f.Sheets[0].Name)
	assert.Equal(t, "haki", f.Sheets[1].Name)
}

func TestRenderXLSX_IdentifiersStayText(t *testing.T) {
	a, err := RenderXLSX(xlsxModel(), "base", nil)
	require.NoError(t, err)

	f := openArtifact(t, a)
	sheet := f.Sheets[0]

	// Row 0 is "Sagsnummer"; the value cell must reload byte-identical,
	// leading zero included.
	assert.Equal(t, "000117", sheet.Rows[0].Cells[1].String())
	// Row 4 is "Dato"; an ISO date must not become an Excel serial.
	assert.Equal(t, "2026-02-01", sheet.Rows[4].Cells[1].String())
}
