package render

import (
	"bytes"

	"github.com/tealeg/xlsx/v2"

	"github.com/ReneLS365/Cssmate-sub002/internal/faults"
	"github.com/ReneLS365/Cssmate-sub002/internal/model"
)

// RenderXLSX emits one sheet per requested system, or a single merged sheet
// when no selection is given. Case number and date are written as explicit
// text cells: they must come back byte-identical on reload, so numeric
// auto-coercion has to be prevented.
func RenderXLSX(m model.CanonicalModel, baseName string, systems []string) (model.RenderArtifact, error) {
	eng, err := Load()
	if err != nil {
		return model.RenderArtifact{}, faults.NewRender("xlsx", err)
	}

	file := xlsx.NewFile()

	if len(systems) == 0 {
		if err := addSystemSheet(file, eng, m, "Materialer", m.Items); err != nil {
			return model.RenderArtifact{}, err
		}
	} else {
		for _, sys := range systems {
			if err := addSystemSheet(file, eng, m, sheetName(sys), m.ItemsForSystem(sys)); err != nil {
				return model.RenderArtifact{}, err
			}
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return model.RenderArtifact{}, faults.NewRender("xlsx", err)
	}
	return model.RenderArtifact{
		FileName:    FileName(baseName, "xlsx"),
		ContentType: model.ContentTypeXLSX,
		Data:        buf.Bytes(),
	}, nil
}

func addSystemSheet(file *xlsx.File, eng *Engines, m model.CanonicalModel, name string, items []model.Item) error {
	sheet, err := file.AddSheet(name)
	if err != nil {
		return faults.NewRender("xlsx", err)
	}

	metaRows := [][2]string{
		{"Sagsnummer", m.Meta.CaseNumber},
		{"Sagsnavn", m.Meta.CaseName},
		{"Kunde", m.Meta.Customer},
		{"Adresse", m.Meta.Address},
		{"Dato", m.Meta.Date},
		{"Type", m.Meta.JobType},
	}
	for _, kv := range metaRows {
		row := sheet.AddRow()
		label := row.AddCell()
		label.SetString(kv[0])
		label.SetStyle(eng.HeaderStyle)
		value := row.AddCell()
		// SetString keeps identifier-like values (case numbers, ISO dates)
		// out of Excel's numeric coercion.
		value.SetString(kv[1])
		value.SetStyle(eng.TextStyle)
	}

	sheet.AddRow() // spacer

	header := sheet.AddRow()
	for _, h := range []string{"Linje", "System", "Kategori", "Varenummer", "Navn", "Enhed", "Antal", "Enhedspris", "Sum"} {
		c := header.AddCell()
		c.SetString(h)
		c.SetStyle(eng.HeaderStyle)
	}

	var total float64
	for _, it := range items {
		row := sheet.AddRow()
		row.AddCell().SetInt(it.LineNumber)
		row.AddCell().SetString(it.System)
		row.AddCell().SetString(it.Category)
		row.AddCell().SetString(it.ItemNumber)
		row.AddCell().SetString(it.Name)
		row.AddCell().SetString(it.Unit)
		row.AddCell().SetFloat(it.Quantity)
		price := row.AddCell()
		price.SetFloatWithFormat(it.UnitPrice, "#,##0.00")
		price.SetStyle(eng.CurrencyStyle)
		sum := row.AddCell()
		sum.SetFloatWithFormat(it.LineTotal, "#,##0.00")
		sum.SetStyle(eng.CurrencyStyle)
		total += it.LineTotal
	}

	foot := sheet.AddRow()
	for i := 0; i < 7; i++ {
		foot.AddCell()
	}
	label := foot.AddCell()
	label.SetString("I alt")
	label.SetStyle(eng.HeaderStyle)
	sumCell := foot.AddCell()
	sumCell.SetFloatWithFormat(total, "#,##0.00")
	sumCell.SetStyle(eng.HeaderStyle)

	return nil
}

// sheetName clamps a system name to Excel's 31-character sheet limit.
func sheetName(sys string) string {
	if sys == "" {
		return "Materialer"
	}
	if len(sys) > 31 {
		return sys[:31]
	}
	return sys
}
