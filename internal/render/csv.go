package render

import (
	"bytes"
	"encoding/csv"

	"github.com/ReneLS365/Cssmate-sub002/internal/faults"
	"github.com/ReneLS365/Cssmate-sub002/internal/model"
)

// utf8BOM leads every CSV artifact so spreadsheet applications pick up the
// encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVOptions carries provenance written into the #META block.
type CSVOptions struct {
	App        model.AppInfo
	ExportedAt string
}

// RenderCSV emits the semicolon-delimited three-block format: a #META
// key/value block, one MATERIAL row per item, and one EXTRA row per add-on
// charge with a non-zero amount.
func RenderCSV(m model.CanonicalModel, baseName string, opts CSVOptions) (model.RenderArtifact, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	meta := [][2]string{
		{"caseNumber", m.Meta.CaseNumber},
		{"caseName", m.Meta.CaseName},
		{"customer", m.Meta.Customer},
		{"address", m.Meta.Address},
		{"date", m.Meta.Date},
		{"system", m.Meta.System},
		{"jobType", m.Meta.JobType},
		{"jobFactor", Quantity(m.Meta.JobFactor)},
		{"exportedAt", opts.ExportedAt},
		{"app", opts.App.Name + " " + opts.App.Version},
	}
	for _, kv := range meta {
		if err := w.Write([]string{"#META", kv[0], kv[1]}); err != nil {
			return model.RenderArtifact{}, faults.NewRender("csv", err)
		}
	}

	for _, it := range m.Items {
		row := []string{
			"MATERIAL",
			m.Meta.CaseNumber,
			Quantity(float64(it.LineNumber)),
			it.System,
			it.Category,
			it.ItemNumber,
			it.Name,
			it.Unit,
			Quantity(it.Quantity),
			Currency(it.UnitPrice),
			Currency(it.LineTotal),
		}
		if err := w.Write(row); err != nil {
			return model.RenderArtifact{}, faults.NewRender("csv", err)
		}
	}

	extras := []struct {
		kind string
		desc string
		c    model.Charge
	}{
		{"distance", "Kørsel", m.Extras.Distance},
		{"surcharge", "Slæb", m.Extras.Surcharge},
		{"lift", "Tralleløft", m.Extras.Lift},
	}
	for _, e := range extras {
		if e.c.Amount == 0 {
			continue
		}
		if err := writeExtraRow(w, m.Meta.CaseNumber, e.kind, e.desc, e.c.Quantity, e.c.Rate, e.c.Amount); err != nil {
			return model.RenderArtifact{}, err
		}
	}
	for _, ew := range m.Extras.ExtraWork {
		if ew.Amount == 0 {
			continue
		}
		if err := writeExtraRow(w, m.Meta.CaseNumber, "extraWork", ew.Description, ew.Quantity, ew.Rate, ew.Amount); err != nil {
			return model.RenderArtifact{}, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return model.RenderArtifact{}, faults.NewRender("csv", err)
	}

	return model.RenderArtifact{
		FileName:    FileName(baseName, "csv"),
		ContentType: model.ContentTypeCSV,
		Data:        buf.Bytes(),
	}, nil
}

func writeExtraRow(w *csv.Writer, caseNumber, kind, desc string, qty, rate, amount float64) error {
	err := w.Write([]string{
		"EXTRA", caseNumber, kind, desc,
		Quantity(qty), Currency(rate), Currency(amount),
	})
	if err != nil {
		return faults.NewRender("csv", err)
	}
	return nil
}
