// Package canon normalizes an arbitrarily-shaped raw draft into the one
// canonical model the renderers consume. Building is a pure function: missing
// optional fields degrade to zero values, nothing is ever raised.
package canon

import (
	"time"

	"github.com/ReneLS365/Cssmate-sub002/internal/model"
)

// Options tunes a single build call.
type Options struct {
	// ExportedAt stamps meta.updatedAt when the draft carries no timestamp.
	ExportedAt time.Time
}

// Build normalizes a raw draft into a canonical model. Items resolve from
// whichever historical array name is present, zero-quantity entries are
// dropped, and every total follows the override-or-derive policy
// independently per field.
func Build(raw model.RawDraft, opts Options) model.CanonicalModel {
	m := model.CanonicalModel{
		Meta:  buildMeta(raw, opts),
		Items: buildItems(raw),
	}
	m.Extras = buildExtras(raw, sumLineTotals(m.Items))
	m.Wage = buildWage(raw)
	m.Totals = buildTotals(raw, m.Items, m.Extras, m.Wage)
	return m
}

func buildMeta(raw model.RawDraft, opts Options) model.Meta {
	// Meta fields live either under a nested "meta" block (current shape) or
	// at the top level (older drafts); the nested block wins per field.
	mm := sub(raw, "meta")
	pick := func(aliases []string) string {
		if s := str(mm, aliases...); s != "" {
			return s
		}
		return str(raw, aliases...)
	}
	pickNum := func(aliases []string) float64 {
		if _, ok := lookup(mm, aliases...); ok {
			return num(mm, aliases...)
		}
		return num(raw, aliases...)
	}

	meta := model.Meta{
		CaseNumber: pick(aliasCaseNumber),
		CaseName:   pick(aliasCaseName),
		Customer:   pick(aliasCustomer),
		Address:    pick(aliasAddress),
		Date:       pick(aliasDate),
		System:     pick(aliasSystem),
		JobType:    pick(aliasJobType),
		JobFactor:  pickNum(aliasJobFactor),
		CreatedAt:  pick([]string{"createdAt"}),
		UpdatedAt:  pick([]string{"updatedAt"}),
	}
	if meta.UpdatedAt == "" && !opts.ExportedAt.IsZero() {
		meta.UpdatedAt = opts.ExportedAt.UTC().Format(time.RFC3339)
	}
	return meta
}

func buildItems(raw model.RawDraft) []model.Item {
	var items []model.Item
	for i, v := range list(raw, aliasItemArray...) {
		it := entry(v)
		if it == nil {
			continue
		}
		qty := num(it, aliasQuantity...)
		if qty == 0 {
			continue
		}
		price := num(it, aliasUnitPrice...)

		total := qty * price
		if v, ok := lookup(it, aliasLineTotal...); ok {
			total = CoerceFinite(v)
		}

		lineNo := int(num(it, aliasLineNumber...))
		if lineNo == 0 {
			lineNo = i + 1
		}

		items = append(items, model.Item{
			LineNumber: lineNo,
			System:     str(it, aliasSystem...),
			Category:   str(it, aliasCategory...),
			ItemNumber: str(it, aliasItemNumber...),
			Name:       str(it, aliasItemName...),
			Unit:       str(it, aliasUnit...),
			Quantity:   qty,
			UnitPrice:  price,
			LineTotal:  total,
		})
	}
	return items
}

func sumLineTotals(items []model.Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.LineTotal
	}
	return sum
}
