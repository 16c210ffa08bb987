package canon

import "github.com/ReneLS365/Cssmate-sub002/internal/model"

// buildTotals applies the override-or-derive policy independently per field:
// an explicit non-zero value from the draft's totals block wins, anything
// else derives by summation. An explicit akkord is trusted even when it
// disagrees with materials+extras; the breakdown is kept for audit, never
// recomputed to match.
func buildTotals(raw model.RawDraft, items []model.Item, extras model.Extras, wage model.Wage) model.Totals {
	tt := sub(raw, aliasTotals...)

	breakdown := model.ExtrasBreakdown{
		Distance:  extras.Distance.Amount,
		Surcharge: extras.Surcharge.Amount,
		Lift:      extras.Lift.Amount,
	}
	for _, w := range extras.ExtraWork {
		breakdown.ExtraWork += w.Amount
	}

	totals := model.Totals{Breakdown: breakdown}

	totals.Materials = overrideOrDerive(tt, aliasTotalMaterials, sumLineTotals(items))
	totals.Extras = overrideOrDerive(tt, aliasTotalExtras,
		breakdown.Distance+breakdown.Surcharge+breakdown.Lift+breakdown.ExtraWork)
	totals.Akkord = overrideOrDerive(tt, aliasTotalAkkord, totals.Materials+totals.Extras)
	totals.Project = overrideOrDerive(tt, aliasTotalProject, totals.Akkord+wage.TotalSum)

	return totals
}

func overrideOrDerive(tt map[string]any, aliases []string, derived float64) float64 {
	if explicit := num(tt, aliases...); explicit != 0 {
		return explicit
	}
	return derived
}
