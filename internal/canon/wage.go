package canon

import "github.com/ReneLS365/Cssmate-sub002/internal/model"

// buildWage normalizes the worker rows. Workers live under wage.workers in
// current drafts or as a top-level array in older ones.
func buildWage(raw model.RawDraft) model.Wage {
	wg := sub(raw, aliasWage...)

	rows := list(wg, aliasWorkers...)
	if rows == nil {
		rows = list(raw, aliasWorkers...)
	}

	var wage model.Wage
	for _, v := range rows {
		w := entry(v)
		if w == nil {
			continue
		}
		hours := num(w, aliasHours...)
		rate := num(w, aliasRate...)
		allowances := num(w, aliasAllowances...)

		total := hours*rate + allowances
		if v, ok := lookup(w, aliasLineTotal...); ok {
			total = CoerceFinite(v)
		}

		name := str(w, aliasWorkerName...)
		if name == "" && hours == 0 && total == 0 {
			continue
		}
		wage.Workers = append(wage.Workers, model.Worker{
			Name:       name,
			Hours:      hours,
			Rate:       rate,
			Total:      total,
			Allowances: allowances,
		})
	}

	for _, w := range wage.Workers {
		wage.TotalHours += w.Hours
		wage.TotalSum += w.Total
	}
	return wage
}
