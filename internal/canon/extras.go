package canon

import "github.com/ReneLS365/Cssmate-sub002/internal/model"

// buildExtras normalizes the add-on charges. materialsSum is needed because a
// slæb surcharge given only as a percentage derives its amount from the
// materials total.
func buildExtras(raw model.RawDraft, materialsSum float64) model.Extras {
	ex := sub(raw, aliasExtras...)

	extras := model.Extras{
		Distance: buildCharge(sub(ex, aliasDistance...)),
		Lift:     buildCharge(sub(ex, aliasLift...)),
	}

	// Surcharge: quantity is the percentage. An absent amount derives from
	// the materials total, not from quantity*rate.
	sc := sub(ex, aliasSurcharge...)
	pct := num(sc, aliasChargeQty...)
	if pct == 0 {
		pct = num(sc, "percent", "procent")
	}
	amount := num(sc, aliasAmount...)
	if amount == 0 && pct != 0 {
		amount = materialsSum * pct / 100
	}
	extras.Surcharge = model.Charge{Quantity: pct, Rate: num(sc, aliasRate...), Amount: amount}

	for _, v := range list(ex, aliasExtraWork...) {
		w := entry(v)
		if w == nil {
			continue
		}
		c := buildCharge(w)
		if c.Amount == 0 && str(w, aliasDesc...) == "" {
			continue
		}
		extras.ExtraWork = append(extras.ExtraWork, model.ExtraWork{
			Description: str(w, aliasDesc...),
			Quantity:    c.Quantity,
			Rate:        c.Rate,
			Amount:      c.Amount,
		})
	}

	// Legacy drafts kept the extra-work list at the top level.
	if ex == nil {
		for _, v := range list(raw, aliasExtraWork...) {
			w := entry(v)
			if w == nil {
				continue
			}
			c := buildCharge(w)
			extras.ExtraWork = append(extras.ExtraWork, model.ExtraWork{
				Description: str(w, aliasDesc...),
				Quantity:    c.Quantity,
				Rate:        c.Rate,
				Amount:      c.Amount,
			})
		}
	}

	return extras
}

// buildCharge normalizes one quantity/rate/amount triple. The rate derives
// from amount/quantity when only those are known; the amount derives from
// quantity*rate when it is the missing one.
func buildCharge(c map[string]any) model.Charge {
	if c == nil {
		return model.Charge{}
	}
	qty := num(c, aliasChargeQty...)
	rate := num(c, aliasRate...)
	amount := num(c, aliasAmount...)

	if amount == 0 && qty != 0 && rate != 0 {
		amount = qty * rate
	}
	if rate == 0 && qty != 0 && amount != 0 {
		rate = amount / qty
	}
	return model.Charge{Quantity: qty, Rate: rate, Amount: amount}
}
