// Package model holds the data shapes flowing through the export/import
// pipeline: the untrusted RawDraft, the canonical in-memory model every
// renderer reads, the versioned interchange snapshot, and render artifacts.
package model

// RawDraft is the untyped, heterogeneous input supplied by the external
// collaborator. Field names may be any of several historical aliases; nothing
// about its shape is trusted.
type RawDraft = map[string]any

// Meta is the case identity block of the canonical model.
type Meta struct {
	CaseNumber string  `json:"caseNumber"`
	CaseName   string  `json:"caseName"`
	Customer   string  `json:"customer"`
	Address    string  `json:"address"`
	Date       string  `json:"date"`
	System     string  `json:"system"`
	JobType    string  `json:"jobType"`
	JobFactor  float64 `json:"jobFactor"`
	CreatedAt  string  `json:"createdAt,omitempty"`
	UpdatedAt  string  `json:"updatedAt,omitempty"`
}

// Item is one normalized material line. LineTotal equals Quantity*UnitPrice
// unless an explicit, numerically consistent total was supplied.
type Item struct {
	LineNumber int     `json:"lineNumber"`
	System     string  `json:"system"`
	Category   string  `json:"category"`
	ItemNumber string  `json:"itemNumber"`
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	LineTotal  float64 `json:"lineTotal"`
}

// Charge is a structured add-on charge (distance, slæb surcharge, tralle
// lift). Rate is derived as Amount/Quantity when only those two are known.
type Charge struct {
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// ExtraWork is one free-form extra-work entry.
type ExtraWork struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Extras groups all add-on charges of a job.
type Extras struct {
	Distance  Charge      `json:"distance"`
	Surcharge Charge      `json:"surcharge"`
	Lift      Charge      `json:"lift"`
	ExtraWork []ExtraWork `json:"extraWork"`
}

// Worker is one wage-table row.
type Worker struct {
	Name       string  `json:"name"`
	Hours      float64 `json:"hours"`
	Rate       float64 `json:"rate"`
	Total      float64 `json:"total"`
	Allowances float64 `json:"allowances"`
}

// Wage holds the worker rows plus aggregate totals.
type Wage struct {
	Workers    []Worker `json:"workers"`
	TotalHours float64  `json:"totalHours"`
	TotalSum   float64  `json:"totalSum"`
}

// ExtrasBreakdown itemizes the extras total for auditability. When an
// explicit akkord override is present the breakdown is retained, not
// recomputed.
type ExtrasBreakdown struct {
	Distance  float64 `json:"distance"`
	Surcharge float64 `json:"surcharge"`
	Lift      float64 `json:"lift"`
	ExtraWork float64 `json:"extraWork"`
}

// Totals holds the derived or overridden job totals. Akkord equals
// Materials+Extras unless a non-zero explicit override was supplied.
type Totals struct {
	Materials float64         `json:"materials"`
	Extras    float64         `json:"extras"`
	Akkord    float64         `json:"akkord"`
	Project   float64         `json:"project"`
	Breakdown ExtrasBreakdown `json:"extrasBreakdown"`
}

// CanonicalModel is the single source of truth all renderers consume. It is
// rebuilt from scratch on every export and never mutated in place.
type CanonicalModel struct {
	Meta   Meta   `json:"meta"`
	Items  []Item `json:"items"`
	Extras Extras `json:"extras"`
	Wage   Wage   `json:"wage"`
	Totals Totals `json:"totals"`
}

// Systems returns the distinct item systems in first-seen order. Items with
// an empty system fall under the model-level system, or "" when that is also
// unset.
func (m *CanonicalModel) Systems() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range m.Items {
		sys := it.System
		if sys == "" {
			sys = m.Meta.System
		}
		if !seen[sys] {
			seen[sys] = true
			out = append(out, sys)
		}
	}
	return out
}

// ItemsForSystem returns the items belonging to the given system, falling
// back to the model-level system for items without one.
func (m *CanonicalModel) ItemsForSystem(system string) []Item {
	var out []Item
	for _, it := range m.Items {
		sys := it.System
		if sys == "" {
			sys = m.Meta.System
		}
		if sys == system {
			out = append(out, it)
		}
	}
	return out
}
