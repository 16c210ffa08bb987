package canon

// Field alias tables. Priority is fixed: the current name first, then each
// historical alias in chronological order; the first non-empty value wins.
// Danish names stem from the oldest drafts, the English short forms from the
// second generation.
var (
	aliasCaseNumber = []string{"caseNumber", "sagsnummer", "caseNo"}
	aliasCaseName   = []string{"caseName", "sagsnavn", "title"}
	aliasCustomer   = []string{"customer", "kunde"}
	aliasAddress    = []string{"address", "adresse"}
	aliasDate       = []string{"date", "dato"}
	aliasSystem     = []string{"system"}
	aliasJobType    = []string{"jobType", "type"}
	aliasJobFactor  = []string{"jobFactor", "faktor"}

	// Item arrays: new-style "lines" first, flat-v2 "items", legacy "materials".
	aliasItemArray = []string{"lines", "items", "materials"}

	aliasLineNumber = []string{"lineNumber", "linje", "line"}
	aliasCategory   = []string{"category", "kategori"}
	aliasItemNumber = []string{"itemNumber", "varenummer", "itemNo"}
	aliasItemName   = []string{"name", "navn", "description"}
	aliasUnit       = []string{"unit", "enhed"}
	aliasQuantity   = []string{"quantity", "qty", "antal"}
	aliasUnitPrice  = []string{"unitPrice", "pris", "enhedspris"}
	aliasLineTotal  = []string{"lineTotal", "total", "sum"}

	aliasExtras    = []string{"extras", "tillaeg"}
	aliasDistance  = []string{"distance", "koersel"}
	aliasSurcharge = []string{"surcharge", "slaeb"}
	aliasLift      = []string{"lift", "tralle"}
	aliasExtraWork = []string{"extraWork", "extraInputs", "ekstraarbejde"}
	aliasRate      = []string{"rate", "sats"}
	aliasAmount    = []string{"amount", "beloeb"}
	aliasChargeQty = []string{"quantity", "antal", "km", "count"}
	aliasDesc      = []string{"description", "beskrivelse", "text"}

	aliasWage       = []string{"wage", "loen"}
	aliasWorkers    = []string{"workers", "montoerer"}
	aliasHours      = []string{"hours", "timer"}
	aliasAllowances = []string{"allowances", "tillaeg"}
	aliasWorkerName = []string{"name", "navn"}

	aliasTotals         = []string{"totals", "totaler"}
	aliasTotalMaterials = []string{"materials", "materialer"}
	aliasTotalExtras    = []string{"extras", "tillaeg"}
	aliasTotalAkkord    = []string{"akkord"}
	aliasTotalProject   = []string{"project", "projekt"}
)
