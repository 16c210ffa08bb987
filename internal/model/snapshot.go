package model

// SchemaVersion is the single recognized interchange schema tag. A consumer
// must reject any snapshot carrying a different value.
const SchemaVersion = "cssmate.job.v1"

// AppInfo records which application produced a snapshot.
type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Job is the canonical model superset carried inside a snapshot: identity,
// the excel-system selection, legacy field mirrors kept for older readers,
// and a transient cache block that is passed through untouched.
type Job struct {
	ID         string         `json:"id"`
	JobType    string         `json:"jobType"`
	Version    int            `json:"version"`
	Source     string         `json:"source"`
	ExportedAt string         `json:"exportedAt"`
	Meta       Meta           `json:"meta"`
	Info       map[string]any `json:"info,omitempty"`
	Systems    []string       `json:"systems"`
	// Materials mirrors Items under the legacy array name so pre-v1 readers
	// keep working.
	Materials    []Item         `json:"materials"`
	Items        []Item         `json:"items"`
	Extras       Extras         `json:"extras"`
	ExtraInputs  []ExtraWork    `json:"extraInputs"`
	Totals       Totals         `json:"totals"`
	Wage         Wage           `json:"wage"`
	JobFactor    float64        `json:"jobFactor"`
	ExcelSystems []string       `json:"excelSystems"`
	TralleState  map[string]any `json:"tralleState,omitempty"`
	Cache        map[string]any `json:"cache,omitempty"`
}

// Snapshot is the versioned interchange wrapper around a Job.
type Snapshot struct {
	SchemaVersion string  `json:"schemaVersion"`
	ExportedAt    string  `json:"exportedAt"`
	App           AppInfo `json:"app"`
	BaseName      string  `json:"baseName"`
	Job           Job     `json:"job"`
}

// Model extracts the canonical model embedded in the job.
func (j *Job) Model() CanonicalModel {
	return CanonicalModel{
		Meta:   j.Meta,
		Items:  j.Items,
		Extras: j.Extras,
		Wage:   j.Wage,
		Totals: j.Totals,
	}
}
