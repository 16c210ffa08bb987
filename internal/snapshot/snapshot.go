// Package snapshot wraps a canonical model in the versioned interchange
// envelope and gates consumption on the schema version.
package snapshot

import (
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/ReneLS365/Cssmate-sub002/internal/faults"
	"github.com/ReneLS365/Cssmate-sub002/internal/model"
)

// Options carries provenance for a wrap call.
type Options struct {
	App        model.AppInfo
	ExportedAt time.Time
	JobID      string // generated when empty
	Source     string
	// ExcelSystems is the spreadsheet system selection carried for reload.
	ExcelSystems []string
	TralleState  map[string]any
	Cache        map[string]any
}

// Wrap builds a snapshot around the model. The job mirrors items under the
// legacy "materials" array name and extra work under "extraInputs" so pre-v1
// readers keep working.
func Wrap(m model.CanonicalModel, baseName string, opts Options) model.Snapshot {
	id := opts.JobID
	if id == "" {
		id = uuid.NewString()
	}
	at := opts.ExportedAt
	if at.IsZero() {
		at = time.Now()
	}
	exportedAt := at.UTC().Format(time.RFC3339)

	source := opts.Source
	if source == "" {
		source = "export"
	}

	return model.Snapshot{
		SchemaVersion: model.SchemaVersion,
		ExportedAt:    exportedAt,
		App:           opts.App,
		BaseName:      baseName,
		Job: model.Job{
			ID:           id,
			JobType:      m.Meta.JobType,
			Version:      1,
			Source:       source,
			ExportedAt:   exportedAt,
			Meta:         m.Meta,
			Systems:      m.Systems(),
			Materials:    m.Items,
			Items:        m.Items,
			Extras:       m.Extras,
			ExtraInputs:  m.Extras.ExtraWork,
			Totals:       m.Totals,
			Wage:         m.Wage,
			JobFactor:    m.Meta.JobFactor,
			ExcelSystems: opts.ExcelSystems,
			TralleState:  opts.TralleState,
			Cache:        opts.Cache,
		},
	}
}

// Encode serializes a snapshot as indented interchange JSON.
func Encode(s model.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "snapshot: encode")
	}
	return data, nil
}

// Decode parses interchange JSON and verifies it before trusting its
// structure. A schema-version mismatch is a FormatError and consumption stops
// there; no partial recovery is attempted.
func Decode(data []byte) (model.Snapshot, error) {
	// The version gate runs on a minimal probe so a mismatched payload is
	// never unmarshalled into incompatible field shapes.
	var probe struct {
		SchemaVersion string `json:"schemaVersion"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return model.Snapshot{}, eris.Wrap(err, "snapshot: parse")
	}
	if probe.SchemaVersion != model.SchemaVersion {
		return model.Snapshot{}, faults.NewFormat(probe.SchemaVersion, model.SchemaVersion)
	}

	var s model.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Snapshot{}, eris.Wrap(err, "snapshot: parse")
	}
	if err := Verify(s); err != nil {
		return model.Snapshot{}, err
	}
	return s, nil
}

// Verify checks the structural requirements of an already-parsed snapshot:
// the schema gate plus required identity fields.
func Verify(s model.Snapshot) error {
	if s.SchemaVersion != model.SchemaVersion {
		return faults.NewFormat(s.SchemaVersion, model.SchemaVersion)
	}
	err := validation.ValidateStruct(&s,
		validation.Field(&s.BaseName, validation.Required),
		validation.Field(&s.ExportedAt, validation.Required),
	)
	if err != nil {
		return eris.Wrap(err, "snapshot: verify")
	}
	if s.Job.ID == "" {
		return faults.NewValidation("job.id", "missing job id")
	}
	return nil
}
