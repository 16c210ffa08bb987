package reconcile

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cast"

	"github.com/ReneLS365/Cssmate-sub002/internal/faults"
	"github.com/ReneLS365/Cssmate-sub002/internal/model"
)

// ReconcileJSON parses an interchange payload and reconciles it into a draft.
func ReconcileJSON(data []byte) (model.RawDraft, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, eris.Wrap(err, "reconcile: parse payload")
	}
	return Reconcile(payload)
}

// Reconcile maps a payload of any supported generation into a draft the
// canonical builder understands. Missing categories (extras, wage, totals)
// default to empty; only the complete absence of line items is an error.
func Reconcile(payload map[string]any) (model.RawDraft, error) {
	var draft model.RawDraft

	switch shape := DetectShape(payload); shape {
	case ShapeSnapshot:
		var err error
		draft, err = fromSnapshot(payload)
		if err != nil {
			return nil, err
		}
	case ShapeFlatV2:
		draft = fromFlatV2(payload)
	case ShapeItemsOnly:
		draft = fromItemsOnly(payload)
	case ShapeLegacyV1:
		draft = fromLegacyV1(payload)
	default:
		return nil, faults.NewValidation("items", "no recognizable line items")
	}

	if asList(draft["lines"]) == nil {
		return nil, faults.NewValidation("items", "no recognizable line items")
	}
	return draft, nil
}

// fromSnapshot unwraps the current interchange format. The schema gate runs
// before anything else is trusted: a job wrapper with the wrong tag is a
// format error, not a best-effort import.
func fromSnapshot(payload map[string]any) (model.RawDraft, error) {
	version := cast.ToString(payload["schemaVersion"])
	if version != model.SchemaVersion {
		return nil, faults.NewFormat(version, model.SchemaVersion)
	}
	job := asMap(payload["job"])

	items := asList(job["items"])
	if items == nil {
		items = asList(job["materials"])
	}

	draft := model.RawDraft{
		"meta":  asMap(job["meta"]),
		"lines": items,
	}
	copyPresent(draft, job,
		"id", "jobType", "jobFactor", "extras", "wage", "totals",
		"excelSystems", "tralleState", "cache",
	)
	if _, ok := draft["extras"]; !ok {
		if inputs := asList(job["extraInputs"]); inputs != nil {
			draft["extras"] = map[string]any{"extraWork": inputs}
		}
	}
	return draft, nil
}

// fromFlatV2 passes the second generation through nearly unchanged; only the
// array name moves to the current one.
func fromFlatV2(payload map[string]any) model.RawDraft {
	items := asList(payload["lines"])
	if items == nil {
		items = asList(payload["items"])
	}

	draft := model.RawDraft{
		"meta":  asMap(payload["meta"]),
		"lines": items,
	}
	copyPresent(draft, payload, "id", "jobType", "jobFactor", "extras", "wage", "totals", "workers")
	return draft
}

// fromItemsOnly keeps whatever partial meta exists and defaults the rest.
func fromItemsOnly(payload map[string]any) model.RawDraft {
	items := asList(payload["items"])
	if items == nil {
		items = asList(payload["lines"])
	}
	if items == nil {
		items = asList(payload["materials"])
	}

	meta := asMap(payload["meta"])
	if meta == nil {
		meta = map[string]any{}
		for _, k := range []string{"caseNumber", "sagsnummer", "caseName", "customer", "date"} {
			if v, ok := payload[k]; ok {
				meta[k] = v
			}
		}
	}

	draft := model.RawDraft{"meta": meta, "lines": items}
	copyPresent(draft, payload, "extras", "wage", "totals", "workers", "jobFactor")
	return draft
}

// fromLegacyV1 rebuilds meta from the v1 info list of label/value pairs and
// renames the materials array.
func fromLegacyV1(payload map[string]any) model.RawDraft {
	meta := map[string]any{}
	for _, v := range asList(payload["info"]) {
		pair := asMap(v)
		if pair == nil {
			continue
		}
		key := cast.ToString(pair["key"])
		if key == "" {
			key = cast.ToString(pair["label"])
		}
		if key == "" {
			continue
		}
		meta[key] = pair["value"]
	}
	if t := cast.ToString(payload["type"]); t != "" && meta["jobType"] == nil {
		meta["jobType"] = t
	}

	draft := model.RawDraft{
		"meta":  meta,
		"lines": asList(payload["materials"]),
	}
	copyPresent(draft, payload, "extras", "wage", "totals", "workers", "montoerer", "jobFactor", "faktor")
	return draft
}

func copyPresent(dst model.RawDraft, src map[string]any, keys ...string) {
	for _, k := range keys {
		if v, ok := src[k]; ok && v != nil {
			dst[k] = v
		}
	}
}
