package render

import (
	"github.com/ReneLS365/Cssmate-sub002/internal/faults"
	"github.com/ReneLS365/Cssmate-sub002/internal/model"
	"github.com/ReneLS365/Cssmate-sub002/internal/snapshot"
)

// RenderJSON emits the interchange snapshot as a JSON artifact. This is a
// mandatory format: its failure aborts any bundle.
func RenderJSON(s model.Snapshot) (model.RenderArtifact, error) {
	data, err := snapshot.Encode(s)
	if err != nil {
		return model.RenderArtifact{}, faults.NewRender("json", err)
	}
	return model.RenderArtifact{
		FileName:    FileName(s.BaseName, "json"),
		ContentType: model.ContentTypeJSON,
		Data:        data,
	}, nil
}
