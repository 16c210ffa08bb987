package main

import (
	"bytes"
	"os"

	"github.com/rotisserie/eris"

	"github.com/ReneLS365/Cssmate-sub002/internal/bundle"
	"github.com/ReneLS365/Cssmate-sub002/internal/model"
	"github.com/ReneLS365/Cssmate-sub002/internal/reconcile"
)

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// loadDraft reads any supported payload from disk and reconciles it into a
// draft. A previously exported bundle is accepted directly: its snapshot
// entry is pulled out first.
func loadDraft(path string) (model.RawDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read %s", path)
	}

	if bytes.HasPrefix(data, zipMagic) {
		data, err = bundle.ExtractSnapshot(data)
		if err != nil {
			return nil, err
		}
	}

	return reconcile.ReconcileJSON(data)
}
