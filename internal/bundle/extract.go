package bundle

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ReneLS365/Cssmate-sub002/internal/faults"
)

// maxSnapshotBytes caps how much of a bundled snapshot is read back in. An
// interchange file is a few hundred KB at most; anything bigger is not ours.
const maxSnapshotBytes = 16 << 20

// ExtractSnapshot pulls the interchange JSON back out of a previously
// exported bundle. The json/ folder is searched first, then any .json entry
// anywhere in the archive.
func ExtractSnapshot(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, eris.Wrap(err, "bundle: open archive")
	}

	pick := findEntry(r, func(name string) bool {
		return strings.HasPrefix(name, "json/") && strings.HasSuffix(name, ".json")
	})
	if pick == nil {
		pick = findEntry(r, func(name string) bool {
			return strings.HasSuffix(name, ".json")
		})
	}
	if pick == nil {
		return nil, faults.NewValidation("archive", "no snapshot json entry found")
	}

	rc, err := pick.Open()
	if err != nil {
		return nil, eris.Wrapf(err, "bundle: open entry %s", pick.Name)
	}
	defer rc.Close() //nolint:errcheck

	payload, err := io.ReadAll(io.LimitReader(rc, maxSnapshotBytes))
	if err != nil {
		return nil, eris.Wrapf(err, "bundle: read entry %s", pick.Name)
	}
	return payload, nil
}

func findEntry(r *zip.Reader, match func(string) bool) *zip.File {
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if match(f.Name) {
			return f
		}
	}
	return nil
}
