// Package bundle packages renderer outputs into one ZIP archive. JSON and
// PDF are mandatory: their failure aborts the whole composition. CSV and
// spreadsheet failures are logged and the file is left out.
package bundle

import (
	"archive/zip"
	"bytes"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ReneLS365/Cssmate-sub002/internal/model"
	"github.com/ReneLS365/Cssmate-sub002/internal/render"
	"github.com/ReneLS365/Cssmate-sub002/internal/snapshot"
)

// Options controls one composition.
type Options struct {
	App         model.AppInfo
	ExportedAt  time.Time
	IncludeXLSX bool
	// ExcelSystems selects the spreadsheet sheets; empty means one merged
	// sheet.
	ExcelSystems []string
}

// Result is the composed archive plus the manifest of every path actually
// written, for caller-side verification.
type Result struct {
	Artifact model.RenderArtifact
	Manifest []string
}

// Compose renders every format from the same canonical model and writes the
// folder-structured archive (pdf/, json/, csv/, optionally excel/).
func Compose(m model.CanonicalModel, baseName string, opts Options) (Result, error) {
	exportedAt := opts.ExportedAt
	if exportedAt.IsZero() {
		exportedAt = time.Now()
	}
	stamp := exportedAt.UTC().Format(time.RFC3339)

	snap := snapshot.Wrap(m, baseName, snapshot.Options{
		App:          opts.App,
		ExportedAt:   exportedAt,
		Source:       "bundle",
		ExcelSystems: opts.ExcelSystems,
	})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	var manifest []string

	add := func(folder string, a model.RenderArtifact) error {
		path := folder + "/" + a.FileName
		w, err := zw.Create(path)
		if err != nil {
			return eris.Wrapf(err, "bundle: create %s", path)
		}
		if _, err := w.Write(a.Data); err != nil {
			return eris.Wrapf(err, "bundle: write %s", path)
		}
		manifest = append(manifest, path)
		return nil
	}

	// Mandatory formats first; any failure here aborts.
	pdfArt, err := render.RenderPDF(m, baseName, render.PDFOptions{App: opts.App, ExportedAt: stamp})
	if err != nil {
		return Result{}, err
	}
	if err := add("pdf", pdfArt); err != nil {
		return Result{}, err
	}

	jsonArt, err := render.RenderJSON(snap)
	if err != nil {
		return Result{}, err
	}
	if err := add("json", jsonArt); err != nil {
		return Result{}, err
	}

	// Optional formats: a failure is logged and the entry skipped.
	if csvArt, err := render.RenderCSV(m, baseName, render.CSVOptions{App: opts.App, ExportedAt: stamp}); err != nil {
		zap.L().Warn("bundle: csv renderer failed, skipping",
			zap.String("baseName", baseName),
			zap.Error(err),
		)
	} else if err := add("csv", csvArt); err != nil {
		return Result{}, err
	}

	if opts.IncludeXLSX {
		if xlsxArt, err := render.RenderXLSX(m, baseName, opts.ExcelSystems); err != nil {
			zap.L().Warn("bundle: xlsx renderer failed, skipping",
				zap.String("baseName", baseName),
				zap.Error(err),
			)
		} else if err := add("excel", xlsxArt); err != nil {
			return Result{}, err
		}
	}

	if err := zw.Close(); err != nil {
		return Result{}, eris.Wrap(err, "bundle: close archive")
	}

	return Result{
		Artifact: model.RenderArtifact{
			FileName:    render.FileName(baseName, "zip"),
			ContentType: model.ContentTypeZIP,
			Data:        buf.Bytes(),
		},
		Manifest: manifest,
	}, nil
}
