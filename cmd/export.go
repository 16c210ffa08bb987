package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ReneLS365/Cssmate-sub002/internal/canon"
	"github.com/ReneLS365/Cssmate-sub002/internal/model"
	"github.com/ReneLS365/Cssmate-sub002/internal/render"
	"github.com/ReneLS365/Cssmate-sub002/internal/snapshot"
)

var (
	exportFormats []string
	exportOut     string
	exportSystems []string
)

var exportCmd = &cobra.Command{
	Use:   "export <draft.json>...",
	Short: "Export drafts as PDF/CSV/XLSX/JSON artifacts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir := exportOut
		if outDir == "" {
			outDir = cfg.Export.OutputDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return eris.Wrap(err, "create output dir")
		}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(cfg.Export.Concurrency)

		for _, path := range args {
			path := path
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return exportOne(path, outDir)
			})
		}
		return g.Wait()
	},
}

func exportOne(path, outDir string) error {
	draft, err := loadDraft(path)
	if err != nil {
		return err
	}

	now := time.Now()
	m := canon.Build(draft, canon.Options{ExportedAt: now})
	baseName := render.BaseName(m.Meta.CaseNumber, m.Meta.Date)
	stamp := now.UTC().Format(time.RFC3339)
	app := model.AppInfo{Name: cfg.App.Name, Version: cfg.App.Version}

	systems := exportSystems
	if len(systems) == 0 {
		systems = cfg.Export.Systems
	}

	var artifacts []model.RenderArtifact
	for _, format := range exportFormats {
		var a model.RenderArtifact
		switch strings.ToLower(format) {
		case "pdf":
			a, err = render.RenderPDF(m, baseName, render.PDFOptions{App: app, ExportedAt: stamp})
		case "csv":
			a, err = render.RenderCSV(m, baseName, render.CSVOptions{App: app, ExportedAt: stamp})
		case "xlsx":
			a, err = render.RenderXLSX(m, baseName, systems)
		case "json":
			snap := snapshot.Wrap(m, baseName, snapshot.Options{
				App:          app,
				ExportedAt:   now,
				ExcelSystems: systems,
			})
			a, err = render.RenderJSON(snap)
		default:
			return eris.Errorf("unknown format %q", format)
		}
		if err != nil {
			return err
		}
		artifacts = append(artifacts, a)
	}

	for _, a := range artifacts {
		target := filepath.Join(outDir, a.FileName)
		if err := os.WriteFile(target, a.Data, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", target)
		}
		zap.L().Info("artifact written",
			zap.String("draft", path),
			zap.String("file", target),
			zap.Int("bytes", len(a.Data)),
		)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringSliceVar(&exportFormats, "formats", []string{"pdf", "csv", "xlsx", "json"}, "formats to produce")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output directory (default from config)")
	exportCmd.Flags().StringSliceVar(&exportSystems, "systems", nil, "spreadsheet system selection (one sheet per system)")
	rootCmd.AddCommand(exportCmd)
}
