package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ReneLS365/Cssmate-sub002/internal/bundle"
	"github.com/ReneLS365/Cssmate-sub002/internal/canon"
	"github.com/ReneLS365/Cssmate-sub002/internal/model"
	"github.com/ReneLS365/Cssmate-sub002/internal/render"
)

var (
	bundleOut     string
	bundleNoXLSX  bool
	bundleSystems []string
)

var bundleCmd = &cobra.Command{
	Use:   "bundle <draft.json>...",
	Short: "Export drafts as a single ZIP bundle per draft",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir := bundleOut
		if outDir == "" {
			outDir = cfg.Export.OutputDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return eris.Wrap(err, "create output dir")
		}

		for _, path := range args {
			draft, err := loadDraft(path)
			if err != nil {
				return err
			}

			now := time.Now()
			m := canon.Build(draft, canon.Options{ExportedAt: now})
			baseName := render.BaseName(m.Meta.CaseNumber, m.Meta.Date)

			systems := bundleSystems
			if len(systems) == 0 {
				systems = cfg.Export.Systems
			}

			res, err := bundle.Compose(m, baseName, bundle.Options{
				App:          model.AppInfo{Name: cfg.App.Name, Version: cfg.App.Version},
				ExportedAt:   now,
				IncludeXLSX:  !bundleNoXLSX && cfg.Export.IncludeSpreadsheet,
				ExcelSystems: systems,
			})
			if err != nil {
				return err
			}

			target := filepath.Join(outDir, res.Artifact.FileName)
			if err := os.WriteFile(target, res.Artifact.Data, 0o644); err != nil {
				return eris.Wrapf(err, "write %s", target)
			}
			zap.L().Info("bundle written",
				zap.String("draft", path),
				zap.String("file", target),
				zap.Strings("manifest", res.Manifest),
			)
		}
		return nil
	},
}

func init() {
	bundleCmd.Flags().StringVar(&bundleOut, "out", "", "output directory (default from config)")
	bundleCmd.Flags().BoolVar(&bundleNoXLSX, "no-xlsx", false, "leave the spreadsheet out of the bundle")
	bundleCmd.Flags().StringSliceVar(&bundleSystems, "systems", nil, "spreadsheet system selection")
	rootCmd.AddCommand(bundleCmd)
}
