package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ReneLS365/Cssmate-sub002/internal/canon"
)

var importOutPath string

var importCmd = &cobra.Command{
	Use:   "import <payload>",
	Short: "Reconcile an exported payload (JSON or ZIP bundle) into a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := loadDraft(args[0])
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(draft, "", "  ")
		if err != nil {
			return eris.Wrap(err, "encode draft")
		}

		if importOutPath == "" {
			cmd.Println(string(data))
		} else if err := os.WriteFile(importOutPath, data, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", importOutPath)
		}

		m := canon.Build(draft, canon.Options{})
		zap.L().Info("import complete",
			zap.String("payload", args[0]),
			zap.String("caseNumber", m.Meta.CaseNumber),
			zap.Int("items", len(m.Items)),
			zap.Float64("materials", m.Totals.Materials),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importOutPath, "out", "", "draft output path (stdout when empty)")
	rootCmd.AddCommand(importCmd)
}
