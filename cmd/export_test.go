package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReneLS365/Cssmate-sub002/internal/config"
)

func writeDraft(t *testing.T, v map[string]any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "draft.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func testDraft() map[string]any {
	return map[string]any{
		"meta": map[string]any{"caseNumber": "2024-117", "date": "2026-02-01"},
		"lines": []any{
			map[string]any{"name": "Ramme 200", "quantity": 4, "unitPrice": 25},
		},
	}
}

func withTestConfig(t *testing.T) {
	t.Helper()
	old := cfg
	cfg = &config.Config{
		App:    config.AppConfig{Name: "cssmate", Version: "test"},
		Export: config.ExportConfig{OutputDir: ".", IncludeSpreadsheet: true, Concurrency: 2},
	}
	t.Cleanup(func() { cfg = old })
}

func TestExportOne_WritesAllFormats(t *testing.T) {
	withTestConfig(t)
	exportFormats = []string{"pdf", "csv", "xlsx", "json"}

	draft := writeDraft(t, testDraft())
	outDir := t.TempDir()

	require.NoError(t, exportOne(draft, outDir))

	for _, name := range []string{
		"2024_117_2026_02_01.pdf",
		"2024_117_2026_02_01.csv",
		"2024_117_2026_02_01.xlsx",
		"2024_117_2026_02_01.json",
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestExportOne_UnknownFormat(t *testing.T) {
	withTestConfig(t)
	exportFormats = []string{"docx"}
	t.Cleanup(func() { exportFormats = []string{"pdf", "csv", "xlsx", "json"} })

	draft := writeDraft(t, testDraft())
	err := exportOne(draft, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docx")
}

func TestLoadDraft_RejectsItemlessPayload(t *testing.T) {
	path := writeDraft(t, map[string]any{"meta": map[string]any{"caseNumber": "S-1"}})
	_, err := loadDraft(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recognizable line items")
}

func TestLoadDraft_MissingFile(t *testing.T) {
	_, err := loadDraft(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
