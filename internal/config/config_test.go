package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzlogistics/shiplist/internal/manifest"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "{name}.xlsx", cfg.OutputNaming)
	assert.Equal(t, int32(2), cfg.RoundingDigits)
	assert.Equal(t, 1, cfg.ManifestHeaderRow)
	assert.True(t, cfg.WriteSummary)
	assert.False(t, cfg.WriteFOBWorkbook)
}

func TestLoadParsesSettings(t *testing.T) {
	path := writeConfig(t, `
output_dir: ./receipts
output_naming: "{name}_{timestamp}.xlsx"
rounding_digits: 4
manifest_header_row: 2
write_fob_workbook: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./receipts", cfg.OutputDir)
	assert.Equal(t, "{name}_{timestamp}.xlsx", cfg.OutputNaming)
	assert.Equal(t, int32(4), cfg.RoundingDigits)
	assert.Equal(t, 2, cfg.ManifestHeaderRow)
	assert.True(t, cfg.WriteFOBWorkbook)
}

func TestAliasesExtendDefaults(t *testing.T) {
	path := writeConfig(t, `
column_aliases:
  part_number:
    - "Item Code"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	aliases := cfg.Aliases()
	assert.Contains(t, aliases[manifest.FieldPartNumber], "Item Code")
	// Stock labels survive the extension.
	assert.Contains(t, aliases[manifest.FieldPartNumber], "P/N")
}

func TestLoadRejectsUnknownAliasField(t *testing.T) {
	path := writeConfig(t, `
column_aliases:
  not_a_field:
    - "X"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_a_field")
}

func TestLoadRejectsBadHeaderRow(t *testing.T) {
	path := writeConfig(t, "manifest_header_row: -1\n")

	_, err := Load(path)
	require.Error(t, err)
}
