package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orayew2002/xlkit/style"
	"github.com/orayew2002/xlkit/workbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
sheet: Staff
title_cell: B1
data_cell: B3
header_cell: B2
title_row_height: 30
column_widths: [6, 30]
title_format:
  font:
    size: 18
header_format:
  font:
    color: FFFFFF
  fill:
    color: 4472C4
  alignment:
    horizontal: center
data_format:
  border:
    color: "999999"
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Staff", cfg.Sheet)
	assert.Equal(t, "B1", cfg.TitleCell)
	assert.Equal(t, "B2", cfg.HeaderCell)
	assert.Equal(t, "B3", cfg.DataCell)
	assert.Equal(t, 30.0, cfg.TitleRowHeight)
	assert.Equal(t, []float64{6, 30}, cfg.ColumnWidths)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("sheet: Only"))
	require.NoError(t, err)

	assert.Equal(t, "A1", cfg.TitleCell)
	assert.Equal(t, "A2", cfg.HeaderCell)
	assert.Equal(t, "A3", cfg.DataCell)
	assert.Equal(t, float64(workbook.DefaultTitleRowHeight), cfg.TitleRowHeight)
	assert.Nil(t, cfg.HeaderFormat)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"bad cell":      "data_cell: 3A",
		"empty cell":    `title_cell: ""`,
		"long sheet":    "sheet: abcdefghijklmnopqrstuvwxyz0123456789",
		"bad color":     "header_format: {fill: {color: red}}",
		"bad alignment": "title_format: {alignment: {vertical: middle}}",
		"bad border":    "data_format: {border: {style: 42}}",
		"bad width":     "column_widths: [-1]",
		"bad yaml":      "sheet: [",
	}

	for name, doc := range tests {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStyleOptionsOverrideOnlySetFields(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	header := style.DefaultHeader().With(cfg.HeaderFormat.Options()...)
	assert.True(t, header.Font.Bold)
	assert.Equal(t, "FFFFFF", header.Font.Color)
	assert.Equal(t, style.Fill{Pattern: style.PatternSolid, Color: "4472C4"}, header.Fill)
	assert.Equal(t, "center", header.Alignment.Horizontal)

	title := style.DefaultTitle().With(cfg.TitleFormat.Options()...)
	assert.Equal(t, style.Font{Bold: true, Size: 18}, title.Font)

	data := style.DefaultData().With(cfg.DataFormat.Options()...)
	assert.Equal(t, style.Border{Style: style.BorderThin, Color: "999999"}, data.Border)
}

func TestOptionsBuildDocument(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	doc, err := workbook.New(cfg.Options()...)
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, "Staff", doc.Sheet())
	assert.Equal(t, "4472C4", doc.HeaderFormat().Fill.Color)
	assert.Equal(t, 18.0, doc.TitleFormat().Font.Size)

	require.NoError(t, doc.SetTitle("Staff", cfg.TitleCell))
	require.NoError(t, doc.SetData([][]any{{1, "Ann"}}, cfg.DataCell))

	height, err := doc.File().GetRowHeight("Staff", 1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, height)
}
