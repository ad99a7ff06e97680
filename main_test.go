package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orayew2002/xlkit/config"
	"github.com/orayew2002/xlkit/workbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	headers, rows, err := parseCSV(strings.NewReader("name,age\nAnn,31\nBob\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age"}, headers)
	assert.Equal(t, [][]any{{"Ann", "31"}, {"Bob"}}, rows)

	headers, rows, err = parseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, headers)
	assert.Nil(t, rows)
}

func TestBuildReportUsesConfigLayout(t *testing.T) {
	cfg, err := config.Parse([]byte("sheet: Staff\ntitle_cell: B2\nheader_cell: B4\ndata_cell: B5\ncolumn_widths: [20]\n"))
	require.NoError(t, err)

	doc, err := buildReport(cfg, "People", []string{"name", "age"}, [][]any{{"Ann", 31}, {"Bob", 40}})
	require.NoError(t, err)
	defer doc.Close()

	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, doc.Save(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	for cell, want := range map[string]string{"B2": "People", "B4": "name", "C5": "31", "B6": "Bob"} {
		got, err := f.GetCellValue("Staff", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}

	width, err := f.GetColWidth("Staff", "B")
	require.NoError(t, err)
	assert.Equal(t, 20.0, width)
}

func TestApplyOverrides(t *testing.T) {
	cfg, err := config.Parse([]byte("sheet: Staff\ntitle_cell: B2\nheader_cell: B4\ndata_cell: B5\n"))
	require.NoError(t, err)

	got, err := applyOverrides(cfg, layoutOverrides{Sheet: "People", DataCell: "B7"})
	require.NoError(t, err)
	assert.Equal(t, "People", got.Sheet)
	assert.Equal(t, "B2", got.TitleCell)
	assert.Equal(t, "B4", got.HeaderCell)
	assert.Equal(t, "B7", got.DataCell)

	unchanged, err := applyOverrides(cfg, layoutOverrides{})
	require.NoError(t, err)
	assert.Equal(t, cfg, unchanged)

	_, err = applyOverrides(cfg, layoutOverrides{HeaderCell: "4B"})
	assert.Error(t, err)
}

func TestBuildReportRejectsBadCell(t *testing.T) {
	cfg := config.Default()
	cfg.DataCell = "3A"

	_, err := buildReport(cfg, "", []string{"a"}, [][]any{{1}})
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	srv := httptest.NewServer(newRouter(config.Default()))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/report.xlsx?count=3")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, workbook.XLSX.MIME, res.Header.Get("Content-Type"))

	res, err = http.Get(srv.URL + "/report.csv?count=2")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, err = http.Get(srv.URL + "/report.xls")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, err = http.Get(srv.URL + "/report.xlsx?count=-1")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}
