package workbook

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file names whose extension has no writer.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// FileType selects the writer and MIME type used for output.
type FileType struct {
	Ext  string
	MIME string
	csv  bool
}

// Supported output types.
var (
	XLSX = FileType{Ext: ".xlsx", MIME: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"}
	XLSM = FileType{Ext: ".xlsm", MIME: "application/vnd.ms-excel.sheet.macroEnabled.12"}
	XLTX = FileType{Ext: ".xltx", MIME: "application/vnd.openxmlformats-officedocument.spreadsheetml.template"}
	XLTM = FileType{Ext: ".xltm", MIME: "application/vnd.ms-excel.template.macroEnabled.12"}
	XLAM = FileType{Ext: ".xlam", MIME: "application/vnd.ms-excel.addin.macroEnabled.12"}
	CSV  = FileType{Ext: ".csv", MIME: "text/csv; charset=utf-8", csv: true}
)

var fileTypes = []FileType{XLSX, XLSM, XLTX, XLTM, XLAM, CSV}

// DetectFileType picks the output type from the extension of name.
// Legacy .xls is not supported.
func DetectFileType(name string) (FileType, error) {
	ext := strings.ToLower(filepath.Ext(name))
	for _, ft := range fileTypes {
		if ft.Ext == ext {
			return ft, nil
		}
	}
	if ext == "" {
		return FileType{}, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, name)
	}
	return FileType{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// IsCSV reports whether ft renders the sheet as comma separated values.
func (ft FileType) IsCSV() bool {
	return ft.csv
}
