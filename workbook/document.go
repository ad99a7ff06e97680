// Package workbook writes titled, styled tables into a spreadsheet and
// saves or streams the result. All spreadsheet work is delegated to excelize.
package workbook

import (
	"bytes"
	"fmt"
	"io"

	"github.com/orayew2002/xlkit/excel"
	"github.com/orayew2002/xlkit/style"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Default layout: title, header and data start on consecutive rows of column A.
const (
	DefaultTitleCell      = "A1"
	DefaultHeaderCell     = "A2"
	DefaultDataCell       = "A3"
	DefaultTitleRowHeight = 25
)

// Document is a single sheet of an excelize file plus the formats used to
// decorate it. A Document must not be used from several goroutines at once.
type Document struct {
	file   *excelize.File
	sheet  string
	styles *style.Manager
	log    zerolog.Logger

	header      style.Format
	title       style.Format
	data        style.Format
	titleHeight float64

	// titleCell is nil until SetTitle writes a title.
	titleCell *excel.Address
}

// Option configures a Document at construction time.
type Option func(*Document)

// WithSheet selects the sheet to write to. New renames its default sheet;
// Wrap, Open and OpenReader create the sheet when it does not exist.
func WithSheet(name string) Option {
	return func(d *Document) { d.sheet = name }
}

// WithHeaderFormat merges opts into the default header format.
func WithHeaderFormat(opts ...style.Option) Option {
	return func(d *Document) { d.header = d.header.With(opts...) }
}

// WithTitleFormat merges opts into the default title format.
func WithTitleFormat(opts ...style.Option) Option {
	return func(d *Document) { d.title = d.title.With(opts...) }
}

// WithDataFormat merges opts into the format drawn over the data area.
func WithDataFormat(opts ...style.Option) Option {
	return func(d *Document) { d.data = d.data.With(opts...) }
}

// WithTitleRowHeight sets the height of the title row in points.
func WithTitleRowHeight(height float64) Option {
	return func(d *Document) { d.titleHeight = height }
}

// WithLogger sets the logger for write and save events. The default discards them.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Document) { d.log = l }
}

func newDocument(f *excelize.File, opts []Option) *Document {
	d := &Document{
		file:        f,
		styles:      style.NewManager(f),
		log:         zerolog.Nop(),
		header:      style.DefaultHeader(),
		title:       style.DefaultTitle(),
		data:        style.DefaultData(),
		titleHeight: DefaultTitleRowHeight,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// New creates a Document backed by a fresh workbook.
func New(opts ...Option) (*Document, error) {
	f := excelize.NewFile()
	d := newDocument(f, opts)

	current := f.GetSheetName(f.GetActiveSheetIndex())
	if d.sheet == "" {
		d.sheet = current
		return d, nil
	}

	if d.sheet != current {
		if err := f.SetSheetName(current, d.sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("rename sheet %q: %w", d.sheet, err)
		}
	}

	return d, nil
}

// Wrap creates a Document on top of an existing engine file. The caller keeps
// ownership of f; Close on the Document closes it.
func Wrap(f *excelize.File, opts ...Option) (*Document, error) {
	d := newDocument(f, opts)
	if d.sheet == "" {
		d.sheet = f.GetSheetName(f.GetActiveSheetIndex())
		return d, nil
	}

	idx, err := f.GetSheetIndex(d.sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", d.sheet, err)
	}
	if idx == -1 {
		if idx, err = f.NewSheet(d.sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", d.sheet, err)
		}
	}
	f.SetActiveSheet(idx)

	return d, nil
}

// Open loads a workbook from path, typically a template with prepared layout.
func Open(path string, opts ...Option) (*Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	d, err := Wrap(f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	return d, nil
}

// OpenReader loads a workbook from r.
func OpenReader(r io.Reader, opts ...Option) (*Document, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open from reader: %w", err)
	}

	d, err := Wrap(f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	return d, nil
}

// File exposes the underlying engine for operations the Document does not wrap.
func (d *Document) File() *excelize.File { return d.file }

// Sheet returns the name of the sheet the Document writes to.
func (d *Document) Sheet() string { return d.sheet }

// HeaderFormat returns the current header format.
func (d *Document) HeaderFormat() style.Format { return d.header }

// SetHeaderFormat merges opts into the current header format.
func (d *Document) SetHeaderFormat(opts ...style.Option) {
	d.header = d.header.With(opts...)
}

// TitleFormat returns the current title format.
func (d *Document) TitleFormat() style.Format { return d.title }

// SetTitleFormat merges opts into the current title format.
func (d *Document) SetTitleFormat(opts ...style.Option) {
	d.title = d.title.With(opts...)
}

// DataFormat returns the current data area format.
func (d *Document) DataFormat() style.Format { return d.data }

// SetDataFormat merges opts into the format drawn over the data area.
func (d *Document) SetDataFormat(opts ...style.Option) {
	d.data = d.data.With(opts...)
}

// SetTitle writes title into cell (A1 when empty) and remembers the cell so
// SetData can size, style and merge the title row. An empty title is ignored.
func (d *Document) SetTitle(title, cell string) error {
	if title == "" {
		return nil
	}
	if cell == "" {
		cell = DefaultTitleCell
	}

	addr, err := excel.ParseAddress(cell)
	if err != nil {
		return fmt.Errorf("set title: %w", err)
	}

	if err := d.file.SetCellStr(d.sheet, addr.String(), title); err != nil {
		return fmt.Errorf("set title: %w", err)
	}

	d.titleCell = &addr
	return nil
}

// ApplyHeaderFormat applies the header format to cellRange ("A2:D2" or "A2").
func (d *Document) ApplyHeaderFormat(cellRange string) error {
	from, to, err := excel.ParseRange(cellRange)
	if err != nil {
		return fmt.Errorf("apply header format: %w", err)
	}

	if err := d.applyFormat(from, to, d.header); err != nil {
		return fmt.Errorf("apply header format: %w", err)
	}
	return nil
}

// SetHeader writes headers left to right from cell (A2 when empty) and
// applies the header format to them.
func (d *Document) SetHeader(headers []string, cell string) error {
	if len(headers) == 0 {
		return nil
	}
	if cell == "" {
		cell = DefaultHeaderCell
	}

	start, err := excel.ParseAddress(cell)
	if err != nil {
		return fmt.Errorf("set header: %w", err)
	}

	if err := d.file.SetSheetRow(d.sheet, start.String(), &headers); err != nil {
		return fmt.Errorf("set header: %w", err)
	}

	col, err := start.ColumnNumber()
	if err != nil {
		return fmt.Errorf("set header: %w", err)
	}
	end, err := start.WithColumnNumber(col + len(headers) - 1)
	if err != nil {
		return fmt.Errorf("set header: %w", err)
	}

	if err := d.applyFormat(start, end, d.header); err != nil {
		return fmt.Errorf("set header: %w", err)
	}
	return nil
}

// SetData writes rows one below another starting at cell (A3 when empty),
// draws the data format over the filled area and, when a title is set,
// styles the title row and merges it across the used columns.
func (d *Document) SetData(rows [][]any, cell string) error {
	if cell == "" {
		cell = DefaultDataCell
	}

	start, err := excel.ParseAddress(cell)
	if err != nil {
		return fmt.Errorf("set data: %w", err)
	}

	cursor := start
	for i, row := range rows {
		if err := d.file.SetSheetRow(d.sheet, cursor.String(), &row); err != nil {
			return fmt.Errorf("set data row %d at %s: %w", i+1, cursor, err)
		}
		cursor = cursor.NextRow()
	}

	d.log.Debug().
		Str("sheet", d.sheet).
		Str("start", start.String()).
		Int("rows", len(rows)).
		Msg("data written")

	if len(rows) > 0 {
		if err := d.styleData(start, cursor.Advance(-1).Row); err != nil {
			return fmt.Errorf("set data: %w", err)
		}
	}

	if d.titleCell != nil {
		if err := d.styleTitle(*d.titleCell); err != nil {
			return fmt.Errorf("set data: style title: %w", err)
		}
	}

	return nil
}

// SetColumnWidths sets widths for consecutive columns starting at the column of cell.
func (d *Document) SetColumnWidths(cell string, widths ...float64) error {
	start, err := excel.ParseAddress(cell)
	if err != nil {
		return fmt.Errorf("set column widths: %w", err)
	}
	col, err := start.ColumnNumber()
	if err != nil {
		return fmt.Errorf("set column widths: %w", err)
	}

	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(col + i)
		if err != nil {
			return fmt.Errorf("set column widths: %w", err)
		}
		if err := d.file.SetColWidth(d.sheet, name, name, w); err != nil {
			return fmt.Errorf("set column width %s: %w", name, err)
		}
	}
	return nil
}

// Dimension returns the highest used column (1-based) and row of the sheet.
func (d *Document) Dimension() (cols, rows int, err error) {
	values, err := d.file.GetRows(d.sheet)
	if err != nil {
		return 0, 0, err
	}
	for _, row := range values {
		cols = max(cols, len(row))
	}
	return cols, len(values), nil
}

// Save writes the workbook to path using the writer matching its extension.
func (d *Document) Save(path string) error {
	ft, err := DetectFileType(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	if ft.IsCSV() {
		err = d.saveCSV(path)
	} else {
		err = d.file.SaveAs(path)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	d.log.Debug().Str("path", path).Str("type", ft.Ext).Msg("workbook saved")
	return nil
}

// WriteTo renders the workbook as ft into w.
func (d *Document) WriteTo(w io.Writer, ft FileType) (int64, error) {
	if ft.IsCSV() {
		return d.writeCSV(w)
	}

	// excelize derives the package content type from Path.
	prev := d.file.Path
	d.file.Path = "workbook" + ft.Ext
	defer func() { d.file.Path = prev }()

	return d.file.WriteTo(w)
}

// Bytes renders the workbook as ft into memory.
func (d *Document) Bytes(ft FileType) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf, ft); err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// Close releases the engine's temporary resources.
func (d *Document) Close() error {
	return d.file.Close()
}

func (d *Document) applyFormat(from, to excel.Address, format style.Format) error {
	id, err := d.styles.ID(format)
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	return d.file.SetCellStyle(d.sheet, from.String(), to.String(), id)
}

func (d *Document) styleData(start excel.Address, lastRow int) error {
	cols, rows, err := d.Dimension()
	if err != nil {
		return err
	}

	startCol, err := start.ColumnNumber()
	if err != nil {
		return err
	}
	end, err := start.WithColumnNumber(max(cols, startCol))
	if err != nil {
		return err
	}
	end.Row = max(rows, lastRow)

	return d.applyFormat(start, end, d.data)
}

func (d *Document) styleTitle(title excel.Address) error {
	cols, _, err := d.Dimension()
	if err != nil {
		return err
	}

	titleCol, err := title.ColumnNumber()
	if err != nil {
		return err
	}
	end := title
	if cols > titleCol {
		if end, err = title.WithColumnNumber(cols); err != nil {
			return err
		}
	}

	if err := d.file.SetRowHeight(d.sheet, title.Row, d.titleHeight); err != nil {
		return fmt.Errorf("row height: %w", err)
	}

	format := d.title
	if format.Alignment.Vertical == "" {
		format = format.With(style.WithVertical("center"))
	}
	if err := d.applyFormat(title, end, format); err != nil {
		return err
	}

	if end == title {
		return nil
	}
	if err := d.file.MergeCell(d.sheet, title.String(), end.String()); err != nil {
		return fmt.Errorf("merge %s: %w", excel.Range(title, end), err)
	}
	return nil
}
