// Package style describes cell formats as plain values and converts them
// into excelize styles.
package style

import "github.com/xuri/excelize/v2"

const (
	// PatternSolid is the excelize fill pattern for a solid background.
	PatternSolid = 1
	// BorderThin is the excelize border style for a thin continuous line.
	BorderThin = 1
)

// Format is a comparable cell format. Zero fields mean "engine default".
type Format struct {
	Font      Font
	Fill      Fill
	Border    Border
	Alignment Alignment
	NumFmt    int
}

// Font of a cell.
type Font struct {
	Bold      bool
	Italic    bool
	Underline bool
	Size      float64
	Family    string
	Color     string
}

// Fill is a pattern fill; Pattern 0 means no fill.
type Fill struct {
	Pattern int
	Color   string
}

// Border is applied to all four edges; Style 0 means no border.
type Border struct {
	Style int
	Color string
}

// Alignment of cell content.
type Alignment struct {
	Horizontal string
	Vertical   string
	WrapText   bool
}

// Option overrides part of a Format.
type Option func(*Format)

// With returns a copy of f with opts applied in order.
func (f Format) With(opts ...Option) Format {
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// DefaultHeader is bold text on a solid red background.
func DefaultHeader() Format {
	return Format{
		Font: Font{Bold: true},
		Fill: Fill{Pattern: PatternSolid, Color: "FF0000"},
	}
}

// DefaultTitle is bold 14pt text.
func DefaultTitle() Format {
	return Format{Font: Font{Bold: true, Size: 14}}
}

// DefaultData draws thin black borders around every cell.
func DefaultData() Format {
	return Format{Border: Border{Style: BorderThin, Color: "000000"}}
}

// WithBold turns bold text on or off.
func WithBold(b bool) Option { return func(f *Format) { f.Font.Bold = b } }

// WithItalic turns italic text on or off.
func WithItalic(b bool) Option { return func(f *Format) { f.Font.Italic = b } }

// WithUnderline turns a single underline on or off.
func WithUnderline(b bool) Option { return func(f *Format) { f.Font.Underline = b } }

// WithFontSize sets the font size in points.
func WithFontSize(size float64) Option { return func(f *Format) { f.Font.Size = size } }

// WithFontFamily sets the font name, e.g. "Times New Roman".
func WithFontFamily(name string) Option {
	return func(f *Format) { f.Font.Family = name }
}

// WithFontColor sets the text color as hex RGB ("FFFFFF").
func WithFontColor(color string) Option {
	return func(f *Format) { f.Font.Color = color }
}

// WithFill sets a solid background color. An empty color removes the fill.
func WithFill(color string) Option {
	return func(f *Format) {
		if color == "" {
			f.Fill = Fill{}
			return
		}
		f.Fill = Fill{Pattern: PatternSolid, Color: color}
	}
}

// WithFillPattern changes the fill pattern and keeps the color.
func WithFillPattern(pattern int) Option {
	return func(f *Format) { f.Fill.Pattern = pattern }
}

// WithBorder sets the border on all edges. Style 0 removes it.
func WithBorder(style int, color string) Option {
	return func(f *Format) { f.Border = Border{Style: style, Color: color} }
}

// WithHorizontal sets horizontal alignment (left, center, right, ...).
func WithHorizontal(align string) Option {
	return func(f *Format) { f.Alignment.Horizontal = align }
}

// WithVertical sets vertical alignment (top, center, bottom, ...).
func WithVertical(align string) Option {
	return func(f *Format) { f.Alignment.Vertical = align }
}

// WithWrapText turns text wrapping on or off.
func WithWrapText(b bool) Option { return func(f *Format) { f.Alignment.WrapText = b } }

// WithNumFmt sets one of the built-in excelize number format IDs.
func WithNumFmt(id int) Option { return func(f *Format) { f.NumFmt = id } }

// Excelize converts f into the engine's style definition.
func (f Format) Excelize() *excelize.Style {
	s := &excelize.Style{NumFmt: f.NumFmt}

	if f.Font != (Font{}) {
		s.Font = &excelize.Font{
			Bold:   f.Font.Bold,
			Italic: f.Font.Italic,
			Size:   f.Font.Size,
			Family: f.Font.Family,
			Color:  f.Font.Color,
		}
		if f.Font.Underline {
			s.Font.Underline = "single"
		}
	}

	if f.Fill.Pattern != 0 {
		s.Fill = excelize.Fill{Type: "pattern", Pattern: f.Fill.Pattern}
		if f.Fill.Color != "" {
			s.Fill.Color = []string{f.Fill.Color}
		}
	}

	if f.Border.Style != 0 {
		for _, side := range []string{"left", "right", "top", "bottom"} {
			s.Border = append(s.Border, excelize.Border{Type: side, Color: f.Border.Color, Style: f.Border.Style})
		}
	}

	if f.Alignment != (Alignment{}) {
		s.Alignment = &excelize.Alignment{
			Horizontal: f.Alignment.Horizontal,
			Vertical:   f.Alignment.Vertical,
			WrapText:   f.Alignment.WrapText,
		}
	}

	return s
}
