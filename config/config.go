// Package config loads report layout and formats from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/orayew2002/xlkit/excel"
	"github.com/orayew2002/xlkit/style"
	"github.com/orayew2002/xlkit/workbook"
	"gopkg.in/yaml.v3"
)

// Config describes where a report is placed on its sheet and how it looks.
// Style sections only override the fields they set.
type Config struct {
	Sheet          string       `yaml:"sheet" validate:"max=31"`
	TitleCell      string       `yaml:"title_cell" validate:"cell"`
	HeaderCell     string       `yaml:"header_cell" validate:"cell"`
	DataCell       string       `yaml:"data_cell" validate:"cell"`
	TitleRowHeight float64      `yaml:"title_row_height" validate:"gte=0,lte=409"`
	ColumnWidths   []float64    `yaml:"column_widths" validate:"dive,gte=0,lte=255"`
	TitleFormat    *StyleConfig `yaml:"title_format"`
	HeaderFormat   *StyleConfig `yaml:"header_format"`
	DataFormat     *StyleConfig `yaml:"data_format"`
}

// StyleConfig overrides parts of a style.Format.
type StyleConfig struct {
	Font      *FontConfig      `yaml:"font"`
	Fill      *FillConfig      `yaml:"fill"`
	Border    *BorderConfig    `yaml:"border"`
	Alignment *AlignmentConfig `yaml:"alignment"`
	NumFmt    *int             `yaml:"number_format" validate:"omitempty,gte=0"`
}

// FontConfig overrides font fields.
type FontConfig struct {
	Bold      *bool    `yaml:"bold"`
	Italic    *bool    `yaml:"italic"`
	Underline *bool    `yaml:"underline"`
	Size      *float64 `yaml:"size" validate:"omitempty,gt=0,lte=409"`
	Family    *string  `yaml:"family"`
	Color     *string  `yaml:"color" validate:"omitempty,hexadecimal,len=6"`
}

// FillConfig overrides the background fill.
type FillConfig struct {
	Color   *string `yaml:"color" validate:"omitempty,hexadecimal,len=6"`
	Pattern *int    `yaml:"pattern" validate:"omitempty,gte=0,lte=18"`
}

// BorderConfig overrides the border drawn on all edges.
type BorderConfig struct {
	Style *int    `yaml:"style" validate:"omitempty,gte=0,lte=13"`
	Color *string `yaml:"color" validate:"omitempty,hexadecimal,len=6"`
}

// AlignmentConfig overrides cell alignment.
type AlignmentConfig struct {
	Horizontal *string `yaml:"horizontal" validate:"omitempty,oneof=left center right fill justify centerContinuous distributed"`
	Vertical   *string `yaml:"vertical" validate:"omitempty,oneof=top center bottom justify distributed"`
	WrapText   *bool   `yaml:"wrap_text"`
}

// Default returns the layout used when no file is given.
func Default() Config {
	return Config{
		TitleCell:      workbook.DefaultTitleCell,
		HeaderCell:     workbook.DefaultHeaderCell,
		DataCell:       workbook.DefaultDataCell,
		TitleRowHeight: workbook.DefaultTitleRowHeight,
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("cell", func(fl validator.FieldLevel) bool {
		_, err := excel.ParseAddress(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks cell references, sizes and colors.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%s: failed %q check (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.Join(errs...)
}

// Options converts the formats and sheet selection into workbook options.
func (c Config) Options() []workbook.Option {
	var opts []workbook.Option
	if c.Sheet != "" {
		opts = append(opts, workbook.WithSheet(c.Sheet))
	}
	if c.TitleRowHeight > 0 {
		opts = append(opts, workbook.WithTitleRowHeight(c.TitleRowHeight))
	}
	if c.TitleFormat != nil {
		opts = append(opts, workbook.WithTitleFormat(c.TitleFormat.Options()...))
	}
	if c.HeaderFormat != nil {
		opts = append(opts, workbook.WithHeaderFormat(c.HeaderFormat.Options()...))
	}
	if c.DataFormat != nil {
		opts = append(opts, workbook.WithDataFormat(c.DataFormat.Options()...))
	}
	return opts
}

// Options returns one style option per field present in the YAML.
func (s *StyleConfig) Options() []style.Option {
	var opts []style.Option

	if f := s.Font; f != nil {
		if f.Bold != nil {
			opts = append(opts, style.WithBold(*f.Bold))
		}
		if f.Italic != nil {
			opts = append(opts, style.WithItalic(*f.Italic))
		}
		if f.Underline != nil {
			opts = append(opts, style.WithUnderline(*f.Underline))
		}
		if f.Size != nil {
			opts = append(opts, style.WithFontSize(*f.Size))
		}
		if f.Family != nil {
			opts = append(opts, style.WithFontFamily(*f.Family))
		}
		if f.Color != nil {
			opts = append(opts, style.WithFontColor(*f.Color))
		}
	}

	if f := s.Fill; f != nil {
		if f.Color != nil {
			opts = append(opts, style.WithFill(*f.Color))
		}
		if f.Pattern != nil {
			opts = append(opts, style.WithFillPattern(*f.Pattern))
		}
	}

	if b := s.Border; b != nil {
		opts = append(opts, func(format *style.Format) {
			if b.Style != nil {
				format.Border.Style = *b.Style
			}
			if b.Color != nil {
				format.Border.Color = *b.Color
			}
		})
	}

	if a := s.Alignment; a != nil {
		if a.Horizontal != nil {
			opts = append(opts, style.WithHorizontal(*a.Horizontal))
		}
		if a.Vertical != nil {
			opts = append(opts, style.WithVertical(*a.Vertical))
		}
		if a.WrapText != nil {
			opts = append(opts, style.WithWrapText(*a.WrapText))
		}
	}

	if s.NumFmt != nil {
		opts = append(opts, style.WithNumFmt(*s.NumFmt))
	}

	return opts
}
