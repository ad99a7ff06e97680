package main

import (
	"fmt"

	"github.com/orayew2002/xlkit/config"
	"github.com/orayew2002/xlkit/workbook"
	"github.com/rs/zerolog/log"
)

// buildReport lays out title, header and rows on a new Document as cfg describes.
func buildReport(cfg config.Config, title string, headers []string, rows [][]any) (*workbook.Document, error) {
	opts := append(cfg.Options(), workbook.WithLogger(log.Logger))
	doc, err := workbook.New(opts...)
	if err != nil {
		return nil, err
	}

	if err := fillReport(doc, cfg, title, headers, rows); err != nil {
		doc.Close()
		return nil, err
	}
	return doc, nil
}

func fillReport(doc *workbook.Document, cfg config.Config, title string, headers []string, rows [][]any) error {
	if err := doc.SetTitle(title, cfg.TitleCell); err != nil {
		return err
	}
	if err := doc.SetHeader(headers, cfg.HeaderCell); err != nil {
		return err
	}
	if err := doc.SetData(rows, cfg.DataCell); err != nil {
		return err
	}
	if len(cfg.ColumnWidths) > 0 {
		if err := doc.SetColumnWidths(cfg.DataCell, cfg.ColumnWidths...); err != nil {
			return fmt.Errorf("column widths: %w", err)
		}
	}
	return nil
}
