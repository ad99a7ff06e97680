package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		input  string
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Turn a CSV file into a styled report (first line is the header)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			headers, rows, err := readCSV(input)
			if err != nil {
				return err
			}

			doc, err := buildReport(cfg, title, headers, rows)
			if err != nil {
				return fmt.Errorf("build report: %w", err)
			}
			defer doc.Close()

			if err := doc.Save(output); err != nil {
				return err
			}

			log.Info().Str("input", input).Str("output", output).Int("rows", len(rows)).Msg("done")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV file to render")
	cmd.Flags().StringVarP(&output, "output", "o", "report.xlsx", "Output file")
	cmd.Flags().StringVar(&title, "title", "", "Report title (no title row when empty)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func readCSV(path string) ([]string, [][]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]string, [][]any, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	rows := make([][]any, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]any, len(record))
		for i, v := range record {
			row[i] = v
		}
		rows = append(rows, row)
	}
	return records[0], rows, nil
}
