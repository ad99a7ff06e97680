package main

import (
	"fmt"

	"github.com/orayew2002/xlkit/domain"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var (
		output string
		count  int
		title  string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a report of generated employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("invalid --count %d", count)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			employees := domain.GenerateEmployees(count)
			doc, err := buildReport(cfg, title, domain.Headers, domain.Rows(employees))
			if err != nil {
				return fmt.Errorf("build report: %w", err)
			}
			defer doc.Close()

			if err := doc.Save(output); err != nil {
				return err
			}

			log.Info().Str("output", output).Int("employees", count).Msg("done")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "report.xlsx", "Output file (.xlsx, .xlsm, .xltx, .xltm, .xlam or .csv)")
	cmd.Flags().IntVar(&count, "count", 25, "Number of employees to generate")
	cmd.Flags().StringVar(&title, "title", "Employees", "Report title")

	return cmd
}
