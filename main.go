package main

import (
	"fmt"
	"os"
	"time"

	"github.com/orayew2002/xlkit/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	overrides  layoutOverrides
)

// layoutOverrides holds layout flags; empty fields keep the file value.
type layoutOverrides struct {
	Sheet      string
	TitleCell  string
	HeaderCell string
	DataCell   string
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "xlkit",
		Short:         "Write titled, styled tables into spreadsheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML report layout (default: built-in layout)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&overrides.Sheet, "sheet", "", "Sheet name (overrides config)")
	rootCmd.PersistentFlags().StringVar(&overrides.TitleCell, "title-cell", "", "Title cell, e.g. A1 (overrides config)")
	rootCmd.PersistentFlags().StringVar(&overrides.HeaderCell, "header-cell", "", "Header cell, e.g. A2 (overrides config)")
	rootCmd.PersistentFlags().StringVar(&overrides.DataCell, "data-cell", "", "First data cell, e.g. A3 (overrides config)")

	rootCmd.AddCommand(newDemoCmd(), newRenderCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("xlkit failed")
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	return nil
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
	}
	return applyOverrides(cfg, overrides)
}

func applyOverrides(cfg config.Config, o layoutOverrides) (config.Config, error) {
	for _, f := range []struct {
		dst *string
		val string
	}{
		{&cfg.Sheet, o.Sheet},
		{&cfg.TitleCell, o.TitleCell},
		{&cfg.HeaderCell, o.HeaderCell},
		{&cfg.DataCell, o.DataCell},
	} {
		if f.val != "" {
			*f.dst = f.val
		}
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
