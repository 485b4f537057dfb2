// Command manifiesto parses shipment manifest PDFs, stores the arrivals
// they describe and exports them for the warehouse calendar.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ebarrera/manifiesto"
	"github.com/ebarrera/manifiesto/config"
	"github.com/ebarrera/manifiesto/format"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "manifiesto",
	Short: "Extract arrival dates and line items from shipment manifests",
	Long: `Manifiesto reads shipment manifest PDFs (or scanned images, when built
with the ocr tag), extracts the warehouse arrival date and the
merchandise line items, and keeps them in a local SQLite database keyed
by bill of lading.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newParser builds a parser for path, routing scanned image formats
// through OCR, and applies the configured knobs.
func newParser(path string) (*manifiesto.Parser, error) {
	f, err := format.DetectFile(path)
	if err != nil {
		return nil, err
	}

	var p *manifiesto.Parser
	switch {
	case f.IsImage():
		logger.Debug("input detected as scan", "file", path, "format", f.String())
		p = manifiesto.OpenImage(path).Languages(cfg.OCRLanguages...)
	case f == format.PDF:
		p = manifiesto.Open(path)
	default:
		return nil, fmt.Errorf("%s: unsupported input format", path)
	}
	return p.Prefixes(cfg.Prefixes...).Tolerance(cfg.Tolerance), nil
}
