package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ebarrera/manifiesto/export"
	"github.com/ebarrera/manifiesto/store"
)

var (
	exportFrom string
	exportTo   string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored arrivals to an XLSX workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cmd.Context(), cfg.DBPath, logger)
		if err != nil {
			return err
		}
		defer st.Close()

		data, err := export.NewService(st, logger).ArrivalsXLSX(cmd.Context(), exportFrom, exportTo)
		if err != nil {
			return err
		}

		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "End date (YYYY-MM-DD, inclusive)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "llegadas.xlsx", "Output file")
	rootCmd.AddCommand(exportCmd)
}
