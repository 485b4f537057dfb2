package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ebarrera/manifiesto/store"
)

var (
	ingestBL    string
	ingestPort  string
	ingestNotes string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <manifest>",
	Short: "Parse a manifest and save the arrival under its bill of lading",
	Long: `Ingest parses the manifest and saves the arrival in the database keyed
by the --bl bill of lading. Ingesting the same BL again replaces the
stored header and rewrites its items.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newParser(args[0])
		if err != nil {
			return err
		}
		shipment, err := p.Parse()
		if err != nil {
			return err
		}

		st, err := store.Open(cmd.Context(), cfg.DBPath, logger)
		if err != nil {
			return err
		}
		defer st.Close()

		arrival := store.Arrival{
			BL:    ingestBL,
			Date:  shipment.Date,
			Port:  ingestPort,
			Notes: ingestNotes,
			Items: shipment.Items,
		}
		if err := st.UpsertArrival(cmd.Context(), arrival); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s: %s, %d items\n",
			ingestBL, shipment.Date, len(shipment.Items))
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestBL, "bl", "", "Bill of lading for the arrival (required)")
	ingestCmd.Flags().StringVar(&ingestPort, "port", "", "Port of arrival")
	ingestCmd.Flags().StringVar(&ingestNotes, "notes", "", "Free-form notes")
	ingestCmd.MarkFlagRequired("bl")
	rootCmd.AddCommand(ingestCmd)
}
