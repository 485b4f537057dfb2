package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ebarrera/manifiesto/store"
)

var eventsJSON bool

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List stored arrivals as calendar events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cmd.Context(), cfg.DBPath, logger)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.Events(cmd.Context())
		if err != nil {
			return err
		}

		if eventsJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(events)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FECHA\tBL")
		for _, e := range events {
			fmt.Fprintf(w, "%s\t%s\n", e.Start, e.ID)
		}
		return w.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <bl>",
	Short: "Show one stored arrival with its line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cmd.Context(), cfg.DBPath, logger)
		if err != nil {
			return err
		}
		defer st.Close()

		arrival, err := st.Arrival(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no arrival stored for BL %s", args[0])
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "BL: %s\nFecha: %s\n", arrival.BL, arrival.Date)
		if arrival.Port != "" {
			fmt.Fprintf(out, "Puerto: %s\n", arrival.Port)
		}
		if arrival.Notes != "" {
			fmt.Fprintf(out, "Notas: %s\n", arrival.Notes)
		}
		fmt.Fprintln(out)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CÓDIGO\tDESCRIPCIÓN\tMETROS\tROLLOS")
		for _, item := range arrival.Items {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", item.Code, item.Description, item.Meters, item.Rolls)
		}
		return w.Flush()
	},
}

func init() {
	eventsCmd.Flags().BoolVar(&eventsJSON, "json", false, "Print events as JSON")
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(showCmd)
}
