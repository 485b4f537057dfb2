package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ebarrera/manifiesto/model"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <manifest>",
	Short: "Parse a manifest and print its date and line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newParser(args[0])
		if err != nil {
			return err
		}
		shipment, err := p.Parse()
		if err != nil {
			return err
		}
		logger.Debug("parsed manifest", "file", args[0], "items", len(shipment.Items))

		if parseJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(shipment)
		}

		printShipment(cmd, shipment)
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the shipment as JSON")
	rootCmd.AddCommand(parseCmd)
}

func printShipment(cmd *cobra.Command, shipment *model.Shipment) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Fecha de llegada: %s\n\n", shipment.Date)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CÓDIGO\tDESCRIPCIÓN\tMETROS\tROLLOS")
	for _, item := range shipment.Items {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", item.Code, item.Description, item.Meters, item.Rolls)
	}
	w.Flush()
}
