package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"aoitems/internal/service/interpolation"
)

var rangesID int64

var rangesCmd = &cobra.Command{
	Use:   "ranges",
	Short: "Show the QL ranges an item can be computed in",
	RunE:  runRanges,
}

func init() {
	rootCmd.AddCommand(rangesCmd)

	rangesCmd.Flags().Int64Var(&rangesID, "id", 0, "Item id")
	rangesCmd.MarkFlagRequired("id")
}

func runRanges(cmd *cobra.Command, args []string) error {
	_, log, storage, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer storage.Close()

	report, err := interpolation.NewEngine(storage, log).RangeReport(cmd.Context(), rangesID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "interpolatable: %t\nql: %d-%d\n\n", report.Interpolatable, report.MinQL, report.MaxQL)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MIN\tMAX\tINTERPOLATES\tVARIANT")
	for _, r := range report.Ranges {
		fmt.Fprintf(w, "%d\t%d\t%t\t%d\n", r.MinQL, r.MaxQL, r.Interpolatable, r.RepresentativeID)
	}
	return w.Flush()
}
