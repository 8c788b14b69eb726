package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"aoitems/internal/service/interpolation"
)

var (
	interpolateID int64
	interpolateQL int
)

var interpolateCmd = &cobra.Command{
	Use:   "interpolate",
	Short: "Print an item computed at a quality level",
	Long: `Print the item with the given id computed at the requested QL as
indented JSON. Without --ql the item is printed at its own QL.`,
	RunE: runInterpolate,
}

func init() {
	rootCmd.AddCommand(interpolateCmd)

	interpolateCmd.Flags().Int64Var(&interpolateID, "id", 0, "Item id")
	interpolateCmd.Flags().IntVar(&interpolateQL, "ql", 0, "Target quality level")
	interpolateCmd.MarkFlagRequired("id")
}

func runInterpolate(cmd *cobra.Command, args []string) error {
	_, log, storage, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer storage.Close()

	ql := interpolateQL
	if ql == 0 {
		item, err := storage.GetItemByID(cmd.Context(), interpolateID)
		if err != nil {
			return err
		}
		ql = item.QL
	}
	if ql < 1 {
		return fmt.Errorf("ql must be positive, got %d", ql)
	}

	engine := interpolation.NewEngine(storage, log)

	item, err := engine.Interpolate(cmd.Context(), interpolateID, ql)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(item)
}
