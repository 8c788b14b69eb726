package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aoitems/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed FILE",
	Short: "Load YAML item fixtures into the configured database",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, log, storage, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer storage.Close()

	if err := storage.EnsureSchema(cmd.Context()); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	items, err := seed.Load(f)
	if err != nil {
		return err
	}

	n, err := seed.Apply(cmd.Context(), log, storage, items)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d items from %s\n", n, args[0])
	return nil
}
