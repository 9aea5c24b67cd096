// cmd/camiconv/cmd_camitax.go
package main

import (
	"io"

	"github.com/spf13/cobra"

	"camiconv/core/profile"
	"camiconv/internal/adapters/camitax"
)

var camitaxCmd = &cobra.Command{
	Use:   "camitax [camitax.tsv]",
	Short: "Convert a CAMITAX classification summary to a CAMI profile",
	Long: `Converts the per-genome camitax.tsv summary. When a shared report
file holds several samples, rows are filtered to the ones mentioning
--sample-id; every genome contributes equal weight.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := "-"
		if len(args) == 1 {
			input = args[0]
		}
		parse := func(r io.Reader) ([]profile.Observation, error) {
			return camitax.Parse(r, sampleID)
		}
		return runConvert(cmd.Context(), input, "camitax", parse, false, true)
	},
}
