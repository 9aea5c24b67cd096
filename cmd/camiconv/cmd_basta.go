// cmd/camiconv/cmd_basta.go
package main

import (
	"github.com/spf13/cobra"

	"camiconv/internal/adapters/basta"
)

var bastaCmd = &cobra.Command{
	Use:   "basta [assignments.tsv]",
	Short: "Convert BASTA LCA assignments to a CAMI profile",
	Long: `Reads a BASTA assignment table (query, ;-separated lineage, optional
taxid column) and emits a CAMI profile. Lineage names without a taxid are
resolved through taxonkit in one batch; each query contributes weight 1.

Example:
  camiconv basta basta_out.tsv --sample-id S1 -o profiles/basta.tsv`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := "-"
		if len(args) == 1 {
			input = args[0]
		}
		return runConvert(cmd.Context(), input, "basta", basta.Parse, false, true)
	},
}
