// cmd/camiconv/cmd_metaphlan.go
package main

import (
	"github.com/spf13/cobra"

	"camiconv/internal/adapters/metaphlan"
)

var metaphlanCmd = &cobra.Command{
	Use:   "metaphlan [profile.tsv]",
	Short: "Convert a MetaPhlAn 4 profile to a CAMI profile",
	Long: `MetaPhlAn reports every rank as its own row with lineage and taxid
chains inline, so no resolver call and no ancestor rollup is needed; rows
are re-keyed and normalized only.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := "-"
		if len(args) == 1 {
			input = args[0]
		}
		return runConvert(cmd.Context(), input, "metaphlan4", metaphlan.Parse, true, false)
	},
}
