// cmd/camiconv/cmd_phyloflash.go
package main

import (
	"github.com/spf13/cobra"

	"camiconv/internal/adapters/phyloflash"
)

var phyloflashCmd = &cobra.Command{
	Use:   "phyloflash [ntu_table.csv]",
	Short: "Convert a phyloFlash NTU abundance table to a CAMI profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := "-"
		if len(args) == 1 {
			input = args[0]
		}
		return runConvert(cmd.Context(), input, "phyloflash", phyloflash.Parse, false, true)
	},
}
