// cmd/camiconv/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"camiconv/internal/config"
	"camiconv/internal/logging"
	"camiconv/internal/version"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	// persistent flags
	configPath string
	taxdbDir   string
	sampleID   string
	outPath    string
	outFormat  string
	normScope  string
	noNorm     bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:     "camiconv",
	Short:   "Convert taxonomic classifier outputs to CAMI profiles",
	Long:    "camiconv converts per-contig and per-read outputs of taxonomic\nclassification tools into canonical CAMI profiling format, rolling\nabundances up the rank hierarchy and normalizing them to percentages.",
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		// Flags not set explicitly fall back to the config file.
		if !cmd.Flags().Changed("taxdb") && cfg.Taxonkit.DataDir != "" {
			taxdbDir = cfg.Taxonkit.DataDir
		}
		if !cmd.Flags().Changed("sample-id") && cfg.SampleID != "" {
			sampleID = cfg.SampleID
		}
		if !cmd.Flags().Changed("format") && cfg.Output.Format != "" {
			outFormat = cfg.Output.Format
		}
		if !cmd.Flags().Changed("norm-scope") && cfg.Output.NormScope != "" {
			normScope = cfg.Output.NormScope
		}
		if !cmd.Flags().Changed("no-normalize") {
			noNorm = !cfg.ShouldNormalize()
		}
		if outFormat != "cami" && outFormat != "json" {
			return fmt.Errorf("invalid --format %q (cami | json)", outFormat)
		}
		if normScope != "profile" && normScope != "per-rank" {
			return fmt.Errorf("invalid --norm-scope %q (profile | per-rank)", normScope)
		}

		logger, err = logging.New(cfg.Logging.Level, verbose)
		return err
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file with shared defaults")
	pf.StringVar(&taxdbDir, "taxdb", "", "taxonkit data dir (default: config file, then $TAXONKIT_DB)")
	pf.StringVar(&sampleID, "sample-id", "", "sample identifier for the @SampleID header")
	pf.StringVarP(&outPath, "out", "o", "", "output path (default: stdout)")
	pf.StringVar(&outFormat, "format", "cami", "output format: cami | json")
	pf.StringVar(&normScope, "norm-scope", "profile", "normalization scope: profile | per-rank")
	pf.BoolVar(&noNorm, "no-normalize", false, "keep raw weights instead of rescaling to percentages")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(bastaCmd, camitaxCmd, centrifugeCmd, kreportCmd, metaphlanCmd, phyloflashCmd, shredCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "camiconv:", err)
		os.Exit(1)
	}
}
