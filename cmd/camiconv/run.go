// cmd/camiconv/run.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"camiconv/core/profile"
	"camiconv/core/taxdb"
	"camiconv/internal/convert"
	"camiconv/internal/taxonkit"
)

// parseFunc turns one tool's report stream into raw observations.
type parseFunc func(io.Reader) ([]profile.Observation, error)

// runConvert is the shared body of every converter subcommand: parse the
// input file, run the conversion pipeline against taxonkit, and serialize
// the profile. needResolver=false skips taxonkit entirely for adapters
// that supply complete lineages.
func runConvert(ctx context.Context, inputPath, toolID string, parse parseFunc, noRollup, needResolver bool) error {
	obs, err := parseInput(inputPath, parse)
	if err != nil {
		return fmt.Errorf("parse %s input: %w", toolID, err)
	}

	var resolver taxdb.Resolver
	if needResolver {
		resolver = taxonkit.New(taxdbDir)
	}

	p, _, err := convert.Build(ctx, obs, resolver, convert.Options{
		SampleID:  sampleID,
		ToolID:    toolID,
		NoRollup:  noRollup,
		Normalize: !noNorm,
		Scope:     profile.Scope(normScope),
	}, logger)
	if err != nil {
		return err
	}
	return writeProfile(p)
}

func parseInput(path string, parse parseFunc) ([]profile.Observation, error) {
	if path == "-" || path == "" {
		return parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return parse(f)
}

func writeProfile(p *profile.Profile) error {
	if outFormat == "json" {
		if outPath == "" {
			return profile.WriteJSON(os.Stdout, p)
		}
		f, err := createWithParents(outPath)
		if err != nil {
			return err
		}
		if err := profile.WriteJSON(f, p); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
	if outPath == "" {
		return profile.Write(os.Stdout, p)
	}
	return profile.WriteFile(outPath, p)
}

func createWithParents(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}
