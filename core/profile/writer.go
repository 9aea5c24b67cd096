// core/profile/writer.go
package profile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"camiconv/core/taxonomy"
)

// FormatVersion is the CAMI profiling format version emitted in the
// @Version metadata line.
const FormatVersion = "0.9.1"

// Header is the canonical column header row. Single source of truth for
// all profile writers.
const Header = "@@TAXID\tRANK\tTAXPATH\tTAXPATHSN\tPERCENTAGE"

// Write serializes p in the canonical CAMI text format: four metadata
// lines, the column header, then one tab-separated row per entry with
// percentages printed with exactly six fractional digits. Entries are
// written in the order given; callers wanting the default deterministic
// order run SortEntries first. Output is byte-reproducible for identical
// input and ordering. An empty entry set is valid and yields metadata
// plus header only.
func Write(w io.Writer, p *Profile) error {
	if _, err := fmt.Fprintf(w, "@SampleID:%s\n", p.SampleID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "@Version:%s\n", FormatVersion); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "@Ranks:%s\n", strings.Join(taxonomy.Ranks, "|")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "@ToolID:%s\n", p.ToolID); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for _, e := range p.Entries {
		taxid := strings.TrimSpace(e.TaxID)
		if taxid == "" {
			taxid = taxonomy.NA
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.6f\n",
			taxid,
			strings.ToLower(e.Rank),
			e.Path.JoinIDs(),
			e.Path.JoinNames(),
			e.Weight,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the profile to path, creating parent directories as
// needed.
func WriteFile(path string, p *Profile) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := Write(f, p); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
