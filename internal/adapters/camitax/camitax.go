// internal/adapters/camitax/camitax.go

// Package camitax parses CAMITAX per-genome classification summaries
// (camitax.tsv) into raw observations. Each row is one genome with the
// NCBI taxid and rank CAMITAX settled on; genomes weigh equally, so the
// percentages fall out of normalization.
package camitax

import (
	"bufio"
	"io"
	"strings"

	"camiconv/core/profile"
)

// Parse reads a camitax.tsv summary. The header row is skipped, and when
// sampleID is non-empty so are rows whose genome field does not mention
// it (shared report files carry several samples). Rows need a numeric
// taxid; a missing rank cell defaults to species, and off-schema ranks
// get corrected from the resolved lineage downstream.
func Parse(r io.Reader, sampleID string) ([]profile.Observation, error) {
	var obs []profile.Observation
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		cells := strings.Split(sc.Text(), "\t")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if cells[0] == "" || strings.HasPrefix(strings.ToLower(cells[0]), "genome") {
			continue
		}
		if sampleID != "" && !strings.Contains(cells[0], sampleID) {
			continue
		}
		if len(cells) < 2 || !isDigits(cells[1]) {
			continue
		}
		rank := "species"
		if len(cells) > 3 && cells[3] != "" {
			rank = strings.ToLower(cells[3])
		}
		obs = append(obs, profile.Observation{
			Rank:   rank,
			TaxID:  cells[1],
			Weight: 1,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return obs, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
