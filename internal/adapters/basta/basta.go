// internal/adapters/basta/basta.go

// Package basta parses BASTA last-common-ancestor assignment tables into
// raw observations. Each input row is one query sequence with a
// semicolon-separated lineage of names and, in some BASTA versions, a
// trailing numeric taxid column. Every query contributes weight 1.
package basta

import (
	"bufio"
	"io"
	"strings"

	"camiconv/core/profile"
	"camiconv/core/taxonomy"
)

// canonical shortcuts for the four domains BASTA frequently reports as the
// whole lineage; resolving these through taxonkit would be a wasted trip.
var canonical = map[string]struct {
	taxid string
	rank  string
}{
	"bacteria":  {"2", "superkingdom"},
	"archaea":   {"2157", "superkingdom"},
	"eukaryota": {"2759", "superkingdom"},
	"viruses":   {"10239", "superkingdom"},
}

// Parse reads a BASTA assignment table. Rows without a query id or a
// lineage are skipped. When the row carries a numeric taxid it is used
// directly with a rank inferred from lineage depth; otherwise the deepest
// lineage name is handed to the resolver with the coarser names as
// fallback candidates (canonical domain names short-circuit the lookup).
func Parse(r io.Reader) ([]profile.Observation, error) {
	var obs []profile.Observation
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		row := strings.Split(sc.Text(), "\t")
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		var lineageRaw string
		if len(row) > 1 {
			lineageRaw = strings.TrimSpace(row[1])
		}
		if lineageRaw == "" {
			continue
		}
		var lineage []string
		for _, tok := range strings.Split(lineageRaw, ";") {
			if tok = strings.TrimSpace(tok); tok != "" {
				lineage = append(lineage, tok)
			}
		}
		if len(lineage) == 0 {
			continue
		}

		taxid := providedTaxID(row[2:])
		if taxid != "" {
			depth := len(lineage)
			if depth > taxonomy.NumRanks {
				depth = taxonomy.NumRanks
			}
			obs = append(obs, profile.Observation{
				Rank:   taxonomy.Ranks[depth-1],
				TaxID:  taxid,
				Weight: 1,
			})
			continue
		}

		deepest := strings.ReplaceAll(lineage[len(lineage)-1], "_", " ")
		if c, ok := canonical[strings.ToLower(deepest)]; ok {
			obs = append(obs, profile.Observation{Rank: c.rank, TaxID: c.taxid, Weight: 1})
			continue
		}
		// Coarser lineage names back the deepest one up, walked fine to
		// coarse when it misses the resolver. A canonical domain name
		// ends the chain: it applies without a lookup, so nothing past
		// it is reachable.
		var fallbacks []profile.Candidate
		for j := len(lineage) - 2; j >= 0; j-- {
			name := strings.ReplaceAll(lineage[j], "_", " ")
			if c, ok := canonical[strings.ToLower(name)]; ok {
				fallbacks = append(fallbacks, profile.Candidate{TaxID: c.taxid, Rank: c.rank})
				break
			}
			fallbacks = append(fallbacks, profile.Candidate{Name: name})
		}
		obs = append(obs, profile.Observation{Name: deepest, Weight: 1, Fallbacks: fallbacks})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return obs, nil
}

// providedTaxID returns the first all-digit cell, BASTA's optional taxid
// column.
func providedTaxID(cells []string) string {
	for _, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		digits := true
		for _, r := range c {
			if r < '0' || r > '9' {
				digits = false
				break
			}
		}
		if digits {
			return c
		}
	}
	return ""
}
