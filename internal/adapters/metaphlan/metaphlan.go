// internal/adapters/metaphlan/metaphlan.go

// Package metaphlan parses MetaPhlAn 4 profile tables. Each data row is a
// clade: a k__|p__|...-prefixed lineage, a pipe-joined NCBI taxid chain
// aligned with it, and a relative abundance. Rows already exist for every
// rank, so converted profiles are written without ancestor rollup.
package metaphlan

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"camiconv/core/profile"
	"camiconv/core/taxonomy"
)

var prefixRank = map[string]int{
	"k": 0, // kingdom maps onto superkingdom
	"p": 1,
	"c": 2,
	"o": 3,
	"f": 4,
	"g": 5,
	"s": 6,
}

// Parse reads a MetaPhlAn profile. Comment lines (#) are skipped. The
// clade's rank is the deepest prefixed component; its taxid the last
// element of the taxid chain. Rows whose lineage has no recognizable
// prefix (e.g. the UNCLASSIFIED row) are dropped.
func Parse(r io.Reader) ([]profile.Observation, error) {
	var obs []profile.Observation
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 3 {
			continue
		}
		abundance, err := strconv.ParseFloat(strings.TrimSpace(cols[2]), 64)
		if err != nil || abundance <= 0 {
			continue
		}

		names, deepest := lineageNames(cols[0])
		if deepest < 0 {
			continue
		}
		ids := taxidChain(cols[1])
		taxid := ""
		if len(ids) > 0 {
			taxid = ids[len(ids)-1]
		}
		if !taxonomy.Known(taxid) {
			continue
		}

		obs = append(obs, profile.Observation{
			Rank:   taxonomy.Ranks[deepest],
			TaxID:  taxid,
			Weight: abundance,
			Path:   taxonomy.NewPath(ids, names),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return obs, nil
}

// lineageNames expands "k__Bacteria|p__Pseudomonadota|..." into a
// rank-indexed name slice and reports the deepest rank index seen (-1 when
// none).
func lineageNames(lineage string) ([]string, int) {
	names := make([]string, taxonomy.NumRanks)
	for i := range names {
		names[i] = taxonomy.NA
	}
	deepest := -1
	for _, comp := range strings.Split(lineage, "|") {
		prefix, name, found := strings.Cut(comp, "__")
		if !found {
			continue
		}
		idx, ok := prefixRank[strings.ToLower(prefix)]
		if !ok {
			continue
		}
		name = strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
		if name == "" {
			continue
		}
		names[idx] = name
		if idx > deepest {
			deepest = idx
		}
	}
	return names, deepest
}

// taxidChain splits the pipe-joined taxid column, dropping empty cells.
func taxidChain(field string) []string {
	var ids []string
	for _, tok := range strings.Split(field, "|") {
		if tok = strings.TrimSpace(tok); tok != "" {
			ids = append(ids, tok)
		}
	}
	return ids
}
