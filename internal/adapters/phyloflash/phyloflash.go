// internal/adapters/phyloflash/phyloflash.go

// Package phyloflash parses phyloFlash NTU abundance tables: CSV rows of a
// semicolon-separated lineage and a read count. Lineages carry names only,
// so every observation goes through name resolution.
package phyloflash

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"camiconv/core/profile"
	"camiconv/core/taxonomy"
)

// placeholder tokens phyloFlash uses for unassigned lineage segments.
var placeholders = map[string]struct{}{
	"unclassified": {},
	"unassigned":   {},
	"unknown":      {},
	"na":           {},
}

// Parse reads an NTU table. The deepest cleaned lineage name becomes the
// observation's Name at the matching rank; rows with no usable name or a
// non-positive count are skipped.
func Parse(r io.Reader) ([]profile.Observation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var obs []profile.Observation
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		count := 0.0
		if len(row) > 1 {
			count, _ = strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		}
		if count <= 0 {
			continue
		}

		parts := strings.Split(row[0], ";")
		name, rank := deepestName(parts)
		if name == "" {
			continue
		}
		obs = append(obs, profile.Observation{
			Name:   name,
			Rank:   rank,
			Weight: count,
		})
	}
	return obs, nil
}

// deepestName walks the lineage fine-to-coarse and returns the first
// usable name with the schema rank at that depth.
func deepestName(parts []string) (name, rank string) {
	limit := len(parts)
	if limit > taxonomy.NumRanks {
		limit = taxonomy.NumRanks
	}
	for i := limit - 1; i >= 0; i-- {
		if n := cleanName(parts[i]); n != "" {
			return n, taxonomy.Ranks[i]
		}
	}
	return "", ""
}

func cleanName(raw string) string {
	name := strings.TrimSpace(raw)
	if strings.HasPrefix(name, "(") && strings.HasSuffix(name, ")") {
		name = strings.TrimSpace(name[1 : len(name)-1])
	}
	if name == "" {
		return ""
	}
	if _, bad := placeholders[strings.ToLower(name)]; bad {
		return ""
	}
	return name
}
