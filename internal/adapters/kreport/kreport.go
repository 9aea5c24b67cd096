// internal/adapters/kreport/kreport.go

// Package kreport parses Kraken-style classification reports as emitted by
// Kraken2, Centrifuge (centrifuge-kreport) and CLARK, plus the plain
// Centrifuge abundance table.
package kreport

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"camiconv/core/profile"
	"camiconv/core/taxonomy"
)

// Parse reads a kreport: six tab-separated columns of clade percentage,
// clade reads, direct reads, rank code, taxid, indented name. Rows whose
// rank code falls outside the schema (unclassified, root, intermediate
// no-rank clades) are skipped; the clade percentage is the weight.
func Parse(r io.Reader) ([]profile.Observation, error) {
	var obs []profile.Observation
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		cols := strings.Split(sc.Text(), "\t")
		if len(cols) < 6 {
			continue
		}
		rank, ok := taxonomy.RankFromCode(strings.TrimSpace(cols[3]))
		if !ok {
			continue
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(cols[0]), 64)
		if err != nil || pct <= 0 {
			continue
		}
		taxid := strings.TrimSpace(cols[4])
		if !taxonomy.Known(taxid) || taxid == "0" {
			continue
		}
		obs = append(obs, profile.Observation{
			Rank:   rank,
			TaxID:  taxid,
			Name:   strings.TrimSpace(cols[5]),
			Weight: pct,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return obs, nil
}

// ParseCentrifugeTable reads Centrifuge's own report format, a headed
// table with taxID and abundance columns. Abundance is a fraction and is
// scaled to percent; the rank is left for the resolver to infer from the
// lineage. Returns nil when the header does not match, so callers can fall
// back between formats.
func ParseCentrifugeTable(r io.Reader) ([]profile.Observation, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, sc.Err()
	}
	header := strings.Split(sc.Text(), "\t")
	idxTaxid, idxAbund := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "taxID":
			idxTaxid = i
		case "abundance":
			idxAbund = i
		}
	}
	if idxTaxid < 0 || idxAbund < 0 {
		return nil, nil
	}

	var obs []profile.Observation
	for sc.Scan() {
		cols := strings.Split(sc.Text(), "\t")
		if len(cols) <= idxTaxid || len(cols) <= idxAbund {
			continue
		}
		taxid := strings.TrimSpace(cols[idxTaxid])
		if !taxonomy.Known(taxid) || taxid == "0" {
			continue
		}
		frac, err := strconv.ParseFloat(strings.TrimSpace(cols[idxAbund]), 64)
		if err != nil || frac <= 0 {
			continue
		}
		obs = append(obs, profile.Observation{
			TaxID:  taxid,
			Weight: frac * 100.0,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return obs, nil
}
