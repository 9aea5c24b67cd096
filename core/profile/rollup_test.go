// core/profile/rollup_test.go
package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camiconv/core/taxonomy"
)

func entryByKey(entries []Entry, rank, taxid string) (Entry, bool) {
	for _, e := range entries {
		if e.Rank == rank && e.TaxID == taxid {
			return e, true
		}
	}
	return Entry{}, false
}

func TestRollup_PropagatesToAllAncestors(t *testing.T) {
	// Scenario: merged species observations (3 + 1) propagate weight 4 to
	// every populated ancestor rank.
	merged := Merge([]Observation{
		{Rank: "species", TaxID: "9606", Weight: 3, Path: humanPath()},
		{Rank: "species", TaxID: "9606", Weight: 1, Path: humanPath()},
	})
	entries := Rollup(merged)
	require.Len(t, entries, taxonomy.NumRanks)

	sp, ok := entryByKey(entries, "species", "9606")
	require.True(t, ok)
	assert.Equal(t, 4.0, sp.Weight)

	sk, ok := entryByKey(entries, "superkingdom", "2759")
	require.True(t, ok)
	assert.Equal(t, 4.0, sk.Weight)

	gn, ok := entryByKey(entries, "genus", "9605")
	require.True(t, ok)
	assert.Equal(t, 4.0, gn.Weight)
}

func humanPath() taxonomy.Path {
	return taxonomy.ParsePath(
		"2759|7711|40674|9443|9604|9605|9606",
		"Eukaryota|Chordata|Mammalia|Primates|Hominidae|Homo|Homo sapiens",
	)
}

func TestRollup_SharedAncestorSums(t *testing.T) {
	// Two unrelated species under the same genus: the genus entry gets the
	// sum of both weights, not the maximum.
	pathA := taxonomy.ParsePath("2|1224|1236|91347|543|561|562", "")
	pathB := taxonomy.ParsePath("2|1224|1236|91347|543|561|564", "")
	merged := Merge([]Observation{
		{Rank: "species", TaxID: "562", Weight: 3, Path: pathA},
		{Rank: "species", TaxID: "564", Weight: 5, Path: pathB},
	})
	entries := Rollup(merged)

	gn, ok := entryByKey(entries, "genus", "561")
	require.True(t, ok)
	assert.Equal(t, 8.0, gn.Weight)

	sk, ok := entryByKey(entries, "superkingdom", "2")
	require.True(t, ok)
	assert.Equal(t, 8.0, sk.Weight)
}

func TestRollup_SkipsSentinelAncestors(t *testing.T) {
	// Partial lineage: phylum through family unknown. Only superkingdom and
	// genus receive ancestor credit; nothing is fabricated in between.
	partial := taxonomy.ParsePath("2|NA|NA|NA|NA|561|562", "")
	merged := Merge([]Observation{
		{Rank: "species", TaxID: "562", Weight: 2, Path: partial},
	})
	entries := Rollup(merged)
	require.Len(t, entries, 3)

	_, ok := entryByKey(entries, "phylum", "NA")
	assert.False(t, ok)
	sk, ok := entryByKey(entries, "superkingdom", "2")
	require.True(t, ok)
	assert.Equal(t, 2.0, sk.Weight)
}

func TestRollup_AncestorTotalNeverExceedsFinest(t *testing.T) {
	pathA := taxonomy.ParsePath("2|1224|1236|91347|543|561|562", "")
	partial := taxonomy.ParsePath("2|NA|NA|NA|NA|NA|573", "")
	merged := Merge([]Observation{
		{Rank: "species", TaxID: "562", Weight: 3, Path: pathA},
		{Rank: "species", TaxID: "573", Weight: 4, Path: partial},
	})
	entries := Rollup(merged)

	var speciesTotal, phylumTotal float64
	for _, e := range entries {
		switch e.Rank {
		case "species":
			speciesTotal += e.Weight
		case "phylum":
			phylumTotal += e.Weight
		}
	}
	assert.Equal(t, 7.0, speciesTotal)
	// Only the fully-lineaged taxon reaches phylum.
	assert.Equal(t, 3.0, phylumTotal)
	assert.LessOrEqual(t, phylumTotal, speciesTotal)
}

func TestRollup_ExistingAncestorEntryAccumulates(t *testing.T) {
	// A directly observed genus entry also receives rollup from a species
	// below it.
	path := taxonomy.ParsePath("2|1224|1236|91347|543|561|562", "")
	merged := Merge([]Observation{
		{Rank: "genus", TaxID: "561", Weight: 10, Path: path},
		{Rank: "species", TaxID: "562", Weight: 4, Path: path},
	})
	entries := Rollup(merged)

	gn, ok := entryByKey(entries, "genus", "561")
	require.True(t, ok)
	assert.Equal(t, 14.0, gn.Weight)
}

func TestRollup_Empty(t *testing.T) {
	assert.Empty(t, Rollup(map[Key]*Entry{}))
}
