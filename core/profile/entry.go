// core/profile/entry.go
package profile

import (
	"sort"

	"camiconv/core/taxonomy"
)

// Entry is one taxon/rank row of a profile. Weight holds a raw abundance
// until Normalize rescales it into a percentage.
type Entry struct {
	TaxID  string
	Rank   string
	Path   taxonomy.Path
	Weight float64
}

// Key uniquely identifies an Entry within a profile.
type Key struct {
	Rank  string
	TaxID string
}

// Profile is the canonical output artifact of one conversion run.
type Profile struct {
	SampleID string
	ToolID   string
	Entries  []Entry
}

// Observation is one raw classification emitted by a tool adapter:
// a taxon at a rank, carrying a weight (read count, percentage, ...) and
// whatever lineage the tool supplied. Tools that report names instead of
// identifiers leave TaxID empty and set Name for the resolver; Path may be
// all-sentinel until the resolver fills it in. Fallbacks lists coarser
// stand-ins tried in order when Name itself stays unresolved.
type Observation struct {
	Rank      string
	TaxID     string
	Name      string
	Weight    float64
	Path      taxonomy.Path
	Fallbacks []Candidate
}

// Candidate is one fallback assignment for an Observation. A Candidate
// with a TaxID applies directly; one with only a Name applies when the
// name batch resolved it.
type Candidate struct {
	Name  string
	TaxID string
	Rank  string
}

// SortEntries orders entries ascending by (TaxID, Rank), the default
// deterministic output order.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TaxID != entries[j].TaxID {
			return entries[i].TaxID < entries[j].TaxID
		}
		return entries[i].Rank < entries[j].Rank
	})
}
