// core/profile/merge.go
package profile

import "camiconv/core/taxonomy"

// Merge deduplicates raw observations keyed by (rank, taxid), summing
// weights. The first-seen Path for a key is kept, except that an
// all-sentinel path is upgraded by a later observation that carries one.
// Observations with weight <= 0, a rank outside the schema, or an
// empty/sentinel taxid are discarded. Accumulation is commutative and
// associative, so input order never changes the result.
func Merge(obs []Observation) map[Key]*Entry {
	merged := make(map[Key]*Entry, len(obs))
	for _, o := range obs {
		if o.Weight <= 0 {
			continue
		}
		if taxonomy.RankIndex(o.Rank) < 0 {
			continue
		}
		if !taxonomy.Known(o.TaxID) {
			continue
		}
		k := Key{Rank: o.Rank, TaxID: o.TaxID}
		e, ok := merged[k]
		if !ok {
			merged[k] = &Entry{
				TaxID:  o.TaxID,
				Rank:   o.Rank,
				Path:   o.Path.Clone(),
				Weight: o.Weight,
			}
			continue
		}
		e.Weight += o.Weight
		if _, known := e.Path.DeepestRank(); !known {
			if _, has := o.Path.DeepestRank(); has {
				e.Path = o.Path.Clone()
			}
		}
	}
	return merged
}
