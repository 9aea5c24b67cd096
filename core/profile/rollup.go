// core/profile/rollup.go
package profile

import "camiconv/core/taxonomy"

// Rollup propagates each merged entry's weight to every coarser ancestor
// rank named in its lineage, so that filtering the profile to any single
// rank still accounts for weight reported at finer ranks. Ancestors whose
// id is empty or sentinel are skipped: partial lineages contribute only
// where they have information, and nothing is fabricated.
//
// Ancestor entries accumulate across all contributing taxa (a sum, not an
// overwrite), and duplicate (rank, taxid) keys in the input likewise add.
// The returned slice is flat and unordered; callers sort before writing.
func Rollup(merged map[Key]*Entry) []Entry {
	acc := make(map[Key]*Entry, len(merged))

	add := func(k Key, path taxonomy.Path, w float64) {
		if e, ok := acc[k]; ok {
			e.Weight += w
			return
		}
		acc[k] = &Entry{TaxID: k.TaxID, Rank: k.Rank, Path: path.Clone(), Weight: w}
	}

	for k, e := range merged {
		add(k, e.Path, e.Weight)

		rankIdx := taxonomy.RankIndex(k.Rank)
		for i := 0; i < rankIdx; i++ {
			ancestorID := e.Path.IDAt(i)
			if !taxonomy.Known(ancestorID) {
				continue
			}
			add(Key{Rank: taxonomy.Ranks[i], TaxID: ancestorID}, e.Path, e.Weight)
		}
	}

	out := make([]Entry, 0, len(acc))
	for _, e := range acc {
		out = append(out, *e)
	}
	return out
}
