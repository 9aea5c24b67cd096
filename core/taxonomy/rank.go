// core/taxonomy/rank.go
package taxonomy

// Ranks is the canonical CAMI rank schema, coarsest to finest. Fixed length,
// fixed order; rank-indexed slices throughout the codebase use this ordering.
var Ranks = []string{
	"superkingdom",
	"phylum",
	"class",
	"order",
	"family",
	"genus",
	"species",
}

// NumRanks is len(Ranks); exported so callers can size rank-indexed slices.
const NumRanks = 7

// NA marks "no known identifier/name at this rank".
const NA = "NA"

// rankCodes maps Kraken-style single-letter rank codes to schema ranks.
// U (unclassified) and R (root) have no schema rank.
var rankCodes = map[string]string{
	"D": "superkingdom",
	"K": "superkingdom",
	"P": "phylum",
	"C": "class",
	"O": "order",
	"F": "family",
	"G": "genus",
	"S": "species",
}

// RankIndex returns the position of rank in the schema, or -1 when the rank
// is not part of it.
func RankIndex(rank string) int {
	for i, r := range Ranks {
		if r == rank {
			return i
		}
	}
	return -1
}

// RankFromCode resolves a single-letter rank code (e.g. "S", "G") to the
// schema rank name. Sub-rank codes like "S1" resolve via their leading
// letter. ok is false for unclassified/root/unknown codes.
func RankFromCode(code string) (rank string, ok bool) {
	if code == "" {
		return "", false
	}
	r, ok := rankCodes[code[:1]]
	return r, ok
}

// PadPath returns a copy of values with exactly NumRanks elements: missing
// positions are filled with NA, extra positions are dropped. Total and
// idempotent.
func PadPath(values []string) []string {
	out := make([]string, NumRanks)
	for i := 0; i < NumRanks; i++ {
		if i < len(values) {
			out[i] = values[i]
		} else {
			out[i] = NA
		}
	}
	return out
}
