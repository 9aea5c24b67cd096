// core/profile/normalize.go
package profile

// Scope selects which entry population a normalization pass sums over.
type Scope string

const (
	// ScopeProfile rescales against the sum of every entry in the set,
	// across all ranks at once. This matches the historical converter
	// behavior and is the default.
	ScopeProfile Scope = "profile"
	// ScopePerRank rescales each rank independently, so every rank's
	// entries sum to 100 on their own.
	ScopePerRank Scope = "per-rank"
)

// Normalize rescales entry weights into percentages in place and returns
// the slice. A population whose weights sum to <= 0 is left untouched:
// no division by zero, no fabricated percentages. Up to floating-point
// rounding the operation is idempotent per scope.
func Normalize(entries []Entry, scope Scope) []Entry {
	switch scope {
	case ScopePerRank:
		byRank := make(map[string][]int)
		for i := range entries {
			byRank[entries[i].Rank] = append(byRank[entries[i].Rank], i)
		}
		for _, idxs := range byRank {
			var total float64
			for _, i := range idxs {
				total += entries[i].Weight
			}
			if total <= 0 {
				continue
			}
			for _, i := range idxs {
				entries[i].Weight = 100.0 * entries[i].Weight / total
			}
		}
	default:
		var total float64
		for i := range entries {
			total += entries[i].Weight
		}
		if total <= 0 {
			return entries
		}
		for i := range entries {
			entries[i].Weight = 100.0 * entries[i].Weight / total
		}
	}
	return entries
}
