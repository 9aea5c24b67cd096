// core/taxonomy/path.go
package taxonomy

import "strings"

// Path is a full taxon lineage: one identifier and one display name per
// schema rank. Both slices are always exactly NumRanks long; unknown
// positions hold NA.
type Path struct {
	IDs   []string
	Names []string
}

// NewPath builds a Path from id/name slices of any length, padding or
// truncating to the schema.
func NewPath(ids, names []string) Path {
	return Path{IDs: PadPath(ids), Names: PadPath(names)}
}

// EmptyPath returns an all-sentinel Path.
func EmptyPath() Path {
	return NewPath(nil, nil)
}

// ParsePath builds a Path from pipe-joined id and name strings, the form
// taxonkit emits ("2|1224|...|562"). Empty strings yield all-NA slices.
func ParsePath(ids, names string) Path {
	return NewPath(splitPiped(ids), splitPiped(names))
}

// JoinIDs renders the id slice in pipe-joined wire form.
func (p Path) JoinIDs() string { return strings.Join(PadPath(p.IDs), "|") }

// JoinNames renders the name slice in pipe-joined wire form.
func (p Path) JoinNames() string { return strings.Join(PadPath(p.Names), "|") }

// IDAt returns the identifier at rank index i, or NA when out of range.
func (p Path) IDAt(i int) string {
	if i < 0 || i >= len(p.IDs) {
		return NA
	}
	return p.IDs[i]
}

// Known reports whether v carries information, i.e. is neither empty nor
// the sentinel.
func Known(v string) bool { return v != "" && v != NA }

// DeepestRank returns the finest schema rank with a known identifier.
// ok is false when every position is sentinel.
func (p Path) DeepestRank() (rank string, ok bool) {
	for i := NumRanks - 1; i >= 0; i-- {
		if Known(p.IDAt(i)) {
			return Ranks[i], true
		}
	}
	return "", false
}

// Clone returns a deep copy; Paths are shared freely across profile
// entries, so mutation must go through a copy.
func (p Path) Clone() Path {
	return Path{
		IDs:   append([]string(nil), PadPath(p.IDs)...),
		Names: append([]string(nil), PadPath(p.Names)...),
	}
}

func splitPiped(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "|")
}
