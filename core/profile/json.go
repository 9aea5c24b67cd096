// core/profile/json.go
package profile

import (
	"encoding/json"
	"io"
	"strings"

	"camiconv/core/taxonomy"
	"camiconv/pkg/api"
)

// ToAPIProfile converts a domain Profile to the stable wire schema (v1).
func ToAPIProfile(p *Profile) api.ProfileV1 {
	v := api.ProfileV1{
		SampleID: p.SampleID,
		ToolID:   p.ToolID,
		Version:  FormatVersion,
		Ranks:    append([]string(nil), taxonomy.Ranks...),
		Entries:  make([]api.EntryV1, 0, len(p.Entries)),
	}
	for _, e := range p.Entries {
		v.Entries = append(v.Entries, api.EntryV1{
			TaxID:      e.TaxID,
			Rank:       strings.ToLower(e.Rank),
			TaxPath:    e.Path.JoinIDs(),
			TaxPathSN:  e.Path.JoinNames(),
			Percentage: e.Weight,
		})
	}
	return v
}

// WriteJSON writes the profile as a single pretty-indented JSON document.
func WriteJSON(w io.Writer, p *Profile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIProfile(p))
}
