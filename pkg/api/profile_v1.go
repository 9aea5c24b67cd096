// pkg/api/profile_v1.go
package api

// ProfileV1 is the stable JSON schema for converted profiles.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ProfileV1 struct {
	SampleID string    `json:"sample_id"`
	ToolID   string    `json:"tool_id"`
	Version  string    `json:"version"`
	Ranks    []string  `json:"ranks"`
	Entries  []EntryV1 `json:"entries"`
}

// EntryV1 is one taxon/rank row. TaxPath and TaxPathSN are pipe-joined,
// sentinel-padded to the rank schema length, matching the text format.
type EntryV1 struct {
	TaxID      string  `json:"taxid"`
	Rank       string  `json:"rank"`
	TaxPath    string  `json:"taxpath"`
	TaxPathSN  string  `json:"taxpathsn"`
	Percentage float64 `json:"percentage"`
}
