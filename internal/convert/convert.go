// internal/convert/convert.go
package convert

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"camiconv/core/profile"
	"camiconv/core/taxdb"
	"camiconv/core/taxonomy"
)

// Options configures one conversion run.
type Options struct {
	SampleID  string
	ToolID    string
	NoRollup  bool          // skip ancestor propagation (tools that already report every rank)
	Normalize bool          // rescale weights into percentages
	Scope     profile.Scope // normalization population (whole profile vs per rank)
}

// Stats summarizes what happened to the raw observations of a run. Dropped
// observations never abort the run; they are logged and counted here.
type Stats struct {
	Raw           int // observations handed in by the adapter
	DroppedNames  int // name-only observations the resolver could not map
	DroppedMerge  int // discarded at merge (bad weight/rank/taxid)
	Entries       int // final profile rows after rollup
	ResolvedPaths int // lineages filled in by the resolver
}

// Build turns raw adapter observations into a finished Profile. The run is
// a pure function of its inputs plus resolver responses; all accumulation
// state is local to the call.
//
// The resolver is consulted at most twice, batched over all distinct keys:
// once to map names to taxids, once to fill in lineages. Observations whose
// name and fallback candidates all stay unresolved are dropped silently; taxids without a resolvable
// lineage keep an all-sentinel path. A nil resolver skips both calls, for
// adapters that supply complete lineages themselves. Resolver transport
// failure (taxdb.ErrUnavailable wrapped) aborts the run before any output
// exists.
func Build(ctx context.Context, obs []profile.Observation, r taxdb.Resolver, opts Options, log *zap.Logger) (*profile.Profile, Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("tool", opts.ToolID),
		zap.String("sample", opts.SampleID),
	)

	stats := Stats{Raw: len(obs)}

	// Batch 1: names -> taxids for observations that arrived without one.
	// Fallback candidate names ride in the same batch, so the chain walk
	// below never costs a second resolver call.
	if r != nil {
		var names []string
		for i := range obs {
			if taxonomy.Known(obs[i].TaxID) {
				continue
			}
			if obs[i].Name != "" {
				names = append(names, obs[i].Name)
			}
			for _, c := range obs[i].Fallbacks {
				if c.TaxID == "" && c.Name != "" {
					names = append(names, c.Name)
				}
			}
		}
		hits := map[string]taxdb.NameHit{}
		if len(names) > 0 {
			var err error
			hits, err = r.ResolveNames(ctx, names)
			if err != nil {
				return nil, stats, err
			}
		}
		for i := range obs {
			if taxonomy.Known(obs[i].TaxID) || (obs[i].Name == "" && len(obs[i].Fallbacks) == 0) {
				continue
			}
			hit, ok := hits[obs[i].Name]
			if !ok {
				// Walk the coarser candidates, finest first. A candidate
				// carrying its own taxid always applies.
				for _, c := range obs[i].Fallbacks {
					if c.TaxID != "" {
						hit, ok = taxdb.NameHit{TaxID: c.TaxID, Rank: c.Rank}, true
						break
					}
					if hit, ok = hits[c.Name]; ok {
						break
					}
				}
			}
			if !ok {
				stats.DroppedNames++
				continue
			}
			obs[i].TaxID = hit.TaxID
			// The resolver's rank wins over whatever the adapter derived
			// from lineage shape; off-schema resolver ranks fall through
			// to lineage inference below.
			if taxonomy.RankIndex(hit.Rank) >= 0 || taxonomy.RankIndex(obs[i].Rank) < 0 {
				obs[i].Rank = hit.Rank
			}
		}
		if stats.DroppedNames > 0 {
			log.Warn("unresolved names dropped", zap.Int("count", stats.DroppedNames))
		}
	}

	// Batch 2: taxids -> lineages, for observations missing a path or a
	// usable rank. Distinct ids only; one subprocess round-trip.
	if r != nil {
		needPath := make(map[string]struct{})
		for i := range obs {
			if !taxonomy.Known(obs[i].TaxID) {
				continue
			}
			_, hasPath := obs[i].Path.DeepestRank()
			if !hasPath || taxonomy.RankIndex(obs[i].Rank) < 0 {
				needPath[obs[i].TaxID] = struct{}{}
			}
		}
		if len(needPath) > 0 {
			ids := make([]string, 0, len(needPath))
			for id := range needPath {
				ids = append(ids, id)
			}
			paths, err := r.ResolvePaths(ctx, ids)
			if err != nil {
				return nil, stats, err
			}
			stats.ResolvedPaths = len(paths)
			for i := range obs {
				p, ok := paths[obs[i].TaxID]
				if !ok {
					continue
				}
				if _, hasPath := obs[i].Path.DeepestRank(); !hasPath {
					obs[i].Path = p
				}
				if taxonomy.RankIndex(obs[i].Rank) < 0 {
					if rank, ok := obs[i].Path.DeepestRank(); ok {
						obs[i].Rank = rank
					}
				}
			}
		}
	}

	merged := profile.Merge(obs)
	stats.DroppedMerge = stats.Raw - stats.DroppedNames - mergedWeightCount(obs, merged)

	var entries []profile.Entry
	if opts.NoRollup {
		entries = make([]profile.Entry, 0, len(merged))
		for _, e := range merged {
			entries = append(entries, *e)
		}
	} else {
		entries = profile.Rollup(merged)
	}
	if opts.Normalize {
		profile.Normalize(entries, opts.Scope)
	}
	profile.SortEntries(entries)
	stats.Entries = len(entries)

	log.Info("profile built",
		zap.Int("observations", stats.Raw),
		zap.Int("entries", stats.Entries),
		zap.Int("dropped_names", stats.DroppedNames),
		zap.Int("dropped_merge", stats.DroppedMerge),
	)

	return &profile.Profile{
		SampleID: opts.SampleID,
		ToolID:   opts.ToolID,
		Entries:  entries,
	}, stats, nil
}

// mergedWeightCount counts how many raw observations survived merging,
// i.e. were neither invalid nor name-dropped.
func mergedWeightCount(obs []profile.Observation, merged map[profile.Key]*profile.Entry) int {
	n := 0
	for _, o := range obs {
		if o.Weight <= 0 || taxonomy.RankIndex(o.Rank) < 0 || !taxonomy.Known(o.TaxID) {
			continue
		}
		if _, ok := merged[profile.Key{Rank: o.Rank, TaxID: o.TaxID}]; ok {
			n++
		}
	}
	return n
}
