// core/taxdb/resolver.go
package taxdb

import (
	"context"
	"errors"

	"camiconv/core/taxonomy"
)

// ErrUnavailable means the external taxonomy backend could not be invoked
// at all (e.g. missing executable). Fatal to a conversion run; callers
// must not write partial output.
var ErrUnavailable = errors.New("taxonomy resolver unavailable")

// NameHit is the resolution of a taxon name.
type NameHit struct {
	TaxID string
	Rank  string
}

// Resolver is the batched lookup service the conversion pipeline consumes.
// Both operations are invoked at most once per run, over all distinct keys.
// Unresolved keys are absent from the returned map; absence means "drop the
// observation" (names) or "fall back to an all-sentinel path" (ids), never
// an error.
type Resolver interface {
	ResolveNames(ctx context.Context, names []string) (map[string]NameHit, error)
	ResolvePaths(ctx context.Context, taxids []string) (map[string]taxonomy.Path, error)
}
