// internal/taxonkit/taxonkit.go
package taxonkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"camiconv/core/taxdb"
	"camiconv/core/taxonomy"
)

// reformat template producing one field per schema rank.
const reformatTemplate = "{d}|{p}|{c}|{o}|{f}|{g}|{s}"

// Resolver resolves names and lineages by shelling out to the taxonkit
// CLI. One subprocess round-trip per batch; stdin carries one key per
// line, stdout one tab-separated result per line.
type Resolver struct {
	Exe     string // taxonkit binary; default "taxonkit"
	DataDir string // NCBI taxdump directory; also exported as TAXONKIT_DB

	// run is swappable in tests so output parsing is covered without a
	// taxonkit install.
	run func(ctx context.Context, args []string, stdin string) (string, error)
}

// New returns a Resolver using the taxonkit binary on PATH and the given
// data dir (may be empty to rely on TAXONKIT_DB from the environment).
func New(dataDir string) *Resolver {
	r := &Resolver{Exe: "taxonkit", DataDir: dataDir}
	r.run = r.runExec
	return r
}

// ResolveNames maps taxon names to (taxid, rank) via `taxonkit name2taxid
// --show-rank`. Names that are empty or "unclassified" are skipped before
// the call; names taxonkit cannot resolve are absent from the result.
func (r *Resolver) ResolveNames(ctx context.Context, names []string) (map[string]taxdb.NameHit, error) {
	unique := dedupe(names, func(n string) bool {
		return n != "" && !strings.EqualFold(n, "unclassified")
	})
	if len(unique) == 0 {
		return map[string]taxdb.NameHit{}, nil
	}

	args := []string{"name2taxid", "--show-rank"}
	args = r.appendDataDir(args)
	out, err := r.run(ctx, args, strings.Join(unique, "\n")+"\n")
	if err != nil {
		return nil, err
	}

	hits := make(map[string]taxdb.NameHit)
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 3 || !isDigits(parts[1]) {
			continue
		}
		hits[parts[0]] = taxdb.NameHit{TaxID: parts[1], Rank: parts[2]}
	}
	return hits, nil
}

// ResolvePaths maps taxids to full rank paths via `taxonkit reformat`.
// Unresolved ids are absent from the result; callers fall back to an
// all-sentinel path.
func (r *Resolver) ResolvePaths(ctx context.Context, taxids []string) (map[string]taxonomy.Path, error) {
	unique := dedupe(taxids, taxonomy.Known)
	if len(unique) == 0 {
		return map[string]taxonomy.Path{}, nil
	}

	args := []string{"reformat", "-I", "1", "-f", reformatTemplate, "-t", "-T"}
	args = r.appendDataDir(args)
	out, err := r.run(ctx, args, strings.Join(unique, "\n")+"\n")
	if err != nil {
		return nil, err
	}

	paths := make(map[string]taxonomy.Path)
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		// reformat -t emits: taxid, name path, taxid path.
		paths[parts[0]] = taxonomy.ParsePath(parts[2], parts[1])
	}
	return paths, nil
}

func (r *Resolver) appendDataDir(args []string) []string {
	if r.DataDir != "" {
		args = append(args, "--data-dir", r.DataDir)
	}
	return args
}

func (r *Resolver) runExec(ctx context.Context, args []string, stdin string) (string, error) {
	exe := r.Exe
	if exe == "" {
		exe = "taxonkit"
	}
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = os.Environ()
	if r.DataDir != "" {
		cmd.Env = append(cmd.Env, "TAXONKIT_DB="+r.DataDir)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", fmt.Errorf("%w: %s not found (install taxonkit and set TAXONKIT_DB)", taxdb.ErrUnavailable, exe)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("taxonkit %s: %s", args[0], msg)
	}
	return stdout.String(), nil
}

// dedupe keeps the first occurrence of each value passing keep, sorted for
// a stable batch order.
func dedupe(values []string, keep func(string) bool) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !keep(v) {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
