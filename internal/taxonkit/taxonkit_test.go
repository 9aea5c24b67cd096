// internal/taxonkit/taxonkit_test.go
package taxonkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camiconv/core/taxdb"
)

func fakeRun(t *testing.T, wantSub string, out string) func(context.Context, []string, string) (string, error) {
	return func(_ context.Context, args []string, stdin string) (string, error) {
		t.Helper()
		require.NotEmpty(t, args)
		assert.Equal(t, wantSub, args[0])
		assert.Contains(t, stdin, "\n")
		return out, nil
	}
}

func TestResolveNames_ParsesAndFilters(t *testing.T) {
	r := New("")
	r.run = fakeRun(t, "name2taxid",
		"Escherichia coli\t562\tspecies\n"+
			"Escherichia\t561\tgenus\n"+
			"Mystery bug\t\t\n"+ // unresolved: empty taxid column
			"Weird\tnotanumber\tgenus\n")

	hits, err := r.ResolveNames(context.Background(), []string{
		"Escherichia coli", "Escherichia", "escherichia coli", "", "unclassified", "Mystery bug", "Weird",
	})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, taxdb.NameHit{TaxID: "562", Rank: "species"}, hits["Escherichia coli"])
	assert.Equal(t, taxdb.NameHit{TaxID: "561", Rank: "genus"}, hits["Escherichia"])
}

func TestResolveNames_EmptyBatchSkipsExec(t *testing.T) {
	r := New("")
	r.run = func(context.Context, []string, string) (string, error) {
		t.Fatal("run should not be called for an empty batch")
		return "", nil
	}
	hits, err := r.ResolveNames(context.Background(), []string{"", "unclassified"})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestResolvePaths_Parses(t *testing.T) {
	r := New("/db")
	r.run = func(_ context.Context, args []string, stdin string) (string, error) {
		assert.Equal(t, "reformat", args[0])
		assert.Contains(t, args, "--data-dir")
		assert.Equal(t, "562\n", stdin)
		return "562\tBacteria|Pseudomonadota|Gammaproteobacteria|Enterobacterales|Enterobacteriaceae|Escherichia|Escherichia coli\t2|1224|1236|91347|543|561|562\n", nil
	}

	paths, err := r.ResolvePaths(context.Background(), []string{"562", "562", "NA", ""})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	p := paths["562"]
	assert.Equal(t, "562", p.IDs[6])
	assert.Equal(t, "Escherichia coli", p.Names[6])
}

func TestResolvePaths_ShortLineageIsPadded(t *testing.T) {
	r := New("")
	r.run = fakeRun(t, "reformat", "10239\tViruses\t10239\n")

	paths, err := r.ResolvePaths(context.Background(), []string{"10239"})
	require.NoError(t, err)
	p, ok := paths["10239"]
	require.True(t, ok)
	assert.Equal(t, []string{"10239", "NA", "NA", "NA", "NA", "NA", "NA"}, p.IDs)
}

func TestRunExec_MissingBinaryIsUnavailable(t *testing.T) {
	r := New("")
	r.Exe = "taxonkit-definitely-not-installed"
	_, err := r.ResolveNames(context.Background(), []string{"Escherichia coli"})
	require.Error(t, err)
	assert.ErrorIs(t, err, taxdb.ErrUnavailable)
}

func TestDedupe_SortedStable(t *testing.T) {
	got := dedupe([]string{"b", "a", "b", "c", ""}, func(s string) bool { return s != "" })
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
