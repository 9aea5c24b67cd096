// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EnvSeedsDataDir(t *testing.T) {
	t.Setenv("TAXONKIT_DB", "/srv/taxdump")
	cfg := Default()
	assert.Equal(t, "/srv/taxdump", cfg.Taxonkit.DataDir)
	assert.Equal(t, "cami", cfg.Output.Format)
	assert.True(t, cfg.ShouldNormalize())
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("TAXONKIT_DB", "/env/db")
	path := filepath.Join(t.TempDir(), "camiconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sample_id: sampleA
taxonkit:
  data_dir: /file/db
output:
  format: json
  normalize: false
  norm_scope: per-rank
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sampleA", cfg.SampleID)
	assert.Equal(t, "/file/db", cfg.Taxonkit.DataDir)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.ShouldNormalize())
	assert.Equal(t, "per-rank", cfg.Output.NormScope)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	for _, body := range []string{
		"output:\n  format: xml\n",
		"output:\n  norm_scope: global\n",
		"logging:\n  level: loud\n",
	} {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := Load(path)
		assert.Error(t, err, body)
	}
}
