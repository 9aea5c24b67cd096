// internal/shred/shred_test.go
package shred

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFasta(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contigs.fasta")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFile_ShortContigSingleRead(t *testing.T) {
	path := writeFasta(t, ">c1\nACGTN\n")
	var buf bytes.Buffer
	n, err := File(context.Background(), path, &buf, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "@c1|0|5\nACGTA\n+\nIIIII\n", buf.String())
}

func TestFile_WindowsAndOffsets(t *testing.T) {
	seq := strings.Repeat("ACGT", 150) // 600 bp
	path := writeFasta(t, ">c1\n"+seq+"\n")
	var buf bytes.Buffer
	n, err := File(context.Background(), path, &buf, Options{ChunkSize: 250, MinChunk: 100})
	require.NoError(t, err)
	assert.Equal(t, 3, n) // 0-250, 250-500, and the 100bp tail (== MinChunk)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "@c1|0|250", lines[0])
	assert.Equal(t, "@c1|250|500", lines[4])
	assert.Equal(t, "@c1|500|600", lines[8])
	assert.Len(t, lines[1], 250)
	assert.Len(t, lines[3], 250) // quality same length as sequence
	assert.Len(t, lines[9], 100)
}

func TestFile_TailAtLeastMinChunkKept(t *testing.T) {
	seq := strings.Repeat("A", 350) // windows 0-250 and tail 250-350 (100bp)
	path := writeFasta(t, ">c1\n"+seq+"\n")
	var buf bytes.Buffer
	n, err := File(context.Background(), path, &buf, Options{ChunkSize: 250, MinChunk: 100})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, buf.String(), "@c1|250|350\n")
}

func TestFile_ShortTailDropped(t *testing.T) {
	seq := strings.Repeat("A", 300) // tail 250-300 is 50bp < MinChunk
	path := writeFasta(t, ">c1\n"+seq+"\n")
	var buf bytes.Buffer
	n, err := File(context.Background(), path, &buf, Options{ChunkSize: 250, MinChunk: 100})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotContains(t, buf.String(), "|250|300")
}

func TestFile_EmptyRecordSkipped(t *testing.T) {
	path := writeFasta(t, ">empty\n>c1\nACGT\n")
	var buf bytes.Buffer
	n, err := File(context.Background(), path, &buf, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "@c1|0|4\nACGT\n+\nIIII\n", buf.String())
}

func TestFile_LowercaseUppercased(t *testing.T) {
	path := writeFasta(t, ">c1\nacgtn\n")
	var buf bytes.Buffer
	_, err := File(context.Background(), path, &buf, DefaultOptions)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ACGTA")
}
