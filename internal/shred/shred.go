// internal/shred/shred.go

// Package shred slices assembled contigs into synthetic single-end FASTQ
// reads so that read-based classifiers (Kraken, Centrifuge, CLARK) can be
// run on assemblies without the original raw data.
package shred

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"camiconv/core/fasta"
)

// Options controls the slicing windows.
type Options struct {
	ChunkSize int // window size in bp
	MinChunk  int // minimum tail window to emit
}

// DefaultOptions matches the historical converter defaults.
var DefaultOptions = Options{ChunkSize: 250, MinChunk: 100}

// File shreds the FASTA at path ("-" for stdin, gzip transparent) into w.
// Returns the number of reads written.
func File(ctx context.Context, path string, w io.Writer, opt Options) (int, error) {
	bw := bufio.NewWriter(w)
	total := 0
	err := fasta.ForEachCtx(ctx, path, func(rec fasta.Record) error {
		n, err := writeReads(bw, rec, opt)
		total += n
		return err
	})
	if err != nil {
		return total, err
	}
	return total, bw.Flush()
}

// writeReads emits the windows of one contig. Sequence is uppercased with
// N replaced by A (classifier k-mer friendliness); quality is constant 'I'.
// A contig at most one window long is emitted whole; a trailing window
// shorter than MinChunk is dropped unless it is the only one.
func writeReads(w io.Writer, rec fasta.Record, opt Options) (int, error) {
	seq := sanitize(rec.Seq)
	if len(seq) == 0 {
		return 0, nil
	}
	if opt.ChunkSize <= 0 {
		opt.ChunkSize = DefaultOptions.ChunkSize
	}

	if len(seq) <= opt.ChunkSize {
		if err := writeRead(w, rec.ID, 0, len(seq), seq); err != nil {
			return 0, err
		}
		return 1, nil
	}

	n := 0
	for start := 0; start < len(seq); start += opt.ChunkSize {
		end := start + opt.ChunkSize
		if end > len(seq) {
			end = len(seq)
		}
		if end-start < opt.MinChunk && start != 0 {
			break
		}
		if err := writeRead(w, rec.ID, start, end, seq[start:end]); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func writeRead(w io.Writer, id string, start, end int, seq []byte) error {
	qual := bytes.Repeat([]byte{'I'}, len(seq))
	_, err := fmt.Fprintf(w, "@%s|%d|%d\n%s\n+\n%s\n", id, start, end, seq, qual)
	return err
}

func sanitize(seq []byte) []byte {
	out := bytes.ToUpper(seq)
	return bytes.ReplaceAll(out, []byte{'N'}, []byte{'A'})
}
