package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/chaosgame/cgr"
	"github.com/katalvlaran/chaosgame/kmer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestEncode(t *testing.T) {
	cases := []struct {
		system, seq, want string
	}{
		{systemPlanar, "C", "1\t-0.5\t0.5\n"},
		{systemInteger, "acgt", "4\t3\t-9\n"},
		{systemComplex, "TGCA", "4\t27\n"},
	}
	for _, tc := range cases {
		out, err := run(t, "encode", "-s", tc.system, tc.seq)
		require.NoError(t, err, tc.system)
		assert.Equal(t, tc.want, out, tc.system)
	}

	_, err := run(t, "encode", "-s", "polar", "A")
	assert.Error(t, err)
	_, err = run(t, "encode", "ANA")
	assert.ErrorIs(t, err, cgr.ErrInvalidSymbol)
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "-s", systemInteger, "-n", "4", "--", "3", "-9")
	require.NoError(t, err)
	assert.Equal(t, "ACGT\n", out)

	out, err = run(t, "decode", "-s", systemComplex, "-n", "4", "27")
	require.NoError(t, err)
	assert.Equal(t, "TGCA\n", out)

	out, err = run(t, "decode", "-s", systemPlanar, "-n", "1", "--", "-0.5", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "C\n", out)

	_, err = run(t, "decode", "-s", systemPlanar, "-n", "1", "0", "0.5")
	assert.ErrorIs(t, err, cgr.ErrUnreachableCoordinate)
	_, err = run(t, "decode", "-s", systemPlanar, "-n", "5000", "0.5", "0.5")
	assert.ErrorIs(t, err, cgr.ErrUnreachableCoordinate)
	_, err = run(t, "decode", "-s", systemPlanar, "-n", "1", "0.3", "0.7")
	assert.ErrorIs(t, err, cgr.ErrUnreachableCoordinate)
	_, err = run(t, "decode", "-s", systemInteger, "-n", "4", "3")
	assert.Error(t, err)
	_, err = run(t, "decode", "-s", systemComplex, "-n", "2", "x")
	assert.Error(t, err)
}

func TestMatrix_Probabilities(t *testing.T) {
	in := writeFile(t, "seqs.fa", ">s1\nacgt\n")
	out := filepath.Join(t.TempDir(), "grid.tsv")

	_, err := run(t, "matrix", "-k", "1", "-p", "-q", "-t", "2", "-o", out, in)
	require.NoError(t, err)
	assert.Equal(t, "0.25\t0.25\n0.25\t0.25\n", readFile(t, out))
}

func TestMatrix_CanonicalCounts(t *testing.T) {
	in := writeFile(t, "seqs.fa", ">s1\nTT\n>s2\nAA\n")
	out := filepath.Join(t.TempDir(), "grid.tsv")

	_, err := run(t, "matrix", "-k", "2", "-c", "-q", "-o", out, in)
	require.NoError(t, err)
	// AA is the top-right cell of the 4x4 grid; TT folds into it.
	assert.Equal(t, "0\t0\t0\t2\n0\t0\t0\t0\n0\t0\t0\t0\n0\t0\t0\t0\n", readFile(t, out))
}

func TestMatrix_BadK(t *testing.T) {
	in := writeFile(t, "seqs.fa", ">s1\nACGT\n")
	_, err := run(t, "matrix", "-k", "0", "-q", in)
	assert.Error(t, err)
}

func TestCounts(t *testing.T) {
	in := writeFile(t, "dump.txt", "A\t2\n\nC 2\n")
	out := filepath.Join(t.TempDir(), "grid.tsv")

	_, err := run(t, "counts", "-k", "1", "-p", "-o", out, in)
	require.NoError(t, err)
	assert.Equal(t, "0.5\t0.5\n0\t0\n", readFile(t, out))

	bad := writeFile(t, "bad.txt", "A 2\nC two\n")
	_, err = run(t, "counts", "-k", "1", "-o", out, bad)
	assert.ErrorIs(t, err, kmer.ErrMalformedRecord)
}

func TestCounts_Rescale(t *testing.T) {
	in := writeFile(t, "dump.txt", "A 2\nC 1\n")
	out := filepath.Join(t.TempDir(), "grid.tsv")

	_, err := run(t, "counts", "-k", "1", "-r", "-o", out, in)
	require.NoError(t, err)
	assert.Equal(t, "0.5\t1\n0\t0\n", readFile(t, out))
}

func TestMatrix_Circular(t *testing.T) {
	in := writeFile(t, "seqs.fa", ">s1\nAAAC\n")
	dir := t.TempDir()
	out := filepath.Join(dir, "grid.tsv")
	circ := filepath.Join(dir, "circular.tsv")

	_, err := run(t, "matrix", "-k", "1", "-q", "-o", out, "-C", circ, in)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(readFile(t, circ)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "A\t"))
	assert.True(t, strings.HasSuffix(lines[0], "\t0.75"))
	assert.True(t, strings.HasPrefix(lines[1], "C\t"))
	assert.True(t, strings.HasSuffix(lines[1], "\t0.25"))
}

func TestReads_Quality(t *testing.T) {
	in := writeFile(t, "sample.fq", "@r1\nACGT\n+\nIIII\n@r2\nAC\n+\n++\n")
	prefix := t.TempDir() + string(filepath.Separator)

	_, err := run(t, "reads", "-k", "1", "-Q", "-q", "-o", prefix, in)
	require.NoError(t, err)
	// 'I' is Phred 40 and '+' Phred 10: A and C are seen twice, G and T once.
	assert.Equal(t, "2\t2\n1\t1\n", readFile(t, prefix+"sample.counts.tsv"))
	assert.Equal(t, "25\t25\n40\t40\n", readFile(t, prefix+"sample.quality.tsv"))
}

func TestReads_CountsOnly(t *testing.T) {
	in := writeFile(t, "lane1.fastq", "@r1\nAAAA\n+\nIIII\n")
	prefix := filepath.Join(t.TempDir(), "run-")

	_, err := run(t, "reads", "-k", "2", "-q", "-o", prefix, in)
	require.NoError(t, err)
	assert.FileExists(t, prefix+"lane1.counts.tsv")
	assert.NoFileExists(t, prefix+"lane1.quality.tsv")
}

func TestPhred(t *testing.T) {
	assert.Equal(t, []float64{0, 10, 40}, phred([]byte("!+I")))
}
