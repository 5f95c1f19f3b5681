package kmer_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/kmer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTally(t *testing.T, k int, opts ...kmer.Option) *kmer.Tally {
	t.Helper()
	tl, err := kmer.NewTally(k, alphabet.DNA(), opts...)
	require.NoError(t, err)

	return tl
}

//----------------------------------------------------------------------------//
// Windows
//----------------------------------------------------------------------------//

// TestWindows_SkipsAmbiguous checks offsets and the N skip.
func TestWindows_SkipsAmbiguous(t *testing.T) {
	var offsets []int
	var got []string
	for off, km := range kmer.Windows("ACGNTACG", 3, alphabet.DNA()) {
		offsets = append(offsets, off)
		got = append(got, km)
	}
	assert.Equal(t, []int{0, 4, 5}, offsets)
	assert.Equal(t, []string{"ACG", "TAC", "ACG"}, got)
}

// TestWindows_Restartable iterates twice and stops early once.
func TestWindows_Restartable(t *testing.T) {
	it := kmer.Windows("AAAAA", 2, alphabet.DNA())
	count := func() int {
		n := 0
		for range it {
			n++
		}
		return n
	}
	assert.Equal(t, 4, count())
	assert.Equal(t, 4, count())

	for off := range it {
		assert.Equal(t, 0, off)
		break
	}
}

// TestWindows_Degenerate covers short input and bad k.
func TestWindows_Degenerate(t *testing.T) {
	for range kmer.Windows("AC", 3, alphabet.DNA()) {
		t.Fatal("no window expected for a sequence shorter than k")
	}
	for range kmer.Windows("ACGT", 0, alphabet.DNA()) {
		t.Fatal("no window expected for k=0")
	}
}

//----------------------------------------------------------------------------//
// Tally
//----------------------------------------------------------------------------//

// TestTally_ACGT is the k=1 scenario: every symbol once.
func TestTally_ACGT(t *testing.T) {
	tl := newTally(t, 1)
	require.NoError(t, tl.Add("ACGT"))
	for _, s := range []string{"A", "C", "G", "T"} {
		assert.Equal(t, uint64(1), tl.Count(s))
	}
	assert.Equal(t, uint64(4), tl.Windows())
	assert.Equal(t, uint64(4), tl.Valid())
	assert.Equal(t, 4, tl.Distinct())
}

// TestTally_ConservationWithAmbiguity counts only valid windows.
func TestTally_ConservationWithAmbiguity(t *testing.T) {
	tl := newTally(t, 2)
	require.NoError(t, tl.Add("ACNGTT"))  // windows: AC, CN, NG, GT, TT → 3 valid
	require.NoError(t, tl.Add("GT"))      // 1 valid
	require.NoError(t, tl.Add("A"))       // shorter than k
	assert.Equal(t, uint64(6), tl.Windows())
	assert.Equal(t, uint64(4), tl.Valid())
	assert.Equal(t, uint64(2), tl.Count("GT"))

	var sum uint64
	for _, e := range tl.All() {
		sum += e.Count
	}
	assert.Equal(t, tl.Valid(), sum)
}

// TestTally_Quality checks the mean-of-means rescale.
func TestTally_Quality(t *testing.T) {
	tl := newTally(t, 2, kmer.WithQuality())
	require.NoError(t, tl.AddQuality("AC", []float64{10, 20})) // q1 = 15
	require.NoError(t, tl.AddQuality("AC", []float64{30, 40})) // q2 = 35
	assert.Equal(t, uint64(2), tl.Count("AC"))
	assert.InDelta(t, 25.0, tl.Quality("AC"), 1e-12)
	assert.Equal(t, 0.0, tl.Quality("GG"), "unseen k-mer has zero quality")
}

// TestTally_QualityWindowAlignment checks that qualities follow their window.
func TestTally_QualityWindowAlignment(t *testing.T) {
	tl := newTally(t, 2, kmer.WithQuality())
	require.NoError(t, tl.AddQuality("ACNGT", []float64{1, 3, 99, 5, 7}))
	assert.InDelta(t, 2.0, tl.Quality("AC"), 1e-12)
	assert.InDelta(t, 6.0, tl.Quality("GT"), 1e-12)
	assert.Equal(t, 2, tl.Distinct())
}

// TestTally_QualityMeanPerWindow keeps a huge quality from leaking into later windows.
func TestTally_QualityMeanPerWindow(t *testing.T) {
	tl := newTally(t, 2, kmer.WithQuality())
	require.NoError(t, tl.AddQuality("ACG", []float64{1e16, 1, 1}))
	assert.Equal(t, 1.0, tl.Quality("CG"))
	assert.Equal(t, 5e15, tl.Quality("AC"))
}

// TestTally_CanonicalMaxK folds the longest supported k-mers.
func TestTally_CanonicalMaxK(t *testing.T) {
	tl := newTally(t, kmer.MaxCanonicalK, kmer.WithCanonical())
	fwd := strings.Repeat("A", kmer.MaxCanonicalK)
	rev := strings.Repeat("T", kmer.MaxCanonicalK)
	require.NoError(t, tl.Add(fwd))
	require.NoError(t, tl.Add(rev))
	assert.Equal(t, uint64(2), tl.Count(fwd))
	assert.Equal(t, 1, tl.Distinct())
}

// TestTally_QualityErrors covers mismatched vectors and mode misuse.
func TestTally_QualityErrors(t *testing.T) {
	tl := newTally(t, 2, kmer.WithQuality())
	err := tl.AddQuality("ACGT", []float64{1, 2, 3})
	require.ErrorIs(t, err, kmer.ErrDimensionMismatch)
	assert.Equal(t, 0, tl.Distinct(), "nothing accumulated before the failure")
	assert.Equal(t, uint64(0), tl.Windows())

	require.ErrorIs(t, tl.Add("ACGT"), kmer.ErrQualityRequired)

	plain := newTally(t, 2)
	require.ErrorIs(t, plain.AddQuality("AC", []float64{1, 1}), kmer.ErrQualityDisabled)
}

// TestTally_Canonical folds reverse complements together.
func TestTally_Canonical(t *testing.T) {
	tl := newTally(t, 3, kmer.WithCanonical())
	require.NoError(t, tl.Add("AAA"))
	require.NoError(t, tl.Add("TTT"))
	require.NoError(t, tl.Add("ACG")) // revcomp CGT
	require.NoError(t, tl.Add("CGT"))
	assert.Equal(t, uint64(2), tl.Count("AAA"))
	assert.Equal(t, uint64(0), tl.Count("TTT"))
	assert.Equal(t, uint64(2), tl.Count("ACG"))
	assert.Equal(t, 2, tl.Distinct())
}

// TestNewTally_Errors covers invalid construction.
func TestNewTally_Errors(t *testing.T) {
	_, err := kmer.NewTally(0, alphabet.DNA())
	require.ErrorIs(t, err, kmer.ErrInvalidK)

	_, err = kmer.NewTally(3, nil)
	require.ErrorIs(t, err, kmer.ErrNilAlphabet)

	_, err = kmer.NewTally(33, alphabet.DNA(), kmer.WithCanonical())
	require.ErrorIs(t, err, kmer.ErrInvalidK)

	custom, err := alphabet.New("TGCA", [alphabet.Size]alphabet.Corner{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}})
	require.NoError(t, err)
	_, err = kmer.NewTally(3, custom, kmer.WithCanonical())
	require.ErrorIs(t, err, kmer.ErrCanonicalAlphabet)
}

// TestTally_MergeCommutative merges in both orders.
func TestTally_MergeCommutative(t *testing.T) {
	build := func(seqs ...string) *kmer.Tally {
		tl := newTally(t, 2)
		for _, s := range seqs {
			require.NoError(t, tl.Add(s))
		}
		return tl
	}

	ab := build("ACGT")
	require.NoError(t, ab.Merge(build("GGTTA")))
	ba := build("GGTTA")
	require.NoError(t, ba.Merge(build("ACGT")))
	whole := build("ACGT", "GGTTA")

	for km, e := range whole.All() {
		assert.Equal(t, e.Count, ab.Count(km), km)
		assert.Equal(t, e.Count, ba.Count(km), km)
	}
	assert.Equal(t, whole.Windows(), ab.Windows())
	assert.Equal(t, whole.Distinct(), ba.Distinct())

	require.ErrorIs(t, ab.Merge(newTally(t, 3)), kmer.ErrKMismatch)
	require.ErrorIs(t, ab.Merge(newTally(t, 2, kmer.WithQuality())), kmer.ErrIncompatible)
}

//----------------------------------------------------------------------------//
// External counts
//----------------------------------------------------------------------------//

// TestReadCounts_Accumulates sums counts across two sources.
func TestReadCounts_Accumulates(t *testing.T) {
	tl := newTally(t, 3)
	require.NoError(t, tl.ReadCounts(strings.NewReader("AAA\t5\nACG 2\n\n")))
	require.NoError(t, tl.ReadCounts(strings.NewReader("AAA\t1\n")))
	assert.Equal(t, uint64(6), tl.Count("AAA"))
	assert.Equal(t, uint64(2), tl.Count("ACG"))
	assert.Equal(t, uint64(8), tl.Windows())
}

// TestReadCounts_Malformed aborts on the first bad line and keeps the tally unchanged.
func TestReadCounts_Malformed(t *testing.T) {
	cases := []struct {
		name string
		body string
		line int
	}{
		{"OneField", "AAA 1\nACG\n", 2},
		{"WrongLength", "AAAA 1\n", 1},
		{"BadSymbol", "AAA 1\n\nANA 2\n", 3},
		{"NegativeCount", "AAA -1\n", 1},
		{"NotANumber", "AAA x\n", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tl := newTally(t, 3)
			err := tl.ReadCounts(strings.NewReader(tc.body))
			require.ErrorIs(t, err, kmer.ErrMalformedRecord)

			var re *kmer.RecordError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tc.line, re.Line)
			assert.Equal(t, 0, tl.Distinct())
		})
	}
}

// TestReadCountsFile_Gzip reads a gzip-compressed dump from disk.
func TestReadCountsFile_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("ACGT\t7\nTTTT\t3\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "counts.txt.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	tl := newTally(t, 4)
	require.NoError(t, tl.ReadCountsFile(path))
	assert.Equal(t, uint64(7), tl.Count("ACGT"))
	assert.Equal(t, uint64(3), tl.Count("TTTT"))
}

//----------------------------------------------------------------------------//
// CountParallel
//----------------------------------------------------------------------------//

// TestCountParallel_MatchesSerial compares against a single tally.
func TestCountParallel_MatchesSerial(t *testing.T) {
	seqs := []string{"ACGTACGTNNACGT", "GGGGCCCCAAAATTTT", "ACGATCGATCGA", "T", ""}
	serial := newTally(t, 3)
	for _, s := range seqs {
		require.NoError(t, serial.Add(s))
	}

	par, err := kmer.CountParallel(context.Background(), 3, alphabet.DNA(), 3, kmer.SliceSource(seqs...))
	require.NoError(t, err)
	assert.Equal(t, serial.Windows(), par.Windows())
	assert.Equal(t, serial.Valid(), par.Valid())
	for km, e := range serial.All() {
		assert.Equal(t, e.Count, par.Count(km), km)
	}
}

// TestCountParallel_PropagatesErrors stops on a dimension mismatch.
func TestCountParallel_PropagatesErrors(t *testing.T) {
	src := func(ctx context.Context, out chan<- kmer.Record) error {
		for _, rec := range []kmer.Record{
			{Seq: "ACGT", Qual: []float64{1, 1, 1, 1}},
			{Seq: "ACGT", Qual: []float64{1}},
		} {
			select {
			case out <- rec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}
	_, err := kmer.CountParallel(context.Background(), 2, alphabet.DNA(), 2, src, kmer.WithQuality())
	require.ErrorIs(t, err, kmer.ErrDimensionMismatch)
}
