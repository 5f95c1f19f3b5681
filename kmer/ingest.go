// SPDX-License-Identifier: MIT

package kmer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shenwei356/xopen"
)

// maxLineSize bounds a single count record.
const maxLineSize = 1 << 20

// ReadCounts ingests an external "<kmer><whitespace><count>" stream, as
// written by canonical k-mer counters, and adds every count to t.
// Blank lines are ignored. The k-mers are taken as-is: canonical folding
// belongs to the external counter and is not re-derived here.
//
// Policy: the first malformed line aborts the whole stream with a
// *RecordError (ErrMalformedRecord) and t is left unchanged, because a
// silently partial tally would corrupt the matrix.
func (t *Tally) ReadCounts(r io.Reader) error {
	if t.opts.quality {
		return fmt.Errorf("ReadCounts: %w", ErrQualityRequired)
	}

	staged := make(map[string]uint64)
	var total uint64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		km, n, err := t.parseRecord(text)
		if err != nil {
			return &RecordError{Line: line, Text: text, Err: err}
		}
		staged[km] += n
		total += n
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("ReadCounts: line %d: %w", line+1, err)
	}

	for km, n := range staged {
		e := t.entries[km]
		e.Count += n
		t.entries[km] = e
	}
	t.windows += total
	t.valid += total

	return nil
}

// ReadCountsFile opens path (plain or gzip, "-" for stdin) and calls ReadCounts.
func (t *Tally) ReadCountsFile(path string) error {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return fmt.Errorf("ReadCountsFile: %w", err)
	}
	defer fh.Close()

	if err = t.ReadCounts(fh); err != nil {
		return fmt.Errorf("ReadCountsFile %s: %w", path, err)
	}

	return nil
}

var (
	errFieldCount = errors.New("want exactly two fields")
	errKmerLength = errors.New("k-mer length differs from k")
	errKmerSymbol = errors.New("k-mer holds a symbol outside the alphabet")
)

// parseRecord splits one line into a validated k-mer and its count.
func (t *Tally) parseRecord(text string) (string, uint64, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return "", 0, errFieldCount
	}
	km := fields[0]
	if len(km) != t.k {
		return "", 0, fmt.Errorf("%w: %d != %d", errKmerLength, len(km), t.k)
	}
	for i := 0; i < len(km); i++ {
		if !t.alpha.Valid(km[i]) {
			return "", 0, fmt.Errorf("%w: %q", errKmerSymbol, km[i])
		}
	}
	n, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return "", 0, err
	}

	return km, n, nil
}
