package alphabet_test

import (
	"testing"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dnaCorners = [alphabet.Size]alphabet.Corner{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}

// TestDNA_Table checks the default index and corner assignment.
func TestDNA_Table(t *testing.T) {
	a := alphabet.DNA()
	require.Equal(t, "ACGT", a.Symbols())
	require.Equal(t, byte('N'), a.Ambiguity())

	for i, s := range []byte("ACGT") {
		idx, ok := a.Index(s)
		require.True(t, ok)
		assert.Equal(t, i, idx)

		c, ok := a.Corner(s)
		require.True(t, ok)
		assert.Equal(t, dnaCorners[i], c)
		assert.Equal(t, s, a.Symbol(i))
	}

	_, ok := a.Index('N')
	assert.False(t, ok, "ambiguity symbol has no index")
	assert.False(t, a.Valid('a'), "lower case is not part of the table")
}

// TestDNA_CornersDistinctQuadrants verifies that every corner has its own sign pattern.
func TestDNA_CornersDistinctQuadrants(t *testing.T) {
	a := alphabet.DNA()
	seen := map[[2]int]byte{}
	for _, b := range []byte(a.Symbols()) {
		c, ok := a.Corner(b)
		require.True(t, ok)
		key := [2]int{c.X, c.Y}
		_, dup := seen[key]
		require.False(t, dup, "corner %v reused", c)
		sym, ok := a.SymbolAt(c.X, c.Y)
		require.True(t, ok)
		seen[key] = sym
	}
	require.Len(t, seen, alphabet.Size)

	_, ok := a.SymbolAt(0, 1)
	assert.False(t, ok, "axis has no quadrant")
}

// TestNew_Errors covers every rejected construction.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		symbols string
		corners [alphabet.Size]alphabet.Corner
		opts    []alphabet.Option
		err     error
	}{
		{"TooShort", "ACG", dnaCorners, nil, alphabet.ErrSymbolCount},
		{"Duplicate", "ACGA", dnaCorners, nil, alphabet.ErrDuplicateSymbol},
		{"AmbiguityClash", "ACGT", dnaCorners, []alphabet.Option{alphabet.WithAmbiguity('T')}, alphabet.ErrDuplicateSymbol},
		{"BadCorner", "ACGT", [alphabet.Size]alphabet.Corner{{1, 1}, {-1, 1}, {-1, -1}, {2, -1}}, nil, alphabet.ErrInvalidCorner},
		{"SharedQuadrant", "ACGT", [alphabet.Size]alphabet.Corner{{1, 1}, {1, 1}, {-1, -1}, {1, -1}}, nil, alphabet.ErrSharedQuadrant},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := alphabet.New(tc.symbols, tc.corners, tc.opts...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_CustomLayout builds a permuted table and checks the reverse lookup.
func TestNew_CustomLayout(t *testing.T) {
	a, err := alphabet.New("TGCA", dnaCorners, alphabet.WithAmbiguity('X'))
	require.NoError(t, err)

	sym, ok := a.SymbolAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, byte('T'), sym)
	assert.Equal(t, byte('X'), a.Ambiguity())
}
