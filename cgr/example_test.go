package cgr_test

import (
	"fmt"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/cgr"
)

// ExamplePlanar encodes a single nucleotide on the real-valued square.
func ExamplePlanar() {
	codec, _ := cgr.NewPlanar(alphabet.DNA())
	pt, _ := codec.Encode("C")
	seq, _ := codec.Decode(pt)
	fmt.Println(pt, seq)
	// Output:
	// (1, -0.5, 0.5) C
}

// ExampleInteger shows the exact lattice coordinate of ACGT.
func ExampleInteger() {
	codec, _ := cgr.NewInteger(alphabet.DNA())
	pt, _ := codec.Encode("ACGT")
	seq, _ := codec.Decode(pt)
	fmt.Println(pt, seq)
	// Output:
	// (4, 3, -9) ACGT
}

// ExampleComplex shows the base-4 numeral of a short sequence.
func ExampleComplex() {
	codec, _ := cgr.NewComplex(alphabet.DNA())
	pt, _ := codec.Encode("TGCA") // 3 + 2·4 + 1·16 + 0·64
	seq, _ := codec.Decode(pt)
	fmt.Println(pt, seq)
	// Output:
	// (27, 4) TGCA
}
