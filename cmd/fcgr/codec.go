// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/cgr"
	"github.com/spf13/cobra"
)

// Coordinate systems accepted by --system.
const (
	systemPlanar  = "planar"
	systemInteger = "integer"
	systemComplex = "complex"
)

func encodeCommand() *cobra.Command {
	var system string

	cmd := &cobra.Command{
		Use:   "encode SEQ...",
		Short: "Encode sequences into CGR coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				line, err := encode(system, strings.ToUpper(s))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&system, "system", "s", systemInteger, "Coordinate system: planar, integer or complex")

	return cmd
}

func decodeCommand() *cobra.Command {
	var (
		system string
		length int
	)

	cmd := &cobra.Command{
		Use:   "decode COORD...",
		Short: "Decode CGR coordinates back into a sequence",
		Long: `Decode CGR coordinates back into a sequence.

  planar:  decode -s planar  -n N X Y   (floats)
  integer: decode -s integer -n N X Y   (integers of any size)
  complex: decode -s complex -n N K     (non-negative integer)

Put "--" before coordinates that start with a minus sign.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := decode(system, length, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), seq)

			return nil
		},
	}
	cmd.Flags().StringVarP(&system, "system", "s", systemInteger, "Coordinate system: planar, integer or complex")
	cmd.Flags().IntVarP(&length, "length", "n", 0, "Sequence length N")

	return cmd
}

func encode(system, seq string) (string, error) {
	a := alphabet.DNA()
	switch system {
	case systemPlanar:
		codec, _ := cgr.NewPlanar(a)
		pt, err := codec.Encode(seq)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%d\t%s\t%s", pt.N,
			strconv.FormatFloat(pt.X, 'g', -1, 64), strconv.FormatFloat(pt.Y, 'g', -1, 64)), nil
	case systemInteger:
		codec, _ := cgr.NewInteger(a)
		pt, err := codec.Encode(seq)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%d\t%v\t%v", pt.N, pt.X, pt.Y), nil
	case systemComplex:
		codec, _ := cgr.NewComplex(a)
		pt, err := codec.Encode(seq)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%d\t%v", pt.N, pt.K), nil
	}

	return "", fmt.Errorf("unknown system %q", system)
}

func decode(system string, n int, args []string) (string, error) {
	a := alphabet.DNA()
	switch system {
	case systemPlanar:
		if len(args) != 2 {
			return "", fmt.Errorf("planar decode wants X Y, got %d values", len(args))
		}
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return "", fmt.Errorf("bad X: %w", err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return "", fmt.Errorf("bad Y: %w", err)
		}
		codec, _ := cgr.NewPlanar(a)

		return codec.Decode(cgr.Point{N: n, X: x, Y: y})
	case systemInteger:
		if len(args) != 2 {
			return "", fmt.Errorf("integer decode wants X Y, got %d values", len(args))
		}
		x, err := parseBig(args[0])
		if err != nil {
			return "", err
		}
		y, err := parseBig(args[1])
		if err != nil {
			return "", err
		}
		codec, _ := cgr.NewInteger(a)

		return codec.Decode(cgr.IntPoint{N: n, X: x, Y: y})
	case systemComplex:
		if len(args) != 1 {
			return "", fmt.Errorf("complex decode wants K, got %d values", len(args))
		}
		k, err := parseBig(args[0])
		if err != nil {
			return "", err
		}
		codec, _ := cgr.NewComplex(a)

		return codec.Decode(cgr.ComplexPoint{K: k, N: n})
	}

	return "", fmt.Errorf("unknown system %q", system)
}

func parseBig(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("bad integer %q", s)
	}

	return v, nil
}
