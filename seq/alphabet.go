// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package seq loads query and reference sequences for package align and
// encodes them from ASCII into the small-integer symbol codes the striped
// kernels operate on.
package seq

import "github.com/pkg/errors"

// Alphabet maps a fixed, ordered set of one-letter ASCII symbols onto
// contiguous codes 0..len(Symbols)-1, the representation package align's
// Matrix and Aligner expect.
type Alphabet struct {
	Name    string
	Symbols string
	code    [256]int8
}

func newAlphabet(name, symbols string) *Alphabet {
	a := &Alphabet{Name: name, Symbols: symbols}
	for i := range a.code {
		a.code[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		a.code[symbols[i]] = int8(i)
	}
	return a
}

// DNA is the 4-letter nucleotide alphabet (A, C, G, T), code order matching
// the order typically used by substitution matrices like NUC.4.4.
var DNA = newAlphabet("DNA", "ACGT")

// Protein is the 20-amino-acid alphabet plus 'X' (unknown), in BLOSUM's
// conventional column order.
var Protein = newAlphabet("Protein", "ARNDCQEGHILKMFPSTWYVX")

// Size returns the number of symbols in the alphabet (package align's
// Matrix.Size).
func (a *Alphabet) Size() int { return len(a.Symbols) }

// Encode converts ascii (upper or lower case) into symbol codes. It
// returns an error naming the first unrecognized byte, rather than
// silently mapping it to an arbitrary code, since a mis-encoded symbol
// would silently corrupt every downstream alignment score.
func (a *Alphabet) Encode(ascii []byte) ([]byte, error) {
	out := make([]byte, len(ascii))
	for i, b := range ascii {
		c := a.code[upper(b)]
		if c < 0 {
			return nil, errors.Errorf("seq: byte %q at position %d is not in the %s alphabet", b, i, a.Name)
		}
		out[i] = byte(c)
	}
	return out, nil
}

// Decode is Encode's inverse, used for logging and debugging output.
func (a *Alphabet) Decode(codes []byte) string {
	out := make([]byte, len(codes))
	for i, c := range codes {
		out[i] = a.Symbols[c]
	}
	return string(out)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
