// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"github.com/grailbio/hts/sam"
)

// cigarBuilder accumulates traceback steps in reverse (the traceback walks
// from the alignment end back to its start) and folds adjacent identical
// ops into single runs, the way banded_sw's cigar stack does in the
// original reference code.
type cigarBuilder struct {
	ops []sam.CigarOp
}

func (b *cigarBuilder) push(op sam.CigarOpType) {
	if len(b.ops) > 0 && b.ops[len(b.ops)-1].Type() == op {
		b.ops[len(b.ops)-1] = sam.NewCigarOp(op, b.ops[len(b.ops)-1].Len()+1)
		return
	}
	b.ops = append(b.ops, sam.NewCigarOp(op, 1))
}

// cigar returns the accumulated ops in alignment order (query/reference
// start to end), reversing the push order.
func (b *cigarBuilder) cigar() Cigar {
	n := len(b.ops)
	out := make(Cigar, n)
	for i, op := range b.ops {
		out[n-1-i] = op
	}
	return out
}

// refSpan returns the number of reference bases consumed by c (sum of M,
// D, N, =, X run lengths), matching sam.Cigar's own reference-consuming
// semantics.
func refSpan(c Cigar) int {
	n := 0
	for _, op := range c {
		switch op.Type() {
		case sam.CigarMatch, sam.CigarDeletion, sam.CigarSkipped, sam.CigarEqual, sam.CigarMismatch:
			n += op.Len()
		}
	}
	return n
}

// querySpan returns the number of query bases consumed by c (sum of M, I,
// S, =, X run lengths).
func querySpan(c Cigar) int {
	n := 0
	for _, op := range c {
		switch op.Type() {
		case sam.CigarMatch, sam.CigarInsertion, sam.CigarSoftClipped, sam.CigarEqual, sam.CigarMismatch:
			n += op.Len()
		}
	}
	return n
}
