// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

// findStart runs the end→start finder: having already
// located the alignment's end (qEnd, dbEnd) and its score, it reverses
// both the reference up to dbEnd and the query up to qEnd, builds a
// reverse profile over the reversed query, and reruns the same kernel
// right-to-left with an early-exit terminate value equal to the known
// score. The kernel's own end coordinates on the reversed inputs are the
// original alignment's start coordinates, measured back from its end.
func (a *Aligner) findStart(ref []byte, qEnd, dbEnd, score int, useWord bool) (dbStart, qStart int, err error) {
	revRef := reverseSymbols(ref, dbEnd+1)

	if !useWord {
		revQuery := reverseSymbols(a.query, qEnd+1)
		p := buildProfileByte(revQuery, a.mat, a.bias)
		best, _, kerr := kernelByte(revRef, p, a.gap.Open, a.gap.Extend, a.bias, byte(clampScore(score)), -1, a.revByteBuf(p.segLen, len(revRef)))
		if kerr != nil {
			return 0, 0, kerr
		}
		if best.score != score {
			return 0, 0, errScoreMismatch(score, best.score)
		}
		return dbEnd - best.ref, qEnd - best.read, nil
	}

	revQuery := reverseSymbols(a.query, qEnd+1)
	p := buildProfileWord(revQuery, a.mat)
	best, _ := kernelWord(revRef, p, a.gap.Open, a.gap.Extend, uint16(score), -1, a.revWordBuf(p.segLen, len(revRef)))
	if best.score != score {
		return 0, 0, errScoreMismatch(score, best.score)
	}
	return dbEnd - best.ref, qEnd - best.read, nil
}

func clampScore(score int) int {
	if score > 255 {
		return 255
	}
	return score
}
