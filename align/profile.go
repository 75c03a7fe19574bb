// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "github.com/HelloWorldCN/mmseqs-align/alignsimd"

// profileByte is the striped, biased 8-bit query profile: for every
// alphabet symbol nt, the query is laid out across segLen
// stripes of alignsimd.LanesU8 lanes each, so that profileByte[nt][stripe]
// holds the match/mismatch score (plus bias) of aligning reference symbol
// nt against every segLen-th query position starting at stripe.
type profileByte struct {
	segLen int
	vecs   []alignsimd.VecU8 // len == alphabetSize * segLen
}

// profileWord is the unbiased 16-bit analogue of profileByte, used when
// the 8-bit kernel would overflow.
type profileWord struct {
	segLen int
	vecs   []alignsimd.VecI16 // len == alphabetSize * segLen
}

func segLenFor(queryLength, lanes int) int {
	return (queryLength + lanes - 1) / lanes
}

// buildProfileByte lays out query (already alphabet-coded, one byte per
// symbol) into a striped biased 8-bit profile against substitution matrix
// mat, following createQueryProfile<int8_t,16> in the reference striped
// kernel.
func buildProfileByte(query []byte, mat *Matrix, bias byte) *profileByte {
	segLen := segLenFor(len(query), alignsimd.LanesU8)
	p := &profileByte{segLen: segLen, vecs: make([]alignsimd.VecU8, mat.Size*segLen)}
	for nt := 0; nt < mat.Size; nt++ {
		for stripe := 0; stripe < segLen; stripe++ {
			var v alignsimd.VecU8
			j := stripe
			for lane := 0; lane < alignsimd.LanesU8; lane++ {
				if j >= len(query) {
					v[lane] = bias
				} else {
					v[lane] = byte(int(mat.At(nt, int(query[j]))) + int(bias))
				}
				j += segLen
			}
			p.vecs[nt*segLen+stripe] = v
		}
	}
	return p
}

// buildProfileWord is buildProfileByte's unbiased 16-bit counterpart,
// following createQueryProfile<int16_t,8>.
func buildProfileWord(query []byte, mat *Matrix) *profileWord {
	segLen := segLenFor(len(query), alignsimd.LanesI16)
	p := &profileWord{segLen: segLen, vecs: make([]alignsimd.VecI16, mat.Size*segLen)}
	for nt := 0; nt < mat.Size; nt++ {
		for stripe := 0; stripe < segLen; stripe++ {
			var v alignsimd.VecI16
			j := stripe
			for lane := 0; lane < alignsimd.LanesI16; lane++ {
				if j >= len(query) {
					v[lane] = 0
				} else {
					v[lane] = int16(mat.At(nt, int(query[j])))
				}
				j += segLen
			}
			p.vecs[nt*segLen+stripe] = v
		}
	}
	return p
}

// reverseSymbols returns the reverse of seq[:end] (end exclusive), used to
// build the reverse profile the end→start finder searches with.
func reverseSymbols(seq []byte, end int) []byte {
	out := make([]byte, end)
	for i := 0; i < end; i++ {
		out[i] = seq[end-1-i]
	}
	return out
}
