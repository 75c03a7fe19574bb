// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

// refMatrix holds the row-major H, E and F planes of refLocalAlign, the
// unvectorized affine-gap local alignment used only by this package's tests
// to cross-check the striped kernels' scores.
type refMatrix struct {
	nRow, nCol int
	h, e, f    []int32
}

func newRefMatrix(nRow, nCol int) refMatrix {
	return refMatrix{
		nRow: nRow, nCol: nCol,
		h: make([]int32, nRow*nCol),
		e: make([]int32, nRow*nCol),
		f: make([]int32, nRow*nCol),
	}
}

func (m refMatrix) at(data []int32, i, j int) int32 {
	return data[i*m.nCol+j]
}

func (m refMatrix) set(data []int32, i, j int, v int32) {
	data[i*m.nCol+j] = v
}

// refLocalAlign computes the best local-alignment score of ref against
// query (both alphabet-coded) under mat and affine gaps, by the textbook
// Smith-Waterman recurrence with no striping, no SIMD, and no banding.
func refLocalAlign(ref, query []byte, mat *Matrix, gapOpen, gapExtend byte) int {
	nRow := len(query) + 1
	nCol := len(ref) + 1
	m := newRefMatrix(nRow, nCol)
	var best int32

	for i := 1; i < nRow; i++ {
		for j := 1; j < nCol; j++ {
			diag := m.at(m.h, i-1, j-1) + int32(mat.At(int(ref[j-1]), int(query[i-1])))

			eOpen := m.at(m.h, i-1, j) - int32(gapOpen)
			eExtend := m.at(m.e, i-1, j) - int32(gapExtend)
			e := max32(eOpen, eExtend)

			fOpen := m.at(m.h, i, j-1) - int32(gapOpen)
			fExtend := m.at(m.f, i, j-1) - int32(gapExtend)
			f := max32(fOpen, fExtend)

			h := max32(0, max32(diag, max32(e, f)))
			m.set(m.h, i, j, h)
			m.set(m.e, i, j, e)
			m.set(m.f, i, j, f)

			if h > best {
				best = h
			}
		}
	}
	return int(best)
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
