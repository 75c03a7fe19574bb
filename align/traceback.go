// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "github.com/grailbio/hts/sam"

// direction codes recorded per banded cell, following banded_sw's direction
// matrix: which of the three recurrences (H, E, F) produced
// the winning value, and whether E/F themselves continued a gap or opened
// one.
type direction int8

const (
	dirDiagonal direction = iota + 1 // H came from H(i-1,j-1) + substitution
	dirUpOpen                        // H came from E, E opened this column
	dirUpExtend                      // H came from E, E extended an existing gap
	dirLeftOpen                      // H came from F, F opened this row
	dirLeftExtend                    // H came from F, F extended an existing gap
)

// bandedTraceback recomputes the local alignment between ref and query
// (both already start/end-trimmed to the alignment's known span) with a
// classical scalar affine-gap recurrence confined to a diagonal band, and
// returns its cigar. bestScore is the score already found by
// the striped kernels; the band is doubled and the DP rerun whenever the
// banded max falls short of it, since a too-narrow band can clip the
// optimal path.
func bandedTraceback(ref, query []byte, mat *Matrix, gapOpen, gapExtend byte, bestScore int) (Cigar, error) {
	queryLength := len(query)
	dbLength := len(ref)
	if queryLength == 0 || dbLength == 0 {
		return nil, errEmptyQuery()
	}

	bandWidth := abs(dbLength-queryLength) + 1

	var (
		h, e   []int32
		hPrev  []int32
		dirRow [][]direction
		max    int32
	)

	for {
		width := 2*bandWidth + 1
		h = make([]int32, width+2)
		e = make([]int32, width+2)
		hPrev = make([]int32, width+2)
		dirRow = make([][]direction, queryLength)
		max = 0

		for i := 0; i < queryLength; i++ {
			beg := i - bandWidth
			if beg < 0 {
				beg = 0
			}
			end := i + bandWidth
			if end > dbLength-1 {
				end = dbLength - 1
			}
			dirRow[i] = make([]direction, width)
			prevBeg := i - 1 - bandWidth
			if prevBeg < 0 {
				prevBeg = 0
			}

			f := int32(0)
			for j := beg; j <= end; j++ {
				u := j - beg + 1 // index into this row's band, 1-based
				d := j - prevBeg // index of (i-1, j-1) in the previous row's band

				var hDiag int32
				if i == 0 || j == 0 {
					hDiag = 0
				} else {
					hDiag = hPrev[d]
				}

				var eUp, eUpPrev int32
				if i == 0 {
					eUp, eUpPrev = -int32(gapOpen), -int32(gapExtend)
				} else {
					eUp = hPrev[d+1] - int32(gapOpen)
					eUpPrev = e[d+1] - int32(gapExtend)
				}
				var eVal int32
				var eDir direction
				if eUp >= eUpPrev {
					eVal, eDir = eUp, dirUpOpen
				} else {
					eVal, eDir = eUpPrev, dirUpExtend
				}
				e[u] = eVal

				var fOpen, fExtend int32
				if j == beg {
					fOpen, fExtend = -int32(gapOpen), f-int32(gapExtend)
				} else {
					fOpen, fExtend = h[u-1]-int32(gapOpen), f-int32(gapExtend)
				}
				var fDir direction
				if fOpen >= fExtend {
					f, fDir = fOpen, dirLeftOpen
				} else {
					f, fDir = fExtend, dirLeftExtend
				}

				e1 := eVal
				if e1 < 0 {
					e1 = 0
				}
				f1 := f
				if f1 < 0 {
					f1 = 0
				}
				gapBest := e1
				gapDir := eDir
				if f1 > e1 {
					gapBest, gapDir = f1, fDir
				}

				sub := hDiag + int32(mat.At(int(ref[j]), int(query[i])))

				var hVal int32
				var hDir direction
				if sub >= gapBest {
					hVal, hDir = sub, dirDiagonal
				} else {
					hVal, hDir = gapBest, gapDir
				}
				h[u] = hVal
				dirRow[i][u-1] = hDir

				if hVal > max {
					max = hVal
				}
			}
			h, hPrev = hPrev, h
			for k := range h {
				h[k] = 0
			}
		}

		if int(max) >= bestScore || bandWidth >= dbLength+queryLength {
			break
		}
		bandWidth *= 2
	}

	return traceBand(dirRow, bandWidth, queryLength, dbLength)
}

// traceBand walks dirRow from the alignment's last cell back to its first,
// emitting a cigar op per step.
func traceBand(dirRow [][]direction, bandWidth, queryLength, dbLength int) (Cigar, error) {
	b := &cigarBuilder{}
	i, j := queryLength-1, dbLength-1
	for i > 0 || j > 0 {
		if i < 0 || j < 0 {
			return nil, errTraceback()
		}
		beg := i - bandWidth
		if beg < 0 {
			beg = 0
		}
		u := j - beg
		if u < 0 || u >= len(dirRow[i]) {
			return nil, errTraceback()
		}
		switch dirRow[i][u] {
		case dirDiagonal:
			b.push(sam.CigarMatch)
			i--
			j--
		case dirUpOpen, dirUpExtend:
			b.push(sam.CigarInsertion)
			i--
		case dirLeftOpen, dirLeftExtend:
			b.push(sam.CigarDeletion)
			j--
		default:
			return nil, errTraceback()
		}
	}
	b.push(sam.CigarMatch)
	return b.cigar(), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
