// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "github.com/HelloWorldCN/mmseqs-align/alignsimd"

// endResult is one entry of the reference kernel's "alignment_end" pair:
// a score and the reference/query coordinate it was achieved at.
type endResult struct {
	score int
	ref   int
	read  int
}

// byteKernelBuffers holds the striped H/E/Hmax state an Aligner reuses
// across calls, sized to the query's segment length.
type byteKernelBuffers struct {
	hStore []alignsimd.VecU8
	hLoad  []alignsimd.VecU8
	e      []alignsimd.VecU8
	hMax   []alignsimd.VecU8
	maxCol []byte
}

func newByteKernelBuffers(segLen, dbCap int) *byteKernelBuffers {
	return &byteKernelBuffers{
		hStore: make([]alignsimd.VecU8, segLen),
		hLoad:  make([]alignsimd.VecU8, segLen),
		e:      make([]alignsimd.VecU8, segLen),
		hMax:   make([]alignsimd.VecU8, segLen),
		maxCol: make([]byte, dbCap),
	}
}

func (b *byteKernelBuffers) reset(segLen, dbLen int) {
	for i := 0; i < segLen; i++ {
		b.hStore[i] = alignsimd.ZeroU8
		b.hLoad[i] = alignsimd.ZeroU8
		b.e[i] = alignsimd.ZeroU8
		b.hMax[i] = alignsimd.ZeroU8
	}
	for i := 0; i < dbLen; i++ {
		b.maxCol[i] = 0
	}
}

// kernelByte runs the striped 8-bit saturating DP recurrence over
// reference symbols ref (already alphabet-coded), scored
// against p, with affine gaps (gapOpen, gapExtend) and profile bias bias.
// The end→start finder gets its right-to-left sweep by reversing ref and
// the query profile before calling this (see findStart), rather than by
// a reverse-traversal mode here.
// terminate, when non-zero, causes early exit once a column's max equals
// it exactly (an optimization the original kernel uses when re-running to
// locate the start position with the score already known). It returns the
// best and second-best endResult (the maskLen-gated secondary score
// window), or errOverflow if the true score would have saturated past 255.
func kernelByte(ref []byte, p *profileByte, gapOpen, gapExtend, bias byte, terminate byte, maskLen int, buf *byteKernelBuffers) (best, second endResult, err error) {
	dbLength := len(ref)
	queryLength := p.segLen * alignsimd.LanesU8
	segLen := p.segLen
	buf.reset(segLen, dbLength)

	var max byte
	endRead := queryLength - 1
	endRef := -1

	vGapO := alignsimd.BroadcastU8(gapOpen)
	vGapE := alignsimd.BroadcastU8(gapExtend)
	vBias := alignsimd.BroadcastU8(bias)
	vMaxScore := alignsimd.ZeroU8
	vMaxMark := alignsimd.ZeroU8

	overflowed := false
	for i := 0; i < dbLength; i++ {
		vF := alignsimd.ZeroU8
		vMaxColumn := alignsimd.ZeroU8

		vH := buf.hStore[segLen-1]
		vH = alignsimd.ShiftLeftOneLaneU8(vH)

		nt := ref[i]
		vPBase := int(nt) * segLen

		buf.hLoad, buf.hStore = buf.hStore, buf.hLoad

		for j := 0; j < segLen; j++ {
			vH = alignsimd.AddSatU8(vH, p.vecs[vPBase+j])
			vH = alignsimd.SubSatU8(vH, vBias)

			e := buf.e[j]
			vH = alignsimd.MaxU8(vH, e)
			vH = alignsimd.MaxU8(vH, vF)
			vMaxColumn = alignsimd.MaxU8(vMaxColumn, vH)

			buf.hStore[j] = vH

			vH2 := alignsimd.SubSatU8(vH, vGapO)
			e = alignsimd.SubSatU8(e, vGapE)
			e = alignsimd.MaxU8(e, vH2)
			buf.e[j] = e

			vF = alignsimd.SubSatU8(vF, vGapE)
			vF = alignsimd.MaxU8(vF, vH2)

			vH = buf.hLoad[j]
		}

		// Lazy-F loop: propagate vF until it can no longer raise any H.
		j := 0
		vH = buf.hStore[j]
		vF = alignsimd.ShiftLeftOneLaneU8(vF)
		for {
			vTemp := alignsimd.SubSatU8(vH, vGapO)
			vTemp = alignsimd.SubSatU8(vF, vTemp)
			if alignsimd.EqualU8(vTemp, alignsimd.ZeroU8) {
				break
			}
			vH = alignsimd.MaxU8(vH, vF)
			vMaxColumn = alignsimd.MaxU8(vMaxColumn, vH)
			buf.hStore[j] = vH
			vF = alignsimd.SubSatU8(vF, vGapE)
			j++
			if j >= segLen {
				j = 0
				vF = alignsimd.ShiftLeftOneLaneU8(vF)
			}
			vH = buf.hStore[j]
		}

		vMaxScore = alignsimd.MaxU8(vMaxScore, vMaxColumn)
		if !alignsimd.EqualU8(vMaxMark, vMaxScore) {
			vMaxMark = vMaxScore
			temp := alignsimd.HorizontalMaxU8(vMaxScore)
			if temp > max {
				max = temp
				if int(max)+int(bias) >= 255 {
					overflowed = true
					break
				}
				endRef = i
				copy(buf.hMax, buf.hStore[:segLen])
			}
		}

		mc := alignsimd.HorizontalMaxU8(vMaxColumn)
		buf.maxCol[i] = mc
		if terminate != 0 && mc == terminate {
			break
		}
	}

	if overflowed {
		return endResult{}, endResult{}, errOverflow
	}

	for i := 0; i < queryLength; i++ {
		lane := i % alignsimd.LanesU8
		stripe := i / alignsimd.LanesU8
		if buf.hMax[stripe][lane] == max {
			temp := stripe + lane*segLen
			if temp < endRead {
				endRead = temp
			}
		}
	}

	score := int(max)
	if score+int(bias) >= 255 {
		score = 255
	}
	best = endResult{score: score, ref: endRef, read: endRead}
	second = endResult{}

	if maskLen >= 0 {
		edge := endRef - maskLen
		if edge < 0 {
			edge = 0
		}
		for i := 0; i < edge; i++ {
			if int(buf.maxCol[i]) > second.score {
				second = endResult{score: int(buf.maxCol[i]), ref: i}
			}
		}
		// The low window is [0, endRef-maskLen) and the high window is
		// [endRef+maskLen, dbLength): the high window includes its near edge,
		// the low window does not.
		edge = endRef + maskLen
		if edge > dbLength {
			edge = dbLength
		}
		for i := edge; i < dbLength; i++ {
			if int(buf.maxCol[i]) > second.score {
				second = endResult{score: int(buf.maxCol[i]), ref: i}
			}
		}
	}
	return best, second, nil
}
