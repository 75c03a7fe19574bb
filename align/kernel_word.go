// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "github.com/HelloWorldCN/mmseqs-align/alignsimd"

// wordKernelBuffers is kernelByte's 16-bit counterpart (no bias lane, no
// overflow path).
type wordKernelBuffers struct {
	hStore []alignsimd.VecI16
	hLoad  []alignsimd.VecI16
	e      []alignsimd.VecI16
	hMax   []alignsimd.VecI16
	maxCol []uint16
}

func newWordKernelBuffers(segLen, dbCap int) *wordKernelBuffers {
	return &wordKernelBuffers{
		hStore: make([]alignsimd.VecI16, segLen),
		hLoad:  make([]alignsimd.VecI16, segLen),
		e:      make([]alignsimd.VecI16, segLen),
		hMax:   make([]alignsimd.VecI16, segLen),
		maxCol: make([]uint16, dbCap),
	}
}

func (b *wordKernelBuffers) reset(segLen, dbLen int) {
	for i := 0; i < segLen; i++ {
		b.hStore[i] = alignsimd.ZeroI16
		b.hLoad[i] = alignsimd.ZeroI16
		b.e[i] = alignsimd.ZeroI16
		b.hMax[i] = alignsimd.ZeroI16
	}
	for i := 0; i < dbLen; i++ {
		b.maxCol[i] = 0
	}
}

// kernelWord is kernelByte's 16-bit counterpart: no bias term and no
// overflow path, since int16 comfortably covers any score this engine's
// alphabets and gap penalties can produce. Like kernelByte, the
// end→start finder's right-to-left sweep comes from reversing ref and
// the query profile before calling this (see findStart).
func kernelWord(ref []byte, p *profileWord, gapOpen, gapExtend byte, terminate uint16, maskLen int, buf *wordKernelBuffers) (best, second endResult) {
	dbLength := len(ref)
	queryLength := p.segLen * alignsimd.LanesI16
	segLen := p.segLen
	buf.reset(segLen, dbLength)

	var max int16
	endRead := queryLength - 1
	endRef := 0

	vGapO := alignsimd.BroadcastI16(int16(gapOpen))
	vGapE := alignsimd.BroadcastI16(int16(gapExtend))
	vMaxScore := alignsimd.ZeroI16
	vMaxMark := alignsimd.ZeroI16

	for i := 0; i < dbLength; i++ {
		vF := alignsimd.ZeroI16
		vMaxColumn := alignsimd.ZeroI16

		vH := buf.hStore[segLen-1]
		vH = alignsimd.ShiftLeftOneLaneI16(vH)

		nt := ref[i]
		vPBase := int(nt) * segLen

		buf.hLoad, buf.hStore = buf.hStore, buf.hLoad

		for j := 0; j < segLen; j++ {
			vH = alignsimd.AddSatI16(vH, p.vecs[vPBase+j])

			e := buf.e[j]
			vH = alignsimd.MaxI16(vH, e)
			vH = alignsimd.MaxI16(vH, vF)
			vMaxColumn = alignsimd.MaxI16(vMaxColumn, vH)

			buf.hStore[j] = vH

			vH2 := alignsimd.SubSatU16(vH, vGapO)
			e = alignsimd.SubSatU16(e, vGapE)
			e = alignsimd.MaxI16(e, vH2)
			buf.e[j] = e

			vF = alignsimd.SubSatU16(vF, vGapE)
			vF = alignsimd.MaxI16(vF, vH2)

			vH = buf.hLoad[j]
		}

		// Lazy-F loop, bounded at LanesI16 rounds: a 16-bit F contribution can propagate at most one lane per
		// round before AnyGreaterI16 reports it can no longer raise H.
		for k := 0; k < alignsimd.LanesI16; k++ {
			vF = alignsimd.ShiftLeftOneLaneI16(vF)
			done := true
			for j := 0; j < segLen; j++ {
				vH := buf.hStore[j]
				vH = alignsimd.MaxI16(vH, vF)
				buf.hStore[j] = vH
				vH2 := alignsimd.SubSatU16(vH, vGapO)
				vF = alignsimd.SubSatU16(vF, vGapE)
				if alignsimd.AnyGreaterI16(vF, vH2) {
					done = false
				} else {
					done = true
					break
				}
			}
			if done {
				break
			}
		}

		for j := 0; j < segLen; j++ {
			vMaxColumn = alignsimd.MaxI16(vMaxColumn, buf.hStore[j])
		}

		vMaxScore = alignsimd.MaxI16(vMaxScore, vMaxColumn)
		if !alignsimd.EqualI16(vMaxMark, vMaxScore) {
			vMaxMark = vMaxScore
			temp := alignsimd.HorizontalMaxI16(vMaxScore)
			if temp > max {
				max = temp
				endRef = i
				copy(buf.hMax, buf.hStore[:segLen])
			}
		}

		mc := uint16(alignsimd.HorizontalMaxI16(vMaxColumn))
		buf.maxCol[i] = mc
		if terminate != 0 && mc == terminate {
			break
		}
	}

	for i := 0; i < queryLength; i++ {
		lane := i % alignsimd.LanesI16
		stripe := i / alignsimd.LanesI16
		if buf.hMax[stripe][lane] == max {
			temp := stripe + lane*segLen
			if temp < endRead {
				endRead = temp
			}
		}
	}

	best = endResult{score: int(max), ref: endRef, read: endRead}
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
		// Same windows as kernelByte: [0, endRef-maskLen) and
		// [endRef+maskLen, dbLength).
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
	return best, second
}
