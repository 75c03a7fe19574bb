// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "github.com/grailbio/base/log"

// Aligner computes local pairwise alignments of one fixed query sequence
// against many reference sequences, combined the way SmithWaterman
// bundles query-profile state and
// ssw_align in one object). Build one with NewAligner, call Init once with
// the query, then call Align as many times as there are references.
//
// An Aligner is not safe for concurrent use.
type Aligner struct {
	mat      *Matrix
	gap      GapPenalties
	scoreSz  ScoreSize
	query    []byte
	bias     byte
	pByte    *profileByte
	pWord    *profileWord
	byteBuf  *byteKernelBuffers
	wordBuf  *wordKernelBuffers
	byteBuf2 *byteKernelBuffers // reused by findStart's reverse pass
	wordBuf2 *wordKernelBuffers
}

// NewAligner constructs an Aligner against a fixed substitution matrix and
// gap penalties. Call Init before the first Align.
func NewAligner(mat *Matrix, gap GapPenalties) (*Aligner, error) {
	if gap.Open < gap.Extend {
		return nil, errGapPenalties(gap)
	}
	return &Aligner{mat: mat, gap: gap}, nil
}

// Init builds the query profile(s) for query. scoreSz
// selects which kernel precision(s) to build for; ScoreSizeBoth lets Align
// fall back from the 8-bit kernel to the 16-bit one on overflow.
func (a *Aligner) Init(query []byte, scoreSz ScoreSize) error {
	if len(query) == 0 {
		return errEmptyQuery()
	}
	for _, sym := range query {
		if int(sym) >= a.mat.Size {
			return errAlphabet(sym, a.mat.Size)
		}
	}
	a.query = query
	a.scoreSz = scoreSz
	a.bias = a.mat.Bias()

	if scoreSz == ScoreSizeByte || scoreSz == ScoreSizeBoth {
		a.pByte = buildProfileByte(query, a.mat, a.bias)
		a.byteBuf = newByteKernelBuffers(a.pByte.segLen, 0)
	}
	if scoreSz == ScoreSizeWord || scoreSz == ScoreSizeBoth {
		a.pWord = buildProfileWord(query, a.mat)
		a.wordBuf = newWordKernelBuffers(a.pWord.segLen, 0)
	}
	return nil
}

func (a *Aligner) revByteBuf(segLen, dbLen int) *byteKernelBuffers {
	if a.byteBuf2 == nil || len(a.byteBuf2.hStore) < segLen || len(a.byteBuf2.maxCol) < dbLen {
		a.byteBuf2 = newByteKernelBuffers(segLen, dbLen)
	}
	return a.byteBuf2
}

func (a *Aligner) revWordBuf(segLen, dbLen int) *wordKernelBuffers {
	if a.wordBuf2 == nil || len(a.wordBuf2.hStore) < segLen || len(a.wordBuf2.maxCol) < dbLen {
		a.wordBuf2 = newWordKernelBuffers(segLen, dbLen)
	}
	return a.wordBuf2
}

func (a *Aligner) ensureByteBuf(dbLen int) {
	if len(a.byteBuf.maxCol) < dbLen {
		a.byteBuf = newByteKernelBuffers(a.pByte.segLen, dbLen)
	}
}

func (a *Aligner) ensureWordBuf(dbLen int) {
	if len(a.wordBuf.maxCol) < dbLen {
		a.wordBuf = newWordKernelBuffers(a.pWord.segLen, dbLen)
	}
}

// Align runs a complete alignment of the query (set by Init) against ref
// end-finding, optionally start-finding and cigar
// generation per flag, with the 8→16-bit precision fallback on overflow.
// filterScore and filterLen are the thresholds FlagFilterByScore and
// FlagFilterByLength gate on; maskLen controls the second-best-alignment
// search window (pass a value < 15 to skip it).
func (a *Aligner) Align(ref []byte, flag Flag, filterScore int, filterLen int, maskLen int) (*Result, error) {
	if len(ref) == 0 {
		return nil, errEmptyRef()
	}
	for _, sym := range ref {
		if int(sym) >= a.mat.Size {
			return nil, errAlphabet(sym, a.mat.Size)
		}
	}

	best, second, useWord, err := a.findEnd(ref, maskLen)
	if err != nil {
		return nil, err
	}
	if best.score == 0 {
		return nil, ErrNoAlignment
	}

	r := &Result{
		Score1:  best.score,
		DbEnd:   best.ref,
		QEnd:    best.read,
		DbStart: -1,
		QStart:  -1,
		RefEnd2: -1,
	}
	if maskLen >= 15 {
		r.Score2 = second.score
		if second.score > 0 {
			r.RefEnd2 = second.ref
		}
	}

	if flag == 0 || (flag == FlagFilterByScore && r.Score1 < filterScore) {
		return r, nil
	}

	dbStart, qStart, err := a.findStart(ref, r.QEnd, r.DbEnd, r.Score1, useWord)
	if err != nil {
		return nil, err
	}
	r.DbStart = dbStart
	r.QStart = qStart

	withinLen := r.DbEnd-r.DbStart <= filterLen && r.QEnd-r.QStart <= filterLen
	var wantCigar bool
	switch {
	case flag&FlagAlwaysCigar != 0:
		wantCigar = true
	case flag&FlagFilterByScore != 0 && flag&FlagFilterByLength != 0:
		wantCigar = r.Score1 >= filterScore && withinLen
	case flag&FlagFilterByScore != 0:
		wantCigar = r.Score1 >= filterScore
	case flag&FlagFilterByLength != 0:
		wantCigar = withinLen
	}
	if !wantCigar {
		return r, nil
	}

	refSlice := ref[r.DbStart : r.DbEnd+1]
	querySlice := a.query[r.QStart : r.QEnd+1]
	cigar, err := bandedTraceback(refSlice, querySlice, a.mat, a.gap.Open, a.gap.Extend, r.Score1)
	if err != nil {
		log.Printf("align: traceback failed for db[%d:%d] query[%d:%d]: %v", r.DbStart, r.DbEnd+1, r.QStart, r.QEnd+1, err)
		return nil, err
	}
	r.Cigar = cigar
	return r, nil
}

// findEnd runs the 8-bit kernel, falling back to 16-bit on overflow (or
// using it directly if that's all Init built).
func (a *Aligner) findEnd(ref []byte, maskLen int) (best, second endResult, useWord bool, err error) {
	if a.pByte != nil {
		a.ensureByteBuf(len(ref))
		best, second, err = kernelByte(ref, a.pByte, a.gap.Open, a.gap.Extend, a.bias, 0, maskLen, a.byteBuf)
		if err == nil {
			return best, second, false, nil
		}
		if err != errOverflow {
			return endResult{}, endResult{}, false, err
		}
	}
	if a.pWord == nil {
		return endResult{}, endResult{}, false, errScoreSizeMismatch()
	}
	a.ensureWordBuf(len(ref))
	best, second = kernelWord(ref, a.pWord, a.gap.Open, a.gap.Extend, 0, maskLen, a.wordBuf)
	return best, second, true, nil
}
