// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// Matrix is an A×A substitution matrix over a small alphabet (size A,
// typically 4 for DNA, up to ~25 for protein). Entry (i,j) is the score
// for aligning symbol i against symbol j.
type Matrix struct {
	Size   int
	Scores []int8 // row-major Size*Size
}

// NewMatrix validates and wraps a row-major A×A score table.
func NewMatrix(size int, scores []int8) (*Matrix, error) {
	if size <= 0 {
		return nil, errors.Errorf("align: matrix size must be positive, got %d", size)
	}
	if len(scores) != size*size {
		return nil, errors.Errorf("align: matrix of size %d needs %d entries, got %d", size, size*size, len(scores))
	}
	return &Matrix{Size: size, Scores: scores}, nil
}

// At returns the score for aligning symbol i against symbol j.
func (m *Matrix) At(i, j int) int8 {
	return m.Scores[i*m.Size+j]
}

// Bias returns |min(0, minimum matrix entry)|: the non-negative offset which, added to every entry, keeps all 8-bit
// profile values within the unsigned byte range.
func (m *Matrix) Bias() byte {
	min := int8(0)
	for _, s := range m.Scores {
		if s < min {
			min = s
		}
	}
	if min >= 0 {
		return 0
	}
	return byte(-int(min))
}

// GapPenalties holds the affine gap open and extend costs, both expressed
// as non-negative quantities that the DP recurrence subtracts.
type GapPenalties struct {
	Open   byte
	Extend byte
}

// ScoreSize selects which kernel precision(s) Init builds a profile for.
type ScoreSize int

const (
	// ScoreSizeByte builds only the 8-bit profile.
	ScoreSizeByte ScoreSize = 0
	// ScoreSizeWord builds only the 16-bit profile.
	ScoreSizeWord ScoreSize = 1
	// ScoreSizeBoth builds both, so Align can fall back from 8-bit to
	// 16-bit on overflow.
	ScoreSizeBoth ScoreSize = 2
)

// Flag is the orchestrator's caller-supplied bitfield.
type Flag uint8

const (
	// FlagReturnStart requests computation of the alignment's start
	// coordinates.
	FlagReturnStart Flag = 1 << iota
	// FlagFilterByScore skips start/cigar computation when score1 is
	// below the filterScore threshold passed to Align.
	FlagFilterByScore
	// FlagFilterByLength skips cigar computation when either aligned
	// span exceeds the filterLen threshold passed to Align.
	FlagFilterByLength
	// FlagAlwaysCigar forces cigar computation regardless of the filter
	// flags above.
	FlagAlwaysCigar
)

// Cigar is a run-length-encoded edit script. Op codes and packing
// (length<<4 | opcode) match github.com/grailbio/hts/sam's CigarOp exactly
// so a Cigar is directly usable anywhere a sam.Cigar is.
type Cigar = sam.Cigar

// Result is the outcome of one Align call. Coordinates
// are 0-based inclusive; unused coordinate fields are -1, unused scores are
// 0, and an empty Cigar means no edit script was requested or computed.
type Result struct {
	Score1 int // best alignment score
	Score2 int // second-best alignment score outside the mask window

	DbEnd   int // 0-based, inclusive best-alignment end on the reference
	DbStart int // 0-based, inclusive best-alignment start on the reference; -1 if not computed
	QEnd    int // 0-based, inclusive best-alignment end on the query
	QStart  int // 0-based, inclusive best-alignment start on the query; -1 if not computed
	RefEnd2 int // 0-based end of the second-best alignment; -1 if maskLen < 15 or none found

	Cigar Cigar
}
