// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/stretchr/testify/assert"
)

func TestCigarBuilderFoldsRuns(t *testing.T) {
	b := &cigarBuilder{}
	b.push(sam.CigarMatch)
	b.push(sam.CigarMatch)
	b.push(sam.CigarDeletion)
	b.push(sam.CigarMatch)

	got := b.cigar()
	want := Cigar{
		sam.NewCigarOp(sam.CigarMatch, 1),
		sam.NewCigarOp(sam.CigarDeletion, 1),
		sam.NewCigarOp(sam.CigarMatch, 2),
	}
	assert.Equal(t, want, got)
}

func TestSpans(t *testing.T) {
	c := Cigar{
		sam.NewCigarOp(sam.CigarMatch, 2),
		sam.NewCigarOp(sam.CigarDeletion, 1),
		sam.NewCigarOp(sam.CigarMatch, 2),
	}
	assert.Equal(t, 5, refSpan(c))
	assert.Equal(t, 4, querySpan(c))
}
