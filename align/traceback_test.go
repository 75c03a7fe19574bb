// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandedTracebackIdentity(t *testing.T) {
	mat := dnaMatrix(t, 2, 2)
	ref := codes("ACGT")
	query := codes("ACGT")

	cigar, err := bandedTraceback(ref, query, mat, 3, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, Cigar{sam.NewCigarOp(sam.CigarMatch, 4)}, cigar)
}

func TestBandedTracebackOneDeletionSpans(t *testing.T) {
	mat := dnaMatrix(t, 2, 2)
	ref := codes("ACTGT")
	query := codes("ACGT")

	cigar, err := bandedTraceback(ref, query, mat, 3, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, refSpan(cigar))
	assert.Equal(t, 4, querySpan(cigar))
}
