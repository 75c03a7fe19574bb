// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindStartAgreesWithKnownEnd(t *testing.T) {
	mat := dnaMatrix(t, 2, 2)
	gap := GapPenalties{Open: 3, Extend: 1}
	a := newTestAligner(t, mat, gap, "ACGT", ScoreSizeByte)

	ref := codes("TTACGTTT")
	r, err := a.Align(ref, FlagReturnStart, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, r.DbStart)
	assert.Equal(t, 0, r.QStart)
}
