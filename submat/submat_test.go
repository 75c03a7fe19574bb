// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package submat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniBlosum = `# a tiny four-symbol substitution matrix for testing
   A  R  N  D
A  4 -1 -2 -2
R -1  5  0 -2
N -2  0  6  1
D -2 -2  1  6
`

func TestParseOrdersByAlphabet(t *testing.T) {
	mat, err := Parse(strings.NewReader(miniBlosum), "DNAR")
	require.NoError(t, err)
	require.Equal(t, 4, mat.Size)

	idx := map[byte]int{'D': 0, 'N': 1, 'A': 2, 'R': 3}
	assert.Equal(t, int8(4), mat.At(idx['A'], idx['A']))
	assert.Equal(t, int8(6), mat.At(idx['D'], idx['D']))
	assert.Equal(t, int8(1), mat.At(idx['D'], idx['N']))
	assert.Equal(t, int8(-1), mat.At(idx['A'], idx['R']))
}

func TestParseRejectsMissingAlphabetSymbol(t *testing.T) {
	_, err := Parse(strings.NewReader(miniBlosum), "ACGT")
	assert.Error(t, err)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""), "AR")
	assert.Error(t, err)
}

func TestParseRejectsMalformedRow(t *testing.T) {
	bad := "  A R\nA 1\n"
	_, err := Parse(strings.NewReader(bad), "AR")
	assert.Error(t, err)
}
