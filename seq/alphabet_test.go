// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDNAEncodeDecode(t *testing.T) {
	codes, err := DNA.Encode([]byte("acgtACGT"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3, 0, 1, 2, 3}, codes)
	assert.Equal(t, "ACGTACGT", DNA.Decode(codes))
}

func TestDNAEncodeRejectsUnknownSymbol(t *testing.T) {
	_, err := DNA.Encode([]byte("ACGN"))
	assert.Error(t, err)
}

func TestProteinSize(t *testing.T) {
	assert.Equal(t, 21, Protein.Size())
}
