// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "github.com/pkg/errors"

// errOverflow is returned internally by the 8-bit kernel (never by Align)
// when a cell's score saturates at 255; Align catches it and retries with
// the 16-bit kernel.
var errOverflow = errors.New("align: byte kernel overflowed")

// ErrNoAlignment is returned by Align when the best score is 0: no
// positive-scoring local alignment exists between query and reference.
var ErrNoAlignment = errors.New("align: no positive-scoring alignment found")

func errEmptyQuery() error {
	return errors.New("align: query sequence is empty")
}

func errEmptyRef() error {
	return errors.New("align: reference sequence is empty")
}

func errAlphabet(symbol byte, size int) error {
	return errors.Errorf("align: symbol code %d out of range for alphabet of size %d", symbol, size)
}

func errGapPenalties(gp GapPenalties) error {
	return errors.Errorf("align: gap open (%d) must be >= gap extend (%d)", gp.Open, gp.Extend)
}

func errTraceback() error {
	return errors.New("align: banded traceback walked off its direction matrix")
}

func errScoreMismatch(forward, reverse int) error {
	return errors.Errorf("align: forward score %d and reverse (start-finding) score %d disagree", forward, reverse)
}

func errScoreSizeMismatch() error {
	return errors.New("align: 8-bit kernel overflowed but Init was not called with ScoreSizeBoth or ScoreSizeWord")
}
