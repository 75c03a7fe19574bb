// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package align implements a striped, SIMD-accelerated local pairwise
// sequence alignment engine: the Smith-Waterman algorithm with affine gap
// penalties, computed via Farrar's striped vectorized dynamic-programming
// recurrence (the technique behind MMseqs2's and SSW's
// smith_waterman_sse2.C, which this package's recurrence, profile layout,
// and banded traceback are grounded on).
//
// An Aligner is constructed once per query (via NewAligner, then Init),
// and reused across many calls to Align against different reference
// sequences -- the usual pattern in a similarity-search pipeline, where one
// read is searched against a large reference database. An Aligner is not
// safe for concurrent use; give each worker goroutine its own instance (see
// package batch).
package align
