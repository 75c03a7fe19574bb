// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package alignsimd provides the 128-bit "lane engine" the striped
// Smith-Waterman kernels in package align are built on: saturating add/sub,
// lane-wise max, single-lane left shift, and horizontal max, over 16 lanes
// of 8 bits or 8 lanes of 16 bits.
//
// Two implementations exist, selected at compile time the way biosimd
// selects between its SSE-asm and portable paths: an amd64 build backed by
// hand-written SSE2 assembly, and a generic build usable on any
// architecture (and exercised directly by this package's tests, since a
// scalar lane engine is a legal implementation of the same contract).
package alignsimd
