// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package alignsimd

// LanesU8 is the number of 8-bit lanes in a 128-bit vector.
const LanesU8 = 16

// LanesI16 is the number of 16-bit lanes in a 128-bit vector.
const LanesI16 = 8

// VecU8 is a 128-bit vector of 16 saturating unsigned 8-bit lanes. It backs
// the 8-bit striped DP kernel (align.kernelByte): H, E and F columns, and
// the biased query profile.
type VecU8 [LanesU8]byte

// VecI16 is a 128-bit vector of 8 saturating signed 16-bit lanes. It backs
// the 16-bit striped DP kernel (align.kernelWord).
type VecI16 [LanesI16]int16

// BroadcastU8 returns a vector with every lane set to b.
func BroadcastU8(b byte) (v VecU8) {
	for i := range v {
		v[i] = b
	}
	return v
}

// BroadcastI16 returns a vector with every lane set to n.
func BroadcastI16(n int16) (v VecI16) {
	for i := range v {
		v[i] = n
	}
	return v
}

// ZeroU8 is the all-zero VecU8, the DP kernels' initial H/E/F value.
var ZeroU8 VecU8

// ZeroI16 is the all-zero VecI16.
var ZeroI16 VecI16

// EqualU8 reports whether every lane of a and b matches. It is plain Go on
// both builds; align.kernelByte calls it in its Lazy-F termination test and
// in its per-column running-max check.
func EqualU8(a, b VecU8) bool {
	return a == b
}

// EqualI16 reports whether every lane of a and b matches.
func EqualI16(a, b VecI16) bool {
	return a == b
}
