// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// +build amd64,!appengine

package alignsimd

import (
	"unsafe"
)

// *** the following functions are defined in ops_amd64.s

//go:noescape
func addSatU8Asm(dst, a, b unsafe.Pointer)

//go:noescape
func subSatU8Asm(dst, a, b unsafe.Pointer)

//go:noescape
func maxU8Asm(dst, a, b unsafe.Pointer)

//go:noescape
func shiftLeftOneLaneU8Asm(dst, src unsafe.Pointer)

//go:noescape
func horizontalMaxU8Asm(src unsafe.Pointer) byte

//go:noescape
func addSatI16Asm(dst, a, b unsafe.Pointer)

//go:noescape
func subSatU16Asm(dst, a, b unsafe.Pointer)

//go:noescape
func maxI16Asm(dst, a, b unsafe.Pointer)

//go:noescape
func shiftLeftOneLaneI16Asm(dst, src unsafe.Pointer)

//go:noescape
func horizontalMaxI16Asm(src unsafe.Pointer) int16

//go:noescape
func anyGreaterI16Asm(a, b unsafe.Pointer) bool

// *** end assembly function signatures

// AddSatU8 returns the lane-wise saturating unsigned addition of a and b.
func AddSatU8(a, b VecU8) (r VecU8) {
	addSatU8Asm(unsafe.Pointer(&r), unsafe.Pointer(&a), unsafe.Pointer(&b))
	return r
}

// SubSatU8 returns the lane-wise saturating unsigned subtraction a-b
// (floored at 0).
func SubSatU8(a, b VecU8) (r VecU8) {
	subSatU8Asm(unsafe.Pointer(&r), unsafe.Pointer(&a), unsafe.Pointer(&b))
	return r
}

// MaxU8 returns the lane-wise unsigned maximum of a and b.
func MaxU8(a, b VecU8) (r VecU8) {
	maxU8Asm(unsafe.Pointer(&r), unsafe.Pointer(&a), unsafe.Pointer(&b))
	return r
}

// ShiftLeftOneLaneU8 shifts v left by one lane (one byte); lane 0 of the
// result is 0. This is the per-column "shift-in" step of the striped
// kernel and the Lazy-F wraparound shift.
func ShiftLeftOneLaneU8(v VecU8) (r VecU8) {
	shiftLeftOneLaneU8Asm(unsafe.Pointer(&r), unsafe.Pointer(&v))
	return r
}

// HorizontalMaxU8 folds v down to the maximum of its 16 lanes.
func HorizontalMaxU8(v VecU8) byte {
	return horizontalMaxU8Asm(unsafe.Pointer(&v))
}

// AddSatI16 returns the lane-wise saturating signed addition of a and b.
func AddSatI16(a, b VecI16) (r VecI16) {
	addSatI16Asm(unsafe.Pointer(&r), unsafe.Pointer(&a), unsafe.Pointer(&b))
	return r
}

// SubSatU16 returns the lane-wise saturating subtraction a-b, treating both
// operands as non-negative quantities represented in signed 16-bit lanes
// The result never goes below 0.
func SubSatU16(a, b VecI16) (r VecI16) {
	subSatU16Asm(unsafe.Pointer(&r), unsafe.Pointer(&a), unsafe.Pointer(&b))
	return r
}

// MaxI16 returns the lane-wise signed maximum of a and b.
func MaxI16(a, b VecI16) (r VecI16) {
	maxI16Asm(unsafe.Pointer(&r), unsafe.Pointer(&a), unsafe.Pointer(&b))
	return r
}

// ShiftLeftOneLaneI16 shifts v left by one 16-bit lane; lane 0 of the
// result is 0.
func ShiftLeftOneLaneI16(v VecI16) (r VecI16) {
	shiftLeftOneLaneI16Asm(unsafe.Pointer(&r), unsafe.Pointer(&v))
	return r
}

// HorizontalMaxI16 folds v down to the maximum of its 8 lanes.
func HorizontalMaxI16(v VecI16) int16 {
	return horizontalMaxI16Asm(unsafe.Pointer(&v))
}

// AnyGreaterI16 reports whether any lane of a is strictly greater than the
// corresponding lane of b. It backs the 16-bit Lazy-F loop's early-exit
// test.
func AnyGreaterI16(a, b VecI16) bool {
	return anyGreaterI16Asm(unsafe.Pointer(&a), unsafe.Pointer(&b))
}
