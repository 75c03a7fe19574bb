// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package alignsimd_test

import (
	"math/rand"
	"testing"

	"github.com/HelloWorldCN/mmseqs-align/alignsimd"
	"github.com/stretchr/testify/assert"
)

func TestAddSatU8Saturates(t *testing.T) {
	a := alignsimd.BroadcastU8(200)
	b := alignsimd.BroadcastU8(100)
	got := alignsimd.AddSatU8(a, b)
	assert.Equal(t, alignsimd.BroadcastU8(255), got)
}

func TestSubSatU8Floors(t *testing.T) {
	a := alignsimd.BroadcastU8(3)
	b := alignsimd.BroadcastU8(10)
	got := alignsimd.SubSatU8(a, b)
	assert.Equal(t, alignsimd.ZeroU8, got)
}

func TestMaxU8(t *testing.T) {
	var a, b, want alignsimd.VecU8
	for i := range a {
		a[i] = byte(i)
		b[i] = byte(15 - i)
		if a[i] > b[i] {
			want[i] = a[i]
		} else {
			want[i] = b[i]
		}
	}
	assert.Equal(t, want, alignsimd.MaxU8(a, b))
}

func TestShiftLeftOneLaneU8(t *testing.T) {
	var v alignsimd.VecU8
	for i := range v {
		v[i] = byte(i + 1)
	}
	got := alignsimd.ShiftLeftOneLaneU8(v)
	assert.Equal(t, byte(0), got[0])
	for i := 1; i < len(v); i++ {
		assert.Equal(t, v[i-1], got[i])
	}
}

func TestHorizontalMaxU8(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		var v alignsimd.VecU8
		want := byte(0)
		for i := range v {
			v[i] = byte(r.Intn(256))
			if v[i] > want {
				want = v[i]
			}
		}
		assert.Equal(t, want, alignsimd.HorizontalMaxU8(v))
	}
}

func TestAddSatI16Saturates(t *testing.T) {
	a := alignsimd.BroadcastI16(32000)
	b := alignsimd.BroadcastI16(1000)
	got := alignsimd.AddSatI16(a, b)
	assert.Equal(t, alignsimd.BroadcastI16(32767), got)
}

func TestSubSatU16Floors(t *testing.T) {
	a := alignsimd.BroadcastI16(3)
	b := alignsimd.BroadcastI16(10)
	got := alignsimd.SubSatU16(a, b)
	assert.Equal(t, alignsimd.ZeroI16, got)
}

func TestMaxI16(t *testing.T) {
	var a, b, want alignsimd.VecI16
	for i := range a {
		a[i] = int16(i - 4)
		b[i] = int16(4 - i)
		if a[i] > b[i] {
			want[i] = a[i]
		} else {
			want[i] = b[i]
		}
	}
	assert.Equal(t, want, alignsimd.MaxI16(a, b))
}

func TestShiftLeftOneLaneI16(t *testing.T) {
	var v alignsimd.VecI16
	for i := range v {
		v[i] = int16(100 + i)
	}
	got := alignsimd.ShiftLeftOneLaneI16(v)
	assert.Equal(t, int16(0), got[0])
	for i := 1; i < len(v); i++ {
		assert.Equal(t, v[i-1], got[i])
	}
}

func TestHorizontalMaxI16(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		var v alignsimd.VecI16
		want := int16(-32768)
		for i := range v {
			v[i] = int16(r.Intn(65536) - 32768)
			if v[i] > want {
				want = v[i]
			}
		}
		assert.Equal(t, want, alignsimd.HorizontalMaxI16(v))
	}
}

func TestAnyGreaterI16(t *testing.T) {
	a := alignsimd.BroadcastI16(5)
	b := alignsimd.BroadcastI16(5)
	assert.False(t, alignsimd.AnyGreaterI16(a, b))
	a[3] = 6
	assert.True(t, alignsimd.AnyGreaterI16(a, b))
}
