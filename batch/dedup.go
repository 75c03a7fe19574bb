// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package batch

import (
	"encoding/binary"

	"github.com/minio/highwayhash"
)

type hashKey = [highwayhash.Size]uint8

var zeroSeed = hashKey{}

// Dedup collapses hits that are exact repeats: same query, same
// reference, same coordinates and cigar. This happens when a caller
// merges the results of several overlapping batch.Run calls (e.g. a
// sharded database with deliberately overlapping shard boundaries); the
// first occurrence of each key is kept.
func Dedup(hits []Hit, matrixHash uint64) []Hit {
	seen := make(map[hashKey]bool, len(hits))
	out := make([]Hit, 0, len(hits))
	var buf []uint8
	for _, h := range hits {
		key := hitKey(&buf, h, matrixHash)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}
	return out
}

func hitKey(buf *[]uint8, h Hit, matrixHash uint64) hashKey {
	*buf = (*buf)[:0]
	appendString(buf, h.Query)
	appendString(buf, h.Ref)
	appendInt(buf, h.Result.DbStart)
	appendInt(buf, h.Result.DbEnd)
	appendInt(buf, h.Result.QStart)
	appendInt(buf, h.Result.QEnd)
	appendInt(buf, int(matrixHash))
	for _, op := range h.Result.Cigar {
		appendInt(buf, int(op))
	}
	return highwayhash.Sum(*buf, zeroSeed[:])
}

func appendString(buf *[]uint8, s string) {
	*buf = append(*buf, s...)
	*buf = append(*buf, 0)
}

func appendInt(buf *[]uint8, v int) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], uint64(v))
	*buf = append(*buf, tmp[:]...)
}
