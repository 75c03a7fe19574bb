// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package batch

import (
	"encoding/binary"
	"sync"

	"github.com/HelloWorldCN/mmseqs-align/align"
	"github.com/dgryski/go-farm"
)

// MatrixCache memoizes substitution matrices by the farm hash of their
// raw byte content, so a driver re-running batch.Run many times against
// the same on-disk matrix (the common case: one matrix, many queries)
// only parses it once. Safe for concurrent use; a *align.Matrix, once
// built, is read-only and safe to share across every worker's Aligner.
type MatrixCache struct {
	mu      sync.Mutex
	entries map[uint64]*align.Matrix
}

// NewMatrixCache returns an empty cache.
func NewMatrixCache() *MatrixCache {
	return &MatrixCache{entries: make(map[uint64]*align.Matrix)}
}

// GetOrBuild returns the cached matrix for raw if present, otherwise
// calls build, stores its result, and returns it.
func (c *MatrixCache) GetOrBuild(raw []byte, build func() (*align.Matrix, error)) (*align.Matrix, error) {
	key := farm.Hash64(raw)

	c.mu.Lock()
	if mat, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return mat, nil
	}
	c.mu.Unlock()

	mat, err := build()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = mat
	c.mu.Unlock()
	return mat, nil
}

// MatrixHash returns a content hash identifying mat's score table, for
// callers that want to tag batch.Hit results with which matrix produced
// them without retaining the whole *align.Matrix.
func MatrixHash(mat *align.Matrix) uint64 {
	buf := make([]byte, len(mat.Scores))
	for i, s := range mat.Scores {
		buf[i] = byte(s)
	}
	return farm.Hash64(buf)
}

// QueryKey combines a query's bytes with its matrix's identity hash into
// one farm hash, so callers can recognize when two batch.Run calls would
// search an identical (query, matrix) pair.
func QueryKey(query []byte, matrixHash uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], matrixHash)
	return farm.Hash64WithSeed(query, binary.LittleEndian.Uint64(buf[:]))
}
