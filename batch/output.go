// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package batch

import (
	"encoding/binary"
	"io"

	"github.com/grailbio/base/recordio"
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// NewWriter wraps w in a recordio.Writer that serializes Hits with
// MarshalHit, zstd-compressed the way pileup/snp's row output is.
func NewWriter(w io.Writer) recordio.Writer {
	return recordio.NewWriter(w, recordio.WriterOpts{
		Marshal:      MarshalHit,
		Transformers: []string{"zstd 1"},
	})
}

// MarshalHit packs a *Hit into recordio's scratch-reuse wire format:
//
//	[0:2)   len(Query)
//	Query bytes
//	[0:2)   len(Ref)
//	Ref bytes
//	7 x varint-free int64 fields: Score1, Score2, DbStart, DbEnd, QStart, QEnd, RefEnd2
//	[0:2)   len(Cigar)
//	Cigar ops, 4 bytes each
func MarshalHit(scratch []byte, v interface{}) ([]byte, error) {
	h, ok := v.(*Hit)
	if !ok {
		return nil, errors.Errorf("batch: MarshalHit given %T, want *Hit", v)
	}
	buf := scratch[:0]
	buf = appendStringField(buf, h.Query)
	buf = appendStringField(buf, h.Ref)
	for _, n := range []int{
		h.Result.Score1, h.Result.Score2,
		h.Result.DbStart, h.Result.DbEnd,
		h.Result.QStart, h.Result.QEnd,
		h.Result.RefEnd2,
	} {
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], uint64(int64(n)))
		buf = append(buf, tmp[:]...)
	}
	var nOps [2]byte
	binary.LittleEndian.PutUint16(nOps[:], uint16(len(h.Result.Cigar)))
	buf = append(buf, nOps[:]...)
	for _, op := range h.Result.Cigar {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(op))
		buf = append(buf, tmp[:]...)
	}
	return buf, nil
}

func appendStringField(buf []byte, s string) []byte {
	var n [2]byte
	binary.LittleEndian.PutUint16(n[:], uint16(len(s)))
	buf = append(buf, n[:]...)
	return append(buf, s...)
}

// UnmarshalHit is MarshalHit's inverse, exported so a downstream reader
// doesn't have to reimplement the wire format.
func UnmarshalHit(data []byte) (*Hit, error) {
	h := &Hit{}
	var ok bool
	h.Query, data, ok = readStringField(data)
	if !ok {
		return nil, errors.New("batch: truncated hit record (query)")
	}
	h.Ref, data, ok = readStringField(data)
	if !ok {
		return nil, errors.New("batch: truncated hit record (ref)")
	}
	fields := []*int{
		&h.Result.Score1, &h.Result.Score2,
		&h.Result.DbStart, &h.Result.DbEnd,
		&h.Result.QStart, &h.Result.QEnd,
		&h.Result.RefEnd2,
	}
	for _, f := range fields {
		if len(data) < 8 {
			return nil, errors.New("batch: truncated hit record (fields)")
		}
		*f = int(int64(binary.LittleEndian.Uint64(data[:8])))
		data = data[8:]
	}
	if len(data) < 2 {
		return nil, errors.New("batch: truncated hit record (cigar length)")
	}
	nOps := int(binary.LittleEndian.Uint16(data[:2]))
	data = data[2:]
	cigar := make(sam.Cigar, nOps)
	for i := 0; i < nOps; i++ {
		if len(data) < 4 {
			return nil, errors.New("batch: truncated hit record (cigar op)")
		}
		cigar[i] = sam.CigarOp(binary.LittleEndian.Uint32(data[:4]))
		data = data[4:]
	}
	h.Result.Cigar = cigar
	return h, nil
}

func readStringField(data []byte) (string, []byte, bool) {
	if len(data) < 2 {
		return "", nil, false
	}
	n := int(binary.LittleEndian.Uint16(data[:2]))
	data = data[2:]
	if len(data) < n {
		return "", nil, false
	}
	return string(data[:n]), data[n:], true
}
