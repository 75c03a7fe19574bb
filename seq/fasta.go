// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seq

import (
	"io"

	"github.com/HelloWorldCN/mmseqs-align/encoding/fasta"
	"github.com/pkg/errors"
)

// Record is one named sequence loaded from a FASTA file, its raw bytes
// still in ASCII (not yet alphabet-encoded).
type Record struct {
	Name string
	Seq  []byte
}

// ReadFastaOpt configures ReadFasta; it is fasta.Opt under a package-local
// name so callers of package seq never need to import encoding/fasta
// directly.
type ReadFastaOpt = fasta.Opt

// OptClean requests DNA-specific cleaning (uppercase, non-ACGT -> 'N')
// before the caller alphabet-encodes each record. Only meaningful for DNA
// references; leave unset for protein input.
var OptClean = fasta.OptClean

// ReadFasta reads every record out of r (a reference sequence database)
// by delegating to
// encoding/fasta's scanner-based parser, then flattening its
// name-indexed Fasta into an ordered slice of Records.
func ReadFasta(r io.Reader, opts ...ReadFastaOpt) ([]Record, error) {
	f, err := fasta.New(r, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "seq: reading FASTA input")
	}
	names := f.SeqNames()
	if len(names) == 0 {
		return nil, errors.New("seq: no records found in FASTA input")
	}
	records := make([]Record, len(names))
	for i, name := range names {
		n, err := f.Len(name)
		if err != nil {
			return nil, errors.Wrapf(err, "seq: getting length of %q", name)
		}
		s, err := f.Get(name, 0, n)
		if err != nil {
			return nil, errors.Wrapf(err, "seq: getting sequence %q", name)
		}
		records[i] = Record{Name: name, Seq: []byte(s)}
	}
	return records, nil
}
