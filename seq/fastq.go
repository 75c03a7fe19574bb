// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seq

import (
	"io"

	"github.com/HelloWorldCN/mmseqs-align/encoding/fastq"
	"github.com/pkg/errors"
)

// ReadFastqQueries reads every read out of r (a batch of query reads to search against a reference
// database) using encoding/fastq's Scanner, discarding quality and the
// "unknown" line since package align only scores sequence.
func ReadFastqQueries(r io.Reader) ([]Record, error) {
	scanner := fastq.NewScanner(r, fastq.ID|fastq.Seq)
	var records []Record
	var read fastq.Read
	for scanner.Scan(&read) {
		name := read.ID
		if len(name) > 0 && name[0] == '@' {
			name = name[1:]
		}
		records = append(records, Record{Name: name, Seq: []byte(read.Seq)})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "seq: reading FASTQ input")
	}
	if len(records) == 0 {
		return nil, errors.New("seq: no reads found in FASTQ input")
	}
	return records, nil
}
