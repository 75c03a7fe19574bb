// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package batch runs one query sequence against a whole database of
// reference sequences, sharding the database across a worker pool the
// way pileup/snp parallelizes across genomic shards. Each worker owns
// its own align.Aligner, since an Aligner's scratch buffers are not
// safe to share across goroutines.
package batch

import (
	"runtime"

	"github.com/HelloWorldCN/mmseqs-align/align"
	"github.com/HelloWorldCN/mmseqs-align/seq"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/pkg/errors"
)

// Options controls one Run call.
type Options struct {
	// Parallelism is the number of workers sharding refs. 0 means
	// runtime.NumCPU().
	Parallelism int
	Flag        align.Flag
	FilterScore int
	FilterLen   int
	MaskLen     int
}

// Hit is one reference that produced an alignment result.
type Hit struct {
	Query  string
	Ref    string
	Result align.Result
}

// Run aligns query (already alphabet-encoded) against every record in
// refs, sharding refs across Options.Parallelism workers. It returns
// every Hit whose Align call succeeded; references align.ErrNoAlignment
// is skipped rather than treated as a Run-level failure, since "no local
// alignment scored positive" is an expected outcome for most of a large
// database.
func Run(queryName string, query []byte, alphabet *seq.Alphabet, mat *align.Matrix, gap align.GapPenalties, scoreSz align.ScoreSize, refs []seq.Record, opts Options) ([]Hit, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > len(refs) {
		parallelism = len(refs)
	}

	perWorker := make([][]Hit, parallelism)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * len(refs)) / parallelism
		endIdx := ((jobIdx + 1) * len(refs)) / parallelism
		if startIdx == endIdx {
			return nil
		}

		aligner, err := align.NewAligner(mat, gap)
		if err != nil {
			return errors.Wrap(err, "batch: constructing aligner")
		}
		if err := aligner.Init(query, scoreSz); err != nil {
			return errors.Wrapf(err, "batch: initializing aligner for query %q", queryName)
		}

		var local []Hit
		for _, ref := range refs[startIdx:endIdx] {
			encoded, err := alphabet.Encode(ref.Seq)
			if err != nil {
				log.Printf("batch: skipping reference %q: %v", ref.Name, err)
				continue
			}
			res, err := aligner.Align(encoded, opts.Flag, opts.FilterScore, opts.FilterLen, opts.MaskLen)
			if err != nil {
				if errors.Cause(err) == align.ErrNoAlignment {
					continue
				}
				return errors.Wrapf(err, "batch: aligning query %q against reference %q", queryName, ref.Name)
			}
			local = append(local, Hit{Query: queryName, Ref: ref.Name, Result: *res})
		}
		perWorker[jobIdx] = local
		return nil
	})
	if err != nil {
		return nil, err
	}

	var hits []Hit
	for _, h := range perWorker {
		hits = append(hits, h...)
	}
	return hits, nil
}
