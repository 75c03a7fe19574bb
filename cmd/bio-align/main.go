// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

/*
bio-align is a striped SIMD Smith-Waterman local aligner: it searches one
query FASTA/FASTQ file against a reference FASTA database and reports the
best local alignment against each reference sequence.
*/

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/HelloWorldCN/mmseqs-align/align"
	"github.com/HelloWorldCN/mmseqs-align/batch"
	"github.com/HelloWorldCN/mmseqs-align/seq"
	"github.com/HelloWorldCN/mmseqs-align/submat"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

var (
	alphabetName = flag.String("alphabet", "dna", "Query/reference alphabet: 'dna' or 'protein'")
	matrixPath   = flag.String("matrix", "", "NCBI/BLOSUM-format substitution matrix path; if empty, a +2/-2 DNA or +1/-3 protein default is used")
	gapOpen      = flag.Int("gap-open", 10, "Affine gap open penalty (non-negative)")
	gapExtend    = flag.Int("gap-extend", 1, "Affine gap extend penalty (non-negative)")
	scoreFilter  = flag.Int("min-score", 0, "Skip start/cigar computation for hits scoring below this")
	maskLen      = flag.Int("mask-len", 0, "Second-best-alignment search window half-width; 0 disables the second-best search")
	parallelism  = flag.Int("parallelism", 0, "Maximum number of simultaneous alignment workers; 0 = runtime.NumCPU()")
	outPath      = flag.String("out", "bio-align.rio", "Output recordio path")
)

func bioAlignUsage() {
	fmt.Printf("Usage: %s [OPTIONS] querypath refpath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func defaultMatrix(alphabet *seq.Alphabet) *align.Matrix {
	size := alphabet.Size()
	scores := make([]int8, size*size)
	match, mismatch := int8(2), int8(-2)
	if alphabet == seq.Protein {
		match, mismatch = 1, -3
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if i == j {
				scores[i*size+j] = match
			} else {
				scores[i*size+j] = mismatch
			}
		}
	}
	mat, err := align.NewMatrix(size, scores)
	if err != nil {
		log.Panicf("bio-align: building default matrix: %v", err)
	}
	return mat
}

func loadAlphabet(name string) *seq.Alphabet {
	switch strings.ToLower(name) {
	case "dna":
		return seq.DNA
	case "protein":
		return seq.Protein
	default:
		log.Fatalf("bio-align: unknown alphabet %q (want 'dna' or 'protein')", name)
		return nil
	}
}

func main() {
	flag.Usage = bioAlignUsage
	shutdown := grail.Init()
	defer shutdown()

	allArgs := flag.Args()
	nPositionalArgs := flag.NArg()
	positionalArgs := allArgs[len(allArgs)-nPositionalArgs:]
	if nPositionalArgs != 2 {
		if nPositionalArgs < 2 {
			log.Fatalf("Missing positional arguments (querypath and refpath required); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
		} else {
			log.Fatalf("Too many positional arguments (only querypath and refpath expected); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
		}
	}
	queryPath, refPath := positionalArgs[0], positionalArgs[1]

	ctx := vcontext.Background()
	alphabet := loadAlphabet(*alphabetName)

	var mat *align.Matrix
	if *matrixPath != "" {
		var err error
		mat, err = submat.Load(ctx, *matrixPath, alphabet.Symbols)
		if err != nil {
			log.Panicf("bio-align: loading matrix %s: %v", *matrixPath, err)
		}
	} else {
		mat = defaultMatrix(alphabet)
	}
	gap := align.GapPenalties{Open: byte(*gapOpen), Extend: byte(*gapExtend)}

	queries := readQueries(ctx, queryPath)
	refs := readRefs(ctx, refPath, alphabet == seq.DNA)

	out, err := file.Create(ctx, *outPath)
	if err != nil {
		log.Panicf("bio-align: creating %s: %v", *outPath, err)
	}
	w := batch.NewWriter(out.Writer(ctx))

	var flagBits align.Flag
	if *scoreFilter > 0 {
		flagBits |= align.FlagFilterByScore
	} else {
		flagBits |= align.FlagAlwaysCigar
	}

	total := 0
	for _, q := range queries {
		encoded, err := alphabet.Encode(q.Seq)
		if err != nil {
			log.Printf("bio-align: skipping query %q: %v", q.Name, err)
			continue
		}
		hits, err := batch.Run(q.Name, encoded, alphabet, mat, gap, align.ScoreSizeBoth, refs, batch.Options{
			Parallelism: *parallelism,
			Flag:        flagBits,
			FilterScore: *scoreFilter,
			MaskLen:     *maskLen,
		})
		if err != nil {
			log.Panicf("bio-align: aligning query %q: %v", q.Name, err)
		}
		for i := range hits {
			if err := w.Append(&hits[i]); err != nil {
				log.Panicf("bio-align: writing hit: %v", err)
			}
		}
		total += len(hits)
	}
	if err := w.Finish(); err != nil {
		log.Panicf("bio-align: finishing %s: %v", *outPath, err)
	}
	if err := out.Close(ctx); err != nil {
		log.Panicf("bio-align: closing %s: %v", *outPath, err)
	}
	log.Printf("bio-align: wrote %d hits across %d queries to %s", total, len(queries), *outPath)
}

// readQueries loads path as FASTQ if its first byte is '@', otherwise as
// FASTA; this mirrors how samtools/mmseqs accept either format for reads.
func readQueries(ctx context.Context, path string) []seq.Record {
	data := readWholeFile(ctx, path)
	if len(data) > 0 && data[0] == '@' {
		records, err := seq.ReadFastqQueries(bytes.NewReader(data))
		if err != nil {
			log.Panicf("bio-align: reading FASTQ queries from %s: %v", path, err)
		}
		return records
	}
	records, err := seq.ReadFasta(bytes.NewReader(data))
	if err != nil {
		log.Panicf("bio-align: reading FASTA queries from %s: %v", path, err)
	}
	return records
}

// readRefs loads the reference database, always FASTA. clean requests
// seq.OptClean (ACGT capitalization, non-ACGT -> 'N'), which only makes
// sense for a DNA alphabet; a protein reference is loaded verbatim.
func readRefs(ctx context.Context, path string, clean bool) []seq.Record {
	data := readWholeFile(ctx, path)
	var opts []seq.ReadFastaOpt
	if clean {
		opts = append(opts, seq.OptClean)
	}
	records, err := seq.ReadFasta(bytes.NewReader(data), opts...)
	if err != nil {
		log.Panicf("bio-align: reading FASTA references from %s: %v", path, err)
	}
	return records
}

func readWholeFile(ctx context.Context, path string) []byte {
	in, err := file.Open(ctx, path)
	if err != nil {
		log.Panicf("bio-align: opening %s: %v", path, err)
	}
	data, err := ioutil.ReadAll(in.Reader(ctx))
	if closeErr := in.Close(ctx); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		log.Panicf("bio-align: reading %s: %v", path, err)
	}
	return data
}
