// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package submat loads NCBI/BLOSUM-format substitution matrices, the
// text format MMseqs ships under its data/ directory, and turns them into
// an align.Matrix ordered the way a caller's seq.Alphabet expects.
package submat

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/HelloWorldCN/mmseqs-align/align"
	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

// Load reads an NCBI-format substitution matrix from path (local or any
// scheme github.com/grailbio/base/file supports, e.g. s3://) and returns
// an align.Matrix whose rows and columns are ordered according to
// alphabet, a string of one-letter symbol codes such as "ACGT" or
// "ARNDCQEGHILKMFPSTWYVX".
//
// Any matrix row/column symbol not present in alphabet is ignored; a
// symbol present in alphabet but missing from the matrix is an error.
func Load(ctx context.Context, path string, alphabet string) (*align.Matrix, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "submat: opening %s", path)
	}
	mat, err := Parse(f.Reader(ctx), alphabet)
	if closeErr := f.Close(ctx); closeErr != nil && err == nil {
		err = errors.Wrapf(closeErr, "submat: closing %s", path)
	}
	if err != nil {
		return nil, err
	}
	return mat, nil
}

// Parse reads an NCBI-format substitution matrix from r, the same format
// BLOSUM62 and PAM250 ship in: comment lines starting with '#', a header
// row of whitespace-separated one-letter symbols, then one row per
// symbol giving that symbol's score against every column symbol.
func Parse(r io.Reader, alphabet string) (*align.Matrix, error) {
	scanner := bufio.NewScanner(r)
	var header []string
	rows := make(map[byte][]int8)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if header == nil {
			header = fields
			continue
		}
		if len(fields) != len(header)+1 {
			return nil, errors.Errorf("submat: row %q has %d fields, want %d", line, len(fields), len(header)+1)
		}
		symbol := fields[0]
		if len(symbol) != 1 {
			return nil, errors.Errorf("submat: row label %q is not a single symbol", symbol)
		}
		scores := make([]int8, len(header))
		for i, tok := range fields[1:] {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "submat: parsing score %q in row %q", tok, symbol)
			}
			if n < -128 || n > 127 {
				return nil, errors.Errorf("submat: score %d for %s/%s out of int8 range", n, symbol, header[i])
			}
			scores[i] = int8(n)
		}
		rows[symbol[0]] = scores
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "submat: reading matrix")
	}
	if header == nil {
		return nil, errors.New("submat: empty matrix input")
	}

	colIndex := make(map[byte]int, len(header))
	for i, sym := range header {
		if len(sym) != 1 {
			return nil, errors.Errorf("submat: header symbol %q is not a single symbol", sym)
		}
		colIndex[sym[0]] = i
	}

	size := len(alphabet)
	scores := make([]int8, size*size)
	for i := 0; i < size; i++ {
		row, ok := rows[alphabet[i]]
		if !ok {
			return nil, errors.Errorf("submat: alphabet symbol %q missing from matrix", string(alphabet[i]))
		}
		for j := 0; j < size; j++ {
			col, ok := colIndex[alphabet[j]]
			if !ok {
				return nil, errors.Errorf("submat: alphabet symbol %q missing from matrix header", string(alphabet[j]))
			}
			scores[i*size+j] = row[col]
		}
	}
	return align.NewMatrix(size, scores)
}
