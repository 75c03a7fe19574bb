// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides byte-array cleanup operations for FASTA/FASTQ
// sequence data, table-driven the way base/simd's lookup-table helpers are.
package biosimd
