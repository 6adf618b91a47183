// SPDX-License-Identifier: MIT

// Package csc_test provides benchmarks for the structure check on banded
// patterns of growing size.
package csc_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sparsecheck/csc"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{1_000, 10_000, 100_000}

// sink to defeat dead-code elimination
var sinkB bool

// bandPattern builds an n×n pattern with the given half bandwidth.
func bandPattern(n, half int) csc.Pattern[int] {
	colptr := make([]int, n+1)
	rowidx := make([]int, 0, n*(2*half+1))
	for j := 0; j < n; j++ {
		for i := j - half; i <= j+half; i++ {
			if i >= 0 && i < n {
				rowidx = append(rowidx, i)
			}
		}
		colptr[j+1] = len(rowidx)
	}

	return csc.NewPattern(n, n, colptr, rowidx)
}

func BenchmarkValid(b *testing.B) {
	for _, n := range benchSizes {
		p := bandPattern(n, 3)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(8 * (len(p.ColPtr) + len(p.RowIdx))))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = csc.Valid(p.NRow, p.NCol, p.ColPtr, p.RowIdx)
			}
		})
	}
}

func BenchmarkValidStrict(b *testing.B) {
	p := bandPattern(100_000, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB = p.Valid(csc.WithStrictRange())
	}
}
