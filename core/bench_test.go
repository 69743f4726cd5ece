// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/matchers/core"
)

// BenchmarkEvaluate_Match measures the success path (no description work).
func BenchmarkEvaluate_Match(b *testing.B) {
	m := core.AllOf(core.GreaterThan(1), core.LessThan(100))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.Evaluate(m, 50)
	}
}

// BenchmarkEvaluate_Mismatch measures the failure path, text included.
func BenchmarkEvaluate_Mismatch(b *testing.B) {
	m := core.AllOf(core.GreaterThan(1), core.LessThan(100))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.Evaluate(m, 500)
	}
}

// BenchmarkEqual_Struct measures deep equality on a small struct.
func BenchmarkEqual_Struct(b *testing.B) {
	a, c := point{1, 2}, point{1, 2}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.Equal(a, c)
	}
}
