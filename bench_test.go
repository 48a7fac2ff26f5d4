package fingertree

import "testing"

const benchSize = 100000

func BenchmarkAddFirst(b *testing.B) {
	for n := 0; n < b.N; n++ {
		t := Empty[int]()
		for i := 0; i < benchSize; i++ {
			t = t.AddFirst(i)
		}
	}
}

func BenchmarkRemoveFirst(b *testing.B) {
	tree := FromSlice(series(benchSize))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		t := tree
		for i := 0; i < benchSize; i++ {
			t = t.RemoveFirst()
		}
	}
}

func BenchmarkAddLast(b *testing.B) {
	for n := 0; n < b.N; n++ {
		t := Empty[int]()
		for i := 0; i < benchSize; i++ {
			t = t.AddLast(i)
		}
	}
}

func BenchmarkSplit(b *testing.B) {
	tree := FromSlice(series(benchSize))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchSize; i += 100 {
			tree.Split(func(m int) bool { return m > i })
		}
	}
}

func BenchmarkRemoveLast(b *testing.B) {
	tree := FromSlice(series(benchSize))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		t := tree
		for i := 0; i < benchSize; i++ {
			t = t.RemoveLast()
		}
	}
}

func BenchmarkConcat(b *testing.B) {
	parts := make([]Tree[int, int], 100)
	for i := range parts {
		parts[i] = FromSlice(seriesFrom(i*1000, 1000))
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		t := Empty[int]()
		for _, p := range parts {
			t = t.Concat(p)
		}
		_ = t.Measure()
	}
}
