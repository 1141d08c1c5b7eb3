package veb

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/aglyzov/go-veb/internal/oracle"
)

const benchUniverse = 1 << 32

func BenchmarkGoMap_Insert(b *testing.B) {
	var (
		vals = getVals(b.N, benchUniverse)
		m    = make(map[uint64]struct{})
	)

	b.ResetTimer()

	for _, val := range vals {
		m[val] = struct{}{}
	}
}

func BenchmarkGoMap_Find(b *testing.B) {
	var (
		vals = getVals(b.N, benchUniverse)
		m    = make(map[uint64]struct{})
	)

	for _, val := range vals {
		m[val] = struct{}{}
	}

	b.ResetTimer()

	for _, val := range vals {
		_ = m[val]
	}
}

func BenchmarkOracle_Insert(b *testing.B) {
	var (
		vals = getVals(b.N, benchUniverse)
		ref  = oracle.New()
	)

	b.ResetTimer()

	for _, val := range vals {
		ref.Insert(val)
	}
}

func BenchmarkOracle_CloseAbove(b *testing.B) {
	var (
		vals = getVals(b.N, benchUniverse)
		ref  = oracle.New(vals...)
	)

	b.ResetTimer()

	for _, val := range vals {
		_, _ = ref.CloseAbove(val)
	}
}

func BenchmarkTree_Insert(b *testing.B) {
	var (
		vals = getVals(b.N, benchUniverse)
		tr   = MustNew(benchUniverse)
	)

	b.ResetTimer()

	for _, val := range vals {
		_, _ = tr.Insert(val)
	}
}

func BenchmarkTree_Find(b *testing.B) {
	var (
		vals = getVals(b.N, benchUniverse)
		tr   = MustNew(benchUniverse)
	)

	for _, val := range vals {
		_, _ = tr.Insert(val)
	}

	b.ResetTimer()

	for _, val := range vals {
		_ = tr.Find(val)
	}
}

func BenchmarkTree_CloseAbove(b *testing.B) {
	var (
		vals = getVals(b.N, benchUniverse)
		tr   = MustNew(benchUniverse)
	)

	for _, val := range vals {
		_, _ = tr.Insert(val)
	}

	b.ResetTimer()

	for _, val := range vals {
		_, _ = tr.CloseAbove(val)
	}
}

func BenchmarkTree_Delete(b *testing.B) {
	var (
		vals = getVals(b.N, benchUniverse)
		tr   = MustNew(benchUniverse)
	)

	for _, val := range vals {
		_, _ = tr.Insert(val)
	}

	b.ResetTimer()

	for _, val := range vals {
		_ = tr.Delete(val)
	}
}

func getVals(total int, universe uint64) []uint64 {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		vals  = make([]uint64, total)
	)

	for i := range vals {
		vals[i] = faker.Uint64() & (universe - 1)
	}

	return vals
}
