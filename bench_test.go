package bigconv

import (
	"math"
	"math/big"
	"testing"

	num "github.com/shabbyrobe/go-num"
)

var benchSink *big.Int

func BenchmarkToBigInt64(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = ToBigInt(int64(math.MinInt64))
	}
}

func BenchmarkToBigInt128(b *testing.B) {
	v := num.I128FromRaw(0x7fffffffffffffff, 0xffffffffffffffff)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = ToBigInt(v)
	}
}

func BenchmarkToBigUint64(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = ToBigUint(uint64(math.MaxUint64))
	}
}

func BenchmarkToBigUint128(b *testing.B) {
	v := num.U128FromRaw(math.MaxUint64, math.MaxUint64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = ToBigUint(v)
	}
}
