package bignum

import (
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"

	"github.com/avdva/bignum/tier"
)

func BenchmarkAdd(b *testing.B) {
	v0 := FromMantAndTier(123.4567, tier.Million)
	v1 := FromMantAndTier(987.65, tier.Thousand)
	for i := 0; i < b.N; i++ {
		_ = v0.Add(v1)
	}
}

func BenchmarkAddCarry(b *testing.B) {
	v0 := FromMantAndTier(1_100_000, tier.Thousand)
	v1 := FromMantAndTier(0, tier.None)
	for i := 0; i < b.N; i++ {
		_ = v0.Add(v1)
	}
}

func BenchmarkSub(b *testing.B) {
	v0 := FromMantAndTier(0.5, tier.Million)
	v1 := FromMantAndTier(0.2, tier.Million)
	for i := 0; i < b.N; i++ {
		_, _ = v0.Sub(v1)
	}
}

func BenchmarkAddOtherFixed(b *testing.B) {
	f0 := of.NewF(123456700)
	f1 := of.NewF(987650)
	for i := 0; i < b.N; i++ {
		_ = f0.Add(f1)
	}
}

func BenchmarkAddDecimal(b *testing.B) {
	d0 := decimal.NewFromFloat(123456700)
	d1 := decimal.NewFromFloat(987650)
	for i := 0; i < b.N; i++ {
		_ = d0.Add(d1)
	}
}

func BenchmarkFromString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = FromString("250.75 QdVg")
	}
}

func BenchmarkString(b *testing.B) {
	v := FromMantAndTier(250.75, tier.Quattuorvigintillion)
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}
