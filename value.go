// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bignum implements a tiered magnitude: a float64 mantissa paired with a named tier,
// where every tier is worth 1000 of the previous one.
// Can be used to display huge quantities, like the ones in incremental games,
// without ever materializing the true number.
package bignum

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/avdva/bignum/internal/mathutil"
	"github.com/avdva/bignum/tier"
)

var (
	// Zero is a zero value at tier None. Sub returns it when it refuses to subtract.
	Zero Value
)

// Value is a number equal to mantissa * 1000^tier.
// Values produced by Add and Sub are canonical: 1 <= |mantissa| < 1000,
// unless the value is zero, or the tier is tier.Infinite, where the mantissa is not bounded.
// Values built with FromMantAndTier or parsed from a string are kept as is.
//
// Value is immutable and comparable. Two values are equal, if both the mantissa and the tier are equal,
// so == and Eq agree, and Value can be used as a map key.
// A NaN mantissa is never equal to anything, including itself.
type Value struct {
	mant float64
	tier tier.Tier
}

// FromMantAndTier returns a value for given mantissa and tier.
// The value is not normalized, see Normalized.
func FromMantAndTier(mant float64, t tier.Tier) Value {
	return Value{mant: mant, tier: t}
}

// FromFloat64 returns a value with tier.None for a float number.
func FromFloat64(f float64) Value {
	return Value{mant: f}
}

// Mantissa returns v's mantissa as is.
func (v Value) Mantissa() float64 {
	return v.mant
}

// Tier returns v's tier.
func (v Value) Tier() tier.Tier {
	return v.tier
}

// IsZero returns true if the value has zero mantissa, regardless of its tier.
func (v Value) IsZero() bool {
	return v.mant == 0
}

// IsCanonical returns true if the value is zero, or its mantissa is within [1, 1000) by magnitude.
// At tier.Infinite any mantissa not below 1 is canonical.
func (v Value) IsCanonical() bool {
	if v.mant == 0 {
		return true
	}
	m := math.Abs(v.mant)
	if m < 1 {
		return false
	}
	return v.tier == tier.Infinite || m < mathutil.Base
}

// Eq returns true if both values have equal mantissas and tiers.
// No normalization and no epsilon are involved: 1000 K is not equal to 1 M.
func (v Value) Eq(other Value) bool {
	return v == other
}

// Add sums two values.
// Both mantissas are first scaled to the higher tier of the two, then the sum is carried
// to the next tiers while it is not below 1000 by magnitude.
// The carry stops at tier.Infinite, leaving the mantissa as is.
func (v Value) Add(other Value) Value {
	m1, m2, t := toEqualTier(v, other)
	return carry(m1+m2, t)
}

// Sub returns v - other and true, or Zero and false if the subtraction would go negative.
//
// The refusal check compares tiers first and mantissas second, without rescaling,
// so it is only accurate for canonical operands.
// A zero result keeps the higher tier of the operands.
// A result within (0, 1) is borrowed down to the lower tiers until it reaches 1 or tier.None.
func (v Value) Sub(other Value) (Value, bool) {
	if v.tier < other.tier || (v.tier == other.tier && v.mant < other.mant) {
		return Zero, false
	}
	m1, m2, t := toEqualTier(v, other)
	diff := m1 - m2
	if mathutil.NearZero(diff) {
		return Value{tier: t}, true
	}
	return borrow(diff, t), true
}

// Normalized returns a canonical value equal to v.
// Unlike Add and Sub, it also moves negative mantissas within (-1, 0) down the tiers.
func (v Value) Normalized() Value {
	if v.mant == 0 || math.IsNaN(v.mant) || math.IsInf(v.mant, 0) {
		return v
	}
	m, t := v.mant, v.tier
	for math.Abs(m) >= mathutil.Base && t < tier.Infinite {
		m /= mathutil.Base
		t = t.Next()
	}
	for math.Abs(m) < 1 && t > tier.None {
		m *= mathutil.Base
		t = t.Prev()
	}
	return Value{mant: m, tier: t}
}

// Float64 returns mantissa * 1000^tier as a float64.
// For large tiers the result can overflow to an infinity.
func (v Value) Float64() float64 {
	if v.mant == 0 {
		return 0
	}
	return v.mant * mathutil.Pow1000(v.tier.Index())
}

// Decimal returns the exact decimal expansion of the value.
// Infinities and NaNs can not be represented and result in zero.
func (v Value) Decimal() decimal.Decimal {
	if math.IsNaN(v.mant) || math.IsInf(v.mant, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v.mant).Shift(int32(v.tier.Index() * mathutil.DigitsPerStep))
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return v.String() + fmt.Sprintf(" {%v, %d}", v.mant, v.tier.Index())
}

// toEqualTier scales both mantissas to the higher of the two tiers.
// Every step divides by 1000 separately.
func toEqualTier(a, b Value) (m1, m2 float64, t tier.Tier) {
	t = tier.Max(a.tier, b.tier)
	return rescale(a, t), rescale(b, t), t
}

func rescale(v Value, target tier.Tier) float64 {
	return mathutil.ScaleDown(v.mant, target.Index()-v.tier.Index())
}

func carry(m float64, t tier.Tier) Value {
	for math.Abs(m) >= mathutil.Base && t < tier.Infinite {
		m /= mathutil.Base
		t = t.Next()
	}
	return Value{mant: m, tier: t}
}

func borrow(m float64, t tier.Tier) Value {
	for m > 0 && m < 1 && t > tier.None {
		m *= mathutil.Base
		t = t.Prev()
	}
	return Value{mant: m, tier: t}
}
