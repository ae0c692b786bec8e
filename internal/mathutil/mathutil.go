// Package mathutil contains base-1000 helpers shared by bignum packages.
package mathutil

import (
	"math"
	"strconv"
)

const (
	// Base is the scale factor between two neighbouring tiers.
	Base = 1000
	// Epsilon is the magnitude below which a difference is treated as zero.
	Epsilon = 1e-7
	// DigitsPerStep is the number of decimal digits in one tier step.
	DigitsPerStep = 3
)

var (
	pow1000Table = func() [103]float64 { // 1000^102 is the last finite one
		var t [103]float64
		t[0] = 1
		for i := 1; i < len(t); i++ {
			t[i] = t[i-1] * Base
		}
		return t
	}()
)

// Pow1000 returns 1000^pow. Negative powers return 0, powers beyond float64 range return +Inf.
func Pow1000(pow int) float64 {
	if pow < 0 {
		return 0
	}
	if pow >= len(pow1000Table) {
		return math.Inf(1)
	}
	return pow1000Table[pow]
}

// NearZero reports whether |f| < Epsilon.
func NearZero(f float64) bool {
	return math.Abs(f) < Epsilon
}

// ScaleDown divides m by 1000 once per step.
// Steps are applied one at a time, so the result matches a step-by-step rescale bit for bit.
func ScaleDown(m float64, steps int) float64 {
	for ; steps > 0; steps-- {
		m /= Base
	}
	return m
}

// FormatFloat returns the shortest decimal form of f that parses back to f,
// without an exponent and without trailing fractional zeros.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
