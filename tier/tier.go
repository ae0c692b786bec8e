// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package tier defines the ordered set of named scale steps used by bignum values.
// Every step is worth 1000 of the previous one: tier N scales a mantissa by 1000^N.
package tier

import (
	"errors"
	"fmt"
)

// Tier is a scale step. The zero value is None.
type Tier uint8

const (
	None Tier = iota
	Thousand
	Million
	Billion
	Trillion
	Quadrillion
	Quintillion
	Sextillion
	Septillion
	Octillion
	Nonillion
	Decillion
	Undecillion
	Duodecillion
	Tredecillion
	Quattuordecillion
	Quindecillion
	Sexdecillion
	Septendecillion
	Octodecillion
	Novemdecillion
	Vigintillion
	Unvigintillion
	Duovigintillion
	Trevigintillion
	Quattuorvigintillion
	Quinvigintillion
	Sexvigintillion
	Septenvigintillion
	Octovigintillion
	Novemvigintillion
	Trigintillion
	// Infinite is the terminal tier. Automatic promotion never goes past it,
	// and a mantissa at this tier is not bounded by 1000.
	Infinite
)

// Count is the number of tiers, None and Infinite included.
const Count = int(Infinite) + 1

var (
	// ErrUnknownLabel is returned by Parse for a label that names no tier.
	ErrUnknownLabel = errors.New("unknown tier label")

	labels = [Count]string{
		"", "K", "M", "B", "T", "Qd", "Qn", "Sx", "Sp", "Oc", "No",
		"De", "UDe", "DDe", "TDe", "QdDe", "QnDe", "SxDe", "SpDe", "OcDe", "NoDe",
		"Vg", "UVg", "DVg", "TVg", "QdVg", "QnVg", "SxVg", "SpVg", "OcVg", "NoVg",
		"Tg", "Infinite",
	}

	byLabel = make(map[string]Tier, Count)
)

func init() {
	for i, l := range labels {
		if l == "" {
			continue
		}
		byLabel[l] = Tier(i)
	}
}

// Parse returns the tier for a text label, like "K" or "QdVg".
// None has no label, so neither "" nor "None" are accepted.
func Parse(label string) (Tier, error) {
	if t, found := byLabel[label]; found {
		return t, nil
	}
	return None, fmt.Errorf("%w %q", ErrUnknownLabel, label)
}

// All returns every tier in ascending order.
func All() []Tier {
	result := make([]Tier, Count)
	for i := range result {
		result[i] = Tier(i)
	}
	return result
}

// Max returns the higher of two tiers.
func Max(a, b Tier) Tier {
	if a > b {
		return a
	}
	return b
}

// Valid reports whether t is one of the declared tiers.
func (t Tier) Valid() bool {
	return t <= Infinite
}

// Index returns the power of 1000 the tier stands for.
func (t Tier) Index() int {
	return int(t)
}

// Next returns the following tier. Infinite, and any invalid tier, saturate to Infinite.
func (t Tier) Next() Tier {
	if t >= Infinite {
		return Infinite
	}
	return t + 1
}

// Prev returns the preceding tier. None saturates to None.
// An invalid tier steps back to the last finite one.
func (t Tier) Prev() Tier {
	switch {
	case t == None:
		return None
	case t > Infinite:
		return Trigintillion
	}
	return t - 1
}

// Label returns the text label of the tier, "" for None and for invalid tiers.
func (t Tier) Label() string {
	if !t.Valid() {
		return ""
	}
	return labels[t]
}

// String returns the label, "None" for None, or a placeholder for invalid tiers.
func (t Tier) String() string {
	switch {
	case t == None:
		return "None"
	case !t.Valid():
		return fmt.Sprintf("Tier(%d)", uint8(t))
	}
	return labels[t]
}
