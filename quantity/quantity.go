// Package quantity implements a named amount of something, like gold or mana,
// stored as a bignum value together with its display text.
package quantity

import (
	"fmt"

	"github.com/avdva/bignum"
)

// Quantity is an immutable bignum value paired with the text it is displayed as.
// Its zero value is "0".
type Quantity struct {
	amount bignum.Value
	text   string
}

// New returns a quantity for the value, displayed as v.String().
func New(v bignum.Value) Quantity {
	return Quantity{amount: v, text: v.String()}
}

// FromString parses the text with bignum.FromString.
// The quantity is displayed exactly as given, so "1.00 De" stays "1.00 De".
func FromString(s string) (Quantity, error) {
	v, err := bignum.FromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("parsing quantity: %w", err)
	}
	return Quantity{amount: v, text: s}, nil
}

// MustFromString is like FromString but panics if the text cannot be parsed.
func MustFromString(s string) Quantity {
	q, err := FromString(s)
	if err != nil {
		panic(fmt.Sprintf("FromString(%q) failed: %v", s, err))
	}
	return q
}

// Amount returns the value of the quantity.
func (q Quantity) Amount() bignum.Value {
	return q.amount
}

// String returns the display text.
func (q Quantity) String() string {
	if q.text == "" {
		return q.amount.String()
	}
	return q.text
}

// Add returns a new quantity holding q + v.
func (q Quantity) Add(v bignum.Value) Quantity {
	return New(q.amount.Add(v))
}

// Sub returns a new quantity holding q - v and true.
// If v is greater than q, Sub returns q itself and false.
func (q Quantity) Sub(v bignum.Value) (Quantity, bool) {
	res, ok := q.amount.Sub(v)
	if !ok {
		return q, false
	}
	return New(res), true
}
