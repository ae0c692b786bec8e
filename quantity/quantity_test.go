package quantity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/avdva/bignum"
	"github.com/avdva/bignum/tier"
)

var cmpOpts = cmp.AllowUnexported(Quantity{}, bignum.Value{})

func TestNew(t *testing.T) {
	a := assert.New(t)
	q := New(bignum.FromMantAndTier(250.75, tier.Thousand))
	a.Equal("250.75 K", q.String())
	a.Equal(bignum.FromMantAndTier(250.75, tier.Thousand), q.Amount())

	var zero Quantity
	a.Equal("0", zero.String())
	a.True(zero.Amount().IsZero())
}

func TestFromString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s    string
		text string
		v    bignum.Value
		err  string
	}{
		{"1.00 De", "1.00 De", bignum.FromMantAndTier(1, tier.Decillion), ""},
		{"+250.75 K", "+250.75 K", bignum.FromMantAndTier(250.75, tier.Thousand), ""},
		{"0", "0", bignum.Zero, ""},
		{"", "", bignum.Zero, "parsing quantity: parsing failed: empty input"},
		{"12 Gold", "", bignum.Zero, `parsing quantity: parsing failed: unknown tier label "Gold" at pos 4`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			q, err := FromString(test.s)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.text, q.String())
					a.Equal(test.v, q.Amount())
				}
			} else {
				a.EqualError(err, test.err)
				var fe *bignum.FormatError
				a.True(errors.As(err, &fe))
				a.Panics(func() {
					MustFromString(test.s)
				})
			}
		})
	}
}

func TestAdd(t *testing.T) {
	a := assert.New(t)
	gold := MustFromString("600.00 K")
	richer := gold.Add(bignum.MustFromString("500 K"))

	want := New(bignum.FromMantAndTier(1.1, tier.Million))
	if diff := cmp.Diff(want, richer, cmpOpts); diff != "" {
		t.Errorf("Add() mismatch (-want +got):\n%s", diff)
	}
	a.Equal("1.1 M", richer.String())
	a.Equal("600.00 K", gold.String(), "the receiver must not change")
}

func TestSub(t *testing.T) {
	a := assert.New(t)
	gold := MustFromString("0.5 M")

	spent, ok := gold.Sub(bignum.MustFromString("0.2 M"))
	a.True(ok)
	if diff := cmp.Diff(New(bignum.FromMantAndTier(300, tier.Thousand)), spent, cmpOpts); diff != "" {
		t.Errorf("Sub() mismatch (-want +got):\n%s", diff)
	}

	same, ok := gold.Sub(bignum.MustFromString("1 B"))
	a.False(ok)
	if diff := cmp.Diff(gold, same, cmpOpts); diff != "" {
		t.Errorf("refused Sub() must return the receiver (-want +got):\n%s", diff)
	}
}
