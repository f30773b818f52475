package agg

import (
	"slices"

	"github.com/go-gum/estring"
)

// Sum holds a parsed value together with its flattened items.
type Sum[T any, N Number] struct {
	Value T
	items []N
}

// NewSum creates a Sum from an already parsed value.
func NewSum[T any, N Number](value T, inner Aggregatable[T, N]) Sum[T, N] {
	return Sum[T, N]{Value: value, items: inner.Items(value)}
}

// Items returns the flattened items of the value.
func (s Sum[T, N]) Items() []N {
	return slices.Clone(s.items)
}

// Agg adds up all items from left to right. The sum of no items is zero.
func (s Sum[T, N]) Agg() N {
	var total N
	for _, item := range s.items {
		total += item
	}

	return total
}

// SumOf returns an Aggregatable that parses the fragment with inner and sums up its items.
// Used as an element of another Aggregatable, a Sum contributes its total as single item.
func SumOf[T any, N Number](inner Aggregatable[T, N]) SumCodec[T, N] {
	return SumCodec[T, N]{inner: inner}
}

type SumCodec[T any, N Number] struct {
	inner Aggregatable[T, N]
}

var _ Aggregatable[Sum[int, int], int] = SumCodec[int, int]{}

func (s SumCodec[T, N]) Parse(fragment estring.Fragment) (Sum[T, N], error) {
	value, err := s.inner.Parse(fragment)
	if err != nil {
		return Sum[T, N]{}, err
	}

	return NewSum(value, s.inner), nil
}

func (s SumCodec[T, N]) Format(value Sum[T, N]) estring.Fragment {
	return s.inner.Format(value.Value)
}

func (s SumCodec[T, N]) Items(value Sum[T, N]) []N {
	return []N{value.Agg()}
}
