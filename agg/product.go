package agg

import (
	"slices"

	"github.com/go-gum/estring"
)

// Product holds a parsed value together with its flattened items.
type Product[T any, N Number] struct {
	Value T
	items []N
}

// NewProduct creates a Product from an already parsed value.
func NewProduct[T any, N Number](value T, inner Aggregatable[T, N]) Product[T, N] {
	return Product[T, N]{Value: value, items: inner.Items(value)}
}

// Items returns the flattened items of the value.
func (p Product[T, N]) Items() []N {
	return slices.Clone(p.items)
}

// Agg multiplies all items from left to right. The product of no items is one.
func (p Product[T, N]) Agg() N {
	total := N(1)
	for _, item := range p.items {
		total *= item
	}

	return total
}

// ProductOf returns an Aggregatable that parses the fragment with inner and multiplies its items.
// Used as an element of another Aggregatable, a Product contributes its product as single item.
func ProductOf[T any, N Number](inner Aggregatable[T, N]) ProductCodec[T, N] {
	return ProductCodec[T, N]{inner: inner}
}

type ProductCodec[T any, N Number] struct {
	inner Aggregatable[T, N]
}

var _ Aggregatable[Product[int, int], int] = ProductCodec[int, int]{}

func (p ProductCodec[T, N]) Parse(fragment estring.Fragment) (Product[T, N], error) {
	value, err := p.inner.Parse(fragment)
	if err != nil {
		return Product[T, N]{}, err
	}

	return NewProduct(value, p.inner), nil
}

func (p ProductCodec[T, N]) Format(value Product[T, N]) estring.Fragment {
	return p.inner.Format(value.Value)
}

func (p ProductCodec[T, N]) Items(value Product[T, N]) []N {
	return []N{value.Agg()}
}
