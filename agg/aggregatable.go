package agg

import (
	"slices"

	"github.com/go-gum/estring"
	"golang.org/x/exp/constraints"
)

// Number is the set of types items can be reduced to.
type Number interface {
	constraints.Integer | constraints.Float
}

// Aggregatable is a Codec whose values can be flattened into numeric items.
type Aggregatable[T any, N Number] interface {
	estring.Codec[T]

	// Items returns the flattened items of value in textual order.
	Items(value T) []N
}

// Leaf adapts a codec of numbers into an Aggregatable yielding each value as its only item.
func Leaf[N Number](codec estring.Codec[N]) LeafCodec[N] {
	return LeafCodec[N]{Codec: codec}
}

type LeafCodec[N Number] struct {
	estring.Codec[N]
}

func (LeafCodec[N]) Items(value N) []N {
	return []N{value}
}

// SepVec is like estring.SepVec, but flattens the items of all elements.
func SepVec[T any, N Number](sep rune, elem Aggregatable[T, N]) SepVecCodec[T, N] {
	return SepVecCodec[T, N]{
		SepVecCodec: estring.SepVec[T](sep, elem),
		elem:        elem,
	}
}

type SepVecCodec[T any, N Number] struct {
	estring.SepVecCodec[T]
	elem Aggregatable[T, N]
}

func (s SepVecCodec[T, N]) Items(values []T) []N {
	var items []N
	for _, value := range values {
		items = append(items, s.elem.Items(value)...)
	}

	return items
}

// Optional is like estring.Optional. An absent value contributes no items.
func Optional[T any, N Number](inner Aggregatable[T, N]) OptionalCodec[T, N] {
	return OptionalCodec[T, N]{
		OptionalCodec: estring.Optional[T](inner),
		inner:         inner,
	}
}

type OptionalCodec[T any, N Number] struct {
	estring.OptionalCodec[T]
	inner Aggregatable[T, N]
}

func (o OptionalCodec[T, N]) Items(value *T) []N {
	if value == nil {
		return nil
	}

	return o.inner.Items(*value)
}

// Trim is like estring.Trim and passes the items of inner through.
func Trim[T any, N Number](inner Aggregatable[T, N]) TrimCodec[T, N] {
	return TrimCodec[T, N]{
		TrimCodec: estring.Trim[T](inner),
		inner:     inner,
	}
}

type TrimCodec[T any, N Number] struct {
	estring.TrimCodec[T]
	inner Aggregatable[T, N]
}

func (t TrimCodec[T, N]) Items(value T) []N {
	return slices.Clone(t.inner.Items(value))
}
