// Package agg reduces parsed structures to a single number.
//
// An [Aggregatable] is a codec that can additionally flatten the values it parses into
// a sequence of numeric items. The root number codecs of package estring already
// satisfy it, the containers of this package flatten recursively, and the aggregates
// [Sum] and [Product] contribute their reduced value as a single item. This lets
// aggregates nest inside containers and containers inside aggregates:
//
//	expr := agg.SumOf(agg.SepVec('+', agg.ProductOf(agg.SepVec('*', estring.Float[float32]()))))
//	value, _ := estring.ParseString("10+5*2+3", expr)
//	value.Agg() // 23
package agg
