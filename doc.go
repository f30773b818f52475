// Package estring parses flat strings by annotating their shape. Instead of describing a
// grammar at runtime, the caller composes codecs that mirror the structure of the text
// (e.g. "a list separated by '+' of lists separated by '*' of floats") and a single
// recursive-descent protocol drives parsing from that composition.
//
// Every codec implements the [Parser] and [Formatter] contracts. Composite codecs such as
// [SepVec], [PairOf], [TrioOf], [Trim] and [Optional] are expressed purely in terms of
// their children's Parse and Format calls, which makes them freely nestable:
//
//	// "foo=bar\nhello=world"
//	dotenv := estring.SepVec('\n', estring.PairOf(estring.String(), '=', estring.String()))
//	pairs, err := estring.ParseString("foo=bar\nhello=world", dotenv)
//
// The Go type of the parsed value ([]Pair[string, string] above) is fixed by the
// composition at compile time. No reflection is involved on the parse path.
//
// Failures are reported as [ParseError] values that carry the smallest fragment that could
// not be handled together with a [Reason]. Leaf conversions delegate to [strconv], so their
// errors remain inspectable with [errors.Is] (e.g. [strconv.ErrRange]).
//
// Reducing parsed structures to a scalar (sums and products of nested lists) lives in the
// [github.com/go-gum/estring/agg] package.
package estring
