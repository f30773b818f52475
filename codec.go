package estring

import (
	"encoding"
	"fmt"
)

// Parser constructs a value of type T from a Fragment.
//
// Implementations must report failures as [ParseError], referencing the smallest
// fragment that failed. Composite parsers build their result exclusively by calling
// Parse of their children on sub fragments.
type Parser[T any] interface {
	Parse(Fragment) (T, error)
}

// Formatter renders a value of type T back into a Fragment. For canonical input
// (no superfluous white space) formatting a parsed value reproduces the input.
type Formatter[T any] interface {
	Format(T) Fragment
}

// Codec combines a Parser and a Formatter for the same type.
type Codec[T any] interface {
	Parser[T]
	Formatter[T]
}

// Parse parses the fragment using the given Parser.
func Parse[T any](fragment Fragment, parser Parser[T]) (T, error) {
	return parser.Parse(fragment)
}

// ParseString parses the string using the given Parser.
func ParseString[T any](value string, parser Parser[T]) (T, error) {
	return parser.Parse(Fragment(value))
}

// MustParse is like ParseString but panics if the value can not be parsed.
func MustParse[T any](value string, parser Parser[T]) T {
	parsed, err := parser.Parse(Fragment(value))
	if err != nil {
		panic(err)
	}

	return parsed
}

// Format formats the value using the given Formatter.
func Format[T any](value T, formatter Formatter[T]) Fragment {
	return formatter.Format(value)
}

// FragmentParser can be implemented by custom types to take part in parsing.
// Use [Custom] to turn such a type into a Codec.
type FragmentParser interface {
	ParseFragment(Fragment) error
}

// FragmentFormatter can be implemented by custom types to control how the codec
// returned by [Custom] formats them.
type FragmentFormatter interface {
	FormatFragment() Fragment
}

// Custom returns a Codec for a type whose pointer implements FragmentParser.
// Values are formatted using FragmentFormatter if implemented, falling
// back to [From].
func Custom[T any, PT interface {
	*T
	FragmentParser
}]() CustomCodec[T, PT] {
	return CustomCodec[T, PT]{}
}

type CustomCodec[T any, PT interface {
	*T
	FragmentParser
}] struct{}

func (CustomCodec[T, PT]) Parse(fragment Fragment) (T, error) {
	var value T
	if err := PT(&value).ParseFragment(fragment); err != nil {
		var zero T
		return zero, err
	}

	return value, nil
}

func (CustomCodec[T, PT]) Format(value T) Fragment {
	return formatAny(&value)
}

// Text returns a Codec for any type implementing [encoding.TextUnmarshaler], e.g.
// net.IP or time.Time. An error returned by UnmarshalText is reported with ReasonParse.
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() TextCodec[T, PT] {
	return TextCodec[T, PT]{}
}

type TextCodec[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}] struct{}

func (TextCodec[T, PT]) Parse(fragment Fragment) (T, error) {
	var value T
	if err := PT(&value).UnmarshalText([]byte(fragment)); err != nil {
		var zero T
		return zero, parseError(fragment, err)
	}

	return value, nil
}

func (TextCodec[T, PT]) Format(value T) Fragment {
	return formatAny(&value)
}

// formatAny formats the value behind ptr. Methods with a pointer receiver are
// considered first, then methods on the value itself.
func formatAny[T any](ptr *T) Fragment {
	for _, candidate := range []any{ptr, *ptr} {
		switch candidate := candidate.(type) {
		case FragmentFormatter:
			return candidate.FormatFragment()

		case encoding.TextMarshaler:
			text, err := candidate.MarshalText()
			if err == nil {
				return Fragment(text)
			}

		case fmt.Stringer:
			return Fragment(candidate.String())
		}
	}

	return Fragment(fmt.Sprint(*ptr))
}

// Func builds a Codec from a pair of functions.
func Func[T any](parse func(Fragment) (T, error), format func(T) Fragment) Codec[T] {
	return funcCodec[T]{parse: parse, format: format}
}

type funcCodec[T any] struct {
	parse  func(Fragment) (T, error)
	format func(T) Fragment
}

func (f funcCodec[T]) Parse(fragment Fragment) (T, error) {
	return f.parse(fragment)
}

func (f funcCodec[T]) Format(value T) Fragment {
	return f.format(value)
}
