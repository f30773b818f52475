package estring

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Int returns a Codec for signed integers of type N. Values are parsed in base 10 with
// strconv.ParseInt using the bit size of N, out of range values fail with ReasonParse
// wrapping strconv.ErrRange.
func Int[N constraints.Signed]() IntCodec[N] {
	return IntCodec[N]{}
}

type IntCodec[N constraints.Signed] struct{}

func (IntCodec[N]) Parse(fragment Fragment) (N, error) {
	parsed, err := strconv.ParseInt(string(fragment), 10, bitSizeOf[N]())
	if err != nil {
		return 0, parseError(fragment, err)
	}

	return N(parsed), nil
}

func (IntCodec[N]) Format(value N) Fragment {
	return Fragment(strconv.FormatInt(int64(value), 10))
}

// Items returns the value itself. This makes integers usable as leaves for aggregation.
func (IntCodec[N]) Items(value N) []N {
	return []N{value}
}

// Uint returns a Codec for unsigned integers of type N, see [Int].
func Uint[N constraints.Unsigned]() UintCodec[N] {
	return UintCodec[N]{}
}

type UintCodec[N constraints.Unsigned] struct{}

func (UintCodec[N]) Parse(fragment Fragment) (N, error) {
	parsed, err := strconv.ParseUint(string(fragment), 10, bitSizeOf[N]())
	if err != nil {
		return 0, parseError(fragment, err)
	}

	return N(parsed), nil
}

func (UintCodec[N]) Format(value N) Fragment {
	return Fragment(strconv.FormatUint(uint64(value), 10))
}

func (UintCodec[N]) Items(value N) []N {
	return []N{value}
}

// Float returns a Codec for floating point numbers of type N using strconv.ParseFloat.
// Values are formatted in their shortest decimal representation without exponent.
func Float[N constraints.Float]() FloatCodec[N] {
	return FloatCodec[N]{}
}

type FloatCodec[N constraints.Float] struct{}

func (FloatCodec[N]) Parse(fragment Fragment) (N, error) {
	parsed, err := strconv.ParseFloat(string(fragment), bitSizeOf[N]())
	if err != nil {
		return 0, parseError(fragment, err)
	}

	return N(parsed), nil
}

func (FloatCodec[N]) Format(value N) Fragment {
	return Fragment(strconv.FormatFloat(float64(value), 'f', -1, bitSizeOf[N]()))
}

func (FloatCodec[N]) Items(value N) []N {
	return []N{value}
}

func bitSizeOf[N constraints.Integer | constraints.Float]() int {
	var zero N
	return int(unsafe.Sizeof(zero)) * 8
}
