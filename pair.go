package estring

// Pair holds the two values of a fragment split by a separator.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf returns a Codec that splits a fragment at the first occurrence of sep and parses
// the left part with first and the right part with second. Further occurrences of sep
// stay in the right part, which allows to nest pairs: parsing "a=b=c" with
//
//	PairOf(String(), '=', PairOf(String(), '=', String()))
//
// yields {"a", {"b", "c"}}.
//
// A missing separator fails with ReasonSplit on the whole fragment. If one of the
// parts fails, the error has ReasonParse and references only that part.
func PairOf[A, B any](first Codec[A], sep rune, second Codec[B]) PairCodec[A, B] {
	return PairCodec[A, B]{first: first, sep: sep, second: second}
}

type PairCodec[A, B any] struct {
	first  Codec[A]
	sep    rune
	second Codec[B]
}

func (p PairCodec[A, B]) Parse(fragment Fragment) (Pair[A, B], error) {
	left, right, ok := fragment.SplitOnce(p.sep)
	if !ok {
		return Pair[A, B]{}, splitError(fragment)
	}

	first, err := p.first.Parse(left)
	if err != nil {
		return Pair[A, B]{}, partError(left, err)
	}

	second, err := p.second.Parse(right)
	if err != nil {
		return Pair[A, B]{}, partError(right, err)
	}

	return Pair[A, B]{First: first, Second: second}, nil
}

func (p PairCodec[A, B]) Format(value Pair[A, B]) Fragment {
	return p.first.Format(value.First) + Fragment(p.sep) + p.second.Format(value.Second)
}

// partError reports a failure to parse one part of a split fragment. A parse error that
// already references exactly that part is returned unchanged.
func partError(part Fragment, err error) error {
	if parseErr, ok := err.(ParseError); ok && parseErr.Reason == ReasonParse && parseErr.Fragment == part {
		return err
	}

	return parseError(part, err)
}
