package estring

// Trio holds the three values of a fragment split by two separators.
type Trio[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TrioOf returns a Codec that splits a fragment at the first occurrence of sep1, and the
// remainder at the first occurrence of sep2. It behaves exactly like
//
//	PairOf(first, sep1, PairOf(second, sep2, third))
//
// except that errors of the second split are returned unchanged, referencing the remainder.
func TrioOf[A, B, C any](first Codec[A], sep1 rune, second Codec[B], sep2 rune, third Codec[C]) TrioCodec[A, B, C] {
	return TrioCodec[A, B, C]{
		head: PairOf(first, sep1, Raw()),
		tail: PairOf(second, sep2, third),
	}
}

type TrioCodec[A, B, C any] struct {
	head PairCodec[A, Fragment]
	tail PairCodec[B, C]
}

func (t TrioCodec[A, B, C]) Parse(fragment Fragment) (Trio[A, B, C], error) {
	head, err := t.head.Parse(fragment)
	if err != nil {
		return Trio[A, B, C]{}, err
	}

	tail, err := t.tail.Parse(head.Second)
	if err != nil {
		return Trio[A, B, C]{}, err
	}

	return Trio[A, B, C]{First: head.First, Second: tail.First, Third: tail.Second}, nil
}

func (t TrioCodec[A, B, C]) Format(value Trio[A, B, C]) Fragment {
	tail := t.tail.Format(Pair[B, C]{First: value.Second, Second: value.Third})
	return t.head.Format(Pair[A, Fragment]{First: value.First, Second: tail})
}
