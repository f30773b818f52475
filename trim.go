package estring

// Trim returns a Codec that strips leading and trailing white space from the fragment
// before delegating to inner. Formatting is delegated to inner unchanged.
func Trim[T any](inner Codec[T]) TrimCodec[T] {
	return TrimCodec[T]{inner: inner}
}

type TrimCodec[T any] struct {
	inner Codec[T]
}

func (t TrimCodec[T]) Parse(fragment Fragment) (T, error) {
	return t.inner.Parse(fragment.TrimSpace())
}

func (t TrimCodec[T]) Format(value T) Fragment {
	return t.inner.Format(value)
}
