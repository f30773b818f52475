package estring

// Optional returns a Codec for values that may be absent. An empty fragment is parsed to
// nil, everything else is delegated to inner. A nil value formats to an empty fragment.
func Optional[T any](inner Codec[T]) OptionalCodec[T] {
	return OptionalCodec[T]{inner: inner}
}

type OptionalCodec[T any] struct {
	inner Codec[T]
}

func (o OptionalCodec[T]) Parse(fragment Fragment) (*T, error) {
	if fragment.IsEmpty() {
		return nil, nil
	}

	value, err := o.inner.Parse(fragment)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func (o OptionalCodec[T]) Format(value *T) Fragment {
	if value == nil {
		return ""
	}

	return o.inner.Format(*value)
}
