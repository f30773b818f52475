package estring

// String returns a Codec that yields the fragment as a plain string. It never fails.
func String() StringCodec {
	return StringCodec{}
}

type StringCodec struct{}

var _ Codec[string] = StringCodec{}

func (StringCodec) Parse(fragment Fragment) (string, error) {
	return string(fragment), nil
}

func (StringCodec) Format(value string) Fragment {
	return Fragment(value)
}

// Raw returns a Codec that yields the fragment itself. It never fails and is useful to
// defer parsing of a part of the input.
func Raw() RawCodec {
	return RawCodec{}
}

type RawCodec struct{}

var _ Codec[Fragment] = RawCodec{}

func (RawCodec) Parse(fragment Fragment) (Fragment, error) {
	return fragment, nil
}

func (RawCodec) Format(value Fragment) Fragment {
	return value
}
