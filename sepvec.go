package estring

import "strings"

// SepVec returns a Codec for a list of values separated by sep.
//
// The fragment is split at every occurrence of sep and each part is trimmed of
// surrounding white space before it is handed to elem, so "a, b, c" parses like "a,b,c".
// The first element that fails to parse aborts parsing, its error is returned as is.
// An empty fragment yields a single element parsed from the empty fragment.
func SepVec[T any](sep rune, elem Codec[T]) SepVecCodec[T] {
	return SepVecCodec[T]{sep: sep, elem: elem}
}

type SepVecCodec[T any] struct {
	sep  rune
	elem Codec[T]
}

// Sep returns the separator of this codec.
func (s SepVecCodec[T]) Sep() rune {
	return s.sep
}

func (s SepVecCodec[T]) Parse(fragment Fragment) ([]T, error) {
	parts := fragment.Split(s.sep)

	values := make([]T, 0, len(parts))
	for _, part := range parts {
		value, err := s.elem.Parse(part.TrimSpace())
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}

func (s SepVecCodec[T]) Format(values []T) Fragment {
	var sb strings.Builder

	for idx, value := range values {
		if idx > 0 {
			sb.WriteRune(s.sep)
		}

		sb.WriteString(string(s.elem.Format(value)))
	}

	return Fragment(sb.String())
}
