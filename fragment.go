package estring

import (
	"encoding"
	"fmt"
	"strings"
)

// Fragment is the piece of text that is still to be parsed, or the text produced by
// formatting a value. Fragments are never modified in place, splitting returns new values.
type Fragment string

// From converts any displayable value into a Fragment. Values implementing
// [fmt.Stringer] or [encoding.TextMarshaler] are rendered through those interfaces,
// everything else with [fmt.Sprint].
func From(value any) Fragment {
	switch value := value.(type) {
	case Fragment:
		return value
	case string:
		return Fragment(value)
	case fmt.Stringer:
		return Fragment(value.String())
	case encoding.TextMarshaler:
		text, err := value.MarshalText()
		if err != nil {
			return Fragment(fmt.Sprint(value))
		}
		return Fragment(text)
	default:
		return Fragment(fmt.Sprint(value))
	}
}

func (f Fragment) String() string {
	return string(f)
}

func (f Fragment) IsEmpty() bool {
	return len(f) == 0
}

// SplitOnce splits the fragment at the first occurrence of sep. The separator itself is
// dropped, further occurrences stay in the right part. Returns false if sep is not found.
func (f Fragment) SplitOnce(sep rune) (left, right Fragment, ok bool) {
	l, r, ok := strings.Cut(string(f), string(sep))
	if !ok {
		return "", "", false
	}

	return Fragment(l), Fragment(r), true
}

// Split splits the fragment at every occurrence of sep. Joining the result with sep
// yields the original fragment. An empty fragment yields a single empty fragment.
func (f Fragment) Split(sep rune) []Fragment {
	parts := strings.Split(string(f), string(sep))

	fragments := make([]Fragment, len(parts))
	for idx, part := range parts {
		fragments[idx] = Fragment(part)
	}

	return fragments
}

// TrimSpace returns the fragment without leading and trailing white space.
func (f Fragment) TrimSpace() Fragment {
	return Fragment(strings.TrimSpace(string(f)))
}
