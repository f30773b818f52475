package estring

import "strings"

// Bool returns a Codec for booleans. Parsing is case-insensitive and accepts
// "true", "t", "yes", "y", "on", "1" as true and "false", "f", "no", "n", "off", "0"
// as well as the empty fragment as false.
func Bool() BoolCodec {
	return BoolCodec{}
}

type BoolCodec struct{}

var _ Codec[bool] = BoolCodec{}

func (BoolCodec) Parse(fragment Fragment) (bool, error) {
	switch strings.ToLower(string(fragment)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, nil

	case "false", "f", "no", "n", "off", "0", "":
		return false, nil

	default:
		return false, parseError(fragment, nil)
	}
}

func (BoolCodec) Format(value bool) Fragment {
	if value {
		return "true"
	}

	return "false"
}
