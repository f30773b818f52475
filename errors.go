package estring

import (
	"errors"
	"fmt"
)

// ErrSplit matches every ParseError with ReasonSplit in an error chain.
var ErrSplit = errors.New("cannot split fragment")

// ErrParse matches every ParseError with ReasonParse in an error chain.
var ErrParse = errors.New("cannot parse fragment")

// Reason tells why a fragment could not be handled.
type Reason int

const (
	// ReasonSplit is used if a required separator was not found.
	ReasonSplit Reason = iota + 1

	// ReasonParse is used if a fragment could not be converted to the target type.
	ReasonParse
)

func (r Reason) String() string {
	switch r {
	case ReasonSplit:
		return "split"
	case ReasonParse:
		return "parse"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

func (r Reason) sentinel() error {
	switch r {
	case ReasonSplit:
		return ErrSplit
	case ReasonParse:
		return ErrParse
	default:
		return nil
	}
}

// ParseError is returned by every Parser in this package. Fragment is the smallest
// fragment that failed, not the whole input. Err optionally holds the cause, e.g. a
// *strconv.NumError or the ParseError of a nested codec.
type ParseError struct {
	Fragment Fragment
	Reason   Reason
	Err      error
}

func (p ParseError) Error() string {
	var verb string
	switch p.Reason {
	case ReasonSplit:
		verb = "split"
	default:
		verb = "parse"
	}

	if p.Err != nil {
		return fmt.Sprintf("estring: cannot %s fragment %q: %s", verb, string(p.Fragment), p.Err)
	}

	return fmt.Sprintf("estring: cannot %s fragment %q", verb, string(p.Fragment))
}

func (p ParseError) Unwrap() error {
	return p.Err
}

// Is reports whether target is the sentinel error of this errors Reason.
func (p ParseError) Is(target error) bool {
	sentinel := p.Reason.sentinel()
	return sentinel != nil && target == sentinel
}

func splitError(fragment Fragment) error {
	return ParseError{Fragment: fragment, Reason: ReasonSplit}
}

func parseError(fragment Fragment, cause error) error {
	return ParseError{Fragment: fragment, Reason: ReasonParse, Err: cause}
}

// ReasonOf returns the Reason of the outermost ParseError in err.
func ReasonOf(err error) (Reason, bool) {
	var parseErr ParseError
	if !errors.As(err, &parseErr) {
		return 0, false
	}

	return parseErr.Reason, true
}
