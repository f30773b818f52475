// Package commands implements the subcommands of the estring program.
package commands

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/go-gum/estring"
)

// failed logs the failure to process input and appends it to errs.
func failed(errs error, log *zap.Logger, what, input string, err error) error {
	fields := []zap.Field{zap.String(what, input), zap.Error(err)}

	var parseErr estring.ParseError
	if errors.As(err, &parseErr) {
		fields = append(fields,
			zap.Stringer("fragment", parseErr.Fragment),
			zap.Stringer("reason", parseErr.Reason),
		)
	}

	log.Warn("Unable to process input", fields...)
	return multierr.Append(errs, fmt.Errorf("%s %q: %w", what, input, err))
}
