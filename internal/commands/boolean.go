package commands

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"

	"github.com/go-gum/estring"
	"github.com/go-gum/estring/internal/state"
)

// Bool prints the boolean reading of every argument.
func Bool(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if cmd.Args().Len() == 0 {
		return errors.New("no token has been specified")
	}

	return readBools(state.EnvFromContext(ctx), cmd.Args().Slice())
}

func readBools(env *state.LocalEnv, tokens []string) error {
	log := env.Log.Named("bool")
	codec := estring.Bool()

	var errs error
	for _, token := range tokens {
		value, err := estring.ParseString(token, codec)
		if err != nil {
			errs = failed(errs, log, "token", token, err)
			continue
		}

		if _, err := fmt.Fprintf(env.Stdout, "%q = %s\n", token, codec.Format(value)); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
	}

	return errs
}
