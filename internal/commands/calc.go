package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/go-gum/estring"
	"github.com/go-gum/estring/agg"
	"github.com/go-gum/estring/internal/state"
)

// expression is a sum of products, e.g. "10 + 5*2 + 3".
var expression = agg.SumOf(agg.SepVec('+', agg.ProductOf(agg.SepVec('*', estring.Float[float64]()))))

// Calc evaluates every argument as an expression and prints its result.
func Calc(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if cmd.Args().Len() == 0 {
		return errors.New("no expression has been specified")
	}

	return calc(state.EnvFromContext(ctx), cmd.Args().Slice())
}

func calc(env *state.LocalEnv, exprs []string) error {
	log := env.Log.Named("calc")

	var errs error
	for _, expr := range exprs {
		sum, err := estring.ParseString(expr, expression)
		if err != nil {
			errs = failed(errs, log, "expression", expr, err)
			continue
		}

		log.Debug("Expression parsed", zap.Stringer("canonical", expression.Format(sum)), zap.Float64s("terms", sum.Items()))

		result := strconv.FormatFloat(sum.Agg(), 'f', env.Cfg.Calc.Precision, 64)
		if _, err := fmt.Fprintf(env.Stdout, "%s = %s\n", expr, result); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
	}

	return errs
}
