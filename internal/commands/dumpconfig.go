package commands

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/go-gum/estring/internal/config"
	"github.com/go-gum/estring/internal/state"
)

// DumpConfig writes either the default or the active configuration as YAML.
func DumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	return dumpConfig(env, cmd.Args().Get(0), cmd.Bool("default"))
}

func dumpConfig(env *state.LocalEnv, fname string, defaults bool) error {
	var (
		err  error
		data []byte
		kind string
	)

	out := env.Stdout
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()

		out = f
	}

	if defaults {
		kind = "default"
		data = config.Default()
	} else {
		kind = "actual"
		if data, err = config.Dump(env.Cfg); err != nil {
			return fmt.Errorf("unable to get configuration: %w", err)
		}
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Writing configuration", zap.String("state", kind), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
