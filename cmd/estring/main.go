package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/go-gum/estring/internal/commands"
	"github.com/go-gum/estring/internal/config"
	"github.com/go-gum/estring/internal/state"
)

const appName = "estring"

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.Load(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}

	env.Log = env.Cfg.Logging.Prepare(os.Stderr, cmd.Bool("debug"))
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))

	env.RestoreStdLog()
	return nil
}

// Errors are returned from subcommands as regular values, exitErrHandler only
// gets a chance to log them while the logger is still available.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Cfg != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            appName,
		Usage:           "decomposes strings into typed values",
		Version:         runtime.Version(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log everything, including the canonical form of parsed input"},
		},
		Commands: []*cli.Command{
			{
				Name:         "calc",
				Usage:        "Evaluates sums of products, e.g. \"10 + 5*2 + 3\"",
				OnUsageError: usageErrorHandler,
				Action:       commands.Calc,
				ArgsUsage:    "EXPRESSION...",
			},
			{
				Name:         "dotenv",
				Usage:        "Parses KEY=VALUE files and prints the variables",
				OnUsageError: usageErrorHandler,
				Action:       commands.Dotenv,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"},
						Usage: "output `FORMAT` (supported formats: " + strings.Join(config.OutputFormatNames(), ", ") + ")"},
					&cli.BoolFlag{Name: "export", Usage: "also set the variables in the environment of the program"},
				},
				ArgsUsage: "FILE...",
			},
			{
				Name:         "bool",
				Usage:        "Prints the boolean reading of tokens like yes, off or 1",
				OnUsageError: usageErrorHandler,
				Action:       commands.Bool,
				ArgsUsage:    "TOKEN...",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       commands.DumpConfig,
				ArgsUsage:    "DESTINATION",
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}
