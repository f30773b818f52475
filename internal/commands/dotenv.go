package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"github.com/go-gum/estring"
	"github.com/go-gum/estring/internal/config"
	"github.com/go-gum/estring/internal/state"
)

type variable = estring.Pair[string, string]

// dotenvValue is a plain or a double quoted value. Values which would not survive
// parsing unchanged are quoted when formatted.
var dotenvValue = estring.Func(
	func(fragment estring.Fragment) (string, error) {
		value := fragment.String()
		if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
			return value, nil
		}

		unquoted, err := strconv.Unquote(value)
		if err != nil {
			return "", estring.ParseError{Fragment: fragment, Reason: estring.ReasonParse, Err: err}
		}
		return unquoted, nil
	},
	func(value string) estring.Fragment {
		if value != strings.TrimSpace(value) || strings.ContainsAny(value, "\"\n\\") {
			return estring.Fragment(strconv.Quote(value))
		}
		return estring.Fragment(value)
	},
)

var dotenvFile = estring.Trim(estring.SepVec('\n',
	estring.PairOf(estring.Trim(estring.String()), '=', estring.Trim(dotenvValue)),
))

// Dotenv parses every argument as a dotenv file and prints the variables found.
func Dotenv(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if cmd.Args().Len() == 0 {
		return errors.New("no dotenv file has been specified")
	}

	env := state.EnvFromContext(ctx)
	env.Export = cmd.Bool("export")

	if cmd.IsSet("format") {
		format := config.OutputFormat(cmd.String("format"))
		if !format.IsValid() {
			return fmt.Errorf("unknown output format %q", format)
		}
		env.Cfg.Dotenv.Format = format
	}

	return dotenv(env, cmd.Args().Slice())
}

func dotenv(env *state.LocalEnv, files []string) error {
	log := env.Log.Named("dotenv")

	var yamlEnc *yaml.Encoder
	if env.Cfg.Dotenv.Format == config.OutputFormatYAML {
		yamlEnc = yaml.NewEncoder(env.Stdout)
		defer yamlEnc.Close()
	}

	var errs error
	for _, fname := range files {
		data, err := os.ReadFile(fname)
		if err != nil {
			errs = failed(errs, log, "file", fname, err)
			continue
		}

		vars, err := parseDotenv(string(data), env.Cfg.Dotenv.Comment)
		if err != nil {
			errs = failed(errs, log, "file", fname, err)
			continue
		}

		log.Debug("File parsed", zap.String("file", fname), zap.Int("variables", len(vars)))

		if env.Export {
			for _, v := range vars {
				if err := os.Setenv(v.First, v.Second); err != nil {
					errs = failed(errs, log, "variable", v.First, err)
				}
			}
		}

		if yamlEnc != nil {
			err = yamlEnc.Encode(variablesNode(vars))
		} else {
			err = writeDotenv(env.Stdout, vars)
		}
		if err != nil {
			return fmt.Errorf("unable to write variables of '%s': %w", fname, err)
		}
	}

	return errs
}

// parseDotenv drops blank lines and comments before parsing the remaining lines.
func parseDotenv(content, comment string) ([]variable, error) {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 || (len(comment) > 0 && strings.HasPrefix(trimmed, comment)) {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil, nil
	}

	return estring.ParseString(strings.Join(lines, "\n"), dotenvFile)
}

func writeDotenv(out io.Writer, vars []variable) error {
	if len(vars) == 0 {
		return nil
	}

	_, err := fmt.Fprintln(out, dotenvFile.Format(vars))
	return err
}

// variablesNode keeps the order of the variables, which a map would lose.
func variablesNode(vars []variable) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, v := range vars {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.First},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Second},
		)
	}
	return node
}
