package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/go-gum/estring"
	"github.com/go-gum/estring/internal/config"
	"github.com/go-gum/estring/internal/state"
)

func newEnv(t *testing.T) (*state.LocalEnv, *bytes.Buffer, *observer.ObservedLogs) {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)

	var out bytes.Buffer
	return &state.LocalEnv{Cfg: cfg, Log: zap.New(core), Stdout: &out}, &out, logs
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCalc(t *testing.T) {
	env, out, logs := newEnv(t)

	require.NoError(t, calc(env, []string{"10+5*2+3", " 2 * 2 * 2 "}))
	require.Equal(t, "10+5*2+3 = 23\n 2 * 2 * 2  = 8\n", out.String())

	parsed := logs.FilterMessage("Expression parsed").AllUntimed()
	require.Len(t, parsed, 2)
	require.Equal(t, "2*2*2", parsed[1].ContextMap()["canonical"])
}

func TestCalcPrecision(t *testing.T) {
	env, out, _ := newEnv(t)
	env.Cfg.Calc.Precision = 3

	require.NoError(t, calc(env, []string{"1.5*1.5"}))
	require.Equal(t, "1.5*1.5 = 2.250\n", out.String())
}

func TestCalcCollectsErrors(t *testing.T) {
	env, out, logs := newEnv(t)

	err := calc(env, []string{"1+x", "2*3", "4**5"})
	require.Len(t, multierr.Errors(err), 2)
	require.ErrorIs(t, err, estring.ErrParse)

	// valid expressions are still evaluated
	require.Equal(t, "2*3 = 6\n", out.String())

	failures := logs.FilterMessage("Unable to process input").AllUntimed()
	require.Len(t, failures, 2)
	require.Equal(t, "1+x", failures[0].ContextMap()["expression"])
	require.Equal(t, "x", failures[0].ContextMap()["fragment"])
	require.Equal(t, "parse", failures[0].ContextMap()["reason"])
	require.Equal(t, "", failures[1].ContextMap()["fragment"])
}

func TestReadBools(t *testing.T) {
	env, out, _ := newEnv(t)

	err := readBools(env, []string{"Yes", "", "nope", "0"})
	require.ErrorIs(t, err, estring.ErrParse)
	require.Equal(t, "\"Yes\" = true\n\"\" = false\n\"0\" = false\n", out.String())
}

func TestParseDotenv(t *testing.T) {
	vars, err := parseDotenv(`
# comment
A=1
  # indented comment
B = two words

C="quoted \"value\""
D=x=y
E=
`, "#")
	require.NoError(t, err)
	require.Equal(t, []variable{
		{First: "A", Second: "1"},
		{First: "B", Second: "two words"},
		{First: "C", Second: `quoted "value"`},
		{First: "D", Second: "x=y"},
		{First: "E", Second: ""},
	}, vars)

	vars, err = parseDotenv("# nothing here\n\n", "#")
	require.NoError(t, err)
	require.Empty(t, vars)

	vars, err = parseDotenv("#A=1", "")
	require.NoError(t, err)
	require.Equal(t, []variable{{First: "#A", Second: "1"}}, vars)
}

func TestParseDotenvErrors(t *testing.T) {
	_, err := parseDotenv("A=1\nB\n", "#")
	require.Equal(t, estring.ParseError{Fragment: "B", Reason: estring.ReasonSplit}, err)

	_, err = parseDotenv(`A="broken`+"\\"+`"`, "#")
	require.ErrorIs(t, err, estring.ErrParse)
}

func TestDotenvFormatRoundTrip(t *testing.T) {
	vars := []variable{
		{First: "A", Second: "1"},
		{First: "B", Second: " padded "},
		{First: "C", Second: "two\nlines"},
	}

	formatted := dotenvFile.Format(vars)
	require.Equal(t, estring.Fragment("A=1\nB=\" padded \"\nC=\"two\\nlines\""), formatted)

	parsed, err := estring.Parse(formatted, dotenvFile)
	require.NoError(t, err)
	require.Equal(t, vars, parsed)
}

func TestDotenv(t *testing.T) {
	env, out, _ := newEnv(t)

	require.NoError(t, dotenv(env, []string{writeFile(t, "A=1\nB=2\n")}))
	require.Equal(t, "A=1\nB=2\n", out.String())
}

func TestDotenvYAML(t *testing.T) {
	env, out, _ := newEnv(t)
	env.Cfg.Dotenv.Format = config.OutputFormatYAML

	require.NoError(t, dotenv(env, []string{writeFile(t, "Z=last\nA=word\n"), writeFile(t, "N=1\n")}))
	require.Equal(t, "Z: last\nA: word\n---\nN: \"1\"\n", out.String())
}

func TestDotenvExport(t *testing.T) {
	env, _, _ := newEnv(t)
	env.Export = true

	t.Setenv("ESTRING_TEST_EXPORT", "")
	require.NoError(t, dotenv(env, []string{writeFile(t, "ESTRING_TEST_EXPORT=exported\n")}))
	require.Equal(t, "exported", os.Getenv("ESTRING_TEST_EXPORT"))
}

func TestDotenvCollectsErrors(t *testing.T) {
	env, out, _ := newEnv(t)

	err := dotenv(env, []string{
		filepath.Join(t.TempDir(), "missing.env"),
		writeFile(t, "broken\n"),
		writeFile(t, "OK=1\n"),
	})
	require.Len(t, multierr.Errors(err), 2)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorIs(t, err, estring.ErrSplit)
	require.Equal(t, "OK=1\n", out.String())
}

func TestDumpConfig(t *testing.T) {
	env, out, _ := newEnv(t)

	require.NoError(t, dumpConfig(env, "", true))
	require.Equal(t, string(config.Default()), out.String())

	out.Reset()
	env.Cfg.Calc.Precision = 4
	require.NoError(t, dumpConfig(env, "", false))
	require.Contains(t, out.String(), "precision: 4")

	fname := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, dumpConfig(env, fname, false))

	loaded, err := config.Load(fname)
	require.NoError(t, err)
	require.Equal(t, env.Cfg, loaded)
}
