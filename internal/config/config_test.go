package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 1, cfg.Version)
	require.Equal(t, LogLevelNormal, cfg.Logging.Console.Level)
	require.Equal(t, -1, cfg.Calc.Precision)
	require.Equal(t, OutputFormatEnv, cfg.Dotenv.Format)
	require.Equal(t, "#", cfg.Dotenv.Comment)
}

func TestLoad_WithFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  console:
    level: debug
calc:
  precision: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, LogLevelDebug, cfg.Logging.Console.Level)
	require.Equal(t, 3, cfg.Calc.Precision)

	// untouched values keep their defaults
	require.Equal(t, OutputFormatEnv, cfg.Dotenv.Format)
	require.Equal(t, "#", cfg.Dotenv.Comment)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown field":   "calc:\n  digits: 3\n",
		"log level":       "logging:\n  console:\n    level: loud\n",
		"dotenv format":   "dotenv:\n  format: json\n",
		"precision":       "calc:\n  precision: -2\n",
		"version":         "version: 2\n",
		"malformed yaml":  "calc: [",
		"wrong data type": "calc:\n  precision: many\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	defaults, err := Load("")
	require.NoError(t, err)
	require.Equal(t, defaults, cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDump(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Calc.Precision = 2

	data, err := Dump(cfg)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, *cfg, decoded)

	// dumped configuration can be loaded again
	loaded, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestDefault(t *testing.T) {
	data := Default()
	data[0] = '#'

	require.NotEqual(t, data, Default())
}

func TestPrepareLogger(t *testing.T) {
	var buf bytes.Buffer

	conf := LoggingConfig{Console: LoggerConfig{Level: LogLevelNormal}}

	log := conf.Prepare(&buf, false)
	log.Debug("hidden")
	log.Info("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "INFO\tshown")

	buf.Reset()
	log = conf.Prepare(&buf, true)
	log.Debug("forced")
	require.Contains(t, buf.String(), "DEBUG\tforced")

	buf.Reset()
	conf.Console.Level = LogLevelNone
	log = conf.Prepare(&buf, false)
	log.Error("dropped")
	require.Empty(t, buf.String())
}

func TestEnums(t *testing.T) {
	require.True(t, LogLevelDebug.IsValid())
	require.False(t, LogLevel("verbose").IsValid())

	require.True(t, OutputFormatYAML.IsValid())
	require.False(t, OutputFormat("").IsValid())
	require.Equal(t, []string{"env", "yaml"}, OutputFormatNames())
}
