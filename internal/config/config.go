// Package config holds the configuration of the estring command.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	CalcConfig struct {
		// Precision is the number of decimals printed, -1 prints the shortest exact form.
		Precision int `yaml:"precision"`
	}

	DotenvConfig struct {
		Format OutputFormat `yaml:"format"`
		// Comment is the prefix of lines ignored before parsing, empty disables comments.
		Comment string `yaml:"comment"`
	}

	Config struct {
		Version int           `yaml:"version"`
		Logging LoggingConfig `yaml:"logging"`
		Calc    CalcConfig    `yaml:"calc"`
		Dotenv  DotenvConfig  `yaml:"dotenv"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// empty document leaves everything as is
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration from the file at the given path, superimposes
// its values on top of the embedded defaults and performs validation. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if len(path) == 0 {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Default returns the embedded default configuration as YAML.
func Default() []byte {
	return bytes.Clone(defaultConfig)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

func (cfg *Config) validate() error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported configuration version %d", cfg.Version)
	}
	if !cfg.Logging.Console.Level.IsValid() {
		return fmt.Errorf("unknown console log level %q", cfg.Logging.Console.Level)
	}
	if cfg.Calc.Precision < -1 {
		return fmt.Errorf("calc precision must be -1 or greater, got %d", cfg.Calc.Precision)
	}
	if !cfg.Dotenv.Format.IsValid() {
		return fmt.Errorf("unknown dotenv format %q", cfg.Dotenv.Format)
	}
	return nil
}
