package config

import (
	"slices"
)

// LogLevel selects how chatty the console logger is.
type LogLevel string

const (
	LogLevelNone   LogLevel = "none"
	LogLevelNormal LogLevel = "normal"
	LogLevelDebug  LogLevel = "debug"
)

func (l LogLevel) IsValid() bool {
	return slices.Contains([]LogLevel{LogLevelNone, LogLevelNormal, LogLevelDebug}, l)
}

// OutputFormat selects how parsed dotenv files are printed.
type OutputFormat string

const (
	OutputFormatEnv  OutputFormat = "env"
	OutputFormatYAML OutputFormat = "yaml"
)

func (f OutputFormat) IsValid() bool {
	return slices.Contains(OutputFormatNames(), string(f))
}

func OutputFormatNames() []string {
	return []string{string(OutputFormatEnv), string(OutputFormatYAML)}
}
