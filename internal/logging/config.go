package logging

import (
	"go.uber.org/zap/zapcore"
)

// Config selects the log encoding and the minimum level
type Config struct {
	Format string        `toml:"format" yaml:"format"` // auto, console, logfmt or json
	Level  zapcore.Level `toml:"level" yaml:"level"`
}

// NewConfig returns a new instance of Config with defaults.
func NewConfig() Config {
	return Config{
		Format: "auto",
		Level:  zapcore.WarnLevel,
	}
}
