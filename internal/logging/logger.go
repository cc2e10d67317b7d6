package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultLevel = "error"

// NewLogger builds a development-encoded zap logger writing to stderr at
// the given level. An empty level selects DefaultLevel.
func NewLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = true

	return config.Build()
}
