package config

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreateLogger builds the logger described by the logging section.
// Logs go to stderr so that command output stays clean.
func (c *Config) CreateLogger() (*zap.Logger, error) {
	lvl, err := c.Logging.level()
	if err != nil {
		return nil, errors.Wrap(err, "create logger")
	}

	var zc zap.Config
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	return logger, errors.Wrap(err, "create logger")
}
