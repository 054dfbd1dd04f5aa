package logging

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger - Returns a zap logger at the given level.
//   - level is one of debug, info, warn or error
//   - development set to true gives human readable console output, otherwise JSON
//
// It returns:
//   - logger is a pointer to a zap.Logger, callers should defer logger.Sync()
//   - err is a standard error if the level is unknown or the logger could not be built
func NewLogger(level string, development bool) (logger *zap.Logger, err error) {
	var lvl zapcore.Level
	err = lvl.UnmarshalText([]byte(level))
	if err != nil {
		err = fmt.Errorf("unknown log level %q: %w", level, err)
		return
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err = cfg.Build()
	if err != nil {
		err = fmt.Errorf("error while building logger: %w", err)
	}

	return
}
