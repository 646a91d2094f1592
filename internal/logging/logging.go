// Package logging builds the diagnostic logger. Diagnostics go to stderr
// through zap and are handed to the rest of the code as a logr.Logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidLogLevel is returned for a level name outside Levels.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Levels lists the accepted level names from quietest to noisiest.
var Levels = []string{"error", "warn", "info", "debug", "trace"}

// ParseLevel maps a level name to a zap level. logr V(n) logs at zap level
// -n, so debug enables V(1) and trace enables V(2).
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return zapcore.ErrorLevel, nil
	case "warn", "warning", "":
		return zapcore.WarnLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "trace":
		return zapcore.Level(-2), nil
	default:
		return 0, fmt.Errorf("%w %q (expected one of %s)", ErrInvalidLogLevel, level, strings.Join(Levels, ", "))
	}
}

// New returns a console logger writing to w at the given level.
func New(level string, w io.Writer) (logr.Logger, error) {
	zapLevel, err := ParseLevel(level)
	if err != nil {
		return logr.Logger{}, err
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapLevel),
	)
	return zapr.NewLogger(zap.New(core)), nil
}
