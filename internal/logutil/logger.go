// Package logutil builds the console logger used by mstctl.
package logutil

import (
	"io"

	"github.com/pingcap/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console-encoded logger at level writing to w.
// Timestamps are ISO8601; level is one of debug, info, warn, error.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Annotatef(err, "log level %q", level)
	}

	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config.EncoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)

	return zap.New(core), nil
}
