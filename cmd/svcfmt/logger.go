package main

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console logger writing to w at the given level.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

// resolveLogLevel picks the log level.
// Priority: -v (debug) > -q (error) > SVCFMT_LOG_LEVEL > warn.
func resolveLogLevel(common commonFlags, envLevel string) (zapcore.Level, error) {
	switch {
	case common.verbose:
		return zapcore.DebugLevel, nil
	case common.quiet:
		return zapcore.ErrorLevel, nil
	case envLevel == "":
		return zapcore.WarnLevel, nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(envLevel))); err != nil {
		return zapcore.WarnLevel, fmt.Errorf("%w: SVCFMT_LOG_LEVEL=%q (use debug, info, warn or error)", ErrInvalidLogLevel, envLevel)
	}
	return level, nil
}
