// Package logging provides debug logging backed by zap. Output goes to
// stderr so it never interleaves with the operator messages on stdout.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop().Sugar()

// Init configures the package logger. With debug off every call is a no-op.
func Init(debug bool) error {
	return InitWithWriter(debug, os.Stderr)
}

// InitWithWriter is Init with an explicit sink, used by tests.
func InitWithWriter(debug bool, w io.Writer) error {
	if !debug {
		log = zap.NewNop().Sugar()
		return nil
	}
	if w == nil {
		return fmt.Errorf("can't initialize zap logger: nil writer")
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	log = zap.New(core, zap.AddCallerSkip(1)).Sugar()
	return nil
}

// Sync flushes any buffered log entries
func Sync() {
	_ = log.Sync()
}

// Debugf logs a formatted message at debug level
func Debugf(template string, args ...interface{}) {
	log.Debugf(template, args...)
}

// Debugw logs a message with key/value pairs at debug level
func Debugw(msg string, keysAndValues ...interface{}) {
	log.Debugw(msg, keysAndValues...)
}

// Errorw logs a message with key/value pairs at error level
func Errorw(msg string, keysAndValues ...interface{}) {
	log.Errorw(msg, keysAndValues...)
}
