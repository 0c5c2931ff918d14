// Package log provides centralized logging for the CLIs and the API
// server, backed by zap.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init initializes the package-level logger. With debug set, output is
// human-readable development format at debug level.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	log = zapLogger.Sugar()
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		log.Sync()
	}
}

func logger() *zap.SugaredLogger {
	if log == nil {
		// Fallback logger if not initialized
		base, _ := zap.NewProduction(zap.AddCallerSkip(1))
		log = base.Sugar()
	}
	return log
}

func Debugf(template string, args ...interface{}) {
	logger().Debugf(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	logger().Infow(msg, keysAndValues...)
}

func Fatalf(template string, args ...interface{}) {
	logger().Fatalf(template, args...)
}
