package log

import (
	"github.com/anchore/go-logger"
	"github.com/anchore/go-logger/adapter/discard"
)

// Log is the singleton used to facilitate logging internally within treescope.
var Log logger.Logger = discard.New()

func Errorf(format string, args ...interface{}) {
	Log.Errorf(format, args...)
}

func Error(args ...interface{}) {
	Log.Error(args...)
}

func Warnf(format string, args ...interface{}) {
	Log.Warnf(format, args...)
}

func Warn(args ...interface{}) {
	Log.Warn(args...)
}

func Infof(format string, args ...interface{}) {
	Log.Infof(format, args...)
}

func Info(args ...interface{}) {
	Log.Info(args...)
}

func Debugf(format string, args ...interface{}) {
	Log.Debugf(format, args...)
}

func Debug(args ...interface{}) {
	Log.Debug(args...)
}

func Tracef(format string, args ...interface{}) {
	Log.Tracef(format, args...)
}

func Trace(args ...interface{}) {
	Log.Trace(args...)
}

func WithFields(fields ...interface{}) logger.MessageLogger {
	return Log.WithFields(fields...)
}

func Nested(fields ...interface{}) logger.Logger {
	return Log.Nested(fields...)
}
