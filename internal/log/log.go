// Package log is the structured logger of the mmkv command line tool.
//
// Library packages never log; they return errors. The level comes from the
// MMKV_LOG_LEVEL environment variable and can be changed with SetLevel.
package log

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Fields are structured key/value pairs attached to a log entry.
type Fields = map[string]interface{}

// Logger is the logging surface used by the command line tool.
type Logger interface {
	Debug(ctx context.Context, msg string, fields Fields)
	Info(ctx context.Context, msg string, fields Fields)
	Warning(ctx context.Context, msg string, fields Fields)
	Error(ctx context.Context, msg string, fields Fields)
	SetLevel(level string)
	SetLogWriter(writer io.Writer)
}

// EnvLogLevel names the environment variable holding the initial level.
const EnvLogLevel = "MMKV_LOG_LEVEL"

var mLog Logger

func init() {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{TimestampFormat: time.RFC3339Nano, FullTimestamp: true}
	logger.Out = os.Stderr

	l := &defaultLogger{logger: logger}
	l.SetLevel(os.Getenv(EnvLogLevel))
	mLog = l
}

type defaultLogger struct {
	logger *logrus.Logger
}

func (l *defaultLogger) Debug(_ context.Context, msg string, fields Fields) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Debug(msg)
}

func (l *defaultLogger) Info(_ context.Context, msg string, fields Fields) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Info(msg)
}

func (l *defaultLogger) Warning(_ context.Context, msg string, fields Fields) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Warning(msg)
}

func (l *defaultLogger) Error(_ context.Context, msg string, fields Fields) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Error(msg)
}

// SetLevel accepts debug, info, warn and error. Anything else selects warn so
// that the tool's stderr stays quiet by default.
func (l *defaultLogger) SetLevel(level string) {
	l.logger.SetLevel(parseLevel(level))
}

func (l *defaultLogger) SetLogWriter(writer io.Writer) {
	l.logger.Out = writer
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

func Debug(ctx context.Context, msg string, fields Fields) {
	mLog.Debug(ctx, msg, fields)
}

func Info(ctx context.Context, msg string, fields Fields) {
	mLog.Info(ctx, msg, fields)
}

func Warning(ctx context.Context, msg string, fields Fields) {
	mLog.Warning(ctx, msg, fields)
}

func Error(ctx context.Context, msg string, fields Fields) {
	mLog.Error(ctx, msg, fields)
}

func SetLevel(level string) {
	mLog.SetLevel(level)
}

func SetLogWriter(writer io.Writer) {
	mLog.SetLogWriter(writer)
}
