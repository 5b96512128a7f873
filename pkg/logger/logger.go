package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a printf-style facade over logrus.
type Logger struct {
	entry *logrus.Entry
}

// New builds a logger for the environment named by APP_ENV.
func New() *Logger {
	return NewWithEnv(os.Getenv("APP_ENV"))
}

// NewWithEnv uses a human readable text format in development and JSON elsewhere.
func NewWithEnv(env string) *Logger {
	return newLogger(os.Stdout, env)
}

func newLogger(out io.Writer, env string) *Logger {
	base := logrus.New()
	base.SetOutput(out)
	if env == "" || env == "development" {
		base.SetLevel(logrus.DebugLevel)
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		base.SetLevel(logrus.InfoLevel)
		base.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Logger{entry: logrus.NewEntry(base)}
}

// With returns a child logger that attaches fields to every record.
func (l *Logger) With(fields map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}
