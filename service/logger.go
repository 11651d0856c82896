package service

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger interface for flexible logging
type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// DefaultLogger implements Logger on top of logrus. Arguments are read as
// key/value pairs and attached as fields.
type DefaultLogger struct {
	entry *logrus.Entry
}

// NewLogger returns a logger writing text lines to out at the given level.
func NewLogger(out io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	return &DefaultLogger{entry: logrus.NewEntry(l)}
}

// ParseLevel maps a config log level onto logrus.
func ParseLevel(level string) (logrus.Level, error) {
	return logrus.ParseLevel(level)
}

func (l *DefaultLogger) Info(msg string, args ...interface{}) {
	l.entry.WithFields(toFields(args)).Info(msg)
}

func (l *DefaultLogger) Warn(msg string, args ...interface{}) {
	l.entry.WithFields(toFields(args)).Warn(msg)
}

func (l *DefaultLogger) Error(msg string, args ...interface{}) {
	l.entry.WithFields(toFields(args)).Error(msg)
}

func (l *DefaultLogger) Debug(msg string, args ...interface{}) {
	l.entry.WithFields(toFields(args)).Debug(msg)
}

func toFields(args []interface{}) logrus.Fields {
	fields := make(logrus.Fields, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprint(args[i])
		if i+1 >= len(args) {
			fields["arg"] = args[i]
			break
		}
		fields[key] = args[i+1]
	}
	return fields
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Debug(string, ...interface{}) {}
