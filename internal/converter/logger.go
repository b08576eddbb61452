package converter

import (
	"fmt"
	"io"
)

// Logger is an interface for logging.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// NewLogger returns a Logger writing "[LEVEL] message" lines to w.
// Debug messages are dropped unless verbose is set.
func NewLogger(w io.Writer, verbose bool) Logger {
	return &defaultLogger{w: w, verbose: verbose}
}

// defaultLogger is a simple line logger.
type defaultLogger struct {
	w       io.Writer
	verbose bool
}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	if l.verbose {
		l.log("DEBUG", msg, args...)
	}
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	l.log("INFO", msg, args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	l.log("WARN", msg, args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	l.log("ERROR", msg, args...)
}

func (l *defaultLogger) log(level, msg string, args ...interface{}) {
	fmt.Fprintf(l.w, "["+level+"] "+msg+"\n", args...)
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
