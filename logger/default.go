package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

var _ Logger = (*stdLogger)(nil)

var defaultLogger Logger = New(os.Stderr)

// SetDefaultLogger replaces the logger behind the package-level functions.
// It is not concurrency safe and should only be called during init.
func SetDefaultLogger(l Logger) {
	if l == nil {
		panic("logger must not be nil")
	}
	defaultLogger = l
}

// New returns a Logger writing timestamped lines to w.
func New(w io.Writer) Logger {
	return &stdLogger{
		logger: log.New(w, "", log.LstdFlags|log.Lshortfile|log.Lmicroseconds),
	}
}

type stdLogger struct {
	logger *log.Logger
}

func (l *stdLogger) logf(lv Level, format string, v ...any) {
	if level > lv {
		return
	}
	// skip logf, the level method and the package-level wrapper
	_ = l.logger.Output(4, lv.String()+fmt.Sprintf(format, v...))
}

func (l *stdLogger) Debug(format string, v ...any) {
	l.logf(LevelDebug, format, v...)
}

func (l *stdLogger) Info(format string, v ...any) {
	l.logf(LevelInfo, format, v...)
}

func (l *stdLogger) Warn(format string, v ...any) {
	l.logf(LevelWarn, format, v...)
}

func (l *stdLogger) Error(format string, v ...any) {
	l.logf(LevelError, format, v...)
}
