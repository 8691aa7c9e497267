// Package logger is the levelled printf-style logger used by the archible
// binaries. Library packages such as util do not log.
package logger

// Logger provides logging functions with levels.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// Level defines the priority of a log message. Messages below the
// configured level are dropped.
type Level int

// The levels of logs.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var level Level

var levelNames = map[Level]string{
	LevelDebug: "[DEBUG] ",
	LevelInfo:  "[INFO] ",
	LevelWarn:  "[WARN] ",
	LevelError: "[ERROR] ",
}

// SetLevel sets the level below which logs are not output.
// The default is LevelDebug.
func SetLevel(lv Level) {
	if lv < LevelDebug || lv > LevelError {
		panic("invalid level")
	}
	level = lv
}

// String returns the message prefix of lv.
func (lv Level) String() string {
	return levelNames[lv]
}

func Debug(format string, v ...any) {
	if level > LevelDebug {
		return
	}
	defaultLogger.Debug(format, v...)
}

func Info(format string, v ...any) {
	if level > LevelInfo {
		return
	}
	defaultLogger.Info(format, v...)
}

func Warn(format string, v ...any) {
	if level > LevelWarn {
		return
	}
	defaultLogger.Warn(format, v...)
}

func Error(format string, v ...any) {
	if level > LevelError {
		return
	}
	defaultLogger.Error(format, v...)
}
