package log

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
)

const DefaultLoggerFlag = log.Ldate | log.Ltime

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

var levelNames = [...]string{
	LogLevelError: "error",
	LogLevelWarn:  "warn",
	LogLevelInfo:  "info",
	LogLevelDebug: "debug",
	LogLevelTrace: "trace",
}

func (level LogLevel) String() string {
	if level < 0 || int(level) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[level]
}

// ParseLogLevel parses a log level string into a LogLevel.
// Valid log levels are: error, warn, info, debug, trace.
func ParseLogLevel(level string) (LogLevel, error) {
	for l, name := range levelNames {
		if name == level {
			return LogLevel(l), nil
		}
	}
	return LogLevelError, fmt.Errorf("unknown log level: %s", level)
}

// Logger writes one JSON object per line with the level and formatted message.
type Logger struct {
	logger *log.Logger
	level  LogLevel
}

func New(out io.Writer, prefix string, flag int, level LogLevel) *Logger {
	return &Logger{
		logger: log.New(out, prefix, flag),
		level:  level,
	}
}

func (l *Logger) Level() LogLevel {
	return l.level
}

type entry struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level > l.level {
		return
	}
	b, err := json.Marshal(entry{Level: level.String(), Msg: fmt.Sprintf(format, args...)})
	if err != nil {
		return
	}
	l.logger.Print(string(b))
}

func (l *Logger) Error(format string, args ...interface{}) { l.logf(LogLevelError, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.logf(LogLevelWarn, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.logf(LogLevelInfo, format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.logf(LogLevelDebug, format, args...) }
func (l *Logger) Trace(format string, args ...interface{}) { l.logf(LogLevelTrace, format, args...) }

// defaultLogger backs the package-level helpers until main installs its own.
var defaultLogger = New(os.Stdout, "", DefaultLoggerFlag, LogLevelInfo)

// SetDefaultLogger replaces the logger used by the package-level helpers.
func SetDefaultLogger(logger *Logger) {
	defaultLogger = logger
}

func Error(format string, args ...interface{}) { defaultLogger.Error(format, args...) }
func Warn(format string, args ...interface{})  { defaultLogger.Warn(format, args...) }
func Info(format string, args ...interface{})  { defaultLogger.Info(format, args...) }
func Debug(format string, args ...interface{}) { defaultLogger.Debug(format, args...) }
func Trace(format string, args ...interface{}) { defaultLogger.Trace(format, args...) }
