package wrangle

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLogLevel parses and sets global log level.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	atomic.StoreInt32(&currentLevel, int32(l))
}

func getLevel() LogLevel { return LogLevel(atomic.LoadInt32(&currentLevel)) }

func logf(l LogLevel, format string, args ...interface{}) {
	if getLevel() > l {
		return
	}
	prefix := "INFO"
	switch l {
	case LevelDebug:
		prefix = "DEBUG"
	case LevelWarn:
		prefix = "WARN"
	case LevelError:
		prefix = "ERROR"
	}
	baseLogger.Output(3, fmt.Sprintf("[%s] %s", prefix, fmt.Sprintf(format, args...)))
}

// Debugf logs at debug level.
func Debugf(format string, args ...interface{}) { logf(LevelDebug, format, args...) }

// Infof logs at info level.
func Infof(format string, args ...interface{}) { logf(LevelInfo, format, args...) }

// Warnf logs at warn level.
func Warnf(format string, args ...interface{}) { logf(LevelWarn, format, args...) }

// Errorf logs at error level.
func Errorf(format string, args ...interface{}) { logf(LevelError, format, args...) }
