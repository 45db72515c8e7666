package neat

import (
	"log"
	"os"

	"github.com/pkg/errors"
)

// LogLevel is the severity of a log line emitted by this package.
type LogLevel string

// Recognized log levels, ordered from most to least verbose.
const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

var levelRank = map[LogLevel]int{
	LogLevelDebug:   0,
	LogLevelInfo:    1,
	LogLevelWarning: 2,
	LogLevelError:   3,
}

// CurrentLogLevel gates which of DebugLog/InfoLog/WarnLog/ErrorLog actually print.
// It defaults to LogLevelInfo so a caller that never touches logging still sees
// population-level notices without needing to call InitLogger first.
var CurrentLogLevel = LogLevelInfo

var (
	debugLogger = log.New(os.Stdout, "DEBUG: ", log.Ltime|log.Lshortfile)
	infoLogger  = log.New(os.Stdout, "INFO: ", log.Ltime|log.Lshortfile)
	warnLogger  = log.New(os.Stdout, "WARN: ", log.Ltime|log.Lshortfile)
	errorLogger = log.New(os.Stderr, "ERROR: ", log.Ltime|log.Lshortfile)
)

// InitLogger sets the active log level from its textual form, as read from
// an Options.LogLevel field. An empty level leaves the current level unchanged.
func InitLogger(level string) error {
	if level == "" {
		return nil
	}
	l := LogLevel(level)
	if _, ok := levelRank[l]; !ok {
		return errors.Errorf("unsupported log level: %s", level)
	}
	CurrentLogLevel = l
	return nil
}

func accepts(level LogLevel) bool {
	return levelRank[level] >= levelRank[CurrentLogLevel]
}

// DebugLog prints message if the current log level is Debug.
func DebugLog(message string) {
	if accepts(LogLevelDebug) {
		_ = debugLogger.Output(2, message)
	}
}

// InfoLog prints message if the current log level is Info or more verbose.
func InfoLog(message string) {
	if accepts(LogLevelInfo) {
		_ = infoLogger.Output(2, message)
	}
}

// WarnLog prints message if the current log level is Warning or more verbose.
func WarnLog(message string) {
	if accepts(LogLevelWarning) {
		_ = warnLogger.Output(2, message)
	}
}

// ErrorLog always prints message, regardless of the current log level.
func ErrorLog(message string) {
	_ = errorLogger.Output(2, message)
}
