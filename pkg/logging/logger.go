package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. Loggers derived from one
// another via Sublogger share the same level and underlying output. It is safe
// for concurrent usage.
type Logger struct {
	// prefix is any prefix specified for the logger.
	prefix string
	// level is the maximum level of messages that the logger will emit.
	level Level
	// output is the underlying standard library logger.
	output *log.Logger
}

// NewLogger creates a new root logger that emits messages up to and including
// the specified level to the specified writer. If the level is LevelDisabled,
// then the result is nil, which is still a valid (silent) logger.
func NewLogger(level Level, writer io.Writer) *Logger {
	// Disabled loggers are represented by nil.
	if level == LevelDisabled {
		return nil
	}

	// Create the logger.
	return &Logger{
		level:  level,
		output: log.New(writer, "", log.LstdFlags),
	}
}

// Level returns the level at which the logger is operating. Nil loggers report
// LevelDisabled.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		prefix: prefix,
		level:  l.level,
		output: l.output,
	}
}

// enabled returns whether or not messages at the specified level should be
// emitted.
func (l *Logger) enabled(level Level) bool {
	return l != nil && l.level >= level
}

// emit is the internal logging method.
func (l *Logger) emit(line string) {
	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	l.output.Output(3, line)
}

// Print logs information with semantics equivalent to fmt.Print.
func (l *Logger) Print(v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.emit(fmt.Sprint(v...))
	}
}

// Printf logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Printf(format string, v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.emit(fmt.Sprintf(format, v...))
	}
}

// Println logs information with semantics equivalent to fmt.Println.
func (l *Logger) Println(v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.emit(fmt.Sprintln(v...))
	}
}

// Debug logs information with semantics equivalent to fmt.Print, but only if
// the logger is operating at debug level or higher.
func (l *Logger) Debug(v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.emit(fmt.Sprint(v...))
	}
}

// Debugf logs information with semantics equivalent to fmt.Printf, but only if
// the logger is operating at debug level or higher.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.emit(fmt.Sprintf(format, v...))
	}
}

// Trace logs information with semantics equivalent to fmt.Print, but only if
// the logger is operating at trace level.
func (l *Logger) Trace(v ...interface{}) {
	if l.enabled(LevelTrace) {
		l.emit(fmt.Sprint(v...))
	}
}

// Tracef logs information with semantics equivalent to fmt.Printf, but only if
// the logger is operating at trace level.
func (l *Logger) Tracef(format string, v ...interface{}) {
	if l.enabled(LevelTrace) {
		l.emit(fmt.Sprintf(format, v...))
	}
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	if l.enabled(LevelWarn) {
		l.emit(color.YellowString("Warning: %v", err))
	}
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(err error) {
	if l.enabled(LevelError) {
		l.emit(color.RedString("Error: %v", err))
	}
}
