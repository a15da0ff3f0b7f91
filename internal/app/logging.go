package app

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/sjson"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// LogFormat selects how log lines are encoded.
type LogFormat int

const (
	// LogFormatText writes "ts [LEVEL] prefix: msg {k=v}" lines.
	LogFormatText LogFormat = iota
	// LogFormatJSON writes one JSON object per line.
	LogFormatJSON
)

// ParseLogFormat parses "text" or "json". Anything else is text.
func ParseLogFormat(s string) LogFormat {
	if strings.EqualFold(s, "json") {
		return LogFormatJSON
	}
	return LogFormatText
}

// logSink is shared by a logger and everything derived from it.
type logSink struct {
	mu     sync.Mutex
	output io.Writer
	format LogFormat
}

// Logger provides structured logging for the application.
type Logger struct {
	sink     *logSink
	level    LogLevel
	prefix   string
	fields   map[string]any
	disabled bool
	now      func() time.Time
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is prepended to all log messages.
	Prefix string
	// Format selects text or JSON lines.
	Format LogFormat
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LogLevelInfo,
		Output: os.Stderr,
		Prefix: "ares",
	}
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Logger{
		sink:   &logSink{output: cfg.Output, format: cfg.Format},
		level:  cfg.Level,
		prefix: cfg.Prefix,
		fields: make(map[string]any),
		now:    time.Now,
	}
}

// OpenLogFile creates a logger appending to path. The terminal owns stdout
// and stderr while the editor runs, so an empty path yields a disabled
// logger. The returned closer must be called on exit.
func OpenLogFile(path string, level LogLevel, format LogFormat) (*Logger, io.Closer, error) {
	if path == "" {
		return NullLogger, nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, NewOperationError("open log", path, err)
	}
	return NewLogger(LoggerConfig{Level: level, Output: f, Prefix: "ares", Format: format}), f, nil
}

func (l *Logger) derive(extra map[string]any) *Logger {
	newFields := make(map[string]any, len(l.fields)+len(extra))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for k, v := range extra {
		newFields[k] = v
	}
	return &Logger{
		sink:     l.sink,
		level:    l.level,
		prefix:   l.prefix,
		fields:   newFields,
		disabled: l.disabled,
		now:      l.now,
	}
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.derive(map[string]any{key: value})
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return l.derive(fields)
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return !l.disabled && level >= l.level
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LogLevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(LogLevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LogLevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log(LogLevelError, msg, args...)
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if !l.Enabled(level) || l.sink == nil {
		return
	}

	timestamp := l.now().Format("2006-01-02T15:04:05.000")

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var line []byte
	if l.sink.format == LogFormatJSON {
		line = l.jsonLine(timestamp, level, msg)
	} else {
		line = l.textLine(timestamp, level, msg)
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = l.sink.output.Write(line)
}

func (l *Logger) sortedKeys() []string {
	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (l *Logger) textLine(timestamp string, level LogLevel, msg string) []byte {
	var b strings.Builder
	b.WriteString(timestamp)
	fmt.Fprintf(&b, " [%s] ", level)
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteString(": ")
	}
	b.WriteString(msg)

	// Fields are sorted so lines are stable
	if len(l.fields) > 0 {
		b.WriteString(" {")
		for i, k := range l.sortedKeys() {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, l.fields[k])
		}
		b.WriteString("}")
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

func (l *Logger) jsonLine(timestamp string, level LogLevel, msg string) []byte {
	line := []byte("{}")
	line, _ = sjson.SetBytes(line, "time", timestamp)
	line, _ = sjson.SetBytes(line, "level", level.String())
	if l.prefix != "" {
		line, _ = sjson.SetBytes(line, "logger", l.prefix)
	}
	line, _ = sjson.SetBytes(line, "msg", msg)
	for _, k := range l.sortedKeys() {
		line, _ = sjson.SetBytes(line, "fields."+jsonPathKey(k), jsonFieldValue(l.fields[k]))
	}
	return append(line, '\n')
}

var pathEscaper = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)

// jsonPathKey escapes the characters sjson treats as path syntax.
func jsonPathKey(k string) string {
	return pathEscaper.Replace(k)
}

// jsonFieldValue keeps scalars typed and stringifies everything else.
func jsonFieldValue(v any) any {
	switch v := v.(type) {
	case string, bool, int, int64, uint, uint64, float64:
		return v
	case time.Duration:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprint(v)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NullLogger is a logger that discards all output.
var NullLogger = &Logger{disabled: true, now: time.Now}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}

// logComponentError logs an error with component context.
func (app *Application) logComponentError(component string, err error) {
	if err != nil {
		app.Logger().WithComponent(component).Error("error: %v", err)
	}
}
