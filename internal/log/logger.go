package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Logger wraps the slog logger used across the application
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	file   *os.File
}

var (
	globalLogger *Logger
	mu           sync.RWMutex
)

// init creates the global logger with stderr output at info level
func init() {
	globalLogger = newLogger(os.Stderr, nil, slog.LevelInfo)
}

func newLogger(w io.Writer, file *os.File, level slog.Level) *Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: levelVar,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   slog.TimeKey,
					Value: slog.StringValue(a.Value.Time().Format("2006/01/02 15:04:05.000000")),
				}
			}
			return a
		},
	})

	return &Logger{
		logger: slog.New(handler),
		level:  levelVar,
		file:   file,
	}
}

// SetFileOutput redirects the global logger to the given file (append mode).
// The TUI uses this so log lines never draw over the screen.
func SetFileOutput(filename string) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	level := globalLogger.level.Level()
	closeFile(globalLogger)
	globalLogger = newLogger(file, file, level)
	return nil
}

// SetOutput redirects the global logger to w
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	level := globalLogger.level.Level()
	closeFile(globalLogger)
	globalLogger = newLogger(w, nil, level)
}

// SetLevel changes the minimum level; unknown names fall back to info
func SetLevel(name string) {
	mu.RLock()
	defer mu.RUnlock()
	globalLogger.level.Set(ParseLevel(name))
}

// ParseLevel maps debug/info/warn/error to a slog level
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger.logger
}

func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	current().Error(msg, args...)
}

// Close closes the log file, if any, and falls back to stderr
func Close() {
	mu.Lock()
	defer mu.Unlock()

	level := globalLogger.level.Level()
	if closeFile(globalLogger) {
		globalLogger = newLogger(os.Stderr, nil, level)
	}
}

func closeFile(l *Logger) bool {
	if l != nil && l.file != nil {
		l.file.Close()
		return true
	}
	return false
}
