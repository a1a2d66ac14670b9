// Package log provides category-based structured logging for gridline.
// Output goes to a debug file (enabled with --debug or GRIDLINE_DEBUG) and
// every line is also published so the UI can tail it.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gridline/internal/pubsub"
)

// EnvDebug enables debug logging when set to a non-empty value.
const EnvDebug = "GRIDLINE_DEBUG"

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatGrid      Category = "grid"      // model building, selection, navigation
	CatEdit      Category = "edit"      // edit session transitions
	CatClipboard Category = "clipboard" // copy/paste
	CatBulk      Category = "bulk"      // bulk edit batches
	CatPersist   Category = "persist"   // gateway commits and resolutions
	CatDB        Category = "db"
	CatConfig    Category = "config"
	CatCache     Category = "cache"
	CatUI        Category = "ui"
	CatWatcher   Category = "watcher"
	CatTrace     Category = "trace"
)

// Logger writes formatted entries and republishes them.
type Logger struct {
	mu       sync.Mutex
	closer   io.Closer
	writer   io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string]
	now      func() time.Time
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init opens path for appending and installs the global logger.
// The returned func closes the file.
func Init(path string) (func(), error) {
	var initErr error
	once.Do(func() {
		var f *os.File
		f, initErr = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // user supplied debug log path
		if initErr != nil {
			return
		}
		defaultLogger = newLogger(f, f)
	})
	if initErr != nil {
		return nil, fmt.Errorf("opening log file: %w", initErr)
	}
	if defaultLogger == nil {
		return nil, fmt.Errorf("logger initialization failed or already attempted")
	}
	return closeDefault, nil
}

// InitWithTeaLog initializes through tea.LogToFile so Bubble Tea's own
// log output lands in the same file.
func InitWithTeaLog(path, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	defaultLogger = newLogger(f, f)
	return closeDefault, nil
}

// InitWriter installs a logger writing to w. Used by tests and embedders.
func InitWriter(w io.Writer) {
	defaultLogger = newLogger(w, nil)
}

// DebugRequested reports whether debug logging was asked for through the environment.
func DebugRequested() bool {
	return strings.TrimSpace(os.Getenv(EnvDebug)) != ""
}

func newLogger(w io.Writer, c io.Closer) *Logger {
	return &Logger{
		closer:   c,
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
		now:      time.Now,
	}
}

func closeDefault() {
	if defaultLogger != nil && defaultLogger.closer != nil {
		_ = defaultLogger.closer.Close()
	}
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.enabled = enabled
		defaultLogger.mu.Unlock()
	}
}

// SetMinLevel drops entries below level.
func SetMinLevel(level Level) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields...) }
func Info(cat Category, msg string, fields ...any) { write(LevelInfo, cat, msg, fields...) }
func Warn(cat Category, msg string, fields ...any) { write(LevelWarn, cat, msg, fields...) }
func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields...) }

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

// Format renders one entry: 2026-01-02T15:04:05 [WARN] [persist] msg key=value
func Format(ts time.Time, level Level, cat Category, msg string, fields ...any) string {
	var sb strings.Builder
	sb.WriteString(ts.Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&sb, " [%s] [%s] %s", level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&sb, " %v=<missing>", fields[len(fields)-1])
	}
	sb.WriteByte('\n')
	return sb.String()
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := defaultLogger
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel {
		return
	}

	entry := Format(l.now(), level, cat, msg, fields...)
	if l.writer != nil {
		_, _ = io.WriteString(l.writer, entry)
	}
	l.broker.Publish(pubsub.LoggedEvent, entry)
}

// Dropped returns how many published lines a full subscriber missed.
func Dropped() int64 {
	if defaultLogger == nil {
		return 0
	}
	return defaultLogger.broker.Dropped()
}

// LogEvent is a published log line.
type LogEvent = pubsub.Event[string]

// LogListener tails log lines from inside a Bubble Tea program.
type LogListener = pubsub.ContinuousListener[string]

// NewListener subscribes to log lines until ctx is cancelled.
// Returns nil when logging was never initialized.
func NewListener(ctx context.Context) *LogListener {
	if defaultLogger == nil {
		return nil
	}
	return pubsub.NewContinuousListener(ctx, defaultLogger.broker)
}
