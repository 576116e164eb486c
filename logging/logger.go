package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
)

// LogLevel represents the severity level of a log message
type LogLevel int

// Log level constants define the severity hierarchy for filtering log output
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel converts a string to a LogLevel
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger provides structured logging with configurable levels
type Logger struct {
	mu     sync.Mutex
	level  LogLevel
	logger *log.Logger
	prefix string
}

// New creates a new Logger with the specified level
func New(level LogLevel, prefix string) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(os.Stderr, "", log.LstdFlags),
		prefix: prefix,
	}
}

// NewWithWriter creates a new Logger with custom output writer
func NewWithWriter(level LogLevel, prefix string, w io.Writer) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(w, "", log.LstdFlags),
		prefix: prefix,
	}
}

// SetLevel changes the log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) shouldLog(level LogLevel) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

// log writes a log message with the given level and fields. Fields are
// emitted in sorted key order so output is stable across runs.
func (l *Logger) log(level LogLevel, msg string, fields map[string]interface{}) {
	if !l.shouldLog(level) {
		return
	}

	var sb strings.Builder

	if l.prefix != "" {
		sb.WriteString(l.prefix)
		sb.WriteString(" ")
	}

	sb.WriteString(level.String())
	sb.WriteString(": ")
	sb.WriteString(msg)

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString(" |")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf(" %s=%v", k, fields[k]))
		}
	}

	l.logger.Println(sb.String())
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log(DEBUG, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log(INFO, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log(WARN, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log(ERROR, msg, fields)
}

// PanelEvent represents a type of panel lifecycle event
type PanelEvent string

// Panel event constants identify the ingestion and catalog lifecycle events
const (
	EventIngestComplete PanelEvent = "ingest_complete"
	EventSnapshotSwap   PanelEvent = "snapshot_swap"
	EventGuideRefresh   PanelEvent = "guide_refresh"
	EventSourceSkipped  PanelEvent = "source_skipped"
)

// LogIngestComplete logs the outcome of one ingestion run (INFO level)
func (l *Logger) LogIngestComplete(kind string, channels, skippedURLs, malformed int) {
	l.Info("Ingestion complete", map[string]interface{}{
		"event":     EventIngestComplete,
		"kind":      kind,
		"channels":  channels,
		"skipped":   skippedURLs,
		"malformed": malformed,
	})
}

// LogSnapshotSwap logs a catalog snapshot replacement (INFO level)
func (l *Logger) LogSnapshotSwap(snapshotID string, groups, channels int) {
	l.Info("Snapshot swapped", map[string]interface{}{
		"event":    EventSnapshotSwap,
		"snapshot": snapshotID,
		"groups":   groups,
		"channels": channels,
	})
}

// LogGuideRefresh logs a program guide refresh (INFO level)
func (l *Logger) LogGuideRefresh(url string, channels, entries, anomalies int) {
	l.Info("Guide refreshed", map[string]interface{}{
		"event":     EventGuideRefresh,
		"url":       url,
		"channels":  channels,
		"entries":   entries,
		"anomalies": anomalies,
	})
}

// LogSourceSkipped logs a playlist source that could not be fetched (WARN level)
func (l *Logger) LogSourceSkipped(url string, err error) {
	l.Warn("Source skipped", map[string]interface{}{
		"event": EventSourceSkipped,
		"url":   url,
		"error": err.Error(),
	})
}
