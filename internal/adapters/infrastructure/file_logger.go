package infrastructure

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"weatherwidget.app/internal/ports"
)

var levelRank = map[string]int{"DEBUG": 0, "INFO": 1, "WARN": 2, "ERROR": 3}

// FileLoggerAdapter writes JSON-lines log entries to a file. It is used for
// the provider request log so upstream traffic can be inspected apart from
// the application log.
type FileLoggerAdapter struct {
	filePath string
	minRank  int
	now      func() time.Time

	mutex sync.Mutex
	file  io.WriteCloser
}

// NewFileLoggerAdapter opens logPath for appending. Entries below minLevel
// (debug, info, warn, error; empty means debug) are discarded.
func NewFileLoggerAdapter(logPath, minLevel string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	rank, ok := levelRank[strings.ToUpper(strings.TrimSpace(minLevel))]
	if !ok {
		if strings.TrimSpace(minLevel) != "" {
			return nil, fmt.Errorf("unknown log level: %s", minLevel)
		}
		rank = 0
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileLoggerAdapter{
		filePath: logPath,
		minRank:  rank,
		now:      time.Now,
		file:     file,
	}, nil
}

// Path returns the file being written
func (f *FileLoggerAdapter) Path() string {
	return f.filePath
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields...)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields...)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields...)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields...)
}

// Close flushes and closes the log file; later entries are dropped
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields ...ports.Field) {
	if levelRank[level] < f.minRank {
		return
	}

	logEntry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		logEntry[field.Key] = fieldValue(field.Value)
	}
	// reserved keys win over fields of the same name
	logEntry["timestamp"] = f.now().UTC().Format(time.RFC3339Nano)
	logEntry["level"] = level
	logEntry["message"] = msg

	line, err := json.Marshal(logEntry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"ERROR","message":"failed to marshal log entry: %s"}`, strings.ReplaceAll(err.Error(), `"`, `'`)))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return
	}
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
