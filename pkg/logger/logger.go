// Package logger provides the leveled logging interface used across tasktide.
// The console backend writes to stderr; the file backend appends to the
// log file named in the configuration.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger defines the logging interface for the planner, storage and CLI.
type Logger interface {
	// Debug logs a diagnostic message. Backends drop it unless verbose.
	Debug(format string, args ...interface{})

	// Info logs an informational message (e.g., "task added").
	Info(format string, args ...interface{})

	// Warning logs a recoverable anomaly (e.g., "unrecognized answer, task skipped").
	Warning(format string, args ...interface{})

	// Error logs a failure (e.g., "failed to save status").
	Error(format string, args ...interface{})

	// Close releases resources held by the logger.
	// Safe to call multiple times.
	Close() error
}

// StandardLogger wraps the stdlib *log.Logger and prefixes every line
// with its level.
type StandardLogger struct {
	logger  *log.Logger
	verbose bool
	closer  io.Closer
	once    sync.Once
}

// NewStandardLogger creates a logger that writes through l.
// Debug lines are written only when verbose is set.
func NewStandardLogger(l *log.Logger, verbose bool) *StandardLogger {
	return &StandardLogger{logger: l, verbose: verbose}
}

// NewConsoleLogger creates a logger writing to stderr.
func NewConsoleLogger(verbose bool) *StandardLogger {
	return NewStandardLogger(log.New(os.Stderr, "tasktide: ", log.LstdFlags), verbose)
}

// NewFileLogger opens path for appending and logs into it.
// Close releases the file.
func NewFileLogger(path string, verbose bool) (*StandardLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := NewStandardLogger(log.New(f, "", log.LstdFlags), verbose)
	l.closer = f
	return l, nil
}

func (s *StandardLogger) Debug(format string, args ...interface{}) {
	if !s.verbose {
		return
	}
	s.logger.Printf("[DEBUG] "+format, args...)
}

func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// Close closes the underlying file, if any.
func (s *StandardLogger) Close() error {
	var err error
	s.once.Do(func() {
		if s.closer != nil {
			err = s.closer.Close()
		}
	})
	return err
}

// NopLogger discards all messages.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(format string, args ...interface{})   {}
func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}
func (n *NopLogger) Close() error                               { return nil }

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)

// MockLogger records every formatted message for assertions in tests.
type MockLogger struct {
	mu           sync.Mutex
	DebugCalls   []string
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

// NewMockLogger creates a new MockLogger for testing.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(dst *[]string, format string, args []interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*dst = append(*dst, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Debug(format string, args ...interface{}) {
	m.record(&m.DebugCalls, format, args)
}

func (m *MockLogger) Info(format string, args ...interface{}) {
	m.record(&m.InfoCalls, format, args)
}

func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.record(&m.WarningCalls, format, args)
}

func (m *MockLogger) Error(format string, args ...interface{}) {
	m.record(&m.ErrorCalls, format, args)
}

func (m *MockLogger) Close() error {
	m.mu.Lock()
	m.CloseCalled = true
	m.mu.Unlock()
	return nil
}

var _ Logger = (*MockLogger)(nil)
