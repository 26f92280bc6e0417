package logger

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStandardLogger_Levels(t *testing.T) {
	tests := []struct {
		name   string
		log    func(l Logger)
		prefix string
		body   string
	}{
		{"info", func(l Logger) { l.Info("task %q added", "Task 8") }, "[INFO]", `task "Task 8" added`},
		{"warning", func(l Logger) { l.Warning("skipped %d task(s)", 2) }, "[WARNING]", "skipped 2 task(s)"},
		{"error", func(l Logger) { l.Error("save failed: %v", "disk full") }, "[ERROR]", "save failed: disk full"},
		{"debug", func(l Logger) { l.Debug("queue has %d events", 4) }, "[DEBUG]", "queue has 4 events"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.log(NewStandardLogger(log.New(buf, "", 0), true))
			out := buf.String()
			if !strings.Contains(out, tt.prefix) {
				t.Errorf("expected %s prefix, got: %s", tt.prefix, out)
			}
			if !strings.Contains(out, tt.body) {
				t.Errorf("expected message content, got: %s", out)
			}
		})
	}
}

func TestStandardLogger_DebugNeedsVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewStandardLogger(log.New(buf, "", 0), false)

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no debug output without verbose, got: %s", buf.String())
	}
}

func TestFileLogger_AppendsAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasktide.log")

	l, err := NewFileLogger(path, false)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	l.Info("first")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Second close is a no-op.
	if err := l.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	l, err = NewFileLogger(path, false)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	l.Info("second")
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("expected both lines in log file, got: %s", data)
	}
}

func TestFileLogger_BadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), false)
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Debug("test")
	l.Info("test")
	l.Warning("test")
	l.Error("test")
	if err := l.Close(); err != nil {
		t.Errorf("expected nil error, got: %v", err)
	}
}

func TestMockLogger_RecordsCalls(t *testing.T) {
	l := NewMockLogger()

	l.Info("info %d", 1)
	l.Info("info %d", 2)
	l.Warning("warn %s", "test")
	l.Error("err %v", "fail")
	l.Debug("dbg")

	if len(l.InfoCalls) != 2 || l.InfoCalls[1] != "info 2" {
		t.Errorf("unexpected info calls: %v", l.InfoCalls)
	}
	if len(l.WarningCalls) != 1 || l.WarningCalls[0] != "warn test" {
		t.Errorf("unexpected warning calls: %v", l.WarningCalls)
	}
	if len(l.ErrorCalls) != 1 || l.ErrorCalls[0] != "err fail" {
		t.Errorf("unexpected error calls: %v", l.ErrorCalls)
	}
	if len(l.DebugCalls) != 1 {
		t.Errorf("unexpected debug calls: %v", l.DebugCalls)
	}
	if l.CloseCalled {
		t.Error("CloseCalled should be false initially")
	}
	l.Close()
	if !l.CloseCalled {
		t.Error("CloseCalled should be true after Close()")
	}
}

func TestMultiLogger_BroadcastsToAll(t *testing.T) {
	mock1 := NewMockLogger()
	mock2 := NewMockLogger()

	multi := NewMultiLogger(mock1, mock2)
	multi.Debug("debug msg")
	multi.Info("info msg")
	multi.Warning("warn msg")
	multi.Error("error msg")

	for i, m := range []*MockLogger{mock1, mock2} {
		if len(m.DebugCalls) != 1 || len(m.InfoCalls) != 1 || len(m.WarningCalls) != 1 || len(m.ErrorCalls) != 1 {
			t.Errorf("logger %d missed a message: %+v", i, m)
		}
	}
}

// failingCloseLogger returns an error on Close.
type failingCloseLogger struct {
	NopLogger
	closeErr error
}

func (f *failingCloseLogger) Close() error {
	return f.closeErr
}

func TestMultiLogger_Close_ReturnsFirstError(t *testing.T) {
	err1 := errors.New("logger1 failed to close")
	err2 := errors.New("logger2 failed to close")
	mock := NewMockLogger()

	multi := NewMultiLogger(&failingCloseLogger{closeErr: err1}, mock, &failingCloseLogger{closeErr: err2})

	if err := multi.Close(); !errors.Is(err, err1) {
		t.Errorf("expected first error %v, got %v", err1, err)
	}
	if !mock.CloseCalled {
		t.Error("expected mock logger to be closed even after first error")
	}
}

func TestMultiLogger_EmptyLoggers(t *testing.T) {
	multi := NewMultiLogger()
	multi.Info("test")
	if err := multi.Close(); err != nil {
		t.Errorf("expected nil error, got: %v", err)
	}
}
