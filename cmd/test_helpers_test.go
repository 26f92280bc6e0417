package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// captureOutput captures stdout and stderr during function execution.
// It redirects os.Stdout and os.Stderr to pipes, runs the provided function,
// and returns the captured output as strings.
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	var bufOut, bufErr bytes.Buffer
	done := make(chan struct{})
	go func() {
		io.Copy(&bufOut, rOut)
		io.Copy(&bufErr, rErr)
		close(done)
	}()

	f()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr
	<-done
	rOut.Close()
	rErr.Close()

	return bufOut.String(), bufErr.String()
}

// assertContains checks if output contains the expected substring.
func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}

// assertNotContains checks if output does NOT contain the specified substring.
func assertNotContains(t *testing.T, output, notExpected string) {
	t.Helper()
	if strings.Contains(output, notExpected) {
		t.Errorf("expected output to NOT contain %q, got:\n%s", notExpected, output)
	}
}

// assertErrorFormat checks that error output follows the standard format:
// tasktide: cmd[action]: msg
func assertErrorFormat(t *testing.T, output, cmd, action string) {
	t.Helper()
	pattern := "tasktide: " + cmd + "[" + action + "]:"
	if !strings.Contains(output, pattern) {
		t.Errorf("expected error format %q, got:\n%s", pattern, output)
	}
}

// assertContainsAll checks that output contains all expected substrings.
func assertContainsAll(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, exp := range expected {
		if !strings.Contains(output, exp) {
			t.Errorf("expected output to contain %q, got:\n%s", exp, output)
		}
	}
}

// setupHome points HOME at a temp dir, clears TASKTIDE_* variables and
// swaps terminal detection and the clock for deterministic runs. It
// returns the database path to pass with --db.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"TASKTIDE_CONFIG", "TASKTIDE_DATABASE", "TASKTIDE_LOG_FILE", "TASKTIDE_VERBOSE", "TASKTIDE_MAX_WAIT", "TASKTIDE_TIME_LAYOUT", "TASKTIDE_CHART_WIDTH"} {
		t.Setenv(k, "")
	}

	oldTerm, oldNow, oldIn := isTerminal, now, stdin
	isTerminal = func(*os.File) bool { return false }
	now = func() time.Time { return time.Date(2024, 11, 20, 9, 0, 0, 0, time.Local) }
	stdin = strings.NewReader("")
	t.Cleanup(func() {
		isTerminal, now, stdin = oldTerm, oldNow, oldIn
	})
	return filepath.Join(home, "data", "tasks.db")
}

// run executes the CLI with args and returns what it printed to stdout.
// input is fed to prompts.
func run(t *testing.T, db, input string, args ...string) string {
	t.Helper()
	stdin = strings.NewReader(input)
	full := append([]string{"tasktide", "--db", db}, args...)
	out, _ := captureOutput(func() {
		if err := Execute(full, BuildArgs{Version: "1.0.0", BuildType: "test"}); err != nil {
			t.Errorf("Execute(%v): %v", args, err)
		}
	})
	return out
}

func addTask(t *testing.T, db, name, typ, start, deadline, priority, duration string) {
	t.Helper()
	out := run(t, db, "", "add", "-n", name, "-t", typ, "-s", start, "-d", deadline, "-p", priority, "-u", duration)
	assertContains(t, out, "Task '"+name+"' added successfully.")
}
