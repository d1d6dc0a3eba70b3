package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// syncBuffer is a bytes.Buffer safe for the logger and printers to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// testEnvironment bundles an Environment with its captured output.
type testEnvironment struct {
	*Environment
	stdout *syncBuffer
	stderr *syncBuffer
}

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// newTestEnv returns an environment with captured output, a fixed clock
// and vars as its only environment variables.
func newTestEnv(t *testing.T, vars map[string]string) *testEnvironment {
	t.Helper()

	stdout, stderr := &syncBuffer{}, &syncBuffer{}
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr),
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			kv := make([]string, 0, len(vars))
			for k, v := range vars {
				kv = append(kv, k+"="+v)
			}
			sort.Strings(kv)
			return kv
		},
	}
	return &testEnvironment{Environment: env, stdout: stdout, stderr: stderr}
}

// writeFile creates path under dir with content, making parent directories.
func writeFile(t *testing.T, dir, path, content string) string {
	t.Helper()
	full := filepath.Join(dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", full, err)
	}
	return full
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// discardFieldLogger returns a logger that drops everything.
func discardFieldLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
