package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObservePage(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ObservePage(2*time.Millisecond, nil)
	r.ObservePage(3*time.Millisecond, nil)
	r.ObservePage(time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(r.pages.WithLabelValues(StatusOK)); got != 2 {
		t.Errorf("ok pages = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.pages.WithLabelValues(StatusFailed)); got != 1 {
		t.Errorf("failed pages = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.pageDuration); got != 1 {
		t.Errorf("duration histogram series = %d, want 1", got)
	}
}

func TestRecorder_FinishBuild(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)

	t.Run("success sets timestamp", func(t *testing.T) {
		t.Parallel()

		r := NewRecorder()
		r.FinishBuild(1500*time.Millisecond, 0, now)
		if got := testutil.ToFloat64(r.buildSeconds); got != 1.5 {
			t.Errorf("build seconds = %v, want 1.5", got)
		}
		if got := testutil.ToFloat64(r.lastSuccess); got != 1700000000 {
			t.Errorf("last success = %v, want 1700000000", got)
		}
	})

	t.Run("failure keeps timestamp unset", func(t *testing.T) {
		t.Parallel()

		r := NewRecorder()
		r.FinishBuild(time.Second, 2, now)
		if got := testutil.ToFloat64(r.lastSuccess); got != 0 {
			t.Errorf("last success = %v, want 0", got)
		}
	})
}

func TestRecorder_SetStaticFiles(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.SetStaticFiles(7)

	expected := `
# HELP md2site_static_files Files mirrored from the static directory
# TYPE md2site_static_files gauge
md2site_static_files 7
`
	if err := testutil.CollectAndCompare(r.staticFiles, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metric output: %v", err)
	}
}

func TestRecorder_WriteFile(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ObservePage(time.Millisecond, nil)
	r.SetStaticFiles(3)

	path := filepath.Join(t.TempDir(), "build.prom")
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading metrics file: %v", err)
	}
	for _, want := range []string{
		`md2site_pages_total{status="ok"} 1`,
		"md2site_static_files 3",
		"md2site_page_duration_seconds_count 1",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics file missing %q:\n%s", want, data)
		}
	}
}

func TestRecorder_Isolated(t *testing.T) {
	t.Parallel()

	a, b := NewRecorder(), NewRecorder()
	a.ObservePage(time.Millisecond, nil)

	if got := testutil.ToFloat64(b.pages.WithLabelValues(StatusOK)); got != 0 {
		t.Errorf("second recorder saw %v pages, want 0", got)
	}
	if n, err := testutil.GatherAndCount(a.Registry(), "md2site_pages_total"); err != nil || n != 1 {
		t.Errorf("GatherAndCount() = %d, %v; want 1, nil", n, err)
	}
}
