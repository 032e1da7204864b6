package crash

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	applog "github.com/phanxgames/oxide/internal/log"
)

func setup(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var logs, errOut bytes.Buffer
	applog.Init(applog.Options{Output: &logs})

	code := -1
	oldExit, oldStderr, oldDir := exitFn, stderr, ReportDir
	exitFn = func(c int) { code = c }
	stderr = &errOut
	ReportDir = t.TempDir()
	t.Cleanup(func() {
		exitFn, stderr, ReportDir = oldExit, oldStderr, oldDir
	})
	return &errOut, &code
}

func TestRecoverWritesReportAndExits(t *testing.T) {
	errOut, code := setup(t)

	func() {
		defer Recover()
		panic("oxide: selected curve 3 is an empty slot")
	}()

	if *code != ExitCode {
		t.Fatalf("exit code = %d, want %d", *code, ExitCode)
	}
	if !strings.Contains(errOut.String(), "selected curve 3 is an empty slot") {
		t.Errorf("stderr missing panic value: %q", errOut.String())
	}

	entries, err := os.ReadDir(ReportDir)
	if err != nil {
		t.Fatalf("read report dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("report files = %d, want 1", len(entries))
	}
	b, err := os.ReadFile(filepath.Join(ReportDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(b)
	for _, want := range []string{"oxide crash report", "Panic: oxide: selected curve 3", "Stack:"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRecoverNoPanic(t *testing.T) {
	errOut, code := setup(t)

	func() {
		defer Recover()
	}()

	if *code != -1 {
		t.Errorf("exit called with %d without a panic", *code)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", errOut.String())
	}
}
