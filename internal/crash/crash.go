// Package crash turns panics in the oxide binaries into a logged error, a
// crash report on disk and a non-zero exit.
package crash

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	applog "github.com/phanxgames/oxide/internal/log"
	"github.com/phanxgames/oxide/internal/version"
)

// ExitCode is the process status after a recovered panic.
const ExitCode = 2

var (
	// exitFn and stderr are replaced in tests.
	exitFn           = os.Exit
	stderr io.Writer = os.Stderr

	// ReportDir is where crash reports are written. Empty means os.TempDir().
	ReportDir string
)

// Recover captures a panic, logs it with its stack, writes a crash report and
// exits with ExitCode. It must be deferred directly:
//
//	defer crash.Recover()
func Recover() {
	r := recover()
	if r == nil {
		return
	}
	l := applog.WithComponent("crash")
	stack := debug.Stack()
	l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

	path, err := writeReport(r, stack)
	if err != nil {
		l.Error("write crash report failed", slog.Any("err", err))
	}
	_, _ = fmt.Fprintf(stderr, "oxide: fatal error: %v\n", r)
	if err == nil {
		_, _ = fmt.Fprintf(stderr, "A crash report was saved to: %s\n", path)
	}
	_, _ = fmt.Fprintf(stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH)
	exitFn(ExitCode)
}

func writeReport(panicVal any, stack []byte) (string, error) {
	dir := ReportDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	now := time.Now()
	path := filepath.Join(dir, fmt.Sprintf("oxide-crash-%s.log", now.Format("20060102-150405")))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "oxide crash report\n")
	fmt.Fprintf(&buf, "Timestamp: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&buf, "Version: %s\n", version.String())
	fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	fmt.Fprintf(&buf, "Stack:\n%s\n", stack)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return path, fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
