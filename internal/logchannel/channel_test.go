package logchannel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestOpenWritesSessionBanner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")

	c, err := Open(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	c.Close()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "=== Server started at ") {
		t.Errorf("missing session separator, got %q", string(got))
	}
}

func TestWriteLineAppendsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")

	c, err := Open(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_ = c.WriteLine("[stdout] first")
	_ = c.WriteLine("[stderr] second")
	_ = c.WriteLine("[stdout] third")
	c.Close()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	// Last three lines after the session banner.
	tail := lines[len(lines)-3:]
	want := []string{"[stdout] first", "[stderr] second", "[stdout] third"}
	for i, w := range want {
		if tail[i] != w {
			t.Errorf("line %d = %q, want %q", i, tail[i], w)
		}
	}
}

func TestOpenPreservesPriorRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	if err := os.WriteFile(path, []byte("[stdout] from a previous run\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Open(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	c.Close()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(got), "[stdout] from a previous run\n") {
		t.Error("append-mode open clobbered earlier log content")
	}
}

func TestWriteLineReportsFailureOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")

	c, err := Open(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	// Close the underlying file so writes fail.
	c.file.Close()

	if err := c.WriteLine("doomed"); err == nil {
		t.Error("expected an error writing to a closed file")
	}
	if !c.reported {
		t.Error("first failure was not reported to diagnostics")
	}
	// A second failure must not blow up; it is silently absorbed.
	_ = c.WriteLine("also doomed")
}
