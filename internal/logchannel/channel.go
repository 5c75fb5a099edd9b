package logchannel

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// Channel is the append-only log for one supervisor run. It is owned
// exclusively by the event-consumption loop, so it needs no locking. Write
// failures are reported to the diagnostic logger and otherwise absorbed: a
// broken log must never take down the supervisor or the child.
type Channel struct {
	path     string
	file     *os.File
	diag     *zap.Logger
	reported bool
}

// Open opens (or creates) the log file in append mode and writes a session
// separator, so one file can hold several runs with clear boundaries.
func Open(path string, diag *zap.Logger) (*Channel, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	c := &Channel{path: path, file: f, diag: diag}
	sep := fmt.Sprintf("\n\n=== Server started at %s ===\n", time.Now().Format(time.DateTime))
	if _, err := f.WriteString(sep); err != nil {
		c.report(err)
	}
	return c, nil
}

// Path returns the log file location.
func (c *Channel) Path() string { return c.path }

// WriteLine appends one newline-terminated line. The file is opened
// unbuffered, so every line reaches the kernel before WriteLine returns; a
// crash loses at most the in-flight write. The returned error exists so the
// single caller can visibly discard it; it is never escalated.
func (c *Channel) WriteLine(line string) error {
	if _, err := c.file.WriteString(line + "\n"); err != nil {
		c.report(err)
		return err
	}
	return nil
}

func (c *Channel) Close() error {
	return c.file.Close()
}

// report logs the first write failure; subsequent ones are dropped so a dead
// disk does not flood diagnostics once per child output line.
func (c *Channel) report(err error) {
	if c.reported {
		return
	}
	c.reported = true
	c.diag.Warn("server log write failed, output will be lost",
		zap.String("path", c.path), zap.Error(err))
}
