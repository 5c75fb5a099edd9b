package logchannel

import (
	"fmt"
	"io"
	"os"
	"time"
)

const (
	// MaxSize is the size above which the log is compacted before a new run.
	MaxSize = 1_048_576
	// KeepSize is the trailing window retained by a compaction.
	KeepSize = 10_240
)

// Compact rewrites path as a truncation banner plus the last KeepSize bytes
// when the file has grown past MaxSize. It is a no-op for missing or
// small-enough files. Compaction runs once, synchronously, before each spawn,
// never while the log is being appended to.
func Compact(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return nil // nothing to compact
	}
	size := info.Size()
	if size <= MaxSize {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log for compaction: %w", err)
	}

	seekPos := size - KeepSize
	if seekPos < 0 {
		seekPos = 0
	}
	if _, err := f.Seek(seekPos, io.SeekStart); err != nil {
		f.Close()
		return fmt.Errorf("seek log tail: %w", err)
	}
	tail, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("read log tail: %w", err)
	}

	banner := fmt.Sprintf("=== Log truncated at %s (was %d bytes, keeping last %d bytes) ===\n",
		time.Now().Format(time.DateTime), size, len(tail))

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rewrite log: %w", err)
	}
	if _, err := out.WriteString(banner); err != nil {
		out.Close()
		return fmt.Errorf("write truncation banner: %w", err)
	}
	if _, err := out.Write(tail); err != nil {
		out.Close()
		return fmt.Errorf("write retained tail: %w", err)
	}
	return out.Close()
}
