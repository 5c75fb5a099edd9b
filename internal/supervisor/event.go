package supervisor

import (
	"fmt"
	"strings"
)

// EventKind tags a child event.
type EventKind int

const (
	EventStdout EventKind = iota
	EventStderr
	EventError
	EventTerminated
)

// Event is one occurrence on the child's output stream. Stdout/Stderr carry a
// line of output, Error carries a read-failure message, Terminated carries the
// exit status. Events map 1:1 to log lines; nothing is buffered or coalesced.
type Event struct {
	Kind   EventKind
	Line   string
	Code   int    // Terminated only; -1 when killed by a signal
	Signal string // Terminated only; empty for a normal exit
}

// LogLine renders the event as its single formatted log line. Invalid UTF-8
// in child output is replaced, never rejected.
func (e Event) LogLine() string {
	switch e.Kind {
	case EventStdout:
		return "[stdout] " + sanitize(e.Line)
	case EventStderr:
		return "[stderr] " + sanitize(e.Line)
	case EventError:
		return "[error] " + sanitize(e.Line)
	case EventTerminated:
		sig := e.Signal
		if sig == "" {
			sig = "none"
		}
		return fmt.Sprintf("[terminated] code: %d, signal: %s", e.Code, sig)
	default:
		return ""
	}
}

func sanitize(line string) string {
	line = strings.TrimRight(line, "\r\n")
	return strings.ToValidUTF8(line, "�")
}
