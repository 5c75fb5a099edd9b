package supervisor

import "testing"

func TestEventLogLine(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"stdout", Event{Kind: EventStdout, Line: "listening on 3001"}, "[stdout] listening on 3001"},
		{"stderr", Event{Kind: EventStderr, Line: "warning: slow disk"}, "[stderr] warning: slow disk"},
		{"error", Event{Kind: EventError, Line: "read: broken pipe"}, "[error] read: broken pipe"},
		{"clean exit", Event{Kind: EventTerminated, Code: 0}, "[terminated] code: 0, signal: none"},
		{"failed exit", Event{Kind: EventTerminated, Code: 2}, "[terminated] code: 2, signal: none"},
		{"killed", Event{Kind: EventTerminated, Code: -1, Signal: "killed"}, "[terminated] code: -1, signal: killed"},
		{"trailing newline stripped", Event{Kind: EventStdout, Line: "ready\r\n"}, "[stdout] ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.LogLine(); got != tt.want {
				t.Errorf("LogLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventLogLineInvalidUTF8Replaced(t *testing.T) {
	ev := Event{Kind: EventStdout, Line: "bad \xff\xfe bytes"}
	got := ev.LogLine()
	want := "[stdout] bad �� bytes"
	if got != want {
		t.Errorf("LogLine() = %q, want %q", got, want)
	}
}
