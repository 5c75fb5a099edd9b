package supervisor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"syscall"
)

const maxLineBytes = 1024 * 1024

// Child is the handle to the live sidecar process. It is owned by State;
// whoever takes it out is responsible for killing it.
type Child struct {
	cmd *exec.Cmd
	PID int
}

// Kill terminates the child's whole process group immediately. Best-effort
// and fire-and-forget: there is no graceful-shutdown handshake, no timeout,
// no retry. The event channel closes as a side effect of the child dying.
func (c *Child) Kill() {
	if c == nil || c.cmd == nil || c.cmd.Process == nil {
		return
	}
	// Negative pid signals the process group created by Setpgid.
	_ = syscall.Kill(-c.cmd.Process.Pid, syscall.SIGKILL)
}

// spawn starts the sidecar as a detached subprocess with captured I/O and
// returns its handle plus a FIFO channel of events. The channel carries one
// event per output line, an Error event per stream read failure, and exactly
// one Terminated event before closing.
func spawn(bin string, args []string, env []string) (*Child, <-chan Event, error) {
	cmd := exec.Command(bin, args...)
	cmd.Env = env
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("start %s: %w", bin, err)
	}

	events := make(chan Event, 64)
	var wg sync.WaitGroup
	wg.Add(2)
	go scanStream(stdout, EventStdout, events, &wg)
	go scanStream(stderr, EventStderr, events, &wg)

	go func() {
		// Both pipes must drain before Wait, and the Terminated event must
		// be the last one on the channel.
		wg.Wait()
		events <- terminatedEvent(cmd.Wait())
		close(events)
	}()

	return &Child{cmd: cmd, PID: cmd.Process.Pid}, events, nil
}

func scanStream(r io.Reader, kind EventKind, events chan<- Event, wg *sync.WaitGroup) {
	defer wg.Done()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		events <- Event{Kind: kind, Line: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		events <- Event{Kind: EventError, Line: err.Error()}
	}
}

func terminatedEvent(waitErr error) Event {
	ev := Event{Kind: EventTerminated}
	if waitErr == nil {
		return ev
	}

	var exitErr *exec.ExitError
	if !errors.As(waitErr, &exitErr) {
		ev.Code = -1
		ev.Signal = waitErr.Error()
		return ev
	}

	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		ev.Code = -1
		ev.Signal = ws.Signal().String()
		return ev
	}
	ev.Code = exitErr.ExitCode()
	return ev
}
