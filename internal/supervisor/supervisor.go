package supervisor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dockhand/dockhand/internal/config"
	"github.com/dockhand/dockhand/internal/logchannel"
)

// serverBinary is the bundled sidecar executable, looked up next to the
// companion binary and then on PATH unless the config overrides it.
const serverBinary = "dockhand-server"

// Phase is the supervisor's lifecycle position. There is no way back to
// Running within one application run.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseSpawning
	PhaseRunning
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseRunning:
		return "running"
	case PhaseTerminated:
		return "terminated"
	default:
		return "not started"
	}
}

// LogLineMsg tells the shell that new lines arrived in the ring buffer.
type LogLineMsg struct{}

// ChildExitedMsg tells the shell that the child terminated on its own.
type ChildExitedMsg struct {
	Code   int
	Signal string
}

// Supervisor drives one sidecar run: spawn with the negotiated environment,
// consume output events in delivery order, persist them to the log channel.
type Supervisor struct {
	cfg   *config.Config
	state *State
	diag  *zap.Logger
	buf   *RingBuffer

	mu      sync.Mutex
	phase   Phase
	logPath string
	program *tea.Program
	done    chan struct{}
}

func New(cfg *config.Config, state *State, diag *zap.Logger) *Supervisor {
	return &Supervisor{
		cfg:   cfg,
		state: state,
		diag:  diag,
		buf:   NewRingBuffer(10000),
		done:  make(chan struct{}),
	}
}

// SetProgram wires the bubbletea program so the consume loop can notify the
// shell about new log lines. Safe to leave unset (headless tests).
func (s *Supervisor) SetProgram(p *tea.Program) {
	s.mu.Lock()
	s.program = p
	s.mu.Unlock()
}

// Buffer returns the in-memory tail of the server log.
func (s *Supervisor) Buffer() *RingBuffer { return s.buf }

// LogPath returns the resolved server log location, or "" before Start.
func (s *Supervisor) LogPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logPath
}

// Phase returns the current lifecycle phase.
func (s *Supervisor) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Done is closed when the event-consumption loop has drained, which happens
// once the child has exited and no more events remain.
func (s *Supervisor) Done() <-chan struct{} { return s.done }

// Start resolves and compacts the log, spawns the sidecar with the channel
// credentials in its environment, and launches the consumption loop. A spawn
// failure leaves the state without a child for the rest of the run; the
// caller reports it and the application continues without a backing server.
func (s *Supervisor) Start() error {
	s.setPhase(PhaseSpawning)

	logPath, err := logchannel.ResolvePath()
	if err != nil {
		s.setPhase(PhaseNotStarted)
		return fmt.Errorf("resolve log path: %w", err)
	}
	s.mu.Lock()
	s.logPath = logPath
	s.mu.Unlock()

	if err := logchannel.Compact(logPath); err != nil {
		s.setPhase(PhaseNotStarted)
		return fmt.Errorf("compact log: %w", err)
	}

	bin, err := s.locateBinary()
	if err != nil {
		s.setPhase(PhaseNotStarted)
		return err
	}

	child, events, err := spawn(bin, s.cfg.Server.Args, s.environment())
	if err != nil {
		s.setPhase(PhaseNotStarted)
		return fmt.Errorf("spawn sidecar: %w", err)
	}

	if !s.state.setChild(child) {
		// Never expected: Start runs once per application lifetime.
		child.Kill()
		return fmt.Errorf("child already running")
	}

	s.diag.Info("sidecar started",
		zap.Int("pid", child.PID),
		zap.Uint16("port", s.state.Port()),
		zap.String("log", logPath))
	s.setPhase(PhaseRunning)

	// The log channel is owned by the consume loop for the whole run. An
	// open failure costs us persistence, not the child: consumption
	// continues with the in-memory buffer only.
	ch, err := logchannel.Open(logPath, s.diag)
	if err != nil {
		s.diag.Warn("server log unavailable, output will not be persisted", zap.Error(err))
		ch = nil
	}

	go s.consume(events, ch)
	return nil
}

// Shutdown takes the child handle out of the shared state and kills its
// process group. Idempotent: a second call, or a call when nothing was ever
// spawned, is a no-op.
func (s *Supervisor) Shutdown() {
	child := s.state.TakeChild()
	if child == nil {
		return
	}
	s.diag.Info("killing sidecar", zap.Int("pid", child.PID))
	child.Kill()
	s.setPhase(PhaseTerminated)
}

// consume pulls events one at a time in delivery order and converts each into
// exactly one log line. It exits when the channel closes. Log persistence is
// best-effort: the WriteLine error is discarded here and nowhere else.
func (s *Supervisor) consume(events <-chan Event, ch *logchannel.Channel) {
	defer close(s.done)
	if ch != nil {
		defer ch.Close()
	}

	for ev := range events {
		line := ev.LogLine()
		if line == "" {
			continue
		}
		if ch != nil {
			_ = ch.WriteLine(line)
		}
		s.buf.Append(line)

		if ev.Kind == EventTerminated {
			s.setPhase(PhaseTerminated)
			s.send(ChildExitedMsg{Code: ev.Code, Signal: ev.Signal})
		} else {
			s.send(LogLineMsg{})
		}
	}
}

// environment is the supervisor→child contract: the child must bind exactly
// PORT and require DOCKHAND_SECRET for privileged requests.
func (s *Supervisor) environment() []string {
	return append(os.Environ(),
		fmt.Sprintf("PORT=%d", s.state.Port()),
		fmt.Sprintf("SSH_PORT=%d", s.state.SSHPort()),
		"CORS_ORIGINS="+s.cfg.Server.CORSOrigins,
		"DOCKHAND_SECRET="+s.state.Secret(),
		"DOCKHAND=true",
		fmt.Sprintf("SUGGESTIONS_ENABLED=%t", s.cfg.Server.SuggestionsEnabled()),
	)
}

func (s *Supervisor) locateBinary() (string, error) {
	if s.cfg.Server.Command != "" {
		if _, err := os.Stat(s.cfg.Server.Command); err != nil {
			return "", fmt.Errorf("configured server command: %w", err)
		}
		return s.cfg.Server.Command, nil
	}

	// Bundled next to the companion executable, the usual install layout.
	if exe, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(exe), serverBinary)
		if _, err := os.Stat(bundled); err == nil {
			return bundled, nil
		}
	}

	path, err := exec.LookPath(serverBinary)
	if err != nil {
		return "", fmt.Errorf("locate %s: %w", serverBinary, err)
	}
	return path, nil
}

func (s *Supervisor) setPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}

func (s *Supervisor) send(msg tea.Msg) {
	s.mu.Lock()
	p := s.program
	s.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}
