// Package supervisor owns the lifecycle of the sidecar server process: it
// spawns the child with the negotiated port and secret in its environment,
// consumes its output events in delivery order, and forwards them to the
// server log. There is deliberately no respawn policy: a crashed child
// simply stops producing output and the companion keeps running.
package supervisor

import "sync"

// State is the single shared record the front-end queries and the supervisor
// mutates. Port and secret are immutable after construction; the mutex exists
// for the child handle, which is set once at spawn and taken once at
// shutdown. It is constructed explicitly in main and injected everywhere it
// is needed.
type State struct {
	mu      sync.Mutex
	port    uint16
	sshPort uint16
	secret  string
	child   *Child
}

func NewState(port, sshPort uint16, secret string) *State {
	return &State{port: port, sshPort: sshPort, secret: secret}
}

// Port returns the negotiated server port.
func (s *State) Port() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port
}

// SSHPort returns the negotiated SSH port.
func (s *State) SSHPort() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sshPort
}

// Secret returns the shared secret exposed to the trusted front-end.
func (s *State) Secret() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.secret
}

// HasChild reports whether a live child handle is currently held.
func (s *State) HasChild() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.child != nil
}

// setChild stores the child handle. It is set at most once per application
// run; a second set indicates a supervisor bug and is refused.
func (s *State) setChild(c *Child) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.child != nil {
		return false
	}
	s.child = c
	return true
}

// TakeChild removes and returns the child handle, or nil if none is held.
// The caller becomes responsible for terminating the process.
func (s *State) TakeChild() *Child {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.child
	s.child = nil
	return c
}
