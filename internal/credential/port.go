package credential

import (
	"fmt"
	"net"
)

// EphemeralPort binds a loopback listener on port 0, reads back the
// OS-assigned port, and releases it. The returned port is bindable at the
// time of return; nothing reserves it afterwards. An error here means the
// host cannot bind any loopback socket at all; callers treat that as fatal.
func EphemeralPort() (uint16, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("bind loopback socket: %w", err)
	}
	defer ln.Close()

	addr, ok := ln.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("unexpected listener address type %T", ln.Addr())
	}
	return uint16(addr.Port), nil
}

// PreferredPort returns preferred if it is currently bindable on loopback,
// otherwise an ephemeral port. Used for the SSH port, where a stable
// well-known number is nicer for users but never required.
func PreferredPort(preferred uint16) (uint16, error) {
	if preferred == 0 {
		return EphemeralPort()
	}
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", preferred))
	if err == nil {
		ln.Close()
		return preferred, nil
	}
	return EphemeralPort()
}
