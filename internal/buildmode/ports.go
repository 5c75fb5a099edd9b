package buildmode

// Fixed ports used by dev builds so the separately-run server and the
// companion always agree without negotiation.
const (
	DevServerPort uint16 = 3001
	DevSSHPort    uint16 = 3333
)
