//go:build dev

package buildmode

// Dev builds skip port negotiation and sidecar spawning entirely: the server
// is expected to be started separately (e.g. `make dev-server`) on the fixed
// ports below, which keeps repeated local runs deterministic.
const Dev = true
