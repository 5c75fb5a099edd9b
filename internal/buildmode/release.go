//go:build !dev

package buildmode

// Dev reports whether this is a development build. Release builds negotiate
// an ephemeral port and spawn the bundled sidecar server themselves.
const Dev = false
