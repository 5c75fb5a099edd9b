// Package credential negotiates the private channel between the companion
// and its sidecar server: a random shared secret and a loopback TCP port.
package credential

import "math/rand/v2"

const secretCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SecretLength is the length of every generated shared secret.
const SecretLength = 32

// GenerateSecret returns a 32-character alphanumeric token. The secret only
// authorizes loopback requests from the trusted front-end, so a uniformly
// distributed PRNG is sufficient; this is not a long-lived credential.
func GenerateSecret() string {
	b := make([]byte, SecretLength)
	for i := range b {
		b[i] = secretCharset[rand.IntN(len(secretCharset))]
	}
	return string(b)
}
