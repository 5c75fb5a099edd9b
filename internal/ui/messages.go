package ui

import "github.com/dockhand/dockhand/internal/update"

// ClearFlashMsg removes an expired status flash.
type ClearFlashMsg struct{}

// UpdateAvailableMsg carries the result of the startup release check.
type UpdateAvailableMsg struct {
	Release *update.Release
}
