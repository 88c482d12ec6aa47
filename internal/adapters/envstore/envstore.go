// Package envstore persists environment variables in the user's registry hive
// on Windows and in the shell profile on Linux.
package envstore

import (
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
)

// New returns the store matching host.
func New(host domain.HostProfile, profile string, logger ports.Logger) ports.EnvironmentStore {
	if host.IsWindows() {
		return newRegistry(logger)
	}
	return NewProfile(profile, logger)
}
