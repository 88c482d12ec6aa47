package ports

import (
	"context"

	"go.trai.ch/toysetup/internal/core/domain"
)

// EnvironmentStore persists environment variables beyond the current process.
//
//go:generate go run go.uber.org/mock/mockgen -source=envstore.go -destination=mocks/mock_envstore.go -package=mocks
type EnvironmentStore interface {
	// Persist writes mutation durably. Persisting the same PATH-like mutation twice leaves a
	// single entry. The environment of the running process is not touched.
	Persist(ctx context.Context, mutation domain.EnvMutation) error
}

// EnvironmentStoreFactory selects the store for a host. profile is the shell
// profile used on Linux.
type EnvironmentStoreFactory func(host domain.HostProfile, profile string) EnvironmentStore
