//go:build !windows

package envstore

import (
	"context"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/zerr"
)

type unavailableRegistry struct{}

func newRegistry(_ ports.Logger) ports.EnvironmentStore {
	return unavailableRegistry{}
}

func (unavailableRegistry) Persist(_ context.Context, m domain.EnvMutation) error {
	return zerr.With(
		zerr.Wrap(domain.ErrUnsupportedPlatform, "the Windows registry is not available on this system"),
		"variable", m.Name,
	)
}
