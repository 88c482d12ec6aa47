package ports

import (
	"context"

	"go.trai.ch/toysetup/internal/core/domain"
)

// BuildConfigPinner records the default build target of the project.
//
//go:generate go run go.uber.org/mock/mockgen -source=buildconfig.go -destination=mocks/mock_buildconfig.go -package=mocks
type BuildConfigPinner interface {
	// PinTarget sets the cargo build target in projectRoot, keeping other settings.
	PinTarget(ctx context.Context, projectRoot string, triple domain.TargetTriple) error
}
