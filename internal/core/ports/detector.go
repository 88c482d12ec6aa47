package ports

import (
	"context"

	"go.trai.ch/toysetup/internal/core/domain"
)

// ToolDetector decides whether a working installation of a tool exists.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type ToolDetector interface {
	// Probe looks for spec in extraDirs followed by the PATH of env.
	// A nil env means the environment of the current process.
	// Probe never fails: anything short of a responsive tool with every marker is Found=false.
	Probe(ctx context.Context, env []string, spec domain.ToolSpec, extraDirs []string) domain.ToolPresence
	// IsPresent is Probe reduced to its Found field.
	IsPresent(ctx context.Context, env []string, spec domain.ToolSpec, extraDirs []string) bool
}
