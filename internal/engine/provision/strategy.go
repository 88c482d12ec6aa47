package provision

import (
	"context"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Step names as they appear in telemetry and the summary.
const (
	StepCompilerToolchain = "compiler toolchain"
	StepToolchainManager  = "rust toolchain"
	StepEnvironment       = "environment"
	StepBuildConfig       = "cargo build target"
	StepSupportLibrary    = "support library"
)

// StepFunc performs one step. It reports cached when detection found the work
// already done and nothing was changed.
type StepFunc func(ctx context.Context) (cached bool, err error)

// Step is a named unit of the pipeline.
type Step struct {
	Name string
	Run  StepFunc
}

// ToolCheck is one read-only detection performed by the check command.
type ToolCheck struct {
	Label     string
	Spec      domain.ToolSpec
	ExtraDirs []string
}

// Strategy is the host-specific part of provisioning.
type Strategy interface {
	// EnsureCompilerToolchain installs Clang, LLD, the LLVM headers, CMake and Ninja.
	EnsureCompilerToolchain(ctx context.Context) (bool, error)
	// EnsureToolchainManager installs rustup and registers the release and host target.
	EnsureToolchainManager(ctx context.Context) (bool, error)
	// ConfigureEnvironment persists the variables the compiler build needs.
	ConfigureEnvironment(ctx context.Context) (bool, error)
	// FetchArtifact installs the support library for the host triple.
	FetchArtifact(ctx context.Context) (bool, error)
	// Steps returns the ordered pipeline for the host.
	Steps() []Step
	// Checks returns the detections that describe the host's toolchain.
	Checks() []ToolCheck
	// Env returns the composed environment shared by all steps.
	Env() *domain.Env
}

// NewStrategy selects the strategy for host. environ is the snapshot the composed
// environment starts from.
func NewStrategy(
	host domain.HostProfile,
	deps Deps,
	cfg domain.Config,
	root string,
	environ []string,
) (Strategy, error) {
	r := newRunner(host, deps, cfg, root, domain.NewEnv(environ, host))
	switch host.OS {
	case domain.OSLinux:
		return newLinuxStrategy(r), nil
	case domain.OSWindows:
		return newWindowsStrategy(r), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedPlatform, "no provisioning strategy"), "os", string(host.OS))
	}
}
