package provision

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/toysetup/internal/core/domain"
)

const osReleasePath = "/etc/os-release"

type linuxStrategy struct {
	*runner

	osRelease string
	euid      func() int
}

func newLinuxStrategy(r *runner) *linuxStrategy {
	return &linuxStrategy{
		runner:    r,
		osRelease: osReleasePath,
		euid:      os.Geteuid,
	}
}

func (s *linuxStrategy) Steps() []Step {
	return []Step{
		{Name: StepCompilerToolchain, Run: s.EnsureCompilerToolchain},
		{Name: StepToolchainManager, Run: s.EnsureToolchainManager},
		{Name: StepEnvironment, Run: s.ConfigureEnvironment},
		{Name: StepSupportLibrary, Run: s.FetchArtifact},
	}
}

func (s *linuxStrategy) Checks() []ToolCheck {
	checks := make([]ToolCheck, 0, 4)
	for _, spec := range s.toolchainSpecs() {
		checks = append(checks, ToolCheck{Label: spec.Name, Spec: spec})
	}
	return append(checks, s.rustupCheck())
}

func (s *linuxStrategy) toolchainSpecs() []domain.ToolSpec {
	major := s.cfg.LLVM.Major
	return []domain.ToolSpec{
		{
			Name:       fmt.Sprintf("clang-%d", major),
			Markers:    []string{fmt.Sprintf("version %d.", major)},
			MinVersion: fmt.Sprintf("%d.0.0", major),
		},
		cmakeSpec,
		ninjaSpec,
	}
}

// EnsureCompilerToolchain installs the pinned LLVM release from apt.llvm.org together
// with CMake and Ninja. Nothing runs when all three are already present.
func (s *linuxStrategy) EnsureCompilerToolchain(ctx context.Context) (bool, error) {
	missing := false
	for _, spec := range s.toolchainSpecs() {
		if !s.present(ctx, spec) {
			s.Logger.Info(spec.Name + " not found")
			missing = true
		}
	}
	if !missing {
		s.Logger.Info("compiler toolchain already installed")
		return true, nil
	}
	return false, s.installLLVM(ctx)
}

// ConfigureEnvironment writes the LLVM and linker variables into the shell profile.
func (s *linuxStrategy) ConfigureEnvironment(ctx context.Context) (bool, error) {
	return false, s.configure(ctx, durable(s.cfg.ExportList()))
}
