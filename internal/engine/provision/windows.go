package provision

import (
	"context"
	"path/filepath"

	"go.trai.ch/toysetup/internal/core/domain"
)

// winget package identifiers.
const (
	wingetLLVM  = "LLVM.LLVM"
	wingetCMake = "Kitware.CMake"
	wingetNinja = "Ninja-build.Ninja"
	wingetMSYS2 = "MSYS2.MSYS2"
)

// minCMakeVersion is the oldest CMake the LLVM build files accept.
const minCMakeVersion = "3.20.0"

var (
	clangSpec = domain.ToolSpec{Name: "clang", Markers: []string{"clang", "llvm"}}
	cmakeSpec = domain.ToolSpec{Name: "cmake", Markers: []string{"cmake version"}, MinVersion: minCMakeVersion}
	ninjaSpec = domain.ToolSpec{Name: "ninja"}
)

type windowsStrategy struct {
	*runner
}

func newWindowsStrategy(r *runner) *windowsStrategy {
	return &windowsStrategy{runner: r}
}

func (s *windowsStrategy) Steps() []Step {
	return []Step{
		{Name: StepCompilerToolchain, Run: s.EnsureCompilerToolchain},
		{Name: StepToolchainManager, Run: s.EnsureToolchainManager},
		{Name: StepEnvironment, Run: s.ConfigureEnvironment},
		{Name: StepBuildConfig, Run: s.PinBuildConfig},
		{Name: StepSupportLibrary, Run: s.FetchArtifact},
	}
}

func (s *windowsStrategy) Checks() []ToolCheck {
	return []ToolCheck{
		{Label: "clang", Spec: clangSpec},
		{Label: "cmake", Spec: cmakeSpec},
		{Label: "ninja", Spec: ninjaSpec},
		{Label: "clang (MinGW)", Spec: mingwClangSpec, ExtraDirs: []string{s.mingwBin()}},
		s.rustupCheck(),
	}
}

// EnsureCompilerToolchain installs LLVM, CMake and Ninja with winget and then the
// MinGW toolchain inside MSYS2. winget reporting an existing installation is
// tolerated.
func (s *windowsStrategy) EnsureCompilerToolchain(ctx context.Context) (bool, error) {
	cached := true
	for _, pkg := range []struct {
		spec domain.ToolSpec
		id   string
	}{
		{clangSpec, wingetLLVM},
		{cmakeSpec, wingetCMake},
		{ninjaSpec, wingetNinja},
	} {
		if s.present(ctx, pkg.spec) {
			s.Logger.Info(pkg.spec.Name + " already installed")
			continue
		}
		cached = false
		if err := s.winget(ctx, pkg.id); err != nil {
			return false, err
		}
	}

	mingwCached, err := s.EnsureMinGW(ctx)
	if err != nil {
		return false, err
	}
	return cached && mingwCached, nil
}

func (s *windowsStrategy) winget(ctx context.Context, id string) error {
	s.Logger.Info("installing " + id + " with winget")
	cmd := domain.Command{
		Name: "winget",
		Args: []string{
			"install", "--id", id, "--exact", "--silent",
			"--accept-package-agreements", "--accept-source-agreements",
		},
	}
	policy := domain.StepPolicy{ToleratedExitCodes: s.cfg.Windows.WingetToleratedExitCodes}
	_, err := s.invoke(ctx, cmd, policy)
	return err
}

// ConfigureEnvironment puts the MinGW binaries on the user PATH and points
// LIBCLANG_PATH at them.
func (s *windowsStrategy) ConfigureEnvironment(ctx context.Context) (bool, error) {
	bin := s.mingwBin()
	return false, s.configure(ctx, []domain.EnvMutation{
		{Name: domain.PathVar, Value: bin, Scope: domain.ScopeDurable, PathLike: true},
		{Name: "LIBCLANG_PATH", Value: bin, Scope: domain.ScopeDurable},
	})
}

// PinBuildConfig makes the GNU target the default cargo build target of the project.
func (s *windowsStrategy) PinBuildConfig(ctx context.Context) (bool, error) {
	return false, s.Pinner.PinTarget(ctx, s.root, s.host.Triple())
}

func (s *windowsStrategy) mingwBin() string {
	return filepath.Join(s.cfg.Windows.MSYS2Root, "mingw64", "bin")
}

func (r *runner) rustupCheck() ToolCheck {
	check := ToolCheck{Label: "rustup", Spec: domain.ToolSpec{Name: "rustup", PresenceOnly: true}}
	if bin, err := r.cargoBin(); err == nil {
		check.ExtraDirs = []string{bin}
	}
	return check
}
