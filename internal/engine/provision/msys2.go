package provision

import (
	"context"
	"path/filepath"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/toysetup/internal/core/domain"
)

const (
	msystem = "MINGW64"
	// mingwInstallAttempts is the package installation plus one repeat.
	mingwInstallAttempts = 2
)

var mingwClangSpec = domain.ToolSpec{Name: "clang", Markers: []string{"x86_64-w64-windows-gnu"}}

// EnsureMinGW installs MSYS2 and the MinGW-w64 toolchain packages.
//
// The first full system upgrade replaces the MSYS2 runtime and terminates its own
// shell, so its exit status is ignored and the settle delay is waited before the
// second, strict upgrade. A toolchain that still cannot be verified after one
// repeated installation is reported as a warning.
func (s *windowsStrategy) EnsureMinGW(ctx context.Context) (bool, error) {
	root := s.cfg.Windows.MSYS2Root
	installed := dirExists(root)
	if installed && s.mingwPresent(ctx) {
		s.Logger.Info("MinGW toolchain already installed")
		return true, nil
	}
	if !installed {
		if err := s.winget(ctx, wingetMSYS2); err != nil {
			return false, err
		}
	}

	update := shellquote.Join("pacman", "-Syu", "--noconfirm")
	first := domain.StepPolicy{TolerateAnyExit: true, Delay: s.cfg.Windows.SettleDelay}
	outcome, err := s.invoke(ctx, s.bash(update), first)
	if err != nil {
		return false, err
	}
	if outcome == domain.OutcomeTolerated {
		s.Logger.Info("pacman restarted its shell after the core upgrade")
	}
	if _, err := s.invoke(ctx, s.bash(update), domain.StrictPolicy()); err != nil {
		return false, err
	}

	install := shellquote.Join(append([]string{"pacman", "-S", "--needed", "--noconfirm"}, s.cfg.Windows.MinGWPackages...)...)
	for attempt := 1; ; attempt++ {
		if _, err := s.invoke(ctx, s.bash(install), domain.StrictPolicy()); err != nil {
			return false, err
		}
		if s.mingwPresent(ctx) {
			return false, nil
		}
		if attempt >= mingwInstallAttempts {
			break
		}
		s.Logger.Warn("MinGW clang not found after installation, installing packages again")
	}

	s.Logger.Warn("MinGW clang still not found in " + s.mingwBin() + ", continuing")
	return false, nil
}

// bash builds a login-shell command inside MSYS2 with the MINGW64 subsystem
// selected and the working directory kept.
func (s *windowsStrategy) bash(script string) domain.Command {
	env := s.env.Clone()
	env.Set("MSYSTEM", msystem)
	env.Set("CHERE_INVOKING", "1")
	return domain.Command{
		Name: filepath.Join(s.cfg.Windows.MSYS2Root, "usr", "bin", "bash.exe"),
		Args: []string{"-lc", script},
		Env:  env.Slice(),
	}
}

func (s *windowsStrategy) mingwPresent(ctx context.Context) bool {
	return s.present(ctx, mingwClangSpec, s.mingwBin())
}
