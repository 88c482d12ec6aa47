package provision

import (
	"context"
	"time"

	"go.trai.ch/toysetup/internal/core/domain"
)

// ReadCodename exposes readCodename for testing.
var ReadCodename = readCodename

// Invoke runs cmd through the policy runner of a Linux run over environ.
// This is exported for testing purposes only.
func Invoke(
	ctx context.Context,
	deps Deps,
	environ []string,
	cmd domain.Command,
	policy domain.StepPolicy,
) (domain.Outcome, error) {
	host := domain.HostProfile{OS: domain.OSLinux, Arch: domain.ArchX8664}
	r := newRunner(host, deps, domain.DefaultConfig(), "", domain.NewEnv(environ, host))
	return r.invoke(ctx, cmd, policy)
}

// NewLinuxStrategyForTest builds the Linux strategy with a fake os-release file and
// effective user id.
func NewLinuxStrategyForTest(
	deps Deps,
	cfg domain.Config,
	root string,
	environ []string,
	osRelease string,
	euid int,
) Strategy {
	host := domain.HostProfile{OS: domain.OSLinux, Arch: domain.ArchX8664}
	s := newLinuxStrategy(newRunner(host, deps, cfg, root, domain.NewEnv(environ, host)))
	s.osRelease = osRelease
	s.euid = func() int { return euid }
	return s
}

// EnsureMinGW runs the MSYS2 bootstrap of a Windows strategy.
func EnsureMinGW(ctx context.Context, s Strategy) (bool, error) {
	return s.(*windowsStrategy).EnsureMinGW(ctx)
}

// PinBuildConfig runs the cargo pinning step of a Windows strategy.
func PinBuildConfig(ctx context.Context, s Strategy) (bool, error) {
	return s.(*windowsStrategy).PinBuildConfig(ctx)
}

// SetClock replaces the time source used for receipts.
func (f *Fetcher) SetClock(now func() time.Time) {
	f.now = now
}
