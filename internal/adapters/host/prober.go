// Package host identifies the machine toysetup runs on.
package host

import (
	"runtime"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Prober implements ports.HostProber.
type Prober struct {
	GOOS   string
	GOARCH string
}

// NewProber returns a Prober for the running process.
func NewProber() *Prober {
	return &Prober{GOOS: runtime.GOOS, GOARCH: runtime.GOARCH}
}

// Probe validates the operating system and CPU architecture.
func (p *Prober) Probe() (domain.HostProfile, error) {
	hostOS, ok := domain.NormalizeOS(p.GOOS)
	if !ok {
		return domain.HostProfile{}, zerr.With(
			zerr.Wrap(domain.ErrUnsupportedPlatform, "toysetup only provisions Windows and Linux"),
			"os", p.GOOS,
		)
	}

	arch, ok := domain.NormalizeArch(p.GOARCH)
	if !ok {
		return domain.HostProfile{}, zerr.With(
			zerr.Wrap(domain.ErrUnsupportedArchitecture, "toysetup only provisions x86-64 machines"),
			"arch", p.GOARCH,
		)
	}

	return domain.HostProfile{OS: hostOS, Arch: arch}, nil
}
