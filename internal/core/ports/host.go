package ports

import "go.trai.ch/toysetup/internal/core/domain"

// HostProber identifies the machine being provisioned.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type HostProber interface {
	// Probe returns ErrUnsupportedPlatform or ErrUnsupportedArchitecture for hosts
	// toysetup cannot provision.
	Probe() (domain.HostProfile, error)
}
