package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toysetup/internal/adapters/host"
	"go.trai.ch/toysetup/internal/core/domain"
)

func TestProber_Probe(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    domain.HostProfile
		wantErr error
	}{
		{"linux amd64", "linux", "amd64", domain.HostProfile{OS: domain.OSLinux, Arch: domain.ArchX8664}, nil},
		{"windows amd64", "windows", "amd64", domain.HostProfile{OS: domain.OSWindows, Arch: domain.ArchX8664}, nil},
		{"windows AMD64 alias", "windows", "AMD64", domain.HostProfile{OS: domain.OSWindows, Arch: domain.ArchX8664}, nil},
		{"darwin", "darwin", "amd64", domain.HostProfile{}, domain.ErrUnsupportedPlatform},
		{"linux arm64", "linux", "arm64", domain.HostProfile{}, domain.ErrUnsupportedArchitecture},
		{"platform checked first", "freebsd", "arm64", domain.HostProfile{}, domain.ErrUnsupportedPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &host.Prober{GOOS: tt.goos, GOARCH: tt.goarch}
			got, err := p.Probe()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewProber(t *testing.T) {
	p := host.NewProber()
	assert.NotEmpty(t, p.GOOS)
	assert.NotEmpty(t, p.GOARCH)
}
