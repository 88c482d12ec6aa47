package envstore_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toysetup/internal/adapters/envstore"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestNew_SelectsStoreByHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	linux := envstore.New(domain.HostProfile{OS: domain.OSLinux, Arch: domain.ArchX8664}, filepath.Join(t.TempDir(), ".bashrc"), log)
	assert.IsType(t, &envstore.Profile{}, linux)

	if runtime.GOOS == "windows" {
		return
	}
	windows := envstore.New(domain.HostProfile{OS: domain.OSWindows, Arch: domain.ArchX8664}, "", log)
	err := windows.Persist(context.Background(), domain.EnvMutation{Name: "PATH", Value: `C:\x`, PathLike: true})
	require.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
}
