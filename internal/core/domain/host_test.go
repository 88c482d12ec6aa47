package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/toysetup/internal/core/domain"
)

func TestNormalizeArch(t *testing.T) {
	for _, alias := range []string{"amd64", "x86_64", "x86-64", "x64", "AMD64", " X86_64 "} {
		arch, ok := domain.NormalizeArch(alias)
		assert.True(t, ok, alias)
		assert.Equal(t, domain.ArchX8664, arch, alias)
	}

	for _, other := range []string{"arm64", "386", "aarch64", ""} {
		_, ok := domain.NormalizeArch(other)
		assert.False(t, ok, other)
	}
}

func TestHostProfile_Triple(t *testing.T) {
	win := domain.HostProfile{OS: domain.OSWindows, Arch: domain.ArchX8664}
	lin := domain.HostProfile{OS: domain.OSLinux, Arch: domain.ArchX8664}

	assert.Equal(t, domain.TargetTriple("x86_64-pc-windows-gnu"), win.Triple())
	assert.Equal(t, domain.TargetTriple("x86_64-unknown-linux-gnu"), lin.Triple())
	assert.True(t, win.IsWindows())
	assert.False(t, lin.IsWindows())
}
