package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toysetup/internal/core/domain"
)

var (
	linuxHost   = domain.HostProfile{OS: domain.OSLinux, Arch: domain.ArchX8664}
	windowsHost = domain.HostProfile{OS: domain.OSWindows, Arch: domain.ArchX8664}
)

func TestEnv_PrependPath(t *testing.T) {
	env := domain.NewEnv([]string{"PATH=/usr/bin:/bin", "HOME=/home/toy"}, linuxHost)

	env.PrependPath("PATH", "/home/toy/.cargo/bin")
	v, ok := env.Get("PATH")
	require.True(t, ok)
	assert.Equal(t, "/home/toy/.cargo/bin:/usr/bin:/bin", v)

	// Already present, including with a trailing separator.
	env.PrependPath("PATH", "/usr/bin/")
	v, _ = env.Get("PATH")
	assert.Equal(t, "/home/toy/.cargo/bin:/usr/bin:/bin", v)
}

func TestEnv_PrependPathEmpty(t *testing.T) {
	env := domain.NewEnv(nil, linuxHost)
	env.PrependPath("PATH", "/opt/bin")

	v, _ := env.Get("PATH")
	assert.Equal(t, "/opt/bin", v)
	assert.Equal(t, []string{"/opt/bin"}, env.PathDirs())
}

func TestEnv_WindowsCaseInsensitive(t *testing.T) {
	env := domain.NewEnv([]string{`Path=C:\Windows;C:\Tools`}, windowsHost)

	v, ok := env.Get("PATH")
	require.True(t, ok)
	assert.Equal(t, `C:\Windows;C:\Tools`, v)

	env.PrependPath("PATH", `c:\tools\`)
	v, _ = env.Get("path")
	assert.Equal(t, `C:\Windows;C:\Tools`, v)

	env.PrependPath("PATH", `C:\msys64\mingw64\bin`)
	assert.Equal(t, []string{`Path=C:\msys64\mingw64\bin;C:\Windows;C:\Tools`}, env.Slice())
}

func TestEnv_Apply(t *testing.T) {
	env := domain.NewEnv([]string{"PATH=/bin"}, linuxHost)

	env.Apply(domain.EnvMutation{Name: "LIBCLANG_PATH", Value: "/usr/lib/llvm-18/lib", Scope: domain.ScopeDurable})
	env.Apply(domain.EnvMutation{Name: "PATH", Value: "/usr/lib/llvm-18/bin", PathLike: true})

	assert.Equal(t, []string{
		"LIBCLANG_PATH=/usr/lib/llvm-18/lib",
		"PATH=/usr/lib/llvm-18/bin:/bin",
	}, env.Slice())
}

func TestEnv_CloneIsIndependent(t *testing.T) {
	env := domain.NewEnv([]string{"A=1"}, linuxHost)
	clone := env.Clone()
	clone.Set("A", "2")
	clone.Set("B", "3")

	v, _ := env.Get("A")
	assert.Equal(t, "1", v)
	_, ok := env.Get("B")
	assert.False(t, ok)
}

func TestEnv_SkipsMalformedEntries(t *testing.T) {
	env := domain.NewEnv([]string{"NOEQUALS", "=hidden", "OK=yes=really"}, linuxHost)
	assert.Equal(t, []string{"OK=yes=really"}, env.Slice())
}
