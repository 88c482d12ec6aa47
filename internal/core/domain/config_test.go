package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/toysetup/internal/core/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, 18, cfg.LLVM.Major)
	assert.Equal(t, "nightly", cfg.Rust.Release)
	assert.Equal(t,
		"https://github.com/ToyLang/toy-support/releases/latest/download/x86_64-unknown-linux-gnu.tar.xz",
		cfg.Support.ArchiveURL(domain.TripleLinuxGNU))
	assert.Equal(t, []string{
		"clang-18", "lld-18", "llvm-18-dev", "libclang-18-dev", "libpolly-18-dev",
		"libffi-dev", "zlib1g-dev", "libzstd-dev", "cmake", "ninja-build",
	}, cfg.LLVM.PackageList())
	assert.Equal(t, "/usr/lib/llvm-18", cfg.LLVM.Prefix())
}

func TestConfig_ExportList(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, []domain.EnvVar{
		{Name: "LLVM_SYS_180_PREFIX", Value: "/usr/lib/llvm-18"},
		{Name: "LIBCLANG_PATH", Value: "/usr/lib/llvm-18/lib"},
		{Name: "RUSTFLAGS", Value: "-C link-arg=-fuse-ld=lld"},
	}, cfg.ExportList())

	cfg.Linux.Exports = []domain.EnvVar{{Name: "X", Value: "y"}}
	assert.Equal(t, []domain.EnvVar{{Name: "X", Value: "y"}}, cfg.ExportList())
}

func TestRustConfig_InstallerURL(t *testing.T) {
	cfg := domain.DefaultConfig().Rust
	assert.Equal(t, "https://win.rustup.rs/x86_64", cfg.InstallerURL(windowsHost))
	assert.Equal(t, "https://sh.rustup.rs", cfg.InstallerURL(linuxHost))
}
