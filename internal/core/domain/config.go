package domain

import (
	"fmt"
	"strings"
	"time"
)

// TriplePlaceholder is substituted with the target triple in URL templates.
const TriplePlaceholder = "{triple}"

// Config holds every tunable of a provisioning run.
type Config struct {
	LLVM    LLVMConfig
	Rust    RustConfig
	Support SupportConfig
	Windows WindowsConfig
	Linux   LinuxConfig
	Network NetworkConfig
}

// LLVMConfig pins the LLVM release installed on Linux.
type LLVMConfig struct {
	Major     int
	AptRepo   string
	AptKeyURL string
	// Packages overrides the apt package list. Empty means DefaultLLVMPackages(Major).
	Packages []string
}

// RustConfig describes the Rust toolchain to register.
type RustConfig struct {
	Release             string
	InstallerURLWindows string
	InstallerURLLinux   string
}

// SupportConfig locates the prebuilt support library.
type SupportConfig struct {
	URLTemplate string
	LibDir      string
	// Misspellings maps a canonical directory name to names it has been published under.
	Misspellings map[TargetTriple][]string
}

// WindowsConfig holds the Windows-only settings.
type WindowsConfig struct {
	MSYS2Root                string
	SettleDelay              time.Duration
	MinGWPackages            []string
	WingetToleratedExitCodes []int
}

// LinuxConfig holds the Linux-only settings.
type LinuxConfig struct {
	Profile string
	// Exports overrides the persisted variables. Empty means DefaultLinuxExports(major).
	Exports []EnvVar
}

// NetworkConfig tunes HTTP downloads.
type NetworkConfig struct {
	InsecureSkipVerify bool
}

// winget exit codes for "already installed" and "no applicable upgrade".
const (
	WingetAlreadyInstalled   = 0x8A150061
	WingetNoApplicableUpdate = 0x8A15002B
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		LLVM: LLVMConfig{
			Major:     18,
			AptRepo:   "http://apt.llvm.org",
			AptKeyURL: "https://apt.llvm.org/llvm-snapshot.gpg.key",
		},
		Rust: RustConfig{
			Release:             "nightly",
			InstallerURLWindows: "https://win.rustup.rs/x86_64",
			InstallerURLLinux:   "https://sh.rustup.rs",
		},
		Support: SupportConfig{
			URLTemplate: "https://github.com/ToyLang/toy-support/releases/latest/download/" +
				TriplePlaceholder + ".tar.xz",
			LibDir: "lib",
			Misspellings: map[TargetTriple][]string{
				TripleLinuxGNU: {"x86_64-unkown-linux-gnu"},
			},
		},
		Windows: WindowsConfig{
			MSYS2Root:   `C:\msys64`,
			SettleDelay: 5 * time.Second,
			MinGWPackages: []string{
				"mingw-w64-x86_64-toolchain",
				"mingw-w64-x86_64-clang",
				"mingw-w64-x86_64-lld",
				"mingw-w64-x86_64-llvm",
				"mingw-w64-x86_64-libffi",
				"mingw-w64-x86_64-zlib",
				"mingw-w64-x86_64-zstd",
				"mingw-w64-x86_64-cmake",
				"mingw-w64-x86_64-ninja",
			},
			WingetToleratedExitCodes: []int{WingetAlreadyInstalled, WingetNoApplicableUpdate},
		},
		Linux: LinuxConfig{
			Profile: "~/.bashrc",
		},
	}
}

// DefaultLLVMPackages is the apt package list for an LLVM major release.
func DefaultLLVMPackages(major int) []string {
	return []string{
		fmt.Sprintf("clang-%d", major),
		fmt.Sprintf("lld-%d", major),
		fmt.Sprintf("llvm-%d-dev", major),
		fmt.Sprintf("libclang-%d-dev", major),
		fmt.Sprintf("libpolly-%d-dev", major),
		"libffi-dev",
		"zlib1g-dev",
		"libzstd-dev",
		"cmake",
		"ninja-build",
	}
}

// PackageList returns the configured apt packages or the defaults for Major.
func (c LLVMConfig) PackageList() []string {
	if len(c.Packages) > 0 {
		return c.Packages
	}
	return DefaultLLVMPackages(c.Major)
}

// Prefix is the installation prefix of the LLVM release on Debian systems.
func (c LLVMConfig) Prefix() string {
	return fmt.Sprintf("/usr/lib/llvm-%d", c.Major)
}

// DefaultLinuxExports are the variables the compiler build needs on Linux.
func DefaultLinuxExports(major int) []EnvVar {
	prefix := fmt.Sprintf("/usr/lib/llvm-%d", major)
	return []EnvVar{
		{Name: fmt.Sprintf("LLVM_SYS_%d0_PREFIX", major), Value: prefix},
		{Name: "LIBCLANG_PATH", Value: prefix + "/lib"},
		{Name: "RUSTFLAGS", Value: "-C link-arg=-fuse-ld=lld"},
	}
}

// ExportList returns the configured exports or the defaults for the LLVM major.
func (c Config) ExportList() []EnvVar {
	if len(c.Linux.Exports) > 0 {
		return c.Linux.Exports
	}
	return DefaultLinuxExports(c.LLVM.Major)
}

// ArchiveURL expands the support-library URL template for a triple.
func (c SupportConfig) ArchiveURL(t TargetTriple) string {
	return strings.ReplaceAll(c.URLTemplate, TriplePlaceholder, string(t))
}

// InstallerURL returns the rustup installer location for a host.
func (c RustConfig) InstallerURL(h HostProfile) string {
	if h.IsWindows() {
		return c.InstallerURLWindows
	}
	return c.InstallerURLLinux
}
