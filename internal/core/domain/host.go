package domain

import "strings"

// OS identifies a supported host operating system.
type OS string

const (
	// OSWindows is the Windows host.
	OSWindows OS = "windows"
	// OSLinux is a Debian-family Linux host.
	OSLinux OS = "linux"
)

// Arch identifies a normalized CPU architecture.
type Arch string

// ArchX8664 is the only architecture toysetup provisions for.
const ArchX8664 Arch = "x86_64"

// HostProfile describes the machine being provisioned. It is immutable once probed.
type HostProfile struct {
	OS   OS
	Arch Arch
}

// Triple returns the Rust target triple matching the host.
func (h HostProfile) Triple() TargetTriple {
	if h.OS == OSWindows {
		return TripleWindowsGNU
	}
	return TripleLinuxGNU
}

// IsWindows reports whether the host runs Windows.
func (h HostProfile) IsWindows() bool {
	return h.OS == OSWindows
}

// NormalizeArch maps the common spellings of x86-64 onto ArchX8664.
func NormalizeArch(raw string) (Arch, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "amd64", "x86_64", "x86-64", "x64":
		return ArchX8664, true
	default:
		return "", false
	}
}

// NormalizeOS maps a GOOS-style name onto a supported OS.
func NormalizeOS(raw string) (OS, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "windows":
		return OSWindows, true
	case "linux":
		return OSLinux, true
	default:
		return "", false
	}
}
