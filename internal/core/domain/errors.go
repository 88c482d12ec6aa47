package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedPlatform is returned when the host operating system is neither Windows nor Linux.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrUnsupportedArchitecture is returned when the host CPU is not an x86-64 variant.
	ErrUnsupportedArchitecture = zerr.New("unsupported architecture")

	// ErrConsentDenied is returned when the user declines the provisioning prompt.
	ErrConsentDenied = zerr.New("consent denied")

	// ErrCommandFailed is returned when an external command exits with a status its policy does not tolerate.
	ErrCommandFailed = zerr.New("command failed")

	// ErrToolchainRegistration is returned when rustup cannot install the release or register the target triple.
	ErrToolchainRegistration = zerr.New("toolchain registration failed")

	// ErrExtractFailed is returned when a support-library archive cannot be unpacked.
	ErrExtractFailed = zerr.New("archive extraction failed")

	// ErrUnknownCodename is returned when the Debian/Ubuntu release codename cannot be determined.
	ErrUnknownCodename = zerr.New("unknown distribution codename")

	// ErrDownloadFailed is returned when a remote resource cannot be fetched.
	ErrDownloadFailed = zerr.New("download failed")

	// ErrUnsupportedArchive is returned when an archive has an extension the extractor does not handle.
	ErrUnsupportedArchive = zerr.New("unsupported archive format")
)
