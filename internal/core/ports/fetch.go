package ports

import (
	"context"

	"go.trai.ch/toysetup/internal/core/domain"
)

// Downloader fetches remote resources.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetch.go -destination=mocks/mock_fetch.go -package=mocks
type Downloader interface {
	// Download streams url into dest and returns the hex xxhash64 digest of the body.
	Download(ctx context.Context, url, dest string) (string, error)
}

// DownloaderFactory builds a Downloader for the network settings of a run.
type DownloaderFactory func(cfg domain.NetworkConfig) Downloader

// LibraryFS performs the filesystem side of installing a support library.
type LibraryFS interface {
	// Extract unpacks archive into dest, refusing entries that would escape it.
	Extract(ctx context.Context, archive, dest string) error
	// Normalize renames the first existing alias directory under dir to canonical.
	// It reports whether a rename happened. Missing aliases and an existing canonical
	// directory are not errors.
	Normalize(dir, canonical string, aliases []string) (bool, error)
	// Promote moves every top-level entry of staging into dir, replacing entries of
	// the same name, removes staging and returns the promoted paths.
	Promote(staging, dir string) ([]string, error)
	// RemoveArchives deletes every archive file directly under dir and returns their paths.
	RemoveArchives(dir string) ([]string, error)
}
