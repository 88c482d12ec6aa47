package provision

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// stagingPrefix names the directory under the library dir an archive is unpacked
// into before it replaces the installed tree.
const stagingPrefix = ".staging-"

// Fetcher installs the prebuilt support library for a target triple.
type Fetcher struct {
	downloader ports.Downloader
	library    ports.LibraryFS
	receipts   ports.ReceiptStore
	logger     ports.Logger
	cfg        domain.SupportConfig
	libDir     string
	now        func() time.Time
}

// NewFetcher creates a Fetcher that installs into libDir.
func NewFetcher(deps Deps, cfg domain.SupportConfig, libDir string) *Fetcher {
	return &Fetcher{
		downloader: deps.Downloader,
		library:    deps.Library,
		receipts:   deps.Receipts,
		logger:     deps.Logger,
		cfg:        cfg,
		libDir:     libDir,
		now:        time.Now,
	}
}

// Fetch downloads the archive for triple, extracts and normalizes it in a
// staging directory, swaps the result in over any previous install, removes the
// archive and records a receipt. When a receipt for the same URL exists and the
// extracted directory is still there, nothing is downloaded and the artifact is
// returned with Cached set.
func (f *Fetcher) Fetch(ctx context.Context, triple domain.TargetTriple) (domain.LibraryArtifact, error) {
	archiveURL := f.cfg.ArchiveURL(triple)
	artifact := domain.LibraryArtifact{
		Triple:       triple,
		ArchiveURL:   archiveURL,
		ExtractedDir: filepath.Join(f.libDir, string(triple)),
	}

	if err := os.MkdirAll(f.libDir, 0o750); err != nil {
		return artifact, zerr.With(zerr.Wrap(err, "failed to create library directory"), "path", f.libDir)
	}

	receipt, err := f.receipts.Get(triple)
	if err != nil {
		return artifact, zerr.Wrap(err, "failed to read receipt")
	}
	if receipt != nil && receipt.ArchiveURL == archiveURL && dirExists(artifact.ExtractedDir) {
		f.logger.Info("support library for " + string(triple) + " already installed")
		artifact.Digest = receipt.Digest
		artifact.Cached = true
		return artifact, nil
	}

	name, err := archiveName(archiveURL)
	if err != nil {
		return artifact, err
	}
	artifact.ArchivePath = filepath.Join(f.libDir, name)

	f.logger.Info("downloading " + archiveURL)
	digest, err := f.downloader.Download(ctx, archiveURL, artifact.ArchivePath)
	if err != nil {
		return artifact, err
	}
	artifact.Digest = digest

	staging := filepath.Join(f.libDir, stagingPrefix+string(triple))
	if err := os.RemoveAll(staging); err != nil {
		return artifact, zerr.With(zerr.Wrap(err, "failed to clear staging directory"), "path", staging)
	}
	if err := f.library.Extract(ctx, artifact.ArchivePath, staging); err != nil {
		return artifact, err
	}

	aliases := f.cfg.Misspellings[triple]
	renamed, err := f.library.Normalize(staging, string(triple), aliases)
	if err != nil {
		return artifact, err
	}
	if renamed {
		f.logger.Info("renamed misspelled support library directory to " + string(triple))
	}

	promoted, err := f.library.Promote(staging, f.libDir)
	if err != nil {
		return artifact, err
	}
	for _, p := range promoted {
		f.logger.Debug("installed " + p)
	}

	for _, alias := range aliases {
		stale := filepath.Join(f.libDir, alias)
		if alias == "" || alias == string(triple) || !dirExists(stale) {
			continue
		}
		if err := os.RemoveAll(stale); err != nil {
			return artifact, zerr.With(zerr.Wrap(err, "failed to remove misspelled directory"), "path", stale)
		}
		f.logger.Info("removed stale " + alias)
	}

	removed, err := f.library.RemoveArchives(f.libDir)
	if err != nil {
		return artifact, err
	}
	for _, p := range removed {
		f.logger.Debug("removed " + p)
	}

	err = f.receipts.Put(domain.Receipt{
		Triple:      triple,
		ArchiveURL:  archiveURL,
		Digest:      digest,
		InstalledAt: f.now().UTC(),
	})
	if err != nil {
		return artifact, zerr.Wrap(err, "failed to record receipt")
	}
	return artifact, nil
}

func archiveName(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid archive url"), "url", raw)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return "", zerr.With(zerr.New("archive url has no file name"), "url", raw)
	}
	return name, nil
}

// FetchArtifact installs the support library for the host triple.
func (r *runner) FetchArtifact(ctx context.Context) (bool, error) {
	artifact, err := NewFetcher(r.Deps, r.cfg.Support, LibDir(r.cfg, r.root)).Fetch(ctx, r.host.Triple())
	if err != nil {
		return false, err
	}
	return artifact.Cached, nil
}
