// Package fs installs support-library archives on the local file system.
package fs

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LibraryFS = (*Library)(nil)

// archiveSuffixes are the file extensions RemoveArchives deletes.
var archiveSuffixes = []string{".tar.xz", ".txz", ".tar.gz", ".tgz", ".zip"}

// Library implements ports.LibraryFS.
type Library struct{}

// NewLibrary creates a new Library.
func NewLibrary() *Library {
	return &Library{}
}

// Extract unpacks archive into dest based on its extension.
func (l *Library) Extract(ctx context.Context, archive, dest string) error {
	if err := os.MkdirAll(dest, 0o750); err != nil {
		return extractErr(err, "failed to create destination", archive)
	}

	name := strings.ToLower(archive)
	switch {
	case strings.HasSuffix(name, ".tar.xz") || strings.HasSuffix(name, ".txz"):
		return l.extractTar(ctx, archive, dest, func(r io.Reader) (io.Reader, error) {
			return xz.NewReader(r)
		})
	case strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz"):
		return l.extractTar(ctx, archive, dest, func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		})
	case strings.HasSuffix(name, ".zip"):
		return l.extractZip(ctx, archive, dest)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedArchive, "cannot extract archive"), "archive", archive)
	}
}

func (l *Library) extractTar(
	ctx context.Context,
	archive, dest string,
	decompress func(io.Reader) (io.Reader, error),
) error {
	f, err := os.Open(archive) //nolint:gosec // archive path is chosen by the fetcher
	if err != nil {
		return extractErr(err, "failed to open archive", archive)
	}
	defer f.Close() //nolint:errcheck // read-only

	r, err := decompress(f)
	if err != nil {
		return extractErr(err, "failed to decompress archive", archive)
	}

	tr := tar.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "extraction interrupted")
		}

		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return extractErr(err, "failed to read tar entry", archive)
		}

		target, err := safeJoin(dest, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o750); err != nil {
				return extractErr(err, "failed to create directory", target)
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := symlink(dest, target, hdr.Linkname); err != nil {
				return err
			}
		case tar.TypeLink:
			source, err := safeJoin(dest, hdr.Linkname)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
				return extractErr(err, "failed to create directory", target)
			}
			if err := clearEntry(target); err != nil {
				return err
			}
			if err := os.Link(source, target); err != nil {
				return extractErr(err, "failed to create hard link", target)
			}
		default:
			// Devices, fifos and pax metadata have no place in a library tree.
		}
	}
}

func (l *Library) extractZip(ctx context.Context, archive, dest string) error {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return extractErr(err, "failed to open archive", archive)
	}
	defer zr.Close() //nolint:errcheck // read-only

	for _, entry := range zr.File {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "extraction interrupted")
		}

		target, err := safeJoin(dest, entry.Name)
		if err != nil {
			return err
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o750); err != nil {
				return extractErr(err, "failed to create directory", target)
			}
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return extractErr(err, "failed to open zip entry", entry.Name)
		}
		err = writeFile(target, rc, entry.Mode())
		_ = rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return extractErr(err, "failed to create directory", target)
	}

	if err := clearEntry(target); err != nil {
		return err
	}

	perm := mode.Perm() | 0o600
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) //nolint:gosec // target is checked by safeJoin
	if err != nil {
		return extractErr(err, "failed to create file", target)
	}
	if _, err := io.Copy(out, r); err != nil { //nolint:gosec // archives come from the configured release location
		_ = out.Close()
		return extractErr(err, "failed to write file", target)
	}
	if err := out.Close(); err != nil {
		return extractErr(err, "failed to close file", target)
	}
	return nil
}

func symlink(dest, target, linkname string) error {
	resolved := linkname
	if !filepath.IsAbs(linkname) {
		resolved = filepath.Join(filepath.Dir(target), linkname)
	}
	if !within(dest, resolved) {
		return zerr.With(
			zerr.Wrap(domain.ErrExtractFailed, "symlink escapes destination"),
			"link", linkname,
		)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return extractErr(err, "failed to create directory", target)
	}
	if err := clearEntry(target); err != nil {
		return err
	}
	if err := os.Symlink(linkname, target); err != nil {
		return extractErr(err, "failed to create symlink", target)
	}
	return nil
}

// clearEntry removes a file or link left at target by an earlier extraction.
// Directories are kept.
func clearEntry(target string) error {
	info, err := os.Lstat(target)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return extractErr(err, "failed to inspect entry", target)
	}
	if info.IsDir() {
		return nil
	}
	if err := os.Remove(target); err != nil {
		return extractErr(err, "failed to replace entry", target)
	}
	return nil
}

// safeJoin resolves an archive entry name under dest and rejects path traversal.
func safeJoin(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if !within(dest, target) {
		return "", zerr.With(
			zerr.Wrap(domain.ErrExtractFailed, "archive entry escapes destination"),
			"entry", name,
		)
	}
	return target, nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func extractErr(err error, msg, path string) error {
	return zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrExtractFailed, err), msg), "path", path)
}
