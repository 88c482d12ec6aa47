package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Normalize renames the first alias directory found under dir to canonical.
//
// Nothing happens when canonical already exists or no alias is present.
func (l *Library) Normalize(dir, canonical string, aliases []string) (bool, error) {
	canonicalPath := filepath.Join(dir, canonical)
	if _, err := os.Stat(canonicalPath); err == nil {
		return false, nil
	}

	for _, alias := range aliases {
		if alias == "" || alias == canonical {
			continue
		}
		aliasPath := filepath.Join(dir, alias)
		info, err := os.Stat(aliasPath)
		if errors.Is(err, iofs.ErrNotExist) {
			continue
		}
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to inspect directory"), "path", aliasPath)
		}
		if !info.IsDir() {
			continue
		}
		if err := os.Rename(aliasPath, canonicalPath); err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to rename directory"), "from", aliasPath)
		}
		return true, nil
	}
	return false, nil
}

// Promote moves every top-level entry of staging into dir and removes staging.
// An entry already present in dir under the same name is replaced as a whole.
func (l *Library) Promote(staging, dir string) ([]string, error) {
	entries, err := os.ReadDir(staging)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list staging directory"), "path", staging)
	}

	promoted := make([]string, 0, len(entries))
	for _, entry := range entries {
		from := filepath.Join(staging, entry.Name())
		to := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(to); err != nil {
			return promoted, zerr.With(zerr.Wrap(err, "failed to remove previous install"), "path", to)
		}
		if err := os.Rename(from, to); err != nil {
			return promoted, zerr.With(zerr.Wrap(err, "failed to move into place"), "from", from)
		}
		promoted = append(promoted, to)
	}

	if err := os.RemoveAll(staging); err != nil {
		return promoted, zerr.With(zerr.Wrap(err, "failed to remove staging directory"), "path", staging)
	}
	return promoted, nil
}

// RemoveArchives deletes the archive files directly under dir.
func (l *Library) RemoveArchives(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to list library directory"), "path", dir)
	}

	var removed []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !isArchive(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return removed, zerr.With(zerr.Wrap(err, "failed to remove archive"), "path", path)
		}
		removed = append(removed, path)
	}
	return removed, nil
}

func isArchive(name string) bool {
	name = strings.ToLower(name)
	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
