package provision

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	aptKeyPath    = "/etc/apt/trusted.gpg.d/apt.llvm.org.asc"
	aptSourcesDir = "/etc/apt/sources.list.d"
)

func (s *linuxStrategy) installLLVM(ctx context.Context) error {
	codename, err := readCodename(s.osRelease)
	if err != nil {
		return err
	}
	s.Logger.Info("installing LLVM " + fmt.Sprint(s.cfg.LLVM.Major) + " for " + codename)

	if err := s.privileged(ctx, "apt-get", "update"); err != nil {
		return err
	}
	if err := s.registerRepository(ctx, codename); err != nil {
		return err
	}
	if err := s.privileged(ctx, "apt-get", "update"); err != nil {
		return err
	}
	args := append([]string{"install", "-y"}, s.cfg.LLVM.PackageList()...)
	return s.privileged(ctx, "apt-get", args...)
}

// privileged runs a command as root, through sudo unless the process already is root.
func (s *linuxStrategy) privileged(ctx context.Context, name string, args ...string) error {
	if s.euid() != 0 {
		args = append([]string{name}, args...)
		name = "sudo"
	}
	return s.run(ctx, name, args...)
}

// registerRepository installs the signing key and the sources entry of the LLVM
// apt repository. Both files are staged in a temporary directory and moved into
// place with install(1).
func (s *linuxStrategy) registerRepository(ctx context.Context, codename string) error {
	tmp, err := os.MkdirTemp("", "toysetup-apt-")
	if err != nil {
		return zerr.Wrap(err, "failed to create staging directory")
	}
	defer func() {
		if rmErr := os.RemoveAll(tmp); rmErr != nil {
			s.Logger.Warn("failed to remove staging directory: " + rmErr.Error())
		}
	}()

	key := filepath.Join(tmp, filepath.Base(aptKeyPath))
	if _, err := s.Downloader.Download(ctx, s.cfg.LLVM.AptKeyURL, key); err != nil {
		return err
	}
	if err := s.privileged(ctx, "install", "-D", "-m", "0644", key, aptKeyPath); err != nil {
		return err
	}

	major := s.cfg.LLVM.Major
	name := SourcesFile(codename, major)
	list := filepath.Join(tmp, name)
	entry := SourcesEntry(s.cfg.LLVM.AptRepo, codename, major) + "\n"
	if err := os.WriteFile(list, []byte(entry), 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write sources entry"), "path", list)
	}
	return s.privileged(ctx, "install", "-D", "-m", "0644", list, filepath.Join(aptSourcesDir, name))
}

// SourcesEntry is the apt sources line of the LLVM repository for a release.
func SourcesEntry(repo, codename string, major int) string {
	return fmt.Sprintf("deb %s/%s/ llvm-toolchain-%s-%d main", repo, codename, codename, major)
}

// SourcesFile is the name of the sources list file for a release.
func SourcesFile(codename string, major int) string {
	return fmt.Sprintf("llvm-toolchain-%s-%d.list", codename, major)
}

// readCodename returns VERSION_CODENAME from an os-release file, falling back to
// UBUNTU_CODENAME.
func readCodename(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // fixed system path
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrUnknownCodename, err), "path", path)
	}
	defer func() { _ = f.Close() }()

	fields := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, raw, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		words, err := shellquote.Split(raw)
		if err != nil || len(words) == 0 {
			continue
		}
		fields[key] = strings.Join(words, " ")
	}
	if err := scanner.Err(); err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrUnknownCodename, err), "path", path)
	}

	for _, key := range []string{"VERSION_CODENAME", "UBUNTU_CODENAME"} {
		if v := fields[key]; v != "" {
			return v, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrUnknownCodename, "os-release names no codename"), "path", path)
}
