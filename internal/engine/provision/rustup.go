package provision

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/mitchellh/go-homedir"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnsureToolchainManager installs rustup when it is missing from the cargo home and
// then, on every run, installs the configured release and adds the host target.
func (r *runner) EnsureToolchainManager(ctx context.Context) (bool, error) {
	bin, err := r.cargoBin()
	if err != nil {
		return false, registrationErr(err)
	}
	rustup := filepath.Join(bin, r.exe("rustup"))

	if fileExists(rustup) {
		r.Logger.Info("rustup already installed at " + rustup)
	} else if err := r.installRustup(ctx); err != nil {
		return false, registrationErr(err)
	}

	r.env.PrependPath(domain.PathVar, bin)

	release := r.cfg.Rust.Release
	triple := string(r.host.Triple())
	if err := r.run(ctx, rustup, "toolchain", "install", release, "--profile", "minimal"); err != nil {
		return false, registrationErr(err)
	}
	if err := r.run(ctx, rustup, "target", "add", triple, "--toolchain", release); err != nil {
		return false, registrationErr(err)
	}
	return false, nil
}

// cargoBin locates the directory rustup installs its proxies into.
func (r *runner) cargoBin() (string, error) {
	if home, ok := r.env.Get("CARGO_HOME"); ok && home != "" {
		return filepath.Join(home, "bin"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to locate home directory")
	}
	return filepath.Join(home, ".cargo", "bin"), nil
}

func (r *runner) installRustup(ctx context.Context) error {
	tmp, err := os.MkdirTemp("", "toysetup-rustup-")
	if err != nil {
		return zerr.Wrap(err, "failed to create installer directory")
	}
	defer func() {
		if rmErr := os.RemoveAll(tmp); rmErr != nil {
			r.Logger.Warn("failed to remove rustup installer: " + rmErr.Error())
		}
	}()

	name := "rustup-init.sh"
	if r.host.IsWindows() {
		name = "rustup-init.exe"
	}
	installer := filepath.Join(tmp, name)
	url := r.cfg.Rust.InstallerURL(r.host)

	r.Logger.Info("downloading rustup installer from " + url)
	if _, err := r.Downloader.Download(ctx, url, installer); err != nil {
		return err
	}

	args := []string{"-y", "--default-host", string(r.host.Triple())}
	if r.host.IsWindows() {
		return r.run(ctx, installer, args...)
	}
	return r.run(ctx, "sh", append([]string{installer}, args...)...)
}

func (r *runner) exe(name string) string {
	if r.host.IsWindows() {
		return name + ".exe"
	}
	return name
}

// registrationErr marks err as a registration failure. The metadata of the first
// zerr in the chain is copied up so that it survives the join.
func registrationErr(err error) error {
	wrapped := zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrToolchainRegistration, err), "rust toolchain setup failed")
	var cause *zerr.Error
	if errors.As(err, &cause) {
		meta := cause.Metadata()
		for _, k := range slices.Sorted(maps.Keys(meta)) {
			wrapped = zerr.With(wrapped, k, meta[k])
		}
	}
	return wrapped
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
