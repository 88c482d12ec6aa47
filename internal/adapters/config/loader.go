// Package config provides the configuration loader for toysetup.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "toysetup.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads path and merges it over domain.DefaultConfig.
// A missing file is not an error and yields the defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	if path == "" {
		path = DefaultFilename
	}

	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Debug("no configuration file at " + path + ", using defaults")
	case err != nil:
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		var file Setupfile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
		if err := merge(&cfg, &file); err != nil {
			return domain.Config{}, zerr.With(err, "path", path)
		}
	}

	if err := expandPaths(&cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func merge(cfg *domain.Config, f *Setupfile) error {
	if f.LLVM != nil {
		if f.LLVM.Major != nil {
			if *f.LLVM.Major <= 0 {
				return zerr.With(zerr.New("llvm.major must be positive"), "major", *f.LLVM.Major)
			}
			cfg.LLVM.Major = *f.LLVM.Major
		}
		setString(&cfg.LLVM.AptRepo, strings.TrimRight(f.LLVM.AptRepo, "/"))
		setString(&cfg.LLVM.AptKeyURL, f.LLVM.AptKeyURL)
		if len(f.LLVM.Packages) > 0 {
			cfg.LLVM.Packages = f.LLVM.Packages
		}
	}

	if f.Rust != nil {
		setString(&cfg.Rust.Release, f.Rust.Release)
		if f.Rust.InstallerURL != nil {
			setString(&cfg.Rust.InstallerURLWindows, f.Rust.InstallerURL.Windows)
			setString(&cfg.Rust.InstallerURLLinux, f.Rust.InstallerURL.Linux)
		}
	}

	if f.Support != nil {
		if f.Support.URLTemplate != "" {
			if !strings.Contains(f.Support.URLTemplate, domain.TriplePlaceholder) {
				return zerr.With(
					zerr.New("support.urlTemplate must contain "+domain.TriplePlaceholder),
					"url_template", f.Support.URLTemplate,
				)
			}
			cfg.Support.URLTemplate = f.Support.URLTemplate
		}
		setString(&cfg.Support.LibDir, f.Support.LibDir)
		for canonical, aliases := range f.Support.Misspellings {
			cfg.Support.Misspellings[domain.TargetTriple(canonical)] = aliases
		}
	}

	if f.Windows != nil {
		setString(&cfg.Windows.MSYS2Root, f.Windows.MSYS2Root)
		if f.Windows.SettleDelay != "" {
			d, err := time.ParseDuration(f.Windows.SettleDelay)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "invalid windows.settleDelay"), "value", f.Windows.SettleDelay)
			}
			cfg.Windows.SettleDelay = d
		}
		if len(f.Windows.MinGWPackages) > 0 {
			cfg.Windows.MinGWPackages = f.Windows.MinGWPackages
		}
		if len(f.Windows.WingetToleratedExitCodes) > 0 {
			cfg.Windows.WingetToleratedExitCodes = f.Windows.WingetToleratedExitCodes
		}
	}

	if f.Linux != nil {
		setString(&cfg.Linux.Profile, f.Linux.Profile)
		for _, e := range f.Linux.Exports {
			if e.Name == "" {
				return zerr.New("linux.exports entries need a name")
			}
			cfg.Linux.Exports = append(cfg.Linux.Exports, domain.EnvVar{Name: e.Name, Value: e.Value})
		}
	}

	if f.Network != nil {
		cfg.Network.InsecureSkipVerify = f.Network.InsecureSkipVerify
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func expandPaths(cfg *domain.Config) error {
	profile, err := homedir.Expand(cfg.Linux.Profile)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to expand profile path"), "profile", cfg.Linux.Profile)
	}
	cfg.Linux.Profile = profile

	libDir, err := homedir.Expand(cfg.Support.LibDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to expand library directory"), "lib_dir", cfg.Support.LibDir)
	}
	cfg.Support.LibDir = libDir
	return nil
}
