// Package detector decides whether external tools are installed and responsive.
package detector

import (
	"context"
	"os"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/toysetup/internal/adapters/shell"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"golang.org/x/mod/semver"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Detector implements ports.ToolDetector.
type Detector struct {
	executor ports.Executor
	logger   ports.Logger
}

// New creates a Detector that runs version probes through executor.
func New(executor ports.Executor, logger ports.Logger) *Detector {
	return &Detector{executor: executor, logger: logger}
}

// Probe resolves spec on extraDirs followed by the PATH of env and, unless the tool
// is presence-only, checks that the tool answers its version probe with every marker.
func (d *Detector) Probe(
	ctx context.Context,
	env []string,
	spec domain.ToolSpec,
	extraDirs []string,
) domain.ToolPresence {
	if env == nil {
		env = os.Environ()
	}
	presence := domain.ToolPresence{Name: spec.Name, SearchDirs: extraDirs}

	dirs := append(slices.Clone(extraDirs), shell.PathDirs(env)...)
	path, err := shell.LookPath(spec.Name, dirs)
	if err != nil {
		d.logger.Debug(spec.Name + " not found")
		return presence
	}
	presence.Path = path

	if spec.PresenceOnly {
		presence.Found = true
		return presence
	}

	res, err := d.executor.Run(ctx, domain.Command{
		Name:    path,
		Args:    spec.Args(),
		Env:     env,
		Capture: true,
	})
	if err != nil || res.ExitCode != 0 {
		d.logger.Debug(spec.Name + " did not answer its version probe")
		return presence
	}

	output := strings.ToLower(res.Output)
	for _, marker := range spec.Markers {
		if !strings.Contains(output, strings.ToLower(marker)) {
			d.logger.Debug(spec.Name + " output lacks marker " + marker)
			return presence
		}
	}

	presence.Version = versionPattern.FindString(res.Output)
	if spec.MinVersion != "" && !atLeast(presence.Version, spec.MinVersion) {
		d.logger.Debug(spec.Name + " " + presence.Version + " is older than " + spec.MinVersion)
		return presence
	}

	presence.Found = true
	return presence
}

// IsPresent reports whether Probe finds the tool.
func (d *Detector) IsPresent(ctx context.Context, env []string, spec domain.ToolSpec, extraDirs []string) bool {
	return d.Probe(ctx, env, spec, extraDirs).Found
}

func atLeast(version, floor string) bool {
	if version == "" {
		return false
	}
	v := "v" + strings.TrimPrefix(version, "v")
	f := "v" + strings.TrimPrefix(floor, "v")
	if !semver.IsValid(v) || !semver.IsValid(f) {
		return false
	}
	return semver.Compare(v, f) >= 0
}
