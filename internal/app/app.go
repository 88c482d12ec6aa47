// Package app implements the application layer for toysetup.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/toysetup/internal/engine/provision"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ConsentMessage is shown before anything is installed.
const ConsentMessage = "This wizard installs the ToyLang build dependencies. " +
	"It needs network access and write access to your system."

// Options are the settings shared by all commands.
type Options struct {
	// Root is the ToyLang checkout. Empty means the working directory.
	Root string
	// ConfigPath is the setup file, resolved against Root when relative.
	ConfigPath string
	// Verbose enables debug logging.
	Verbose bool
}

// ProvisionOptions configures a provisioning run.
type ProvisionOptions struct {
	Options
	// Yes skips the consent prompt.
	Yes bool
}

// App represents the main application logic.
type App struct {
	prober    ports.HostProber
	loader    ports.ConfigLoader
	prompter  ports.Prompter
	reporter  ports.Reporter
	detector  ports.ToolDetector
	engine    *provision.Engine
	logger    ports.Logger
	telemetry ports.Telemetry
	environ   func() []string
}

// New creates a new App instance.
func New(
	prober ports.HostProber,
	loader ports.ConfigLoader,
	prompter ports.Prompter,
	reporter ports.Reporter,
	detector ports.ToolDetector,
	engine *provision.Engine,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		prober:    prober,
		loader:    loader,
		prompter:  prompter,
		reporter:  reporter,
		detector:  detector,
		engine:    engine,
		logger:    logger,
		telemetry: telemetry,
		environ:   os.Environ,
	}
}

// WithEnviron replaces the source of the environment snapshot a run starts from.
func (a *App) WithEnviron(environ func() []string) *App {
	a.environ = environ
	return a
}

// Provision asks for consent and then runs the provisioning pipeline for the host.
func (a *App) Provision(ctx context.Context, opts ProvisionOptions) error {
	a.applyVerbosity(opts.Options)

	if !opts.Yes {
		ok, err := a.prompter.Confirm(ctx, ConsentMessage)
		if err != nil {
			return zerr.Wrap(err, "failed to read consent")
		}
		if !ok {
			return domain.ErrConsentDenied
		}
	}

	host, cfg, root, err := a.prepare(opts.Options)
	if err != nil {
		return err
	}

	pipeline, err := a.engine.Pipeline(host, cfg, root, a.environ())
	if err != nil {
		return zerr.Wrap(err, "failed to assemble provisioning pipeline")
	}

	reports, runErr := pipeline.Run(ctx)
	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn("failed to close telemetry: " + err.Error())
	}
	a.reporter.Summary(reports)
	if runErr != nil {
		return runErr
	}

	a.reporter.Completion(host, cfg.Linux.Profile)
	return nil
}

// Check reports which of the host's build tools are installed. It changes nothing.
func (a *App) Check(ctx context.Context, opts Options) error {
	a.applyVerbosity(opts)

	host, cfg, root, err := a.prepare(opts)
	if err != nil {
		return err
	}

	environ := a.environ()
	checks, err := a.engine.Checks(host, cfg, root, environ)
	if err != nil {
		return err
	}

	results := make([]domain.ToolPresence, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, check := range checks {
		g.Go(func() error {
			presence := a.detector.Probe(gctx, environ, check.Spec, check.ExtraDirs)
			presence.Name = check.Label
			results[i] = presence
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	a.reporter.Presence(results)
	return ctx.Err()
}

// prepare probes the host, resolves the project root and loads the configuration.
func (a *App) prepare(opts Options) (domain.HostProfile, domain.Config, string, error) {
	host, err := a.prober.Probe()
	if err != nil {
		return domain.HostProfile{}, domain.Config{}, "", err
	}
	a.logger.Info(fmt.Sprintf("host detected as %s with a %s cpu", host.OS, host.Arch))

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return host, domain.Config{}, "", zerr.With(zerr.Wrap(err, "failed to resolve project root"), "root", opts.Root)
	}

	path := opts.ConfigPath
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	cfg, err := a.loader.Load(path)
	if err != nil {
		return host, cfg, root, zerr.Wrap(err, "failed to load configuration")
	}
	return host, cfg, root, nil
}

func (a *App) applyVerbosity(opts Options) {
	if opts.Verbose {
		a.logger.SetLevel(domain.LogLevelDebug)
	}
}
