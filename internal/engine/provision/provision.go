// Package provision implements the toolchain provisioning pipeline.
//
// A run is a fixed, host-specific sequence of steps. Every step detects whether its
// work is already done before it changes anything, so an interrupted run can simply
// be started again.
package provision

import (
	"context"
	"time"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
)

// Deps are the collaborators a run talks to.
type Deps struct {
	Executor   ports.Executor
	Detector   ports.ToolDetector
	Downloader ports.Downloader
	Library    ports.LibraryFS
	EnvStore   ports.EnvironmentStore
	Receipts   ports.ReceiptStore
	Pinner     ports.BuildConfigPinner
	Logger     ports.Logger
}

// runner holds what the steps of one run share.
type runner struct {
	Deps

	host domain.HostProfile
	cfg  domain.Config
	root string
	env  *domain.Env

	sleep func(ctx context.Context, d time.Duration) error
}

func newRunner(host domain.HostProfile, deps Deps, cfg domain.Config, root string, env *domain.Env) *runner {
	return &runner{
		Deps:  deps,
		host:  host,
		cfg:   cfg,
		root:  root,
		env:   env,
		sleep: sleep,
	}
}

// Env returns the environment the run composes for its commands.
func (r *runner) Env() *domain.Env {
	return r.env
}

func (r *runner) present(ctx context.Context, spec domain.ToolSpec, extraDirs ...string) bool {
	return r.Detector.IsPresent(ctx, r.env.Slice(), spec, extraDirs)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
