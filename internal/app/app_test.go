package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toysetup/internal/adapters/telemetry"
	"go.trai.ch/toysetup/internal/app"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/toysetup/internal/core/ports/mocks"
	"go.trai.ch/toysetup/internal/engine/provision"
	"go.uber.org/mock/gomock"
)

var linuxHost = domain.HostProfile{OS: domain.OSLinux, Arch: domain.ArchX8664}

type fixture struct {
	prober     *mocks.MockHostProber
	loader     *mocks.MockConfigLoader
	prompter   *mocks.MockPrompter
	reporter   *mocks.MockReporter
	detector   *mocks.MockToolDetector
	executor   *mocks.MockExecutor
	envStore   *mocks.MockEnvironmentStore
	receipts   *mocks.MockReceiptStore
	logger     *mocks.MockLogger
	openedLibs []string
	app        *app.App
}

func newFixture(t *testing.T, environ []string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		prober:   mocks.NewMockHostProber(ctrl),
		loader:   mocks.NewMockConfigLoader(ctrl),
		prompter: mocks.NewMockPrompter(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
		detector: mocks.NewMockToolDetector(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		envStore: mocks.NewMockEnvironmentStore(ctrl),
		receipts: mocks.NewMockReceiptStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	engine := provision.NewEngine(provision.Adapters{
		Executor:  f.executor,
		Detector:  f.detector,
		Library:   mocks.NewMockLibraryFS(ctrl),
		Pinner:    mocks.NewMockBuildConfigPinner(ctrl),
		Logger:    f.logger,
		Telemetry: telemetry.NewNoOp(),
		Downloaders: func(domain.NetworkConfig) ports.Downloader {
			return mocks.NewMockDownloader(ctrl)
		},
		EnvStores: func(domain.HostProfile, string) ports.EnvironmentStore {
			return f.envStore
		},
		OpenReceipts: func(libDir string) (ports.ReceiptStore, error) {
			f.openedLibs = append(f.openedLibs, libDir)
			return f.receipts, nil
		},
	})

	f.app = app.New(f.prober, f.loader, f.prompter, f.reporter, f.detector, engine, f.logger, telemetry.NewNoOp()).
		WithEnviron(func() []string { return environ })
	return f
}

func TestApp_Provision_ConsentDenied(t *testing.T) {
	f := newFixture(t, nil)
	f.prompter.EXPECT().Confirm(gomock.Any(), app.ConsentMessage).Return(false, nil)

	err := f.app.Provision(context.Background(), app.ProvisionOptions{})
	require.ErrorIs(t, err, domain.ErrConsentDenied)
	assert.Empty(t, f.openedLibs)
}

func TestApp_Provision_ConsentError(t *testing.T) {
	f := newFixture(t, nil)
	f.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(false, context.Canceled)

	err := f.app.Provision(context.Background(), app.ProvisionOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_Provision_UnsupportedPlatform(t *testing.T) {
	f := newFixture(t, nil)
	f.prober.EXPECT().Probe().Return(domain.HostProfile{}, domain.ErrUnsupportedPlatform)

	err := f.app.Provision(context.Background(), app.ProvisionOptions{Yes: true})
	require.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
	assert.Empty(t, f.openedLibs)
}

func TestApp_Provision_ConfigError(t *testing.T) {
	f := newFixture(t, nil)
	root := t.TempDir()
	loadErr := errors.New("yaml: line 3: mapping values are not allowed in this context")

	f.prober.EXPECT().Probe().Return(linuxHost, nil)
	f.loader.EXPECT().Load(filepath.Join(root, "toysetup.yaml")).Return(domain.Config{}, loadErr)

	err := f.app.Provision(context.Background(), app.ProvisionOptions{
		Yes:     true,
		Options: app.Options{Root: root, ConfigPath: "toysetup.yaml"},
	})
	assert.ErrorIs(t, err, loadErr)
}

// converged prepares a Linux machine where every step finds its work done.
func converged(t *testing.T) (root string, environ []string) {
	t.Helper()
	root = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib", string(domain.TripleLinuxGNU)), 0o755))

	cargo := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(cargo, "bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cargo, "bin", "rustup"), []byte("#!/bin/sh\n"), 0o755))
	return root, []string{"CARGO_HOME=" + cargo, "PATH=/usr/bin"}
}

func TestApp_Provision_Converged(t *testing.T) {
	root, environ := converged(t)
	f := newFixture(t, environ)
	cfg := domain.DefaultConfig()

	f.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true, nil)
	f.prober.EXPECT().Probe().Return(linuxHost, nil)
	f.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	f.detector.EXPECT().IsPresent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(3)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.Result{}, nil).Times(2)
	f.envStore.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.receipts.EXPECT().Get(domain.TripleLinuxGNU).Return(&domain.Receipt{
		Triple:     domain.TripleLinuxGNU,
		ArchiveURL: cfg.Support.ArchiveURL(domain.TripleLinuxGNU),
	}, nil)

	gomock.InOrder(
		f.reporter.EXPECT().Summary([]domain.StepReport{
			{Name: provision.StepCompilerToolchain, Status: domain.StepStatusCached},
			{Name: provision.StepToolchainManager, Status: domain.StepStatusCompleted},
			{Name: provision.StepEnvironment, Status: domain.StepStatusCompleted},
			{Name: provision.StepSupportLibrary, Status: domain.StepStatusCached},
		}),
		f.reporter.EXPECT().Completion(linuxHost, cfg.Linux.Profile),
	)

	err := f.app.Provision(context.Background(), app.ProvisionOptions{Options: app.Options{Root: root}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "lib")}, f.openedLibs)
}

func TestApp_Provision_StepFailure(t *testing.T) {
	root, environ := converged(t)
	f := newFixture(t, environ)

	f.prober.EXPECT().Probe().Return(linuxHost, nil)
	f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
	f.detector.EXPECT().IsPresent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(3)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.Result{ExitCode: 1}, nil)
	f.reporter.EXPECT().Summary(gomock.Any()).Do(func(steps []domain.StepReport) {
		assert.Equal(t, domain.StepStatusFailed, steps[1].Status)
		assert.Equal(t, domain.StepStatusPending, steps[2].Status)
	})

	err := f.app.Provision(context.Background(), app.ProvisionOptions{
		Yes:     true,
		Options: app.Options{Root: root},
	})
	require.ErrorIs(t, err, domain.ErrToolchainRegistration)
}

func TestApp_Check(t *testing.T) {
	f := newFixture(t, []string{"PATH=/usr/bin"})
	f.prober.EXPECT().Probe().Return(linuxHost, nil)
	f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
	f.detector.EXPECT().Probe(gomock.Any(), []string{"PATH=/usr/bin"}, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ []string, spec domain.ToolSpec, _ []string) domain.ToolPresence {
			return domain.ToolPresence{Name: spec.Name, Found: spec.Name != "ninja"}
		}).Times(4)
	f.reporter.EXPECT().Presence([]domain.ToolPresence{
		{Name: "clang-18", Found: true},
		{Name: "cmake", Found: true},
		{Name: "ninja", Found: false},
		{Name: "rustup", Found: true},
	})

	err := f.app.Check(context.Background(), app.Options{Root: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, f.openedLibs)
}

func TestApp_Check_Verbose(t *testing.T) {
	f := newFixture(t, nil)
	f.logger.EXPECT().SetLevel(domain.LogLevelDebug)
	f.prober.EXPECT().Probe().Return(domain.HostProfile{}, domain.ErrUnsupportedArchitecture)

	err := f.app.Check(context.Background(), app.Options{Verbose: true})
	assert.ErrorIs(t, err, domain.ErrUnsupportedArchitecture)
}

func TestApp_Check_RepeatableWithoutSideEffects(t *testing.T) {
	f := newFixture(t, []string{"PATH=/usr/bin"})
	root := t.TempDir()
	f.prober.EXPECT().Probe().Return(linuxHost, nil).Times(2)
	f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil).Times(2)
	f.detector.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ []string, spec domain.ToolSpec, _ []string) domain.ToolPresence {
			return domain.ToolPresence{Name: spec.Name, Found: spec.Name == "cmake"}
		}).Times(8)

	var reports [][]domain.ToolPresence
	f.reporter.EXPECT().Presence(gomock.Any()).Do(func(tools []domain.ToolPresence) {
		reports = append(reports, tools)
	}).Times(2)

	require.NoError(t, f.app.Check(context.Background(), app.Options{Root: root}))
	require.NoError(t, f.app.Check(context.Background(), app.Options{Root: root}))

	require.Len(t, reports, 2)
	assert.Equal(t, reports[0], reports[1])
	assert.Empty(t, f.openedLibs)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
