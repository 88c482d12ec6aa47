package provision

import (
	"path/filepath"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
)

// Adapters are the long-lived collaborators an Engine builds runs from.
type Adapters struct {
	Executor     ports.Executor
	Detector     ports.ToolDetector
	Library      ports.LibraryFS
	Pinner       ports.BuildConfigPinner
	Logger       ports.Logger
	Telemetry    ports.Telemetry
	Downloaders  ports.DownloaderFactory
	EnvStores    ports.EnvironmentStoreFactory
	OpenReceipts func(libDir string) (ports.ReceiptStore, error)
}

// Engine builds provisioning runs for a probed host and a loaded configuration.
type Engine struct {
	adapters Adapters
}

// NewEngine creates an Engine.
func NewEngine(adapters Adapters) *Engine {
	return &Engine{adapters: adapters}
}

// Pipeline assembles the provisioning pipeline for host.
func (e *Engine) Pipeline(host domain.HostProfile, cfg domain.Config, root string, environ []string) (*Pipeline, error) {
	receipts, err := e.adapters.OpenReceipts(LibDir(cfg, root))
	if err != nil {
		return nil, err
	}
	deps := Deps{
		Executor:   e.adapters.Executor,
		Detector:   e.adapters.Detector,
		Downloader: e.adapters.Downloaders(cfg.Network),
		Library:    e.adapters.Library,
		EnvStore:   e.adapters.EnvStores(host, cfg.Linux.Profile),
		Receipts:   receipts,
		Pinner:     e.adapters.Pinner,
		Logger:     e.adapters.Logger,
	}
	strategy, err := NewStrategy(host, deps, cfg, root, environ)
	if err != nil {
		return nil, err
	}
	return NewPipeline(strategy.Steps(), e.adapters.Telemetry, e.adapters.Logger), nil
}

// Checks lists the detections describing the toolchain of host. Building them has
// no side effects.
func (e *Engine) Checks(host domain.HostProfile, cfg domain.Config, root string, environ []string) ([]ToolCheck, error) {
	deps := Deps{Detector: e.adapters.Detector, Logger: e.adapters.Logger}
	strategy, err := NewStrategy(host, deps, cfg, root, environ)
	if err != nil {
		return nil, err
	}
	return strategy.Checks(), nil
}

// LibDir resolves the support-library directory against the project root.
func LibDir(cfg domain.Config, root string) string {
	if filepath.IsAbs(cfg.Support.LibDir) {
		return cfg.Support.LibDir
	}
	return filepath.Join(root, cfg.Support.LibDir)
}
