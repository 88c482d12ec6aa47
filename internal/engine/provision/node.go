package provision

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/toysetup/internal/adapters/cargo"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toysetup/internal/adapters/detector"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toysetup/internal/adapters/envstore"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toysetup/internal/adapters/fetch"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toysetup/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toysetup/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toysetup/internal/adapters/receipts"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toysetup/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toysetup/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toysetup/internal/core/ports"
)

// NodeID is the unique identifier for the provisioning engine Graft node.
const NodeID graft.ID = "engine.provision"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			detector.NodeID,
			fs.NodeID,
			cargo.NodeID,
			logger.NodeID,
			progrock.NodeID,
			fetch.NodeID,
			envstore.NodeID,
			receipts.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			toolDetector, err := graft.Dep[ports.ToolDetector](ctx)
			if err != nil {
				return nil, err
			}

			library, err := graft.Dep[ports.LibraryFS](ctx)
			if err != nil {
				return nil, err
			}

			pinner, err := graft.Dep[ports.BuildConfigPinner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			downloaders, err := graft.Dep[ports.DownloaderFactory](ctx)
			if err != nil {
				return nil, err
			}

			envStores, err := graft.Dep[ports.EnvironmentStoreFactory](ctx)
			if err != nil {
				return nil, err
			}

			openReceipts, err := graft.Dep[ports.ReceiptStoreOpener](ctx)
			if err != nil {
				return nil, err
			}

			return NewEngine(Adapters{
				Executor:    executor,
				Detector:    toolDetector,
				Library:     library,
				Pinner:      pinner,
				Logger:      log,
				Telemetry:   telemetry,
				Downloaders: downloaders,
				EnvStores:   envStores,
				OpenReceipts: func(libDir string) (ports.ReceiptStore, error) {
					return openReceipts(filepath.Join(libDir, receipts.Filename))
				},
			}), nil
		},
	})
}
