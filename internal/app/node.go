package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toysetup/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/toysetup/internal/adapters/console"            //nolint:depguard // Wired in app layer
	"go.trai.ch/toysetup/internal/adapters/detector"           //nolint:depguard // Wired in app layer
	"go.trai.ch/toysetup/internal/adapters/host"               //nolint:depguard // Wired in app layer
	"go.trai.ch/toysetup/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/toysetup/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/toysetup/internal/engine/provision"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			host.NodeID,
			config.NodeID,
			console.PrompterNodeID,
			console.ReporterNodeID,
			detector.NodeID,
			provision.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	prober, err := graft.Dep[ports.HostProber](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	toolDetector, err := graft.Dep[ports.ToolDetector](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*provision.Engine](ctx)
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

	return New(prober, loader, prompter, reporter, toolDetector, engine, log, telemetry), nil
}
