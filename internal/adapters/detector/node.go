package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toysetup/internal/adapters/logger"
	"go.trai.ch/toysetup/internal/adapters/shell"
	"go.trai.ch/toysetup/internal/core/ports"
)

// NodeID is the unique identifier for the tool detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.ToolDetector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolDetector, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(executor, log), nil
		},
	})
}
