package envstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toysetup/internal/adapters/logger"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
)

// NodeID is the unique identifier for the environment store Graft node.
const NodeID graft.ID = "adapter.envstore"

func init() {
	graft.Register(graft.Node[ports.EnvironmentStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentStoreFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(host domain.HostProfile, profile string) ports.EnvironmentStore {
				return New(host, profile, log)
			}, nil
		},
	})
}
