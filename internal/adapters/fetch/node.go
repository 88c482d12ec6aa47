package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toysetup/internal/adapters/logger"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
)

// NodeID is the unique identifier for the downloader Graft node.
const NodeID graft.ID = "adapter.downloader"

func init() {
	graft.Register(graft.Node[ports.DownloaderFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DownloaderFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(cfg domain.NetworkConfig) ports.Downloader {
				return New(log, WithInsecureSkipVerify(cfg.InsecureSkipVerify))
			}, nil
		},
	})
}
