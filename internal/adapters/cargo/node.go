package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toysetup/internal/core/ports"
)

// NodeID is the unique identifier for the cargo config pinner Graft node.
const NodeID graft.ID = "adapter.cargo"

func init() {
	graft.Register(graft.Node[ports.BuildConfigPinner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildConfigPinner, error) {
			return NewPinner(), nil
		},
	})
}
