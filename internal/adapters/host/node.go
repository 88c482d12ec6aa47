package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toysetup/internal/core/ports"
)

// NodeID is the unique identifier for the host prober Graft node.
const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[ports.HostProber]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostProber, error) {
			return NewProber(), nil
		},
	})
}
