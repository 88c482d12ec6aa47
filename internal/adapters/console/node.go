package console

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toysetup/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the shared console Graft node.
	NodeID graft.ID = "adapter.console"
	// PrompterNodeID exposes the console as a ports.Prompter.
	PrompterNodeID graft.ID = "adapter.console.prompter"
	// ReporterNodeID exposes the console as a ports.Reporter.
	ReporterNodeID graft.ID = "adapter.console.reporter"
)

func init() {
	graft.Register(graft.Node[*Console]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Console, error) {
			return NewStdio(), nil
		},
	})

	graft.Register(graft.Node[ports.Prompter]{
		ID:        PrompterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Prompter, error) {
			c, err := graft.Dep[*Console](ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	})

	graft.Register(graft.Node[ports.Reporter]{
		ID:        ReporterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Reporter, error) {
			c, err := graft.Dep[*Console](ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	})
}
