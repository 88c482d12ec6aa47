package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toysetup/internal/core/ports"
)

// NodeID is the unique identifier for the library file system Graft node.
const NodeID graft.ID = "adapter.fs.library"

func init() {
	graft.Register(graft.Node[ports.LibraryFS]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LibraryFS, error) {
			return NewLibrary(), nil
		},
	})
}
