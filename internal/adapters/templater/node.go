package templater

import (
	"context"

	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the templater Graft node.
const NodeID graft.ID = "adapter.templater"

func init() {
	graft.Register(graft.Node[ports.Templater]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Templater, error) {
			return New(), nil
		},
	})
}
