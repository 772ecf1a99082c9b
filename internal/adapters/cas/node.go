package cas

import (
	"context"

	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the netlist store Graft node.
const NodeID graft.ID = "adapter.netlist_store"

func init() {
	graft.Register(graft.Node[ports.NetlistStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.NetlistStore, error) {
			return NewStore(), nil
		},
	})
}
