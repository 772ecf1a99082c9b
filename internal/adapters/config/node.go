package config

import (
	"context"

	"github.com/NyanCAD/amscrcuits/internal/adapters/logger"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the design loader Graft node.
const NodeID graft.ID = "adapter.design_loader"

func init() {
	graft.Register(graft.Node[ports.DesignLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DesignLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
