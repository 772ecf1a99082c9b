package netlist

import (
	"context"

	"github.com/NyanCAD/amscrcuits/internal/adapters/templater" //nolint:depguard // Wired in engine wiring
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the synthesizer Graft node.
const NodeID graft.ID = "engine.netlist"

func init() {
	graft.Register(graft.Node[*Synthesizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{templater.NodeID},
		Run: func(ctx context.Context) (*Synthesizer, error) {
			tmpl, err := graft.Dep[ports.Templater](ctx)
			if err != nil {
				return nil, err
			}
			return NewSynthesizer(tmpl), nil
		},
	})
}
