package app

import (
	"context"

	"github.com/NyanCAD/amscrcuits/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"github.com/NyanCAD/amscrcuits/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/NyanCAD/amscrcuits/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/NyanCAD/amscrcuits/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/NyanCAD/amscrcuits/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/NyanCAD/amscrcuits/internal/engine/netlist"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			netlist.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			fs.WriterNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log, Telemetry: tel}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.DesignLoader](ctx)
	if err != nil {
		return nil, err
	}

	synth, err := graft.Dep[*netlist.Synthesizer](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.NetlistStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.OutputWriter](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, synth, store, hasher, writer, tel, log), nil
}
