package fs

import (
	"context"

	"github.com/NyanCAD/amscrcuits/internal/build"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	HasherNodeID graft.ID = "adapter.fs.hasher"
	WriterNodeID graft.ID = "adapter.fs.writer"
)

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(build.Version), nil
		},
	})

	graft.Register(graft.Node[ports.OutputWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputWriter, error) {
			return NewWriter(), nil
		},
	})
}
