package ports

import "github.com/NyanCAD/amscrcuits/internal/core/domain"

// NetlistStore defines the interface for caching synthesized netlists.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type NetlistStore interface {
	// Get retrieves the netlist stored under key in the cache directory root.
	// Returns nil, nil if not found.
	Get(root, key string) (*domain.NetlistRecord, error)

	// Put stores the netlist record under its key in the cache directory root.
	Put(root string, record domain.NetlistRecord) error
}
