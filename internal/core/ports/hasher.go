package ports

import "github.com/NyanCAD/amscrcuits/internal/core/domain"

// Hasher defines the interface for computing netlist cache keys.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeNetlistKey computes the key identifying the netlist of target for one simulator.
	// The key changes whenever the design file content, the target or the simulator change.
	ComputeNetlistKey(designPath string, target domain.Target, simulator string) (string, error)
}
