package ports

import "github.com/NyanCAD/amscrcuits/internal/core/domain"

// DesignLoader defines the interface for loading a circuit design.
//
//go:generate mockgen -source=design_loader.go -destination=mocks/mock_design_loader.go -package=mocks
type DesignLoader interface {
	// Load reads the design file at path and returns its entities and default target.
	Load(path string) (*domain.Design, error)
}
