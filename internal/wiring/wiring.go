// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/NyanCAD/amscrcuits/internal/adapters/cas"
	_ "github.com/NyanCAD/amscrcuits/internal/adapters/config"
	_ "github.com/NyanCAD/amscrcuits/internal/adapters/fs"
	_ "github.com/NyanCAD/amscrcuits/internal/adapters/logger"
	_ "github.com/NyanCAD/amscrcuits/internal/adapters/telemetry"
	_ "github.com/NyanCAD/amscrcuits/internal/adapters/templater"
	// Register app and engine nodes.
	_ "github.com/NyanCAD/amscrcuits/internal/app"
	_ "github.com/NyanCAD/amscrcuits/internal/engine/netlist"
)
