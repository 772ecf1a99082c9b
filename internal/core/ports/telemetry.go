package ports

import "context"

// Telemetry records the progress of netlist generation.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex for one unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Cached marks the work as served from the netlist cache.
	Cached()
	// Complete marks the vertex as finished. A nil err means success.
	Complete(err error)
}
