package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of the per-file synchronization work.
type Telemetry interface {
	// Record starts a vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes the recording session.
	Close() error
}

// Vertex is one unit of recorded work.
type Vertex interface {
	// Stdout returns a writer for progress output of the vertex.
	Stdout() io.Writer

	// Cached marks the vertex as satisfied from the cache.
	Cached()

	// Complete marks the vertex as finished.
	Complete(err error)
}
