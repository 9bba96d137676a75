// Package collector defines the Collector interface and provides
// implementations for the host facts reported in a metrics snapshot.
package collector

import "context"

// Collector names used as registry keys.
const (
	NameHost   = "host"
	NameMemory = "memory"
	NameCPU    = "cpu"
	NameUptime = "uptime"
)

// Collector is the interface that all metric collectors must implement.
// Each collector gathers a specific group of host facts.
type Collector interface {
	// Name returns the unique identifier for this collector.
	Name() string

	// Collect gathers the data and returns it.
	// The context allows for cancellation and timeout control.
	Collect(ctx context.Context) (interface{}, error)

	// IsAvailable checks if this collector can run on the current platform.
	// Collectors that return false will not be registered.
	IsAvailable() bool
}
