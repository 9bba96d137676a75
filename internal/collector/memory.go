// RAM collector: gathers total and free memory bytes.
// Uses gopsutil for cross-platform memory metrics.
package collector

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"
)

// MemoryResult holds the collected memory data in bytes.
type MemoryResult struct {
	Total uint64 `json:"total"`
	Free  uint64 `json:"free"`
}

// MemoryCollector collects RAM totals.
type MemoryCollector struct {
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{virtualMemory: mem.VirtualMemoryWithContext}
}

// Name returns the collector identifier.
func (c *MemoryCollector) Name() string { return NameMemory }

// Collect gathers total bytes and the bytes available to new allocations.
// Available is used rather than the kernel's MemFree so page cache that can
// be reclaimed counts as free.
func (c *MemoryCollector) Collect(ctx context.Context) (interface{}, error) {
	v, err := c.virtualMemory(ctx)
	if err != nil {
		return nil, err
	}
	return MemoryResult{
		Total: v.Total,
		Free:  v.Available,
	}, nil
}

// IsAvailable returns true; memory metrics are available on all platforms.
func (c *MemoryCollector) IsAvailable() bool { return true }
