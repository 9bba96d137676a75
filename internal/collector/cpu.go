// CPU collector: gathers the logical CPU entries and the first entry's model.
// Uses gopsutil for cross-platform CPU information.
package collector

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
)

// UnknownCPUModel is reported when the OS returns no CPU entries.
const UnknownCPUModel = "unknown"

// CPUResult holds the collected CPU information.
type CPUResult struct {
	Count int    `json:"count"`
	Model string `json:"model"`
}

// Empty reports whether the OS returned no CPU entries at all.
func (r CPUResult) Empty() bool { return r.Count == 0 }

// CPUCollector collects CPU count and model.
type CPUCollector struct {
	info func(ctx context.Context) ([]cpu.InfoStat, error)
}

// NewCPUCollector creates a new CPU collector.
func NewCPUCollector() *CPUCollector {
	return &CPUCollector{info: cpu.InfoWithContext}
}

// Name returns the collector identifier.
func (c *CPUCollector) Name() string { return NameCPU }

// Collect counts the CPU entries reported by the OS and takes the model name
// of the first one. An empty list yields a zero count and UnknownCPUModel.
func (c *CPUCollector) Collect(ctx context.Context) (interface{}, error) {
	infos, err := c.info(ctx)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return CPUResult{Count: 0, Model: UnknownCPUModel}, nil
	}

	model := infos[0].ModelName
	if model == "" {
		model = UnknownCPUModel
	}
	return CPUResult{
		Count: len(infos),
		Model: model,
	}, nil
}

// IsAvailable returns true; CPU info is available on all platforms.
func (c *CPUCollector) IsAvailable() bool { return true }
