// Host identity collector: gathers hostname, platform, OS type and architecture.
// Hostname and platform come from gopsutil; the OS type is the kernel's own
// name for itself and is read through platform-specific code:
//   - unix: uname(2) sysname ("Linux", "Darwin", "FreeBSD")
//   - Windows: the fixed "Windows_NT"
//
// The OS type is cached since it cannot change during runtime.
package collector

import (
	"context"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v3/host"
)

// HostResult holds the collected host identity.
type HostResult struct {
	Hostname string `json:"hostname"`
	Platform string `json:"platform"` // e.g., "linux", "darwin", "windows"
	OSType   string `json:"os_type"`  // e.g., "Linux", "Darwin", "Windows_NT"
	Arch     string `json:"arch"`     // e.g., "x86_64", "arm64"
}

// HostCollector collects host identity. The hostname is read on every call.
type HostCollector struct {
	info   func(ctx context.Context) (*host.InfoStat, error)
	osType func() string

	once       sync.Once
	cachedType string
}

// NewHostCollector creates a new host collector.
func NewHostCollector() *HostCollector {
	return &HostCollector{
		info:   host.InfoWithContext,
		osType: kernelName,
	}
}

// Name returns the collector identifier.
func (c *HostCollector) Name() string { return NameHost }

// Collect gathers the host identity.
func (c *HostCollector) Collect(ctx context.Context) (interface{}, error) {
	info, err := c.info(ctx)
	if err != nil {
		return nil, err
	}

	c.once.Do(func() {
		c.cachedType = c.osType()
	})

	result := HostResult{
		Hostname: info.Hostname,
		Platform: info.OS,
		OSType:   c.cachedType,
		Arch:     info.KernelArch,
	}
	if result.Platform == "" {
		result.Platform = runtime.GOOS
	}
	if result.Arch == "" {
		result.Arch = runtime.GOARCH
	}
	return result, nil
}

// IsAvailable returns true; host info is available on all platforms.
func (c *HostCollector) IsAvailable() bool { return true }
