// Package sampler turns one round of collector results into a MetricsSnapshot.
// A snapshot is assembled on demand for each request; nothing is retained
// between calls.
package sampler

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/vitalis-app/hostmetrics/internal/collector"
	"github.com/vitalis-app/hostmetrics/internal/models"
)

const bytesPerMB = 1024 * 1024

// Sampler collects host facts and formats them into snapshots.
type Sampler struct {
	registry *collector.Registry
	timeout  time.Duration
	logger   *zap.Logger

	now func() time.Time
}

// New creates a Sampler. Each Sample call is bounded by timeout.
func New(registry *collector.Registry, timeout time.Duration, logger *zap.Logger) *Sampler {
	return &Sampler{
		registry: registry,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
	}
}

// Sample runs all collectors and assembles a fresh snapshot.
// Any collector failure fails the whole snapshot; partial snapshots are never
// returned.
func (s *Sampler) Sample(ctx context.Context) (models.MetricsSnapshot, error) {
	collectCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results, err := s.registry.CollectAll(collectCtx)
	if err != nil {
		return models.MetricsSnapshot{}, fmt.Errorf("collecting metrics: %w", err)
	}

	snapshot, err := s.assembleSnapshot(results)
	if err != nil {
		return models.MetricsSnapshot{}, err
	}

	s.logger.Debug("Sampled metrics", zap.String("timestamp", snapshot.Timestamp))
	return snapshot, nil
}

// assembleSnapshot maps collector results into a MetricsSnapshot.
func (s *Sampler) assembleSnapshot(results map[string]interface{}) (models.MetricsSnapshot, error) {
	var snapshot models.MetricsSnapshot

	hostInfo, err := result[collector.HostResult](results, collector.NameHost)
	if err != nil {
		return snapshot, err
	}
	memInfo, err := result[collector.MemoryResult](results, collector.NameMemory)
	if err != nil {
		return snapshot, err
	}
	cpuInfo, err := result[collector.CPUResult](results, collector.NameCPU)
	if err != nil {
		return snapshot, err
	}
	uptime, err := result[uint64](results, collector.NameUptime)
	if err != nil {
		return snapshot, err
	}

	if cpuInfo.Empty() {
		s.logger.Warn("OS reported no CPU entries, using placeholder model",
			zap.String("cpu_model", cpuInfo.Model))
	}

	snapshot = models.MetricsSnapshot{
		Hostname:      hostInfo.Hostname,
		Platform:      hostInfo.Platform,
		OSType:        hostInfo.OSType,
		Arch:          hostInfo.Arch,
		UptimeMinutes: FormatFixed(float64(uptime)/60, 1),
		TotalMemoryMB: FormatFixed(float64(memInfo.Total)/bytesPerMB, 0),
		FreeMemoryMB:  FormatFixed(float64(memInfo.Free)/bytesPerMB, 0),
		CPUCount:      cpuInfo.Count,
		CPUModel:      cpuInfo.Model,
		Timestamp:     s.now().UTC().Format(models.TimestampLayout),
	}
	return snapshot, nil
}

// result extracts a typed collector result by name.
func result[T any](results map[string]interface{}, name string) (T, error) {
	var zero T
	data, ok := results[name]
	if !ok {
		return zero, fmt.Errorf("missing %s result", name)
	}
	v, ok := data.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected %s result type %T", name, data)
	}
	return v, nil
}

// FormatFixed renders v with exactly digits fractional digits.
// Negative inputs are clamped to zero. Whole-number output rounds halves up,
// so 2048.5 renders as "2049".
func FormatFixed(v float64, digits int) string {
	if v < 0 {
		v = 0
	}
	if digits == 0 {
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}
