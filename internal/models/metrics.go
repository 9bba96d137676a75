// Package models defines the data structures served by the metrics endpoint.
// These structures are serialized to JSON as response bodies.
package models

// TimestampLayout is the ISO-8601 UTC layout used for snapshot timestamps,
// with millisecond precision and a literal Z suffix.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// MetricsSnapshot is a single point-in-time record of host metrics.
// It is built fresh for every request and never stored.
type MetricsSnapshot struct {
	Hostname      string `json:"hostname"`
	Platform      string `json:"platform"`
	OSType        string `json:"osType"`
	Arch          string `json:"arch"`
	UptimeMinutes string `json:"uptime_minutes"`  // 1 fractional digit
	TotalMemoryMB string `json:"total_memory_mb"` // 0 fractional digits
	FreeMemoryMB  string `json:"free_memory_mb"`  // 0 fractional digits
	CPUCount      int    `json:"cpu_count"`
	CPUModel      string `json:"cpu_model"`
	Timestamp     string `json:"timestamp"`
}

// ErrorResponse is the body returned alongside any non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
