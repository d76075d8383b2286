package domain

import "time"

// Metrics represents operational metrics for the data service.
type Metrics struct {
	Uptime        float64          `json:"uptime_seconds"`
	Writes        map[string]int64 `json:"writes"`
	Reads         map[string]int64 `json:"reads"`
	LastWriteTime *time.Time       `json:"last_write_time,omitempty"`
	StorageStatus string           `json:"storage_status"`
}
