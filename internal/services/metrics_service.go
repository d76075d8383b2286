package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// MetricsService implements the ports.MetricsService interface
type MetricsService struct {
	store     ports.KeyValueStore
	startTime time.Time
	logger    *slog.Logger

	mu            sync.RWMutex
	writes        map[string]int64
	reads         map[string]int64
	lastWriteTime *time.Time
}

// NewMetricsService creates a new metrics service
func NewMetricsService(store ports.KeyValueStore, logger *slog.Logger) *MetricsService {
	return &MetricsService{
		store:     store,
		startTime: time.Now(),
		logger:    logger.With("component", "metrics_service"),
		writes:    make(map[string]int64),
		reads:     make(map[string]int64),
	}
}

// GetMetrics returns current operational metrics
func (m *MetricsService) GetMetrics(ctx context.Context) (*domain.Metrics, error) {
	m.mu.RLock()
	writes := make(map[string]int64, len(m.writes))
	for k, v := range m.writes {
		writes[k] = v
	}
	reads := make(map[string]int64, len(m.reads))
	for k, v := range m.reads {
		reads[k] = v
	}
	lastWriteTime := m.lastWriteTime
	m.mu.RUnlock()

	storageStatus := "healthy"
	if err := m.store.Ping(ctx); err != nil {
		m.logger.Warn("storage ping failed", "error", err)
		storageStatus = "unhealthy"
	}

	return &domain.Metrics{
		Uptime:        time.Since(m.startTime).Seconds(),
		Writes:        writes,
		Reads:         reads,
		LastWriteTime: lastWriteTime,
		StorageStatus: storageStatus,
	}, nil
}

// RecordWrite counts a stored record of the given kind
func (m *MetricsService) RecordWrite(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.lastWriteTime = &now
	m.writes[kind]++
}

// RecordRead counts a served read of the given kind
func (m *MetricsService) RecordRead(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads[kind]++
}

// Ensure MetricsService implements ports.MetricsService
var _ ports.MetricsService = (*MetricsService)(nil)
