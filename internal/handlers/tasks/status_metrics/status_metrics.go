package status_metrics

import (
	"context"
	"time"

	"curior/internal/entities"
	"curior/internal/pkg/metrics"
	"curior/pkg/logger"
)

type Service interface {
	StatusCounts(ctx context.Context) (map[entities.ParcelStatusType]int64, error)
}

// StatusMetrics refreshes the parcels_by_status gauge so dashboards
// track the lifecycle distribution without polling the report endpoint.
type StatusMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStatusMetrics(log logger.Logger, service Service, interval time.Duration) *StatusMetrics {
	return &StatusMetrics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StatusMetrics) TTL() time.Duration {
	return s.interval
}

func (s *StatusMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	counts, err := s.service.StatusCounts(ctxWithTimeout)
	if err != nil {
		return err
	}

	for status, count := range counts {
		metrics.ParcelsByStatus.WithLabelValues(status.String()).Set(float64(count))
	}

	s.log.With(
		logger.NewField("statuses", len(counts)),
	).Info("status metrics refresh")

	return nil
}

func (s *StatusMetrics) Info() string {
	return "parcel status metrics"
}
