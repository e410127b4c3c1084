package dashboard

import (
	"context"

	"go.uber.org/zap"
)

// Sink receives ingested dashboard snapshots. It is the extension point for
// persisting snapshots; the sidecar ships only LogSink.
type Sink interface {
	// Ingest accepts a snapshot. Implementations must not retain p after returning.
	Ingest(ctx context.Context, p *Payload) error
}

// LogSink logs a one-line digest of each snapshot and discards it.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

// Ingest implements Sink.
func (s *LogSink) Ingest(_ context.Context, p *Payload) error {
	user := ""
	if p.User != nil {
		user = *p.User
	}

	s.logger.Info("dashboard snapshot received",
		zap.String("timestamp", p.Timestamp),
		zap.String("page", p.Page),
		zap.String("url", p.URL),
		zap.String("user", user),
		zap.Int("funnel_total", Total(p.SalesFunnel)),
		zap.Int("kpi_total", Total(p.KPIs)),
		zap.Int("appointments", len(p.Appointments)),
		zap.Int("activity_days", len(p.DailyActivity)),
	)
	return nil
}
