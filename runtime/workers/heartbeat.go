package workers

import (
	"chat-broker/contract"
	"chat-broker/observability"
	"context"
	"log/slog"
	"time"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// HeartbeatWorker periodically logs the broker activity.
type HeartbeatWorker struct {
	log        *slog.Logger
	interval   time.Duration
	monitoring *observability.MonitoringManager
}

func NewHeartbeatWorker(log *slog.Logger, interval time.Duration, monitoring *observability.MonitoringManager) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, interval: interval, monitoring: monitoring}
}

// Run logs one line per interval until the context is canceled.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting broker heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var lastPublished uint64
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := w.monitoring.GetLatest()
			w.log.Info("Broker heartbeat",
				"rooms", len(stats.Rooms),
				"sessions", stats.Sessions,
				"published", stats.Published,
				"published_since_last", stats.Published-lastPublished,
				"dropped", stats.Dropped,
				"delivered", stats.Delivered,
				"rss_bytes", stats.RSSBytes,
				"cpu_percent", stats.CPUPercent,
			)
			lastPublished = stats.Published
		}
	}
}
