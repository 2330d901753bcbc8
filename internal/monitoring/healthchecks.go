package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const HEALTHCHECK_TIMER = 15

// Pinger is anything with a cheap liveness probe, such as the comment cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MonitorCacheHealth probes the comment cache every HEALTHCHECK_TIMER seconds
// until ctx is done.
func MonitorCacheHealth(ctx context.Context, cache Pinger, healthy *atomic.Bool) {
	MonitorHealth(ctx, "cache", cache, healthy, time.Second*HEALTHCHECK_TIMER)
}

// MonitorHealth stores the result of p.Ping in healthy once immediately and
// then on every tick. It logs only on transitions.
func MonitorHealth(ctx context.Context, name string, p Pinger, healthy *atomic.Bool, interval time.Duration) {
	check := func() {
		pingCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()

		err := p.Ping(pingCtx)
		isHealthy := err == nil
		if was := healthy.Swap(isHealthy); was != isHealthy {
			if isHealthy {
				slog.Info("[HealthCheck] Dependency is healthy", slog.String("name", name))
			} else {
				slog.Warn("[HealthCheck] Dependency is unhealthy",
					slog.String("name", name),
					slog.String("error", err.Error()))
			}
		}
	}

	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
