package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/orbitalos/orbitalos/internal/metrics"
	"github.com/orbitalos/orbitalos/internal/store"
)

// Refresher periodically recomputes every satellite's position.
type Refresher struct {
	store    *store.Store
	model    store.PositionModel
	interval time.Duration
}

// New creates a Refresher that drives st with model every interval.
func New(st *store.Store, model store.PositionModel, interval time.Duration) *Refresher {
	return &Refresher{store: st, model: model, interval: interval}
}

// Run performs one immediate refresh so handlers never serve unpropagated
// seed state, then ticks at the configured interval until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	r.refresh()

	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler: stopped")
			return
		case <-t.C:
			r.refresh()
		}
	}
}

// refresh runs one pass. Failures are contained to the pass: the registry
// keeps prior values for affected satellites and the loop carries on.
func (r *Refresher) refresh() {
	start := time.Now()
	err := r.store.RefreshAll(r.model)
	metrics.ObserveRefresh(time.Since(start), err)
	metrics.SatellitesTracked.Set(float64(r.store.Count()))

	if err != nil {
		slog.Error("scheduler: refresh pass failed", "err", err)
		return
	}
	slog.Debug("scheduler: refreshed satellite positions",
		"satellites", r.store.Count(), "took", time.Since(start))
}
