// Package metrics exposes the settlement worker's Prometheus counters and
// a lightweight /metrics + /healthz HTTP endpoint.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SettlementMetrics counts promotion cycle activity
type SettlementMetrics struct {
	CyclesTotal   prometheus.Counter
	PromotedTotal prometheus.Counter
	SkippedTotal  prometheus.Counter // cycles skipped because another instance held the slot lock
	ErrorsTotal   *prometheus.CounterVec
	CycleDuration prometheus.Histogram
}

// NewSettlementMetrics builds and registers the worker's counters
func NewSettlementMetrics(reg prometheus.Registerer) *SettlementMetrics {
	m := &SettlementMetrics{
		CyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "settlement_cycles_total",
			Help: "Promotion cycles started",
		}),
		PromotedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "settlement_entries_promoted_total",
			Help: "Pending entries promoted to settled copies",
		}),
		SkippedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "settlement_cycles_skipped_total",
			Help: "Cycles skipped because the slot lock was held elsewhere",
		}),
		ErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_errors_total",
			Help: "Errors by stage",
		}, []string{"stage"}),
		CycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "settlement_cycle_duration_seconds",
			Help:    "Wall time of a promotion cycle",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.CyclesTotal, m.PromotedTotal, m.SkippedTotal, m.ErrorsTotal, m.CycleDuration)
	return m
}

// HealthFunc reports backend health for the /healthz endpoint
type HealthFunc func(ctx context.Context) error

// StartMetricsServer serves /metrics and /healthz on its own port,
// listening in a background goroutine
func StartMetricsServer(port int, healthFn HealthFunc) *http.Server {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()

		if err := healthFn(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(fmt.Sprintf("unhealthy: %v", err)))
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		_ = srv.ListenAndServe()
	}()

	return srv
}
