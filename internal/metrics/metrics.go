// Package metrics exposes Prometheus instrumentation for the stream.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RoundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "suistream_rounds_total", Help: "Export rounds by outcome"},
		[]string{"status"},
	)
	RoundDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "suistream_round_duration_seconds", Help: "Export round latency", Buckets: prometheus.DefBuckets},
	)
	RecordsExported = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "suistream_records_exported_total", Help: "Exported records by type"},
		[]string{"type"},
	)
	RPCRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "suistream_rpc_requests_total", Help: "JSON-RPC requests by method and outcome"},
		[]string{"method", "status"},
	)
	HeadSequence = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "suistream_head_sequence_number", Help: "Latest observed chain head"},
	)
	LastSyncedSequence = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "suistream_last_synced_sequence_number", Help: "Last fully exported checkpoint"},
	)
)

func init() {
	prometheus.MustRegister(
		RoundsTotal,
		RoundDuration,
		RecordsExported,
		RPCRequestsTotal,
		HeadSequence,
		LastSyncedSequence,
	)
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
