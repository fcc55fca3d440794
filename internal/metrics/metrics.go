// Package metrics exposes Prometheus collectors for the catalog service.
// The HTTP server serves them at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreOps counts record store operations by operation and outcome.
var StoreOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cattery",
	Subsystem: "store",
	Name:      "operations_total",
	Help:      "Record store operations by op (list, get, insert, update, delete) and status (ok, error).",
}, []string{"op", "status"})

// BlobBytesWritten counts payload bytes normalized into the blob store.
var BlobBytesWritten = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "cattery",
	Subsystem: "blob",
	Name:      "bytes_written_total",
	Help:      "Media payload bytes written to the blob store.",
})

// SeededCats counts records inserted by the first-run seed loader.
var SeededCats = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "cattery",
	Subsystem: "catalog",
	Name:      "seeded_cats_total",
	Help:      "Cat records inserted by the first-run seed.",
})

// ObserveOp records one store operation outcome.
func ObserveOp(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	StoreOps.WithLabelValues(op, status).Inc()
}
