// Package observability wires Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostsCreated counts created posts by the topic the classifier assigned.
	PostsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeboard_posts_created_total",
		Help: "Total number of posts created, labeled by assigned topic",
	}, []string{"topic"})

	// LoginAttempts counts login attempts by outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeboard_login_attempts_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})
)

var (
	prom     *fiberprometheus.FiberPrometheus
	promOnce sync.Once
)

// InitMetrics returns the HTTP metrics middleware. The collectors register
// against the default registry, so initialization happens once per process no
// matter how many servers get built.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(serviceName)
	})
	return prom
}
