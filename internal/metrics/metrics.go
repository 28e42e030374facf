// Package metrics collects and exposes Prometheus metrics for the
// voting service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts the interesting domain events. All methods are safe
// on a nil receiver so tests can pass nil instead of a registry.
type Collector struct {
	registry        *prometheus.Registry
	votesAccepted   prometheus.Counter
	votesRejected   *prometheus.CounterVec
	resultsRequests prometheus.Counter
	menusPublished  prometheus.Counter
}

// NewCollector creates a Collector with its own registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,
		votesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mindtales_votes_accepted_total",
			Help: "Total number of accepted vote submissions",
		}),
		votesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mindtales_votes_rejected_total",
			Help: "Total number of rejected vote submissions by reason",
		}, []string{"reason"}),
		resultsRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mindtales_results_requests_total",
			Help: "Total number of leaderboard requests",
		}),
		menusPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mindtales_menus_published_total",
			Help: "Total number of menus published",
		}),
	}

	registry.MustRegister(c.votesAccepted, c.votesRejected, c.resultsRequests, c.menusPublished)
	return c
}

func (c *Collector) RecordVoteAccepted() {
	if c == nil {
		return
	}
	c.votesAccepted.Inc()
}

func (c *Collector) RecordVoteRejected(reason string) {
	if c == nil {
		return
	}
	c.votesRejected.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordResultsRequest() {
	if c == nil {
		return
	}
	c.resultsRequests.Inc()
}

func (c *Collector) RecordMenuPublished() {
	if c == nil {
		return
	}
	c.menusPublished.Inc()
}

// Handler exposes the registry in Prometheus text format
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
