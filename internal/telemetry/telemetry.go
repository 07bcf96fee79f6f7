// Package telemetry exposes the service's prometheus metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nyaya-ai/nyaya/models"
)

// Telemetry counts resolutions and scrape failures. A nil *Telemetry is
// valid and records nothing, so wiring it is optional in tests.
type Telemetry struct {
	resolutions    *prometheus.CounterVec
	scrapeFailures *prometheus.CounterVec
}

// New registers the metric vectors with the given registerer.
func New(reg prometheus.Registerer) *Telemetry {
	factory := promauto.With(reg)
	return &Telemetry{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nyaya_resolutions_total",
			Help: "Resolved queries by intent and answer tier.",
		}, []string{"intent", "tier"}),
		scrapeFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nyaya_scrape_failures_total",
			Help: "Live-source fetch or parse failures by source.",
		}, []string{"source"}),
	}
}

// RecordResolution counts one resolved query. tier is one of generated,
// intent, document, generic.
func (t *Telemetry) RecordResolution(intent models.Intent, tier string) {
	if t == nil {
		return
	}
	t.resolutions.WithLabelValues(string(intent), tier).Inc()
}

// RecordScrapeFailure counts one degraded live-source fetch.
func (t *Telemetry) RecordScrapeFailure(source string) {
	if t == nil {
		return
	}
	t.scrapeFailures.WithLabelValues(source).Inc()
}
