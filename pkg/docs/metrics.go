package docs

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/LeonAquitaine/as-stagefx-sub005/pkg/metrics"
)

// Metrics holds the render-run metric instruments. All instruments are
// registered against an injected registry, never the global one.
type Metrics struct {
	// DocumentsRendered counts documents written successfully.
	DocumentsRendered prometheus.Counter

	// DocumentFailures counts documents that failed to render.
	DocumentFailures prometheus.Counter

	// RenderDuration observes per-document render time in seconds.
	RenderDuration prometheus.Histogram

	// CatalogEntries records the number of catalog entries in the run.
	CatalogEntries prometheus.Gauge
}

// NewMetrics creates and registers the render-run instruments.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	return &Metrics{
		DocumentsRendered: metrics.NewCounter(registry,
			"stagefx_documents_rendered_total",
			"Number of documents rendered and written successfully"),
		DocumentFailures: metrics.NewCounter(registry,
			"stagefx_document_failures_total",
			"Number of documents that failed to render"),
		RenderDuration: metrics.NewHistogram(registry,
			"stagefx_document_render_duration_seconds",
			"Per-document render and write duration in seconds"),
		CatalogEntries: metrics.NewGauge(registry,
			"stagefx_catalog_entries",
			"Number of catalog entries in the current run"),
	}
}
