package exporters

import (
	"context"

	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// noopMetricExporter is an exporter that drops all received metrics and
// performs no action.
type noopMetricExporter struct{}

func (noopMetricExporter) Temporality(kind metric.InstrumentKind) metricdata.Temporality {
	return metric.DefaultTemporalitySelector(kind)
}

func (noopMetricExporter) Aggregation(kind metric.InstrumentKind) metric.Aggregation {
	return metric.DefaultAggregationSelector(kind)
}

// Export handles export of metrics by dropping them.
func (noopMetricExporter) Export(context.Context, *metricdata.ResourceMetrics) error { return nil }

func (noopMetricExporter) ForceFlush(context.Context) error { return nil }

// Shutdown stops the exporter by doing nothing.
func (noopMetricExporter) Shutdown(context.Context) error { return nil }
