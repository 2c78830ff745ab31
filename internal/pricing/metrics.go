package pricing

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	errorCounter metric.Int64Counter
	resultGauge  metric.Float64Gauge
)

// InitMetrics registers the pricing OTel instruments against the global
// meter provider. Call it once at startup, after observability.InitMetrics
// when telemetry is enabled.
func InitMetrics() error {
	meter := otel.Meter("pricing")

	var err error

	opsCounter, err = meter.Int64Counter("pricing.operations.total",
		metric.WithDescription("Total number of successful pricing operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("pricing.operation.duration",
		metric.WithDescription("Duration of pricing operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("pricing.errors.total",
		metric.WithDescription("Total number of rejected pricing requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("pricing.last_result",
		metric.WithDescription("The result of the last pricing operation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	return nil
}
