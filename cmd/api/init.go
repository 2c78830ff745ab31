package main

import (
	"context"

	"convert-api/internal/config"
	"convert-api/internal/observability"
	"convert-api/internal/pricing"

	"go.uber.org/multierr"
)

type shutdownFunc func(context.Context) error

// initTelemetry installs the OTLP providers when telemetry is enabled and
// registers the domain metric instruments. Instruments are always created;
// without providers they bind to the global no-op meter.
func initTelemetry(ctx context.Context, cfg *config.Config) (shutdownFunc, error) {
	var shutdowns []shutdownFunc

	shutdownAll := func(ctx context.Context) error {
		var err error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			err = multierr.Append(err, shutdowns[i](ctx))
		}
		return err
	}

	if cfg.TelemetryEnabled && !cfg.TestMode {
		inits := []func(context.Context, string) (func(context.Context) error, error){
			observability.InitTracing,
			observability.InitMetrics,
			observability.InitLogging,
		}
		for _, start := range inits {
			shutdown, err := start(ctx, cfg.ServiceName)
			if err != nil {
				return nil, multierr.Append(err, shutdownAll(ctx))
			}
			shutdowns = append(shutdowns, shutdown)
		}
	}

	if err := pricing.InitMetrics(); err != nil {
		return nil, multierr.Append(err, shutdownAll(ctx))
	}

	return shutdownAll, nil
}
