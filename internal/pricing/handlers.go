package pricing

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"convert-api/internal/handlers"
	"convert-api/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("pricing")

// computeFunc validates the query and computes the operation. It returns the
// response body and the monetary result recorded in metrics.
type computeFunc func(q url.Values, span trace.Span) (any, float64, error)

// Conversion handles GET /convert.
func Conversion(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "convert", func(q url.Values, span trace.Span) (any, float64, error) {
		req, err := ParseConvertRequest(q)
		if err != nil {
			return nil, 0, err
		}

		span.SetAttributes(
			attribute.String("pricing.from", string(req.From)),
			attribute.String("pricing.to", string(req.To)),
			attribute.Float64("pricing.amount", req.Amount),
		)

		converted, err := Convert(req.Amount, req.From, req.To)
		if err != nil {
			return nil, 0, err
		}

		return ConvertResponse{
			From:            req.From,
			To:              req.To,
			OriginalAmount:  req.Amount,
			ConvertedAmount: converted,
		}, converted, nil
	})
}

// Tax handles GET /tva.
func Tax(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "tva", func(q url.Values, span trace.Span) (any, float64, error) {
		req, err := ParseTaxRequest(q)
		if err != nil {
			return nil, 0, err
		}

		span.SetAttributes(
			attribute.Float64("pricing.ht", req.HT),
			attribute.Float64("pricing.taux", req.Rate),
		)

		ttc := TaxInclusive(req.HT, req.Rate)
		return TaxResponse{HT: req.HT, Rate: req.Rate, TTC: ttc}, ttc, nil
	})
}

// Discount handles GET /remise.
func Discount(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "remise", func(q url.Values, span trace.Span) (any, float64, error) {
		req, err := ParseDiscountRequest(q)
		if err != nil {
			return nil, 0, err
		}

		span.SetAttributes(
			attribute.Float64("pricing.prix", req.Price),
			attribute.Float64("pricing.pourcentage", req.Percentage),
		)

		final := ApplyDiscount(req.Price, req.Percentage)
		return DiscountResponse{
			InitialPrice: req.Price,
			Percentage:   req.Percentage,
			FinalPrice:   final,
		}, final, nil
	})
}

// serve wraps one pricing operation in a child span, records metrics and a
// trace-correlated log line, and writes either the JSON result or a 400.
func serve(w http.ResponseWriter, r *http.Request, opName string, compute computeFunc) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("pricing.%s", opName),
		trace.WithAttributes(
			attribute.String("pricing.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	start := time.Now()
	resp, result, err := compute(r.URL.Query(), span)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	if err == nil {
		err = checkResult(result)
	}

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w,
			attribute.String("reason", Reason(err)),
		)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("pricing.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("pricing operation completed",
		zap.String("operation", opName),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}
