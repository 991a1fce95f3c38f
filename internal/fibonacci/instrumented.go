package fibonacci

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/fibiter/internal/logging"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibiter_calculations_total",
			Help: "The total number of Fibonacci calculations processed",
		},
		[]string{"algorithm", "status"},
	)
	calculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fibiter_calculation_duration_seconds",
			Help:    "The duration of Fibonacci calculations in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
		},
		[]string{"algorithm"},
	)
)

// Instrumented is an implementation of the Calculator interface that uses the
// Decorator design pattern. It wraps another Calculator and records a trace
// span, Prometheus metrics and a debug log line around each call. The wrapped
// calculator stays pure; only observability state is touched here.
type Instrumented struct {
	calc   Calculator
	logger logging.Logger
}

// NewInstrumented wraps calc with tracing, metrics and logging. It panics if
// calc is nil.
//
// Parameters:
//   - calc: The calculator to decorate.
//   - logger: Receives one debug event per calculation. nil discards them.
//
// Returns:
//   - *Instrumented: The decorated calculator.
func NewInstrumented(calc Calculator, logger logging.Logger) *Instrumented {
	if calc == nil {
		panic("fibonacci: the wrapped `Calculator` cannot be nil")
	}
	if logger == nil {
		logger = logging.NewZerologAdapter(zerolog.Nop())
	}
	return &Instrumented{calc: calc, logger: logger}
}

// Name delegates to the wrapped calculator.
func (c *Instrumented) Name() string {
	return c.calc.Name()
}

// Calculate implements Calculator with a background context.
func (c *Instrumented) Calculate(index int) (uint64, error) {
	return c.CalculateContext(context.Background(), index)
}

// CalculateContext runs the wrapped calculation inside a span that is a child
// of any span carried by ctx. The context is only used for trace propagation;
// the calculation itself never blocks.
//
// Parameters:
//   - ctx: The parent context for tracing.
//   - index: The index of the Fibonacci number to calculate.
//
// Returns:
//   - uint64: The calculated Fibonacci number.
//   - error: The error returned by the wrapped calculator, unchanged.
func (c *Instrumented) CalculateContext(ctx context.Context, index int) (result uint64, err error) {
	tracer := otel.Tracer("fibonacci")
	_, span := tracer.Start(ctx, "Calculate")
	span.SetAttributes(attribute.Int("fibonacci.index", index))
	defer span.End()

	algoName := c.calc.Name()
	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := statusLabel(err)
		calculationsTotal.WithLabelValues(algoName, status).Inc()
		calculationDuration.WithLabelValues(algoName).Observe(duration)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		fields := []logging.Field{
			logging.String("algo", algoName),
			logging.Int("index", index),
			logging.Float64("duration", duration),
			logging.String("status", status),
		}
		if err != nil {
			fields = append(fields, logging.Err(err))
		} else {
			fields = append(fields, logging.Uint64("result", result))
		}
		c.logger.Debug("calculation completed", fields...)
	}()

	return c.calc.Calculate(index)
}

func statusLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "error"
	}
}

var _ Calculator = (*Instrumented)(nil)
