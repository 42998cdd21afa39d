package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/problemkit/logger"
	"github.com/kbukum/problemkit/problem"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) *MeterConfig {
	return &MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry instruments for problem-flow observability.
type Metrics struct {
	problemTotal    metric.Int64Counter
	chainDepth      metric.Int64Histogram
	swallowedTotal  metric.Int64Counter
	propagatedTotal metric.Int64Counter
	aggregateSize   metric.Int64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	problemTotal, err := meter.Int64Counter("problem.total",
		metric.WithDescription("Total number of problems reported"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating problem.total counter: %w", err)
	}

	chainDepth, err := meter.Int64Histogram("problem.chain.depth",
		metric.WithDescription("Number of causes per reported problem"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating problem.chain.depth histogram: %w", err)
	}

	swallowedTotal, err := meter.Int64Counter("receiver.swallowed.total",
		metric.WithDescription("Problems swallowed by a receiver"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating receiver.swallowed.total counter: %w", err)
	}

	propagatedTotal, err := meter.Int64Counter("receiver.propagated.total",
		metric.WithDescription("Problems propagated by a receiver"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating receiver.propagated.total counter: %w", err)
	}

	aggregateSize, err := meter.Int64Histogram("receiver.aggregate.size",
		metric.WithDescription("Problems per failed accumulator check"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating receiver.aggregate.size histogram: %w", err)
	}

	return &Metrics{
		problemTotal:    problemTotal,
		chainDepth:      chainDepth,
		swallowedTotal:  swallowedTotal,
		propagatedTotal: propagatedTotal,
		aggregateSize:   aggregateSize,
	}, nil
}

// RecordProblem counts a reported problem and its chain depth.
func (m *Metrics) RecordProblem(ctx context.Context, component string, p *problem.Problem) {
	if p == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("root", p.Root().Err().Error()),
	)
	m.problemTotal.Add(ctx, 1, attrs)
	m.chainDepth.Record(ctx, int64(p.Len()), metric.WithAttributes(
		attribute.String("component", component),
	))
}

// RecordSwallowed counts a problem a receiver chose to retain.
func (m *Metrics) RecordSwallowed(ctx context.Context, component string) {
	m.swallowedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", component),
	))
}

// RecordPropagated counts a problem a receiver escalated to its caller.
func (m *Metrics) RecordPropagated(ctx context.Context, component string) {
	m.propagatedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", component),
	))
}

// RecordAggregate records the size of a failed accumulator check.
func (m *Metrics) RecordAggregate(ctx context.Context, component string, size int) {
	m.aggregateSize.Record(ctx, int64(size), metric.WithAttributes(
		attribute.String("component", component),
	))
}
