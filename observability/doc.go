// Package observability provides OpenTelemetry tracing and metrics for
// problem flows.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "import.users")
//	defer span.End()
//	observability.RecordProblem(span, p)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-service"))
//	acc := &receiver.Accumulator{}
//	r := observability.InstrumentReceiver(acc, metrics, "importer")
//
// Health Checks:
//
//	health := observability.NewServiceHealth("my-service", "1.0.0")
//	health.AddComponent(observability.HealthFromProblem("db", p))
package observability
