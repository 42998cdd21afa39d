package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/problemkit/attachment"
	"github.com/kbukum/problemkit/problem"
	"github.com/kbukum/problemkit/receiver"
)

// RecordProblem records a whole problem chain on a span: every cause becomes
// an error event, and head/root/depth land as attributes. The span status is
// set to error with the head message.
func RecordProblem(span trace.Span, p *problem.Problem) {
	if span == nil || !span.IsRecording() || p == nil || p.Len() == 0 {
		return
	}
	for _, c := range p.Causes() {
		span.RecordError(c.Err())
	}
	span.SetAttributes(
		attribute.String(AttrProblemHead, p.Top().Err().Error()),
		attribute.String(AttrProblemRoot, p.Root().Err().Error()),
		attribute.Int(AttrProblemDepth, p.Len()),
	)
	span.SetStatus(codes.Error, p.Top().Err().Error())
}

// TraceAttachment captures the current span identity as an attachment, so a
// problem chain escaping this request can be joined back to its trace.
// Reports false when the context carries no valid span.
func TraceAttachment(ctx context.Context) (attachment.Trace, bool) {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return attachment.Trace{}, false
	}
	return attachment.Trace{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
	}, true
}

// InstrumentReceiver wraps a receiver so every accepted problem is counted,
// split by whether the inner receiver swallowed or propagated it. The
// wrapped receiver keeps the inner receiver's protocol untouched.
func InstrumentReceiver(r receiver.Receiver, m *Metrics, component string) receiver.Receiver {
	return &instrumentedReceiver{next: r, metrics: m, component: component}
}

type instrumentedReceiver struct {
	next      receiver.Receiver
	metrics   *Metrics
	component string
}

func (ir *instrumentedReceiver) Accept(p *problem.Problem) error {
	ctx := context.Background()
	ir.metrics.RecordProblem(ctx, ir.component, p)

	if err := ir.next.Accept(p); err != nil {
		ir.metrics.RecordPropagated(ctx, ir.component)
		return err
	}
	ir.metrics.RecordSwallowed(ctx, ir.component)
	return nil
}
