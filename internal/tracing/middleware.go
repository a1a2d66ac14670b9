package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/gridline/internal/gateway"
)

// Gateway wraps next so every commit runs inside a span. A nil tracer
// returns next unchanged. When next batches, the wrapper batches too.
func Gateway(next gateway.Gateway, tracer trace.Tracer) gateway.Gateway {
	if tracer == nil || next == nil {
		return next
	}
	g := &tracedGateway{next: next, tracer: tracer}
	if b, ok := next.(gateway.BatchGateway); ok {
		return &tracedBatchGateway{tracedGateway: g, batch: b}
	}
	return g
}

type tracedGateway struct {
	next   gateway.Gateway
	tracer trace.Tracer
}

func (g *tracedGateway) CommitCell(ctx context.Context, w gateway.Write) error {
	ctx, span := g.tracer.Start(ctx, SpanCommitCell, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(writeAttrs(w)...)

	err := g.next.CommitCell(ctx, w)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

type tracedBatchGateway struct {
	*tracedGateway
	batch gateway.BatchGateway
}

func (g *tracedBatchGateway) CommitMany(ctx context.Context, writes []gateway.Write) gateway.BatchResult {
	ctx, span := g.tracer.Start(ctx, SpanCommitMany, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.Int(AttrBatchSize, len(writes)))

	res := g.batch.CommitMany(ctx, writes)
	for _, o := range res.Outcomes {
		if o.Err != nil {
			span.AddEvent(EventCellFailed, trace.WithAttributes(writeAttrs(o.Write)...))
		}
	}
	span.SetAttributes(attribute.Int(AttrBatchFailed, res.Failed))
	if res.Failed > 0 {
		span.SetStatus(codes.Error, res.Err().Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return res
}

func writeAttrs(w gateway.Write) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrRecordID, w.RecordID),
		attribute.String(AttrColumnID, w.ColumnID),
		attribute.Int(AttrRowIndex, w.RowIndex),
	}
}
