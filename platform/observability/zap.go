package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TraceFields поля для корреляции строки лога с трассой в collector'е.
// nil, если в ctx нет валидного span (например, OTEL выключен и traceparent не пришёл).
func TraceFields(ctx context.Context) []zap.Field {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	fields := make([]zap.Field, 0, 3)
	fields = append(fields,
		zap.Stringer("trace_id", sc.TraceID()),
		zap.Stringer("span_id", sc.SpanID()),
	)
	if sc.IsSampled() {
		fields = append(fields, zap.Bool("trace_sampled", true))
	}
	return fields
}

// L logger запроса: base + поля трассы. HTTPMiddleware кладёт результат в ctx,
// handlers достают его через LoggerFromContext.
func L(ctx context.Context, base *zap.Logger) *zap.Logger {
	if fields := TraceFields(ctx); fields != nil {
		return base.With(fields...)
	}
	return base
}
