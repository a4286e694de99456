package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type traceID struct{}

// InjectTraceID attaches a fresh trace id to ctx and to the zerolog logger
// returned by log.Ctx(ctx).
func InjectTraceID(ctx context.Context) context.Context {
	id := uuid.New().String()
	ctx = context.WithValue(ctx, traceID{}, id)
	logger := log.With().Str("traceId", id).Logger()
	return logger.WithContext(ctx)
}

// TraceID returns the id injected by InjectTraceID, or an empty string.
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceID{}).(string)
	return id
}
