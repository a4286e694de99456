package tracing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectTraceID(t *testing.T) {
	assert.Empty(t, TraceID(context.Background()))

	ctx := InjectTraceID(context.Background())
	id := TraceID(ctx)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	assert.NotEqual(t, id, TraceID(InjectTraceID(context.Background())))
}
