package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TargetID(ctx))

	ctx = WithTargetID(ctx, "/users/{id}")
	assert.Equal(t, "/users/{id}", TargetID(ctx))
	assert.Empty(t, EndpointTemplate(ctx))

	assert.Equal(t, "orders", TargetID(WithTargetID(ctx, "orders")))
	assert.Equal(t, "/users/{id}", TargetID(ctx))
}

func TestEndpointTemplate(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, EndpointTemplate(ctx))

	ctx = WithEndpointTemplate(WithTargetID(ctx, "users"), "/users/{id}")
	assert.Equal(t, "/users/{id}", EndpointTemplate(ctx))
	assert.Equal(t, "users", TargetID(ctx))
}
