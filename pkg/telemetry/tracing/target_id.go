// Package tracing carries request attributes used to label telemetry.
package tracing

import "context"

type targetIDCtxKey struct{}

// WithTargetID sets targetID in ctx. Keep its cardinality low, e.g.
// /api/v1/users/{user_id}.
func WithTargetID(ctx context.Context, targetID string) context.Context {
	return context.WithValue(ctx, targetIDCtxKey{}, targetID)
}

// TargetID returns the target id of ctx or "".
func TargetID(ctx context.Context) string {
	value, _ := ctx.Value(targetIDCtxKey{}).(string)
	return value
}

type endpointTemplateKey struct{}

// WithEndpointTemplate sets the URL template a request was built from.
func WithEndpointTemplate(ctx context.Context, endpointTemplate string) context.Context {
	return context.WithValue(ctx, endpointTemplateKey{}, endpointTemplate)
}

// EndpointTemplate returns the endpoint template of ctx or "".
func EndpointTemplate(ctx context.Context) string {
	value, _ := ctx.Value(endpointTemplateKey{}).(string)
	return value
}
