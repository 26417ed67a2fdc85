package services

import "context"

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	pluginKey contextKey = "plugin"
)

// WithRunID annotates context with the plan run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the plan run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(runIDKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithPlugin annotates context with the active plugin name.
func WithPlugin(ctx context.Context, plugin string) context.Context {
	if plugin == "" {
		return ctx
	}
	return context.WithValue(ctx, pluginKey, plugin)
}

// PluginFromContext returns the active plugin name if present.
func PluginFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(pluginKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}
