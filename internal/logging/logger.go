// Package logging defines the structured logger the server components share.
// Services and repositories log through this interface so backend failures
// stay in the server log while the API returns only generic messages.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key/value pairs:
//
//	log.Error(ctx, "product list query failed", "error", err)
type Logger interface {
	// Info logs normal operational events (startup, shutdown).
	Info(ctx context.Context, msg string, args ...any)

	// Warn flags conditions worth an operator's attention, such as running
	// with the shipped default credentials.
	Warn(ctx context.Context, msg string, args ...any)

	// Error records failures, including store errors that were degraded to
	// demo data rather than surfaced to the client.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key/value pairs.
	With(args ...any) Logger
}
