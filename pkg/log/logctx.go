// log — перенос request-scoped *slog.Logger через context.
//
// Транспортный слой кладёт логгер (уже обогащённый request_id) в контекст,
// нижние слои достают его через From и дописывают свои атрибуты.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста (или возвращает slog.Default()).
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}

// With — шорткат: достаёт логгер из контекста и возвращает его копию
// с дополнительными атрибутами.
func With(ctx context.Context, args ...any) *slog.Logger {
	return From(ctx).With(args...)
}
