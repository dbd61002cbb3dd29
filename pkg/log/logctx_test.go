package log

// Тесты переноса логгера через context (logctx.go).
//
// Запуск:
//   go test ./pkg/log -v -race -count=1

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntoFrom(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := Into(context.Background(), l)
	require.Same(t, l, From(ctx))
}

// Пустой контекст отдаёт slog.Default(), а не nil.
func TestFrom_Default(t *testing.T) {
	t.Parallel()

	require.NotNil(t, From(context.Background()))
	require.Equal(t, slog.Default(), From(context.Background()))
}

func TestWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := Into(context.Background(), l)

	With(ctx, "request_id", "rid-42").Info("hello")

	out := buf.String()
	require.Contains(t, out, "hello")
	require.Contains(t, out, "request_id=rid-42")
}
