// middleware — net/http мидлвары HTTP-слоя account-сервиса:
// recover, request id, request-scoped логирование, извлечение Bearer-токена,
// общий таймаут запроса.
package middleware

import (
	"context"
	"net/http"
)

// Middleware — стандартный net/http мидлвар.
type Middleware func(http.Handler) http.Handler

// Chain применяет мидлвары к обработчику в порядке их перечисления.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type ctxKey string

const (
	ctxRequestID ctxKey = "request_id"
	ctxAuthToken ctxKey = "auth_token"
)

// RequestIDFrom возвращает request id запроса ("" — если не установлен).
func RequestIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(ctxRequestID).(string)
	return v
}

// TokenFrom возвращает сырой Bearer-токен запроса ("" — если не передан).
func TokenFrom(ctx context.Context) string {
	v, _ := ctx.Value(ctxAuthToken).(string)
	return v
}

// statusWriter оборачивает ResponseWriter, чтобы перехватить статус и размер.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	count, err := w.ResponseWriter.Write(p)
	w.count += count
	return count, err
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}
