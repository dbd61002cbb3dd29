package middleware

// Тесты мидлваров HTTP-слоя.
//
//  Проверяем:
//  - Chain: порядок применения;
//  - RequestID: пробрасывание входящего id и генерация нового;
//  - AuthBearer: извлечение токена и игнор мусорных заголовков;
//  - Recover: panic -> 500 с унифицированным телом;
//  - Timeout: навешивание deadline и no-op при d <= 0.
//
// Запуск:
//   go test ./internal/transport/http/middleware -v -race -count=1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	mk := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mk("first"), mk("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestRequestID_UsesIncoming(t *testing.T) {
	t.Parallel()

	var got string
	h := Chain(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = RequestIDFrom(r.Context())
	}), RequestID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", got)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}

func TestRequestID_Generates(t *testing.T) {
	t.Parallel()

	var got string
	h := Chain(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = RequestIDFrom(r.Context())
	}), RequestID())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, got, 32)
	require.Equal(t, got, rec.Header().Get("X-Request-Id"))
}

func TestAuthBearer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		header string
		want   string
	}{
		{"Bearer tkn-123", "tkn-123"},
		{"Bearer   spaced  ", "spaced"},
		{"", ""},
		{"Bearer ", ""},
		{"Basic dXNlcjpwYXNz", ""},
		{"bearer lowercase", ""},
	}

	for _, tc := range cases {
		var got string
		h := Chain(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = TokenFrom(r.Context())
		}), AuthBearer())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}

		h.ServeHTTP(httptest.NewRecorder(), req)
		require.Equal(t, tc.want, got, "header=%q", tc.header)
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), Recover())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "internal")
	require.NotContains(t, rec.Body.String(), "boom")
}

func TestTimeout_SetsDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	h := Chain(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}), Timeout(time.Second))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.True(t, hasDeadline)
}

func TestTimeout_Noop(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	h := Chain(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}), Timeout(0))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.False(t, hasDeadline)
}
