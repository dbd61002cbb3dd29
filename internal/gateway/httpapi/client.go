// httpapi предоставляет реализацию gateway.Gateway поверх core API платформы
// (JSON-over-HTTP).
// client.go — конструктор клиента, выполнение запросов и маппинг HTTP-статусов
// в типизированные ошибки шлюза.
// profiles.go — операции с профилем (чтение, частичный апдейт, logout).
// photos.go — multipart-загрузка фото профиля.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/morozovaa/marketplace-account/internal/gateway"
)

// Client — HTTP-клиент core API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New создаёт клиент. Таймаут <=0 заменяется дефолтным (10s);
// дедлайн конкретного вызова задаётся контекстом.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do выполняет запрос с Bearer-авторизацией и декодирует ответ в out (если он
// не nil). Транспортные сбои — gateway.ErrNetwork, неуспешные статусы
// маппятся через statusErr.
func (c *Client) do(ctx context.Context, sess gateway.Session, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+sess.Token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", method, path, err, gateway.ErrNetwork)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Тело читаем и выбрасываем: детали апстрима в ошибку не включаем,
		// наверх уходит только класс отказа.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

		return fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, statusErr(resp.StatusCode))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %v: %w", method, path, err, gateway.ErrNetwork)
	}

	return nil
}

// statusErr — маппинг HTTP-статуса core API в сентинел шлюза.
func statusErr(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return gateway.ErrNotAuthenticated
	case http.StatusNotFound:
		return gateway.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return gateway.ErrValidation
	case http.StatusConflict:
		return gateway.ErrConflict
	default:
		return gateway.ErrNetwork
	}
}

// Проверка выполнения контракта верхнего уровня.
var _ gateway.Gateway = (*Client)(nil)
