// handlers содержит REST-эндпойнты account-сервиса.
//
// Хендлеры достают Bearer-токен из контекста (мидлвар AuthBearer), строят
// явную gateway.Session и получают аккаунт сессии из реестра. Ошибки доменного
// слоя конвертируются в унифицированный ответ через httperr.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/morozovaa/marketplace-account/internal/account"
	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/morozovaa/marketplace-account/internal/transport/http/httperr"
	"github.com/morozovaa/marketplace-account/internal/transport/http/middleware"
)

// Handlers агрегирует зависимости (реестр аккаунтов, лимит тела загрузки).
type Handlers struct {
	Registry *account.Registry
	// MaxUploadBytes — жёсткий предел тела multipart-запроса (защита от бомб);
	// лимит размера самого фото проверяет слой account.
	MaxUploadBytes int64
}

func New(reg *account.Registry, maxUploadBytes int64) *Handlers {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 32 << 20
	}

	return &Handlers{Registry: reg, MaxUploadBytes: maxUploadBytes}
}

// session строит явный сессионный контекст из Bearer-токена запроса.
func session(r *http.Request) (gateway.Session, bool) {
	token := middleware.TokenFrom(r.Context())
	if token == "" {
		return gateway.Session{}, false
	}

	return gateway.Session{Token: token}, true
}

// acc достаёт аккаунт текущей сессии; при отсутствии токена/отказе апстрима
// пишет ошибку и возвращает ok=false.
func (h *Handlers) acc(w http.ResponseWriter, r *http.Request) (*account.Account, gateway.Session, bool) {
	sess, ok := session(r)
	if !ok {
		httperr.WriteError(w, r, account.ErrNotAuthenticated)
		return nil, gateway.Session{}, false
	}

	a, err := h.Registry.Account(r.Context(), sess)
	if err != nil {
		httperr.WriteError(w, r, err)
		return nil, gateway.Session{}, false
	}

	return a, sess, true
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
