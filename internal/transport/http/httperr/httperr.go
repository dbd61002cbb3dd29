// httperr стандартизирует ответы об ошибках HTTP-слоя account-сервиса.
// На вход он принимает ошибку (сентинелы слоёв account/gateway),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/morozovaa/marketplace-account/internal/account"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ErrBadRequest — локальная ошибка разбора входа в хендлере.
var ErrBadRequest = errors.New("bad request")

// ToHTTP конвертирует ошибку доменного слоя в HTTP-статус и унифицированный
// ответ для фронта.
//
// Маппинг:
//   - ErrBadRequest / ErrValidation        -> 400
//   - ErrNotAuthenticated                  -> 401
//   - ErrNotFound                          -> 404
//   - ErrInvalidState / ErrSaveInProgress /
//     ErrUploadInFlight / ErrConflict /
//     ErrAlreadyExists                     -> 409
//   - ErrFileTooLarge                      -> 413
//   - ErrInvalidFileType                   -> 415
//   - ErrUpstream                          -> 502
//   - прочее (включая err == nil — программная ошибка вызова) -> 500/internal
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := classify(err)

	return status, ErrorResponse{Error: APIError{Code: code, Message: msg}}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func classify(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, ErrBadRequest), errors.Is(err, account.ErrValidation):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, account.ErrNotAuthenticated):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case errors.Is(err, account.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, account.ErrSaveInProgress):
		return http.StatusConflict, "save_in_progress", "save already in progress"
	case errors.Is(err, account.ErrUploadInFlight):
		return http.StatusConflict, "upload_in_flight", "upload already in progress"
	case errors.Is(err, account.ErrInvalidState):
		return http.StatusConflict, "invalid_state", "operation not allowed in current state"
	case errors.Is(err, account.ErrAlreadyExists), errors.Is(err, account.ErrConflict):
		return http.StatusConflict, "conflict", "conflict"
	case errors.Is(err, account.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "file_too_large", "file too large"
	case errors.Is(err, account.ErrInvalidFileType):
		return http.StatusUnsupportedMediaType, "invalid_file_type", "invalid file type"
	case errors.Is(err, account.ErrUpstream):
		return http.StatusBadGateway, "upstream_unavailable", "upstream unavailable"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
