// http собирает REST-поверхность account-сервиса: chi-роутер,
// мидлвары и регистрацию маршрутов.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/morozovaa/marketplace-account/internal/account"
	"github.com/morozovaa/marketplace-account/internal/transport/http/handlers"
	"github.com/morozovaa/marketplace-account/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger         *slog.Logger
	Timeout        time.Duration
	MaxUploadBytes int64
	BasePath       string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(reg *account.Registry, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.AuthBearer(),         // вынимаем Bearer токен в контекст для явной Session
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(reg, opts.MaxUploadBytes)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// account
	r.Get("/account", h.GetAccount)
	r.Post("/account/logout", h.Logout)

	// edit session
	r.Post("/account/edit", h.BeginEdit)
	r.Patch("/account/edit", h.UpdateDraft)
	r.Post("/account/edit/save", h.SaveEdit)
	r.Post("/account/edit/cancel", h.CancelEdit)

	// payment methods
	r.Post("/account/payment-methods", h.AddPaymentMethod)
	r.Delete("/account/payment-methods/{id}", h.RemovePaymentMethod)
	r.Post("/account/payment-methods/{id}/default", h.SetDefaultPaymentMethod)

	// photo
	r.Post("/account/photo", h.UploadPhoto)
}
