// notify — доставка пользовательских уведомлений (исходов операций) фронту.
//
// Ядро решает только ЧТО сообщить (заголовок/описание/вариант); как это
// отрисовать — забота потребителя. Push — fire-and-forget: ошибки доставки
// логируются и никогда не влияют на результат операции.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/morozovaa/marketplace-account/pkg/log"
)

// Variant — тип уведомления для фронта.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
)

// Notification — структурированное сообщение пользователю.
// Description всегда безопасен: таксономия внутренних ошибок наружу не утекает.
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// Notifier — контракт синка уведомлений.
type Notifier interface {
	// Push отправляет уведомление владельцу профиля. Возврата ошибки нет:
	// доставка негарантированная по дизайну.
	Push(ctx context.Context, userID uuid.UUID, n Notification)
}

// LogNotifier пишет уведомления в slog. Используется как синк по умолчанию
// и как запасной вариант, когда Redis не сконфигурирован.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (*LogNotifier) Push(ctx context.Context, userID uuid.UUID, n Notification) {
	log.From(ctx).Info("notification",
		slog.String("user_id", userID.String()),
		slog.String("title", n.Title),
		slog.String("description", n.Description),
		slog.String("variant", string(n.Variant)),
	)
}

var _ Notifier = (*LogNotifier)(nil)
