package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/morozovaa/marketplace-account/internal/models"
	"github.com/morozovaa/marketplace-account/pkg/log"
)

// Операции над платёжными методами.
//
// Каждая операция — отдельный атомарный коммит всей коллекции через шлюз
// (не часть черновика редактирования): строится следующая версия коллекции,
// отправляется апстриму, и только после подтверждения применяется к стору.
// Неудачный коммит оставляет прежнюю коллекцию нетронутой и шлёт уведомление
// об ошибке; частичное применение невозможно.
//
// payMu сериализует операции по профилю между собой: следующая стартует
// только после резолва предыдущей, поэтому поздний ответ не может затереть
// эффект более ранней операции (выбранное разрешение гонки).

// AddPaymentMethod добавляет метод в конец коллекции.
// Нулевой id генерируется; дубликат id — ErrAlreadyExists до вызова шлюза.
// Если новый метод помечен default — флаг снимается с остальных, чтобы
// в коллекции никогда не наблюдалось двух default.
func (a *Account) AddPaymentMethod(ctx context.Context, method models.PaymentMethod) error {
	const op = "account/payments/AddPaymentMethod"

	a.payMu.Lock()
	defer a.payMu.Unlock()

	if method.ID == uuid.Nil {
		method.ID = uuid.New()
	}

	current := a.store.Snapshot().PaymentMethods

	for _, m := range current {
		if m.ID == method.ID {
			return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
	}

	next := make([]models.PaymentMethod, 0, len(current)+1)
	next = append(next, current...)

	if method.IsDefault {
		for i := range next {
			next[i].IsDefault = false
		}
	}

	next = append(next, method)

	return a.commitPaymentMethods(ctx, op, next, "Payment method added", "Could not add payment method")
}

// RemovePaymentMethod удаляет метод по id.
// Неизвестный id — ErrNotFound до вызова шлюза. Удаление текущего default
// не избирает новый: коллекция остаётся без default (решение продукта
// здесь не угадывается, авто-промоушена нет).
func (a *Account) RemovePaymentMethod(ctx context.Context, methodID uuid.UUID) error {
	const op = "account/payments/RemovePaymentMethod"

	a.payMu.Lock()
	defer a.payMu.Unlock()

	current := a.store.Snapshot().PaymentMethods

	next := make([]models.PaymentMethod, 0, len(current))
	found := false

	for _, m := range current {
		if m.ID == methodID {
			found = true
			continue
		}

		next = append(next, m)
	}

	if !found {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return a.commitPaymentMethods(ctx, op, next, "Payment method removed", "Could not remove payment method")
}

// SetDefaultPaymentMethod переназначает default: у каждого элемента
// IsDefault := (id совпал). Неизвестный id — ErrNotFound до вызова шлюза.
func (a *Account) SetDefaultPaymentMethod(ctx context.Context, methodID uuid.UUID) error {
	const op = "account/payments/SetDefaultPaymentMethod"

	a.payMu.Lock()
	defer a.payMu.Unlock()

	current := a.store.Snapshot().PaymentMethods

	next := make([]models.PaymentMethod, len(current))
	found := false

	for i, m := range current {
		m.IsDefault = m.ID == methodID
		if m.IsDefault {
			found = true
		}

		next[i] = m
	}

	if !found {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return a.commitPaymentMethods(ctx, op, next, "Default payment method updated", "Could not update default payment method")
}

// commitPaymentMethods — общий confirm-then-apply путь всех трёх операций.
func (a *Account) commitPaymentMethods(ctx context.Context, op string, next []models.PaymentMethod, okDesc, failDesc string) error {
	methods := next
	update := gateway.ProfileUpdate{PaymentMethods: &methods}

	if err := a.deps.Profiles.UpdateProfile(ctx, a.sess, update); err != nil {
		log.From(ctx).Error("payment_methods_commit_failed", "op", op, "err", err.Error())

		a.notifyResult(ctx, false, "Payment methods", "", failDesc)

		return fmt.Errorf("%s: %w", op, mapGatewayErr(err))
	}

	a.store.applyPaymentMethods(next)
	a.notifyResult(ctx, true, "Payment methods", okDesc, "")

	return nil
}
