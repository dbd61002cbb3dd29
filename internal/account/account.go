// account содержит бизнес-логику account-сервиса:
// - стор серверно-подтверждённого снапшота профиля (store.go);
// - сессия редактирования с машиной состояний VIEWING/EDITING/SAVING (session.go);
// - операции над платёжными методами с инвариантом одного default (payments.go);
// - загрузка фото профиля с локальной валидацией и in-flight гейтом (upload.go);
// - реестр живых сессий аккаунта (registry.go).
//
// Все durable-изменения идут через шлюз по схеме confirm-then-apply:
// локальное состояние обновляется только после подтверждения апстримом,
// неудачный коммит оставляет прежнее состояние нетронутым.
package account

import (
	"context"
	"errors"
	"sync"

	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/morozovaa/marketplace-account/internal/models"
	"github.com/morozovaa/marketplace-account/internal/notify"
	"github.com/morozovaa/marketplace-account/pkg/log"
)

var (
	// ErrInvalidState — операция недопустима в текущем режиме сессии.
	ErrInvalidState = errors.New("invalid state")
	// ErrSaveInProgress — повторный save при незавершённом предыдущем.
	ErrSaveInProgress = errors.New("save in progress")
	// ErrUploadInFlight — загрузка фото уже выполняется.
	ErrUploadInFlight = errors.New("upload in flight")
	// ErrInvalidFileType — файл не является изображением.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrFileTooLarge — файл превышает лимит размера.
	ErrFileTooLarge = errors.New("file too large")
	// ErrNotFound — сущность (профиль/платёжный метод) не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — платёжный метод с таким id уже есть в коллекции.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotAuthenticated — сессия не аутентифицирована апстримом.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrValidation — апстрим отклонил значения полей.
	ErrValidation = errors.New("validation failed")
	// ErrConflict — конкурентное изменение другой сессией.
	ErrConflict = errors.New("conflict")
	// ErrUpstream — апстрим недоступен/внутренняя ошибка шлюза.
	ErrUpstream = errors.New("upstream unavailable")
)

// Deps — зависимости аккаунта.
type Deps struct {
	Profiles gateway.Profiles
	Photos   gateway.Photos
	Notifier notify.Notifier
	// MaxPhotoSize — лимит размера фото в байтах; 0 означает дефолт 5 MiB.
	MaxPhotoSize int64
}

const defaultMaxPhotoSize = 5 << 20 // 5 MiB

// Account — состояние одной пользовательской сессии аккаунта.
//
// mu защищает режим сессии, черновик и upload-гейт; вызовы шлюза выполняются
// вне mu, поэтому редактирование полей и загрузка фото могут идти параллельно.
// payMu сериализует операции над платёжными методами между собой (см. payments.go).
type Account struct {
	sess  gateway.Session
	deps  Deps
	store *Store

	mu             sync.Mutex
	mode           Mode
	draft          models.Profile
	uploadInFlight bool

	payMu sync.Mutex
}

// New собирает аккаунт поверх сырого профиля, полученного из шлюза.
func New(sess gateway.Session, remote *gateway.RemoteProfile, deps Deps) *Account {
	if deps.MaxPhotoSize <= 0 {
		deps.MaxPhotoSize = defaultMaxPhotoSize
	}

	return &Account{
		sess:  sess,
		deps:  deps,
		store: NewStore(remote),
		mode:  ModeViewing,
	}
}

// Store возвращает стор снапшота (для подписки потребителей).
func (a *Account) Store() *Store { return a.store }

// Session возвращает явный сессионный контекст аккаунта.
func (a *Account) Session() gateway.Session { return a.sess }

// Logout завершает сессию на стороне платформы.
// Локальное состояние вытесняется реестром (см. Registry.Evict).
func (a *Account) Logout(ctx context.Context) error {
	const op = "account/account/Logout"

	if err := a.deps.Profiles.Logout(ctx, a.sess); err != nil {
		log.From(ctx).Error("logout_failed", "op", op, "err", err.Error())

		return mapGatewayErr(err)
	}

	return nil
}

// notifyResult отправляет исход операции в синк уведомлений.
// Описание всегда generic: внутренняя таксономия ошибок наружу не уходит.
func (a *Account) notifyResult(ctx context.Context, ok bool, title, okDesc, failDesc string) {
	n := notify.Notification{Title: title, Description: okDesc, Variant: notify.VariantSuccess}
	if !ok {
		n.Description = failDesc
		n.Variant = notify.VariantError
	}

	a.deps.Notifier.Push(ctx, a.store.Snapshot().ID, n)
}

// mapGatewayErr маппит ошибки шлюза в сентинелы слоя account.
func mapGatewayErr(err error) error {
	switch {
	case errors.Is(err, gateway.ErrNotAuthenticated):
		return ErrNotAuthenticated
	case errors.Is(err, gateway.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, gateway.ErrValidation):
		return ErrValidation
	case errors.Is(err, gateway.ErrConflict):
		return ErrConflict
	default:
		return ErrUpstream
	}
}
