// gateway содержит контракт удалённого API платформы (core API),
// которым пользуется account-сервис.
//
// Шлюз — единственная граница durable-записи: сервис не владеет своим
// хранилищем, каждое изменение профиля подтверждается апстримом.
// Идентичность сессии передаётся явно (Session) в каждый вызов —
// никакого ambient-состояния.
package gateway

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/morozovaa/marketplace-account/internal/models"
)

var (
	// ErrNotAuthenticated — сессионный токен отсутствует/просрочен/отозван.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotFound — профиль не найден апстримом.
	ErrNotFound = errors.New("not found")
	// ErrValidation — апстрим отклонил значения полей.
	ErrValidation = errors.New("validation failed")
	// ErrConflict — конкурентное изменение другой сессией.
	ErrConflict = errors.New("conflict")
	// ErrUpload — апстрим не принял загрузку фото.
	ErrUpload = errors.New("upload failed")
	// ErrNetwork — транспортная ошибка/недоступность апстрима.
	ErrNetwork = errors.New("network failure")
)

// Session — явный контекст сессии для всех вызовов шлюза.
type Session struct {
	Token string
}

// ProfileUpdate — частичный апдейт профиля.
// Параметры задаются pointer-полями: апстриму уходят только непустые указатели.
// Полная перезапись профиля запрещена: независимые коммиты (поля редактирования,
// photo_url, payment_methods) не должны затирать чужие поля.
type ProfileUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	Bio            *string
	PhotoURL       *string
	PaymentMethods *[]models.PaymentMethod
}

// Empty сообщает, что апдейт не содержит ни одного поля.
func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil &&
		u.Bio == nil && u.PhotoURL == nil && u.PaymentMethods == nil
}

// Photo — бинарное содержимое загружаемого изображения.
type Photo struct {
	Content     []byte
	ContentType string
	Size        int64
	Filename    string
}

// RemoteProfile — сырой профиль в том виде, в котором его отдаёт апстрим:
// имя одной строкой, до нормализации в models.Profile (см. account.Store).
type RemoteProfile struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Phone          string
	Bio            string
	PhotoURL       string
	PaymentMethods []models.PaymentMethod
}

// Profiles — контракт операций с профилем текущего пользователя.
type Profiles interface {
	// Profile возвращает профиль владельца сессии.
	Profile(ctx context.Context, sess Session) (*RemoteProfile, error)
	// UpdateProfile выполняет частичное обновление полей, указанных в update.
	UpdateProfile(ctx context.Context, sess Session, update ProfileUpdate) error
	// Logout завершает сессию на стороне платформы.
	Logout(ctx context.Context, sess Session) error
}

// Photos — контракт загрузки фото профиля.
// Реализации: httpapi (multipart через core API) и s3 (напрямую в бакет).
type Photos interface {
	// UploadPhoto загружает изображение и возвращает его публичный URL.
	UploadPhoto(ctx context.Context, sess Session, ownerID uuid.UUID, photo Photo) (string, error)
}

// Gateway — верхнеуровневый интерфейс шлюза для внедрения зависимости.
type Gateway interface {
	Profiles
	Photos
}
