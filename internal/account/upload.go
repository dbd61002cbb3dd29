package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/morozovaa/marketplace-account/pkg/log"
)

// UploadPhoto загружает фото профиля. Независима от сессии редактирования:
// может идти параллельно с правкой полей, коммитит только photo_url.
//
// Порядок:
//  1. локальная валидация: ContentType начинается с "image/" (иначе
//     ErrInvalidFileType), Size в пределах лимита (иначе ErrFileTooLarge) —
//     шлюз при отказе не вызывается, уведомление об ошибке отправляется;
//  2. взводится in-flight гейт: вторая загрузка при незавершённой первой —
//     ErrUploadInFlight без обращения к шлюзу;
//  3. загрузка через Photos, затем коммит {photo_url} через Profiles;
//  4. успех — photo_url применяется к стору, уведомление об успехе;
//     любой отказ — гейт сброшен, стор нетронут, уведомление об ошибке.
func (a *Account) UploadPhoto(ctx context.Context, photo gateway.Photo) error {
	const op = "account/upload/UploadPhoto"

	lg := log.From(ctx).With("op", op)

	if !strings.HasPrefix(photo.ContentType, "image/") {
		lg.Warn("rejected_content_type", "content_type", photo.ContentType)

		a.notifyResult(ctx, false, "Profile photo", "", "Only image files can be uploaded")

		return fmt.Errorf("%s: %w", op, ErrInvalidFileType)
	}

	if photo.Size <= 0 || photo.Size > a.deps.MaxPhotoSize {
		lg.Warn("rejected_size", "size", photo.Size, "limit", a.deps.MaxPhotoSize)

		a.notifyResult(ctx, false, "Profile photo", "", "Photo is too large")

		return fmt.Errorf("%s: %w", op, ErrFileTooLarge)
	}

	a.mu.Lock()
	if a.uploadInFlight {
		a.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrUploadInFlight)
	}
	a.uploadInFlight = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.uploadInFlight = false
		a.mu.Unlock()
	}()

	ownerID := a.store.Snapshot().ID

	url, err := a.deps.Photos.UploadPhoto(ctx, a.sess, ownerID, photo)
	if err != nil {
		lg.Error("photo_upload_failed", "err", err.Error())

		a.notifyResult(ctx, false, "Profile photo", "", "Could not upload profile photo")

		return fmt.Errorf("%s: %w", op, mapGatewayErr(err))
	}

	update := gateway.ProfileUpdate{PhotoURL: &url}
	if err := a.deps.Profiles.UpdateProfile(ctx, a.sess, update); err != nil {
		lg.Error("photo_commit_failed", "err", err.Error())

		a.notifyResult(ctx, false, "Profile photo", "", "Could not upload profile photo")

		return fmt.Errorf("%s: %w", op, mapGatewayErr(err))
	}

	a.store.applyPhotoURL(url)
	a.notifyResult(ctx, true, "Profile photo", "Profile photo updated", "")

	return nil
}

// UploadInFlight сообщает, выполняется ли загрузка фото
// (транспорт по этому признаку гасит триггер на фронте).
func (a *Account) UploadInFlight() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.uploadInFlight
}
