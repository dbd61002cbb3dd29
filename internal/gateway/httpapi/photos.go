package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/google/uuid"
	"github.com/morozovaa/marketplace-account/internal/gateway"
)

// UploadPhoto загружает изображение multipart-запросом:
// POST /v1/profile/photo, поле "photo". Возвращает публичный URL из ответа.
//
// Отказ апстрима (кроме проблем аутентификации и сети) маппится
// в gateway.ErrUpload: для вызывающего это единый класс "загрузка не принята".
func (c *Client) UploadPhoto(ctx context.Context, sess gateway.Session, ownerID uuid.UUID, photo gateway.Photo) (string, error) {
	const op = "gateway/httpapi/UploadPhoto"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename=%q`, photo.Filename))
	header.Set("Content-Type", photo.ContentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("%s: multipart: %w", op, err)
	}

	if _, err := part.Write(photo.Content); err != nil {
		return "", fmt.Errorf("%s: multipart: %w", op, err)
	}

	if err := mw.WriteField("owner_id", ownerID.String()); err != nil {
		return "", fmt.Errorf("%s: multipart: %w", op, err)
	}

	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%s: multipart: %w", op, err)
	}

	var out struct {
		URL string `json:"url"`
	}

	err = c.do(ctx, sess, http.MethodPost, "/v1/profile/photo", mw.FormDataContentType(), &buf, &out)
	if err != nil {
		// Валидационные/конфликтные отказы этого эндпойнта — класс upload.
		if errors.Is(err, gateway.ErrValidation) || errors.Is(err, gateway.ErrConflict) {
			return "", fmt.Errorf("%s: %w", op, gateway.ErrUpload)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if out.URL == "" {
		return "", fmt.Errorf("%s: empty url in response: %w", op, gateway.ErrUpload)
	}

	return out.URL, nil
}
