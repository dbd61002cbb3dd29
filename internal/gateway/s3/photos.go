// s3 предоставляет реализацию gateway.Photos поверх MinIO/S3:
// изображение кладётся напрямую в бакет, наружу отдаётся публичный URL.
// Используется в деплойментах, где фото не проксируются через core API.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/morozovaa/marketplace-account/internal/config"
	"github.com/morozovaa/marketplace-account/internal/gateway"
)

// PhotoStorage — адаптер MinIO для загрузки фото профиля.
type PhotoStorage struct {
	cfg    config.S3Config
	client *mclient.Client
}

// New создает и инициализирует клиент MinIO.
// Делает endpoint-перенастройку (убирает схему), подбирает Secure по схеме
// и выполняет fail-fast-проверку доступности бакета.
func New(ctx context.Context, cfg config.S3Config) (*PhotoStorage, error) {
	const op = "gateway/s3/New"

	endpoint := cfg.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.RootUser, cfg.RootPassword, ""),
		Secure: secure,
	})

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.Bucket)
	}

	return &PhotoStorage{cfg: cfg, client: client}, nil
}

// UploadPhoto кладёт объект под ключ "photos/<ownerID>/<uuid>.<ext>"
// и возвращает публичный URL (PublicBaseURL + key).
// Сессия в прямой загрузке не участвует: доступ к бакету — по ключам сервиса.
func (s *PhotoStorage) UploadPhoto(ctx context.Context, _ gateway.Session, ownerID uuid.UUID, photo gateway.Photo) (string, error) {
	const op = "gateway/s3/UploadPhoto"

	key := path.Join("photos", ownerID.String(), uuid.NewString()+extByContentType(photo.ContentType))

	if s.cfg.PutTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.PutTimeout)
		defer cancel()
	}

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key,
		bytes.NewReader(photo.Content), photo.Size,
		mclient.PutObjectOptions{ContentType: photo.ContentType},
	)
	if err != nil {
		return "", fmt.Errorf("%s: put object: %v: %w", op, err, gateway.ErrUpload)
	}

	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
	if base == "" {
		return "", fmt.Errorf("%s: public base url is not configured: %w", op, gateway.ErrUpload)
	}

	return base + "/" + key, nil
}

// extByContentType подбирает расширение по типу содержимого.
func extByContentType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}

var _ gateway.Photos = (*PhotoStorage)(nil)
