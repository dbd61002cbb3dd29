package s3

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/morozovaa/marketplace-account/internal/config"
	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета s3:
// — поднимают реальный MinIO через testcontainers-go;
// — создают бакет для фото профилей;
// — проверяют:
//    New: успешное подключение и ошибку при отсутствии бакета;
//    UploadPhoto: укладку объекта под ключ photos/<ownerID>/... и публичный URL.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/gateway/s3 -v -race -count=1

func startMinio(t *testing.T, createBucket bool) (*PhotoStorage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		image        = "docker.io/minio/minio:latest"
		rootUser     = "root"
		rootPassword = "rootpass"
		bucket       = "profile-photos"
	)
	req := tc.ContainerRequest{
		Image: image,
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data", "--console-address", ":9001"},
		ExposedPorts: []string{"9000/tcp", "9001/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting minio container with image=%q", image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")
	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
			Secure: false,
		})
		require.NoError(t, err)
		err = admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"})
		require.NoError(t, err)
	}

	cfg := config.S3Config{
		Endpoint:      endpoint,
		RootUser:      rootUser,
		RootPassword:  rootPassword,
		Bucket:        bucket,
		PublicBaseURL: "http://cdn.local",
		PutTimeout:    30 * time.Second,
	}

	st, newErr := New(ctx, cfg)
	if !createBucket {
		require.Error(t, newErr)
		_ = c.Terminate(context.Background())
		return nil, func() {}
	}
	require.NoError(t, newErr)

	cleanup := func() {
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	// Без предварительного создания бакета New должен вернуть ошибку.
	_, _ = startMinio(t, false)
}

func TestIntegration_UploadPhoto_OK(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	ownerID := uuid.New()
	content := []byte("png-bytes")

	photo := gateway.Photo{
		Content:     content,
		ContentType: "image/png",
		Size:        int64(len(content)),
		Filename:    "avatar.png",
	}

	url, err := st.UploadPhoto(context.Background(), gateway.Session{}, ownerID, photo)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://cdn.local/photos/"+ownerID.String()+"/"))
	require.True(t, strings.HasSuffix(url, ".png"))

	// Объект реально лежит в бакете под ключом из URL.
	key := strings.TrimPrefix(url, "http://cdn.local/")
	obj, err := st.client.GetObject(context.Background(), st.cfg.Bucket, key, mclient.GetObjectOptions{})
	require.NoError(t, err)

	got, err := io.ReadAll(obj)
	require.NoError(t, err)
	require.Equal(t, content, got)

	stat, err := st.client.StatObject(context.Background(), st.cfg.Bucket, key, mclient.StatObjectOptions{})
	require.NoError(t, err)
	require.Equal(t, "image/png", stat.ContentType)
}
