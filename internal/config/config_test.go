package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeFile — утилита записи временного файла конфигурации.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

// chdir — смена текущего рабочего каталога с автоматическим откатом.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// Полный корректный YAML (не зависит от дефолтов).
const sampleYAML = `
env: "prod"
http:
  host: "127.0.0.1"
  port: "6000"
metrics:
  host: "127.0.0.1"
  port: "6005"
gateway:
  base_url: "https://core.example.com"
  timeout: "7s"
upload:
  max_size_bytes: 1048576
s3:
  enabled: true
  endpoint: "minio:9000"
  root_user: "minioadmin"
  root_password: "minioadmin"
  bucket: "photos"
  public_base_url: "https://cdn.example.com"
  put_timeout: "20s"
notify:
  redis_url: "redis://localhost:6379/0"
  channel_prefix: "ntf:"
  events_channel: "acc:events"
sessions:
  ttl: "45m"
  sweep_interval: "2m"
timeouts:
  service: "9s"
`

// Минимальный YAML: всё прочее берётся из дефолтов.
const minimalYAML = `
gateway:
  base_url: "https://core.example.com"
`

// Некорректный YAML — для проверки ошибок парсинга.
const brokenYAML = `
gateway:
  base_url: ["https://core.example.com"
`

// TestHTTPConfig_Addr — Addr() собирает host:port.
func TestHTTPConfig_Addr(t *testing.T) {
	t.Parallel()
	cfg := HTTPConfig{Host: "127.0.0.1", Port: "50070"}
	require.Equal(t, "127.0.0.1:50070", cfg.Addr())
}

func TestMetricsConfig_Addr(t *testing.T) {
	t.Parallel()
	cfg := MetricsConfig{Host: "0.0.0.0", Port: "50075"}
	require.Equal(t, "0.0.0.0:50075", cfg.Addr())
}

// TestLoad_WithExplicitPath_OK — явный путь имеет высший приоритет.
func TestLoad_WithExplicitPath_OK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	require.Equal(t, "6000", cfg.HTTP.Port)
	require.Equal(t, "https://core.example.com", cfg.Gateway.BaseURL)
	require.Equal(t, 7*time.Second, cfg.Gateway.Timeout)
	require.EqualValues(t, 1048576, cfg.Upload.MaxSizeBytes)
	require.True(t, cfg.S3.Enabled)
	require.Equal(t, "photos", cfg.S3.Bucket)
	require.Equal(t, "redis://localhost:6379/0", cfg.Notify.RedisURL)
	require.Equal(t, "ntf:", cfg.Notify.ChannelPrefix)
	require.Equal(t, 45*time.Minute, cfg.Sessions.TTL)
	require.Equal(t, 2*time.Minute, cfg.Sessions.SweepInterval)
	require.Equal(t, 9*time.Second, cfg.Timeouts.Service)
}

// TestLoad_WithExplicitPath_FileDoesNotExist — явный путь на несуществующий файл.
func TestLoad_WithExplicitPath_FileDoesNotExist(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(missing)
	require.Error(t, err)
	require.Contains(t, err.Error(), "stat failed")
}

// TestLoad_WithExplicitPath_BrokenYAML — битый YAML по явному пути.
func TestLoad_WithExplicitPath_BrokenYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "broken.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

// TestLoad_WithCONFIG_PATH_OK — путь берётся из CONFIG_PATH, остальное из дефолтов.
func TestLoad_WithCONFIG_PATH_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "from_env_path.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", cfgPath)

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "https://core.example.com", cfg.Gateway.BaseURL)
	// Дефолты для остальных полей.
	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, "50070", cfg.HTTP.Port)
	require.EqualValues(t, 5242880, cfg.Upload.MaxSizeBytes)
	require.False(t, cfg.S3.Enabled)
	require.Equal(t, "notify:", cfg.Notify.ChannelPrefix)
	require.Equal(t, "account:events", cfg.Notify.EventsChannel)
	require.Equal(t, 30*time.Minute, cfg.Sessions.TTL)
	require.Equal(t, 15*time.Second, cfg.Timeouts.Service)
}

// TestLoad_WithLocalYAML_OK — если нет CONFIG_PATH, берётся ./local.yaml.
func TestLoad_WithLocalYAML_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, ".", "local.yaml", sampleYAML)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "https://core.example.com", cfg.Gateway.BaseURL)
}

// TestLoad_EnvOnly_OK — конфигурация полностью из ENV без YAML-файлов.
func TestLoad_EnvOnly_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")

	t.Setenv("ENV", "dev")
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "7001")
	t.Setenv("GATEWAY_BASE_URL", "https://env.example.com")
	t.Setenv("GATEWAY_TIMEOUT", "3s")
	t.Setenv("UPLOAD_MAX_SIZE_BYTES", "2097152")
	t.Setenv("NOTIFY_REDIS_URL", "redis://env:6379/1")
	t.Setenv("SESSIONS_TTL", "10m")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "127.0.0.1:7001", cfg.HTTP.Addr())
	require.Equal(t, "https://env.example.com", cfg.Gateway.BaseURL)
	require.Equal(t, 3*time.Second, cfg.Gateway.Timeout)
	require.EqualValues(t, 2097152, cfg.Upload.MaxSizeBytes)
	require.Equal(t, "redis://env:6379/1", cfg.Notify.RedisURL)
	require.Equal(t, 10*time.Minute, cfg.Sessions.TTL)
}

// TestLoad_EnvOverridesFile — ENV перекрывает значение из файла.
func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "9999", cfg.HTTP.Port)
}
