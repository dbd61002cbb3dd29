// config - источник загрузки конфигурации account-сервиса.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Metrics  MetricsConfig `yaml:"metrics"`
	Gateway  GatewayConfig `yaml:"gateway"`
	Upload   UploadConfig  `yaml:"upload"`
	S3       S3Config      `yaml:"s3"`
	Notify   NotifyConfig  `yaml:"notify"`
	Sessions SessionConfig `yaml:"sessions"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// HTTPConfig — публичный REST-сервер (BFF для браузера).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50070"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// MetricsConfig — отдельный HTTP для Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"50075"`
}

func (m MetricsConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

// GatewayConfig — core API платформы (JSON-over-HTTP).
type GatewayConfig struct {
	BaseURL string        `yaml:"base_url" env:"GATEWAY_BASE_URL" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"timeout"  env:"GATEWAY_TIMEOUT"  env-default:"10s"`
}

// UploadConfig — ограничения загрузки фото профиля.
// Загрузка валидируется локально до обращения к шлюзу.
type UploadConfig struct {
	// MaxSizeBytes — максимальный размер файла; по умолчанию 5 MiB.
	MaxSizeBytes int64 `yaml:"max_size_bytes" env:"UPLOAD_MAX_SIZE_BYTES" env-default:"5242880"`
}

// S3Config — прямое хранилище фото (MinIO/S3).
// Используется вместо multipart-загрузки через core API, если Enabled = true.
type S3Config struct {
	Enabled       bool          `yaml:"enabled"         env:"S3_ENABLED"         env-default:"false"`
	Endpoint      string        `yaml:"endpoint"        env:"S3_ENDPOINT"        env-default:""`
	RootUser      string        `yaml:"root_user"       env:"S3_ROOT_USER"       env-default:""`
	RootPassword  string        `yaml:"root_password"   env:"S3_ROOT_PASSWORD"   env-default:""`
	Bucket        string        `yaml:"bucket"          env:"S3_BUCKET"          env-default:"profile-photos"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL" env-default:""`
	PutTimeout    time.Duration `yaml:"put_timeout"     env:"S3_PUT_TIMEOUT"     env-default:"30s"`
}

// NotifyConfig — доставка уведомлений фронту через Redis pub/sub.
// Пустой URL отключает Redis-синк (остаётся только лог).
type NotifyConfig struct {
	RedisURL      string `yaml:"redis_url"      env:"NOTIFY_REDIS_URL"      env-default:""`
	ChannelPrefix string `yaml:"channel_prefix" env:"NOTIFY_CHANNEL_PREFIX" env-default:"notify:"`
	EventsChannel string `yaml:"events_channel" env:"NOTIFY_EVENTS_CHANNEL" env-default:"account:events"`
}

// SessionConfig — реестр серверных сессий аккаунта.
type SessionConfig struct {
	// TTL — срок неактивности, после которого сессия вытесняется из реестра.
	TTL time.Duration `yaml:"ttl" env:"SESSIONS_TTL" env-default:"30m"`
	// SweepInterval — период фоновой уборки просроченных сессий.
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SESSIONS_SWEEP_INTERVAL" env-default:"5m"`
}

// TimeoutConfig — таймаут обработки входящего запроса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// MustLoad — паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 4) только ENV
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
