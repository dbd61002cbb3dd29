package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/morozovaa/marketplace-account/internal/account"
	"github.com/morozovaa/marketplace-account/internal/config"
	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/morozovaa/marketplace-account/internal/gateway/httpapi"
	"github.com/morozovaa/marketplace-account/internal/gateway/s3"
	"github.com/morozovaa/marketplace-account/internal/models"
	"github.com/morozovaa/marketplace-account/internal/notify"
	accounthttp "github.com/morozovaa/marketplace-account/internal/transport/http"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting account-service", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// Шлюз core API (JSON-over-HTTP).
	apiClient := httpapi.New(cfg.Gateway.BaseURL, cfg.Gateway.Timeout)
	log.Info("gateway_client_initialized", slog.String("base_url", cfg.Gateway.BaseURL))

	// Загрузка фото: либо напрямую в S3/MinIO, либо multipart через core API.
	var photos gateway.Photos = apiClient
	if cfg.S3.Enabled {
		s3Ctx, s3Cancel := context.WithTimeout(rootCtx, 10*time.Second)
		photoStore, err := s3.New(s3Ctx, cfg.S3)
		s3Cancel()
		if err != nil {
			log.Error("s3_connect_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}

		photos = photoStore
		log.Info("s3_connected", slog.String("bucket", cfg.S3.Bucket))
	}

	// Синк уведомлений: Redis pub/sub, если сконфигурирован, иначе лог.
	var notifier notify.Notifier = notify.NewLogNotifier()
	var onUpdate []func(models.Profile)

	if cfg.Notify.RedisURL != "" {
		redisNotifier, err := notify.NewRedisNotifier(cfg.Notify.RedisURL, cfg.Notify.ChannelPrefix, cfg.Notify.EventsChannel)
		if err != nil {
			log.Error("redis_connect_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if cerr := redisNotifier.Close(); cerr != nil {
				log.Warn("redis_close_failed", slog.String("err", cerr.Error()))
			}
		}()

		notifier = redisNotifier
		// Явная шина обновлений профиля для подписанных потребителей.
		onUpdate = append(onUpdate, func(p models.Profile) {
			redisNotifier.PublishProfileUpdated(context.Background(), p)
		})
		log.Info("redis_connected")
	}

	deps := account.Deps{
		Profiles:     apiClient,
		Photos:       photos,
		Notifier:     notifier,
		MaxPhotoSize: cfg.Upload.MaxSizeBytes,
	}

	registry := account.NewRegistry(deps, cfg.Sessions.TTL, onUpdate...)
	go registry.Sweep(rootCtx, cfg.Sessions.SweepInterval)
	log.Info("registry_initialized", slog.Duration("ttl", cfg.Sessions.TTL))

	apiHandler := accounthttp.NewRouter(registry, accounthttp.Options{
		Logger:         log,
		Timeout:        cfg.Timeouts.Service,
		MaxUploadBytes: cfg.Upload.MaxSizeBytes + (1 << 20), // заголовки multipart сверх лимита файла
		BasePath:       "",
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("account_service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}
}

// setupLogger настраивает slog под окружение:
// local — текст/debug; dev — JSON/debug; prod — JSON/info.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}
