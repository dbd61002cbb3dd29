package account

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/morozovaa/marketplace-account/internal/models"
	"github.com/morozovaa/marketplace-account/pkg/log"
)

// Registry держит живые аккаунты по токену сессии.
//
// Записи — работающие машины состояний (черновик, upload-гейт), поэтому реестр
// in-memory: наружу уходит только то, что уже подтверждено апстримом.
// Неактивные записи вытесняются по TTL фоновой уборкой; logout вытесняет сразу.
type Registry struct {
	deps Deps
	ttl  time.Duration

	// onUpdate подключается к стору каждого нового аккаунта.
	onUpdate []func(models.Profile)

	mu      sync.Mutex
	entries map[string]*registryEntry
}

type registryEntry struct {
	acc      *Account
	lastSeen time.Time
}

// NewRegistry создаёт реестр. ttl <= 0 отключает вытеснение по времени.
func NewRegistry(deps Deps, ttl time.Duration, onUpdate ...func(models.Profile)) *Registry {
	return &Registry{
		deps:     deps,
		ttl:      ttl,
		onUpdate: onUpdate,
		entries:  make(map[string]*registryEntry),
	}
}

// Account возвращает аккаунт сессии, при первом обращении загружая профиль
// из шлюза. Ошибки загрузки маппятся в сентинелы account.
func (r *Registry) Account(ctx context.Context, sess gateway.Session) (*Account, error) {
	const op = "account/registry/Account"

	if sess.Token == "" {
		return nil, fmt.Errorf("%s: empty token: %w", op, ErrNotAuthenticated)
	}

	r.mu.Lock()
	if e, ok := r.entries[sess.Token]; ok {
		e.lastSeen = time.Now()
		acc := e.acc
		r.mu.Unlock()

		return acc, nil
	}
	r.mu.Unlock()

	remote, err := r.deps.Profiles.Profile(ctx, sess)
	if err != nil {
		log.From(ctx).Warn("profile_load_failed", "op", op, "err", err.Error())

		return nil, fmt.Errorf("%s: %w", op, mapGatewayErr(err))
	}

	acc := New(sess, remote, r.deps)
	for _, fn := range r.onUpdate {
		acc.Store().Subscribe(fn)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Параллельная первая загрузка могла успеть раньше — используем её аккаунт,
	// чтобы у сессии была ровно одна машина состояний.
	if e, ok := r.entries[sess.Token]; ok {
		e.lastSeen = time.Now()

		return e.acc, nil
	}

	r.entries[sess.Token] = &registryEntry{acc: acc, lastSeen: time.Now()}

	return acc, nil
}

// Evict удаляет аккаунт сессии (вызывается на logout).
func (r *Registry) Evict(token string) {
	r.mu.Lock()
	delete(r.entries, token)
	r.mu.Unlock()
}

// Len возвращает число живых записей.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Sweep запускает периодическую уборку просроченных записей; останавливается по ctx.
func (r *Registry) Sweep(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}

	lg := log.From(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.sweepOnce(time.Now()); n > 0 {
				lg.Info("sessions_evicted", slog.Int("count", n))
			}
		}
	}
}

// sweepOnce удаляет записи, неактивные дольше ttl; возвращает число удалённых.
func (r *Registry) sweepOnce(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var evicted int

	for token, e := range r.entries {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.entries, token)
			evicted++
		}
	}

	return evicted
}
