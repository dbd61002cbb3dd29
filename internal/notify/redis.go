package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/morozovaa/marketplace-account/internal/models"
	"github.com/morozovaa/marketplace-account/pkg/log"
	"github.com/redis/go-redis/v9"
)

// RedisNotifier публикует уведомления в Redis pub/sub: канал "<prefix><userID>",
// полезная нагрузка — JSON Notification. Браузерная сторона подписана на свой
// канал и показывает тосты без опроса.
//
// Дополнительно публикует событие profile.updated в общий events-канал —
// явная шина "стор -> потребители" вместо неявного ререндера.
type RedisNotifier struct {
	rdb           *redis.Client
	prefix        string
	eventsChannel string
}

// NewRedisNotifier создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "notify:".
func NewRedisNotifier(redisURL, prefix, eventsChannel string) (*RedisNotifier, error) {
	if prefix == "" {
		prefix = "notify:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisNotifier{rdb: rdb, prefix: prefix, eventsChannel: eventsChannel}, nil
}

func (n *RedisNotifier) channel(userID uuid.UUID) string {
	return n.prefix + userID.String()
}

func (n *RedisNotifier) Push(ctx context.Context, userID uuid.UUID, note Notification) {
	payload, err := json.Marshal(note)
	if err != nil {
		log.From(ctx).Warn("notify_marshal_failed", slog.String("err", err.Error()))
		return
	}

	if err := n.rdb.Publish(ctx, n.channel(userID), payload).Err(); err != nil {
		log.From(ctx).Warn("notify_publish_failed",
			slog.String("channel", n.channel(userID)),
			slog.String("err", err.Error()),
		)
	}
}

// profileEvent — полезная нагрузка события обновления профиля.
type profileEvent struct {
	Kind        string `json:"kind"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// PublishProfileUpdated отправляет снапшот-событие в общий events-канал.
// Подключается подписчиком к account.Store (см. cmd main).
func (n *RedisNotifier) PublishProfileUpdated(ctx context.Context, p models.Profile) {
	if n.eventsChannel == "" {
		return
	}

	payload, err := json.Marshal(profileEvent{
		Kind:        "profile.updated",
		UserID:      p.ID.String(),
		DisplayName: p.DisplayName(),
		PhotoURL:    p.PhotoURL,
	})
	if err != nil {
		log.From(ctx).Warn("event_marshal_failed", slog.String("err", err.Error()))
		return
	}

	if err := n.rdb.Publish(ctx, n.eventsChannel, payload).Err(); err != nil {
		log.From(ctx).Warn("event_publish_failed",
			slog.String("channel", n.eventsChannel),
			slog.String("err", err.Error()),
		)
	}
}

// Close закрывает клиент Redis.
func (n *RedisNotifier) Close() error { return n.rdb.Close() }

var _ Notifier = (*RedisNotifier)(nil)
