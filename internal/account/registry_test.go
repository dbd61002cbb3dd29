package account

// Тесты реестра живых сессий (internal/account/registry.go).
//
//  Проверяем:
//  - пустой токен -> ErrNotAuthenticated без обращения к шлюзу;
//  - ленивую загрузку профиля ровно один раз на сессию;
//  - маппинг ошибок загрузки в сентинелы account;
//  - подписку onUpdate на стор нового аккаунта;
//  - Evict и вытеснение по TTL (sweepOnce).
//
// Запуск:
//   go test ./internal/account -v -race -count=1

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/morozovaa/marketplace-account/internal/models"
	"github.com/morozovaa/marketplace-account/mocks"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, ttl time.Duration, onUpdate ...func(models.Profile)) (*Registry, *mocks.MockProfiles) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mp := mocks.NewMockProfiles(ctrl)
	deps := Deps{
		Profiles: mp,
		Photos:   mocks.NewMockPhotos(ctrl),
		Notifier: mocks.NewMockNotifier(ctrl),
	}

	return NewRegistry(deps, ttl, onUpdate...), mp
}

func TestRegistry_EmptyToken(t *testing.T) {
	reg, _ := newTestRegistry(t, time.Minute)

	_, err := reg.Account(context.Background(), gateway.Session{})
	require.ErrorIs(t, err, ErrNotAuthenticated)
	require.Equal(t, 0, reg.Len())
}

// Профиль грузится из шлюза один раз, повторные обращения отдают ту же запись.
func TestRegistry_LazyLoadOnce(t *testing.T) {
	reg, mp := newTestRegistry(t, time.Minute)

	sess := gateway.Session{Token: "tkn"}
	mp.EXPECT().Profile(gomock.Any(), sess).Return(remoteFixture("Ada Lovelace"), nil).Times(1)

	first, err := reg.Account(context.Background(), sess)
	require.NoError(t, err)

	second, err := reg.Account(context.Background(), sess)
	require.NoError(t, err)

	require.Same(t, first, second)
	require.Equal(t, 1, reg.Len())
}

func TestRegistry_LoadFailure(t *testing.T) {
	reg, mp := newTestRegistry(t, time.Minute)

	sess := gateway.Session{Token: "tkn"}
	mp.EXPECT().Profile(gomock.Any(), sess).Return(nil, gateway.ErrNotAuthenticated)

	_, err := reg.Account(context.Background(), sess)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	require.Equal(t, 0, reg.Len())
}

// onUpdate-подписчики получают снапшот после apply стора нового аккаунта.
func TestRegistry_OnUpdateSubscription(t *testing.T) {
	var got []models.Profile
	reg, mp := newTestRegistry(t, time.Minute, func(p models.Profile) { got = append(got, p) })

	sess := gateway.Session{Token: "tkn"}
	mp.EXPECT().Profile(gomock.Any(), sess).Return(remoteFixture("Ada Lovelace"), nil)

	acc, err := reg.Account(context.Background(), sess)
	require.NoError(t, err)

	next := acc.Store().Snapshot()
	next.Bio = "countess"
	acc.Store().apply(next)

	require.Len(t, got, 1)
	require.Equal(t, "countess", got[0].Bio)
}

func TestRegistry_Evict(t *testing.T) {
	reg, mp := newTestRegistry(t, time.Minute)

	sess := gateway.Session{Token: "tkn"}
	mp.EXPECT().Profile(gomock.Any(), sess).Return(remoteFixture("Ada Lovelace"), nil).Times(2)

	first, err := reg.Account(context.Background(), sess)
	require.NoError(t, err)

	reg.Evict(sess.Token)
	require.Equal(t, 0, reg.Len())

	// После вытеснения профиль грузится заново.
	second, err := reg.Account(context.Background(), sess)
	require.NoError(t, err)
	require.NotSame(t, first, second)
}

// sweepOnce вытесняет только записи, неактивные дольше ttl.
func TestRegistry_SweepOnce(t *testing.T) {
	reg, mp := newTestRegistry(t, time.Minute)

	stale := gateway.Session{Token: "stale"}
	fresh := gateway.Session{Token: "fresh"}
	mp.EXPECT().Profile(gomock.Any(), gomock.Any()).Return(remoteFixture("Ada Lovelace"), nil).Times(2)

	_, err := reg.Account(context.Background(), stale)
	require.NoError(t, err)
	_, err = reg.Account(context.Background(), fresh)
	require.NoError(t, err)

	reg.mu.Lock()
	reg.entries[stale.Token].lastSeen = time.Now().Add(-2 * time.Minute)
	reg.mu.Unlock()

	require.Equal(t, 1, reg.sweepOnce(time.Now()))
	require.Equal(t, 1, reg.Len())

	_, ok := func() (*registryEntry, bool) {
		reg.mu.Lock()
		defer reg.mu.Unlock()
		e, ok := reg.entries[fresh.Token]
		return e, ok
	}()
	require.True(t, ok)
}
