package account

import (
	"strings"
	"sync"

	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/morozovaa/marketplace-account/internal/models"
)

// Store держит серверно-подтверждённый снапшот профиля.
//
// Читать снапшот может кто угодно в любой момент (Snapshot отдаёт копию),
// заменять — только коммит-пути (save/платёжные операции/загрузка фото),
// и только после подтверждения шлюзом. Черновик сессии редактирования
// никогда не мутирует снапшот напрямую.
type Store struct {
	mu       sync.RWMutex
	snapshot models.Profile
	subs     []func(models.Profile)
}

// NewStore нормализует сырой профиль апстрима в доменную модель.
func NewStore(remote *gateway.RemoteProfile) *Store {
	first, last := SplitName(remote.Name)

	p := models.Profile{
		ID:             remote.ID,
		FirstName:      first,
		LastName:       last,
		Email:          remote.Email,
		Phone:          remote.Phone,
		Bio:            remote.Bio,
		PhotoURL:       remote.PhotoURL,
		PaymentMethods: remote.PaymentMethods,
	}

	return &Store{snapshot: p.Clone()}
}

// Snapshot возвращает копию текущего снапшота.
func (s *Store) Snapshot() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Clone()
}

// Subscribe регистрирует наблюдателя: он будет вызван с копией снапшота
// после каждого успешного коммита. Явная подписка вместо неявного ререндера;
// порядок вызова наблюдателей не специфицирован.
func (s *Store) Subscribe(fn func(models.Profile)) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// apply заменяет снапшот и оповещает подписчиков.
// Вызывается только после подтверждения коммита шлюзом.
func (s *Store) apply(p models.Profile) {
	s.mu.Lock()
	s.snapshot = p.Clone()
	subs := s.subs
	snap := s.snapshot
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap.Clone())
	}
}

// applyPaymentMethods заменяет только коллекцию платёжных методов.
func (s *Store) applyPaymentMethods(methods []models.PaymentMethod) {
	s.mu.RLock()
	next := s.snapshot.Clone()
	s.mu.RUnlock()

	next.PaymentMethods = methods
	s.apply(next)
}

// applyPhotoURL заменяет только URL фото.
func (s *Store) applyPhotoURL(url string) {
	s.mu.RLock()
	next := s.snapshot.Clone()
	s.mu.RUnlock()

	next.PhotoURL = url
	s.apply(next)
}

// SplitName разбивает имя из апстрима по первому пробельному участку:
// первый токен -> first, остаток (склеенный одиночными пробелами) -> last.
// Без остатка last == "".
func SplitName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}

	return fields[0], strings.Join(fields[1:], " ")
}

// JoinName собирает имя для апстрима: trim обеих частей, одиночный пробел.
func JoinName(first, last string) string {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)

	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
