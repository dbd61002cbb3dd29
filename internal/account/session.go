package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/morozovaa/marketplace-account/internal/gateway"
	"github.com/morozovaa/marketplace-account/internal/models"
	"github.com/morozovaa/marketplace-account/pkg/log"
)

// Mode — режим сессии редактирования профиля.
type Mode string

const (
	ModeViewing Mode = "viewing"
	ModeEditing Mode = "editing"
	ModeSaving  Mode = "saving"
)

// DraftUpdate — изменение полей черновика.
// Параметры задаются pointer-полями: применяются только непустые указатели.
// Форматы email/телефона здесь не проверяются — это забота представления
// и апстрима (ErrValidation при отказе).
type DraftUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Bio       *string
}

// Mode возвращает текущий режим сессии.
func (a *Account) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.mode
}

// Draft возвращает копию черновика и признак его наличия
// (черновик существует в режимах editing/saving).
func (a *Account) Draft() (models.Profile, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mode == ModeViewing {
		return models.Profile{}, false
	}

	return a.draft.Clone(), true
}

// BeginEdit переводит сессию viewing -> editing, копируя снапшот в черновик.
// Из любого другого режима — ErrInvalidState.
func (a *Account) BeginEdit() error {
	const op = "account/session/BeginEdit"

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mode != ModeViewing {
		return fmt.Errorf("%s: mode %s: %w", op, a.mode, ErrInvalidState)
	}

	a.draft = a.store.Snapshot()
	a.mode = ModeEditing

	return nil
}

// UpdateDraft применяет изменение полей к черновику. Только в editing.
// Мутируется исключительно черновик: снапшот стора не меняется до save.
func (a *Account) UpdateDraft(update DraftUpdate) error {
	const op = "account/session/UpdateDraft"

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mode != ModeEditing {
		if a.mode == ModeSaving {
			return fmt.Errorf("%s: %w", op, ErrSaveInProgress)
		}

		return fmt.Errorf("%s: mode %s: %w", op, a.mode, ErrInvalidState)
	}

	if update.FirstName != nil {
		a.draft.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		a.draft.LastName = *update.LastName
	}
	if update.Email != nil {
		a.draft.Email = *update.Email
	}
	if update.Phone != nil {
		a.draft.Phone = *update.Phone
	}
	if update.Bio != nil {
		a.draft.Bio = *update.Bio
	}

	return nil
}

// Cancel отбрасывает черновик и возвращает сессию в viewing. Только из editing.
// Стор не затрагивается.
func (a *Account) Cancel() error {
	const op = "account/session/Cancel"

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mode != ModeEditing {
		if a.mode == ModeSaving {
			return fmt.Errorf("%s: %w", op, ErrSaveInProgress)
		}

		return fmt.Errorf("%s: mode %s: %w", op, a.mode, ErrInvalidState)
	}

	a.draft = models.Profile{}
	a.mode = ModeViewing

	return nil
}

// Save коммитит черновик: editing -> saving, частичный апдейт изменённых полей
// через шлюз, затем:
//   - успех: черновик промоутится в снапшот стора, saving -> viewing,
//     уведомление об успехе;
//   - отказ: saving -> editing с сохранённым черновиком (введённое не теряется),
//     снапшот нетронут, уведомление об ошибке; причина — только в лог.
//
// Повторный Save при незавершённом предыдущем — ErrSaveInProgress,
// шлюз не вызывается.
func (a *Account) Save(ctx context.Context) error {
	const op = "account/session/Save"

	lg := log.From(ctx).With("op", op)

	a.mu.Lock()

	switch a.mode {
	case ModeSaving:
		a.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrSaveInProgress)
	case ModeViewing:
		a.mu.Unlock()
		return fmt.Errorf("%s: mode %s: %w", op, ModeViewing, ErrInvalidState)
	}

	a.mode = ModeSaving
	draft := a.draft.Clone()
	a.mu.Unlock()

	update := diffDraft(a.store.Snapshot(), draft)

	// Пустой дифф — коммитить нечего, шлюз не трогаем.
	if update.Empty() {
		a.mu.Lock()
		a.draft = models.Profile{}
		a.mode = ModeViewing
		a.mu.Unlock()

		a.notifyResult(ctx, true, "Profile", "Profile saved", "")

		return nil
	}

	if err := a.deps.Profiles.UpdateProfile(ctx, a.sess, update); err != nil {
		lg.Error("profile_save_failed", "err", err.Error())

		a.mu.Lock()
		a.mode = ModeEditing // черновик сохранён, пользователь может повторить
		a.mu.Unlock()

		a.notifyResult(ctx, false, "Profile", "", "Could not save profile changes")

		return fmt.Errorf("%s: %w", op, mapGatewayErr(err))
	}

	a.mu.Lock()
	a.draft = models.Profile{}
	a.mode = ModeViewing
	a.mu.Unlock()

	// Локально применяем ровно те поля, которые коммитил save: черновик
	// снят при begin и мог устареть — параллельно подтверждённые photo_url
	// и платёжные методы затирать нельзя. Имя промоутим в том же
	// нормализованном виде, в котором оно ушло апстриму.
	next := a.store.Snapshot()
	next.FirstName = strings.TrimSpace(draft.FirstName)
	next.LastName = strings.TrimSpace(draft.LastName)
	next.Email = draft.Email
	next.Phone = draft.Phone
	next.Bio = draft.Bio
	a.store.apply(next)

	a.notifyResult(ctx, true, "Profile", "Profile saved", "")

	return nil
}

// diffDraft собирает частичный апдейт из полей черновика, отличающихся
// от снапшота. Имя уходит апстриму одной строкой (trim + одиночный пробел).
func diffDraft(snap, draft models.Profile) gateway.ProfileUpdate {
	var update gateway.ProfileUpdate

	if name := JoinName(draft.FirstName, draft.LastName); name != JoinName(snap.FirstName, snap.LastName) {
		update.Name = &name
	}

	if draft.Email != snap.Email {
		email := draft.Email
		update.Email = &email
	}

	if draft.Phone != snap.Phone {
		phone := draft.Phone
		update.Phone = &phone
	}

	if draft.Bio != snap.Bio {
		bio := draft.Bio
		update.Bio = &bio
	}

	return update
}
