// models содержит доменные сущности account-сервиса.
// Эти типы используются слоями бизнес-логики, шлюза и транспорта.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// Profile — внутренняя доменная модель аккаунта клиента.
//
// FirstName/LastName — результат нормализации удалённого поля name
// (см. account.Store): апстрим хранит имя одной строкой.
// PhotoURL принадлежит подсистеме загрузки фото и меняется только её коммитом.
type Profile struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Bio            string
	PhotoURL       string
	PaymentMethods []PaymentMethod
}

// DisplayName собирает отображаемое имя из FirstName/LastName:
// обе части триммятся, соединяются одним пробелом; пустые части опускаются.
func (p Profile) DisplayName() string {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)

	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// Clone возвращает глубокую копию профиля.
// Снапшот стора и черновик сессии редактирования не должны разделять
// слайс платёжных методов.
func (p Profile) Clone() Profile {
	out := p

	if p.PaymentMethods != nil {
		out.PaymentMethods = make([]PaymentMethod, len(p.PaymentMethods))
		copy(out.PaymentMethods, p.PaymentMethods)
	}

	return out
}
